package application

import (
	"context"
	"errors"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

type fakeEntryRepo struct {
	calls   int
	entries []domain.Entry
	err     error
}

func (f *fakeEntryRepo) Init(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeEntryRepo) InsertEntry(_ context.Context, value domain.Entry) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	value.ID = uint(len(f.entries) + 1)
	f.entries = append(f.entries, value)
	return nil
}

func (f *fakeEntryRepo) ListEntries(_ context.Context, search string) ([]domain.Entry, error) {
	f.calls++
	return f.entries, f.err
}

type fakeGradeRepo struct {
	subjects []domain.Subject
	grades   []domain.Grade
	inserts  int
	err      error
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{subjects: []domain.Subject{{ID: 1, Name: "Sport"}, {ID: 2, Name: "Gesellschaft"}}}
}

func (f *fakeGradeRepo) Init(_ context.Context, subjects []string) error {
	for _, name := range subjects {
		found := false
		for _, s := range f.subjects {
			if s.Name == name {
				found = true
			}
		}
		if !found {
			f.subjects = append(f.subjects, domain.Subject{ID: uint(len(f.subjects) + 1), Name: name})
		}
	}
	return f.err
}

func (f *fakeGradeRepo) Subjects(context.Context) ([]domain.Subject, error) {
	return f.subjects, f.err
}

func (f *fakeGradeRepo) SubjectByID(_ context.Context, id uint) (domain.Subject, error) {
	if f.err != nil {
		return domain.Subject{}, f.err
	}
	for _, s := range f.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Subject{}, domain.ErrSubjectNotFound
}

func (f *fakeGradeRepo) InsertGrade(_ context.Context, value domain.Grade) error {
	f.inserts++
	if f.err != nil {
		return f.err
	}
	value.ID = uint(len(f.grades) + 1)
	f.grades = append(f.grades, value)
	return nil
}

func (f *fakeGradeRepo) GradeExists(_ context.Context, value domain.Grade) (bool, error) {
	for _, g := range f.grades {
		if g.SubjectID == value.SubjectID && g.Value == value.Value && g.Date == value.Date {
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeGradeRepo) ListGrades(context.Context) ([]domain.GradeRow, error) {
	rows := make([]domain.GradeRow, 0, len(f.grades))
	for _, g := range f.grades {
		name := ""
		for _, s := range f.subjects {
			if s.ID == g.SubjectID {
				name = s.Name
			}
		}
		rows = append(rows, domain.GradeRow{Subject: name, Value: g.Value, Date: g.Date})
	}
	return rows, f.err
}

func (f *fakeGradeRepo) ListSubjectGrades(_ context.Context, subjectID uint) ([]domain.Grade, error) {
	var out []domain.Grade
	for _, g := range f.grades {
		if g.SubjectID == subjectID {
			out = append(out, g)
		}
	}
	return out, f.err
}

func (f *fakeGradeRepo) Average(_ context.Context, subjectID *uint) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	var sum float64
	var n int
	for _, g := range f.grades {
		if subjectID != nil && g.SubjectID != *subjectID {
			continue
		}
		sum += g.Value
		n++
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

var errStorage = errors.New("disk I/O error")
