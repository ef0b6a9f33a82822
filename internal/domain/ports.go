package domain

import "context"

type EntryRepository interface {
	Init(ctx context.Context) error
	InsertEntry(ctx context.Context, value Entry) error
	ListEntries(ctx context.Context, search string) ([]Entry, error)
}

type GradeRepository interface {
	Init(ctx context.Context, subjects []string) error
	Subjects(ctx context.Context) ([]Subject, error)
	SubjectByID(ctx context.Context, id uint) (Subject, error)
	InsertGrade(ctx context.Context, value Grade) error
	GradeExists(ctx context.Context, value Grade) (bool, error)
	ListGrades(ctx context.Context) ([]GradeRow, error)
	ListSubjectGrades(ctx context.Context, subjectID uint) ([]Grade, error)
	// Average returns ok == false when no grade matches.
	Average(ctx context.Context, subjectID *uint) (avg float64, ok bool, err error)
}
