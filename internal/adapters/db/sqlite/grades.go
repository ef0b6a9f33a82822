package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

type GradeRepository struct {
	path string
}

func NewGradeRepository(path string) *GradeRepository {
	return &GradeRepository{path: path}
}

// Init migrates the schema and seeds subjects. Names already present are
// skipped, so running it again changes nothing.
func (r *GradeRepository) Init(ctx context.Context, subjects []string) error {
	return withDB(ctx, r.path, func(db *gorm.DB) error {
		if err := RunMigrations(ctx, db, SchemaGrades); err != nil {
			return err
		}
		for _, name := range subjects {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&SubjectModel{Name: name}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GradeRepository) Subjects(ctx context.Context) ([]domain.Subject, error) {
	rows := make([]SubjectModel, 0)
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Subject, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.Subject{ID: m.ID, Name: m.Name})
	}
	return result, nil
}

func (r *GradeRepository) SubjectByID(ctx context.Context, id uint) (domain.Subject, error) {
	var m SubjectModel
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.First(&m, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Subject{}, domain.ErrSubjectNotFound
	}
	if err != nil {
		return domain.Subject{}, err
	}
	return domain.Subject{ID: m.ID, Name: m.Name}, nil
}

func (r *GradeRepository) InsertGrade(ctx context.Context, value domain.Grade) error {
	m := GradeModel{SubjectID: value.SubjectID, Grade: value.Value, Date: value.Date}
	return withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.Create(&m).Error
	})
}

func (r *GradeRepository) GradeExists(ctx context.Context, value domain.Grade) (bool, error) {
	var count int64
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.Model(&GradeModel{}).
			Where("subject_id = ? AND grade = ? AND date = ?", value.SubjectID, value.Value, value.Date).
			Count(&count).Error
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GradeRepository) ListGrades(ctx context.Context) ([]domain.GradeRow, error) {
	type row struct {
		Name  string
		Grade float64
		Date  string
	}

	rows := make([]row, 0)
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.Raw(`
SELECT s.name,
       g.grade,
       g.date
FROM grades g
JOIN subjects s ON g.subject_id = s.id
ORDER BY s.name, g.date, g.id
`).Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.GradeRow, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.GradeRow{Subject: m.Name, Value: m.Grade, Date: m.Date})
	}
	return result, nil
}

func (r *GradeRepository) ListSubjectGrades(ctx context.Context, subjectID uint) ([]domain.Grade, error) {
	rows := make([]GradeModel, 0)
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.Where("subject_id = ?", subjectID).Order("date").Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Grade, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.Grade{ID: m.ID, SubjectID: m.SubjectID, Value: m.Grade, Date: m.Date})
	}
	return result, nil
}

func (r *GradeRepository) Average(ctx context.Context, subjectID *uint) (float64, bool, error) {
	var avg sql.NullFloat64
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		q := db.Model(&GradeModel{}).Select("AVG(grade)")
		if subjectID != nil {
			q = q.Where("subject_id = ?", *subjectID)
		}
		return q.Row().Scan(&avg)
	})
	if err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}
