package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
	"github.com/atvirokodosprendimai/deskkit/internal/validate"
)

type GradeServiceConfig struct {
	Subjects         []string
	RejectDuplicates bool
}

type GradeService struct {
	repo domain.GradeRepository
	cfg  GradeServiceConfig
}

func NewGradeService(repo domain.GradeRepository, cfg GradeServiceConfig) *GradeService {
	if len(cfg.Subjects) == 0 {
		cfg.Subjects = domain.DefaultSubjects
	}
	return &GradeService{repo: repo, cfg: cfg}
}

func (s *GradeService) Initialize(ctx context.Context) error {
	if err := s.repo.Init(ctx, s.cfg.Subjects); err != nil {
		return fmt.Errorf("initialize grades: %w", err)
	}
	return nil
}

func (s *GradeService) Subjects(ctx context.Context) ([]domain.Subject, error) {
	subjects, err := s.repo.Subjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (s *GradeService) Subject(ctx context.Context, id uint) (domain.Subject, error) {
	subject, err := s.repo.SubjectByID(ctx, id)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("subject %d: %w", id, err)
	}
	return subject, nil
}

// AddGrade stores a grade for an existing subject. With duplicate rejection
// on, a grade with the same subject, value and date returns
// domain.ErrDuplicateGrade and stores nothing.
func (s *GradeService) AddGrade(ctx context.Context, subjectID uint, value float64, date string) error {
	if err := validate.GradeValue(value); err != nil {
		return err
	}
	if _, err := s.Subject(ctx, subjectID); err != nil {
		return err
	}

	grade := domain.Grade{SubjectID: subjectID, Value: value, Date: date}
	if s.cfg.RejectDuplicates {
		exists, err := s.repo.GradeExists(ctx, grade)
		if err != nil {
			return fmt.Errorf("check duplicate grade: %w", err)
		}
		if exists {
			return domain.ErrDuplicateGrade
		}
	}

	if err := s.repo.InsertGrade(ctx, grade); err != nil {
		return fmt.Errorf("save grade: %w", err)
	}
	log.Info().Uint("subject_id", subjectID).Float64("grade", value).Str("date", date).Msg("grade saved")
	return nil
}

func (s *GradeService) ListGrades(ctx context.Context) ([]domain.GradeRow, error) {
	rows, err := s.repo.ListGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return rows, nil
}

func (s *GradeService) ListSubjectGrades(ctx context.Context, subjectID uint) ([]domain.Grade, error) {
	grades, err := s.repo.ListSubjectGrades(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list grades for subject %d: %w", subjectID, err)
	}
	return grades, nil
}

func (s *GradeService) SubjectAverage(ctx context.Context, subjectID uint) (float64, bool, error) {
	avg, ok, err := s.repo.Average(ctx, &subjectID)
	if err != nil {
		return 0, false, fmt.Errorf("average for subject %d: %w", subjectID, err)
	}
	return avg, ok, nil
}

func (s *GradeService) OverallAverage(ctx context.Context) (float64, bool, error) {
	avg, ok, err := s.repo.Average(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("overall average: %w", err)
	}
	return avg, ok, nil
}

// Report collects the full grade history and the overall average for export.
func (s *GradeService) Report(ctx context.Context, now time.Time) (domain.GradeReport, error) {
	rows, err := s.ListGrades(ctx)
	if err != nil {
		return domain.GradeReport{}, err
	}
	avg, ok, err := s.OverallAverage(ctx)
	if err != nil {
		return domain.GradeReport{}, err
	}
	return domain.GradeReport{Rows: rows, Average: avg, HasAverage: ok, GeneratedAt: now}, nil
}
