package sqlite

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

type EntryRepository struct {
	path string
	now  func() time.Time
}

func NewEntryRepository(path string) *EntryRepository {
	return &EntryRepository{path: path, now: time.Now}
}

// WithClock replaces the clock used to stamp created_at.
func (r *EntryRepository) WithClock(now func() time.Time) *EntryRepository {
	r.now = now
	return r
}

func (r *EntryRepository) Init(ctx context.Context) error {
	return withDB(ctx, r.path, func(db *gorm.DB) error {
		return RunMigrations(ctx, db, SchemaEntries)
	})
}

func (r *EntryRepository) InsertEntry(ctx context.Context, value domain.Entry) error {
	m := EntryModel{
		Service:   value.Service,
		Username:  value.Username,
		Hint:      value.Hint,
		CreatedAt: r.now().UTC().Format(domain.EntryTimeLayout),
	}
	return withDB(ctx, r.path, func(db *gorm.DB) error {
		return db.Create(&m).Error
	})
}

func (r *EntryRepository) ListEntries(ctx context.Context, search string) ([]domain.Entry, error) {
	rows := make([]EntryModel, 0)
	err := withDB(ctx, r.path, func(db *gorm.DB) error {
		q := db.Model(&EntryModel{})
		if term := strings.TrimSpace(search); term != "" {
			q = q.Where("service LIKE ?", "%"+term+"%")
		}
		return q.Order("created_at DESC").Order("id DESC").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Entry, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.Entry{
			ID:        m.ID,
			Service:   m.Service,
			Username:  m.Username,
			Hint:      m.Hint,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}
