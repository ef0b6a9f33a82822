package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

func newEntryRepo(t *testing.T) *EntryRepository {
	t.Helper()
	repo := NewEntryRepository(filepath.Join(t.TempDir(), "data", "passwords.db"))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func newGradeRepo(t *testing.T) *GradeRepository {
	t.Helper()
	repo := NewGradeRepository(filepath.Join(t.TempDir(), "noten_test.db"))
	require.NoError(t, repo.Init(context.Background(), domain.DefaultSubjects))
	return repo
}

func TestEntriesRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	repo := newEntryRepo(t).WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	require.NoError(t, repo.InsertEntry(ctx, domain.Entry{Service: "GitHub", Username: "octo@example.com", Hint: "cat"}))
	require.NoError(t, repo.InsertEntry(ctx, domain.Entry{Service: "Mail", Username: "me"}))

	entries, err := repo.ListEntries(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "Mail", entries[0].Service)
	assert.Equal(t, "me", entries[0].Username)
	assert.Equal(t, "", entries[0].Hint)
	assert.Equal(t, "2025-01-02 03:04:07", entries[0].CreatedAt)

	assert.Equal(t, "GitHub", entries[1].Service)
	assert.Equal(t, "octo@example.com", entries[1].Username)
	assert.Equal(t, "cat", entries[1].Hint)
	assert.Equal(t, "2025-01-02 03:04:06", entries[1].CreatedAt)
	assert.Less(t, entries[1].ID, entries[0].ID)
}

func TestEntriesSameSecondOrderedByID(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := newEntryRepo(t).WithClock(func() time.Time { return fixed })

	for _, service := range []string{"a", "b", "c"} {
		require.NoError(t, repo.InsertEntry(ctx, domain.Entry{Service: service, Username: "u"}))
	}

	entries, err := repo.ListEntries(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{entries[0].Service, entries[1].Service, entries[2].Service})
}

func TestEntriesSearchBySubstring(t *testing.T) {
	ctx := context.Background()
	repo := newEntryRepo(t)

	for _, service := range []string{"GitHub", "GitLab", "Mail"} {
		require.NoError(t, repo.InsertEntry(ctx, domain.Entry{Service: service, Username: "u"}))
	}

	entries, err := repo.ListEntries(ctx, "  Git ")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = repo.ListEntries(ctx, "ail")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mail", entries[0].Service)

	entries, err = repo.ListEntries(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesInitIsRepeatable(t *testing.T) {
	ctx := context.Background()
	repo := newEntryRepo(t)
	require.NoError(t, repo.InsertEntry(ctx, domain.Entry{Service: "s", Username: "u"}))
	require.NoError(t, repo.Init(ctx))

	entries, err := repo.ListEntries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGradesSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newGradeRepo(t)
	require.NoError(t, repo.Init(ctx, domain.DefaultSubjects))
	require.NoError(t, repo.Init(ctx, append([]string{"Sport", "Mathe"}, domain.DefaultSubjects...)))

	subjects, err := repo.Subjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 6)
	assert.Equal(t, "Fachenglisch", subjects[0].Name)
	assert.Equal(t, "Mathe", subjects[5].Name)
}

func TestGradesRoundTripAndOrdering(t *testing.T) {
	ctx := context.Background()
	repo := newGradeRepo(t)

	sport, err := repo.SubjectByID(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "Sport", sport.Name)

	require.NoError(t, repo.InsertGrade(ctx, domain.Grade{SubjectID: 3, Value: 4.0, Date: "2025-01-02"}))
	require.NoError(t, repo.InsertGrade(ctx, domain.Grade{SubjectID: 3, Value: 5.0, Date: "2025-01-01"}))
	require.NoError(t, repo.InsertGrade(ctx, domain.Grade{SubjectID: 1, Value: 5.5, Date: "2025-02-01"}))

	rows, err := repo.ListGrades(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.GradeRow{
		{Subject: "Fachenglisch", Value: 5.5, Date: "2025-02-01"},
		{Subject: "Sport", Value: 5.0, Date: "2025-01-01"},
		{Subject: "Sport", Value: 4.0, Date: "2025-01-02"},
	}, rows)

	grades, err := repo.ListSubjectGrades(ctx, 3)
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, "2025-01-01", grades[0].Date)
	assert.Equal(t, 4.0, grades[1].Value)
}

func TestGradesAverage(t *testing.T) {
	ctx := context.Background()
	repo := newGradeRepo(t)

	_, ok, err := repo.Average(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.InsertGrade(ctx, domain.Grade{SubjectID: 3, Value: 4.0, Date: "2025-01-02"}))
	require.NoError(t, repo.InsertGrade(ctx, domain.Grade{SubjectID: 3, Value: 5.0, Date: "2025-01-01"}))
	require.NoError(t, repo.InsertGrade(ctx, domain.Grade{SubjectID: 1, Value: 6.0, Date: "2025-01-01"}))

	avg, ok, err := repo.Average(ctx, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, avg, 1e-9)

	sport := uint(3)
	avg, ok, err = repo.Average(ctx, &sport)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 4.5, avg, 1e-9)

	empty := uint(2)
	_, ok, err = repo.Average(ctx, &empty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGradeExists(t *testing.T) {
	ctx := context.Background()
	repo := newGradeRepo(t)
	g := domain.Grade{SubjectID: 1, Value: 4.0, Date: "2025-01-01"}

	exists, err := repo.GradeExists(ctx, g)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.InsertGrade(ctx, g))

	exists, err = repo.GradeExists(ctx, g)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.GradeExists(ctx, domain.Grade{SubjectID: 1, Value: 4.0, Date: "2025-01-02"})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSubjectByIDMissing(t *testing.T) {
	_, err := newGradeRepo(t).SubjectByID(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrSubjectNotFound))
}

func TestInsertGradeEnforcesForeignKey(t *testing.T) {
	err := newGradeRepo(t).InsertGrade(context.Background(), domain.Grade{SubjectID: 99, Value: 4.0, Date: "2025-01-01"})
	assert.Error(t, err)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}
