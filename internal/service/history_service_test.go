package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/repository"
	"github.com/alexanderramin/scotty/internal/testutil"
)

func TestHistoryService_ListGetDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	older := testutil.NewTestRun("older query", testutil.WithCreatedAt(fixedNow.Add(-time.Hour)))
	newer := testutil.NewTestRun("newer query",
		testutil.WithCreatedAt(fixedNow),
		testutil.WithCourses(testutil.NewTestCourse("Databases")),
	)
	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteRunRepo(tx)
		if err := repo.Create(ctx, older); err != nil {
			return err
		}
		return repo.Create(ctx, newer)
	}))

	svc := NewHistoryService(repository.NewSQLiteRunRepo(database))

	runs, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)

	got, err := svc.Get(ctx, newer.ID)
	require.NoError(t, err)
	require.Len(t, got.Courses, 1)
	assert.Equal(t, "Databases", got.Courses[0].Title)

	require.NoError(t, svc.Delete(ctx, older.ID))
	_, err = svc.Get(ctx, older.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, older.ID), repository.ErrNotFound)
}

func TestCatalogService_SeededDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(repository.NewSQLitePastCourseRepo(database), testutil.NewTestUoW(database))

	labels, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"15-213: Computer Systems",
		"15-319: Cloud Computing",
		"15-351: Algorithms",
	}, labels)
}

func TestCatalogService_AddAndRemove(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(repository.NewSQLitePastCourseRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "15-440: Distributed Systems", " 10-601: Machine Learning ", "15-351: Algorithms"))

	labels, err := svc.Labels(ctx)
	require.NoError(t, err)
	assert.Len(t, labels, 5)
	assert.Contains(t, labels, "10-601: Machine Learning")

	require.NoError(t, svc.Remove(ctx, "15-440: Distributed Systems"))
	assert.ErrorIs(t, svc.Remove(ctx, "15-440: Distributed Systems"), repository.ErrNotFound)
}

func TestCatalogService_AddIsAtomic(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(repository.NewSQLitePastCourseRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	err := svc.Add(ctx, "18-213: Systems", "  ")
	require.Error(t, err)

	labels, err := svc.Labels(ctx)
	require.NoError(t, err)
	assert.NotContains(t, labels, "18-213: Systems")
	assert.Len(t, labels, 3)
}
