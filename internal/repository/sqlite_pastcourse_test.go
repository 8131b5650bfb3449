package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(courses []domain.PastCourse) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.Label
	}
	return out
}

func TestPastCourseRepo_SeededDefaults(t *testing.T) {
	repo := NewSQLitePastCourseRepo(testutil.NewTestDB(t))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, domain.DefaultPastCourses, labels(got))
	for _, c := range got {
		assert.False(t, c.CreatedAt.IsZero())
	}
}

func TestPastCourseRepo_AddIsIdempotent(t *testing.T) {
	repo := NewSQLitePastCourseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, " 15-440: Distributed Systems "))
	require.NoError(t, repo.Add(ctx, "15-440: Distributed Systems"))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.Contains(t, labels(got), "15-440: Distributed Systems")
}

func TestPastCourseRepo_AddRejectsBlank(t *testing.T) {
	repo := NewSQLitePastCourseRepo(testutil.NewTestDB(t))
	assert.Error(t, repo.Add(context.Background(), "   "))
}

func TestPastCourseRepo_Remove(t *testing.T) {
	repo := NewSQLitePastCourseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, "15-351: Algorithms"))
	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, labels(got), "15-351: Algorithms")

	assert.ErrorIs(t, repo.Remove(ctx, "15-351: Algorithms"), ErrNotFound)
}
