package repository

import (
	"context"

	"github.com/alexanderramin/scotty/internal/domain"
)

// RunRepo stores completed recommendation runs together with their courses.
type RunRepo interface {
	Create(ctx context.Context, run *domain.RecommendationRun) error
	GetByID(ctx context.Context, id string) (*domain.RecommendationRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.RecommendationRun, error)
	Delete(ctx context.Context, id string) error
}

// PastCourseRepo is the catalog offered in the "already taken" picker.
type PastCourseRepo interface {
	List(ctx context.Context) ([]domain.PastCourse, error)
	Add(ctx context.Context, label string) error
	Remove(ctx context.Context, label string) error
}
