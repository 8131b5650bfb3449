package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/repository"
)

type catalogService struct {
	courses repository.PastCourseRepo
	uow     db.UnitOfWork
}

func NewCatalogService(courses repository.PastCourseRepo, uow db.UnitOfWork) CatalogService {
	return &catalogService{courses: courses, uow: uow}
}

func (s *catalogService) List(ctx context.Context) ([]domain.PastCourse, error) {
	return s.courses.List(ctx)
}

func (s *catalogService) Labels(ctx context.Context) ([]string, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(courses))
	for i, c := range courses {
		labels[i] = c.Label
	}
	return labels, nil
}

// Add inserts all labels in one transaction.
func (s *catalogService) Add(ctx context.Context, labels ...string) error {
	if len(labels) == 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePastCourseRepo(tx)
		for _, l := range labels {
			if err := repo.Add(ctx, l); err != nil {
				return fmt.Errorf("adding %q: %w", l, err)
			}
		}
		return nil
	})
}

func (s *catalogService) Remove(ctx context.Context, label string) error {
	return s.courses.Remove(ctx, label)
}
