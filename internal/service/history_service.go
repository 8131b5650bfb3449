package service

import (
	"context"

	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/repository"
)

type historyService struct {
	runs repository.RunRepo
}

func NewHistoryService(runs repository.RunRepo) HistoryService {
	return &historyService{runs: runs}
}

func (s *historyService) List(ctx context.Context, limit int) ([]*domain.RecommendationRun, error) {
	return s.runs.ListRecent(ctx, limit)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.RecommendationRun, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.runs.Delete(ctx, id)
}
