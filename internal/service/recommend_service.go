package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/intelligence"
	"github.com/alexanderramin/scotty/internal/repository"
)

// ErrMissingInterests is returned when a request names no interests.
var ErrMissingInterests = errors.New("please describe your interests")

type recommendService struct {
	advisor  advisor.Advisor
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

// NewRecommendService wires the pipeline. A nil uow disables history.
func NewRecommendService(adv advisor.Advisor, uow db.UnitOfWork, now func() time.Time, observers ...UseCaseObserver) RecommendService {
	if now == nil {
		now = time.Now
	}
	return &recommendService{
		advisor:  adv,
		uow:      uow,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req RecommendRequest) (result *RecommendResult, err error) {
	startedAt := s.now().UTC()
	fields := map[string]any{
		"interests":    req.Interests,
		"past_courses": len(req.PastCourses),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if strings.TrimSpace(req.Interests) == "" {
		err = ErrMissingInterests
		return nil, err
	}

	query := intelligence.BuildQuery(req.RecommendationRequest)

	var answer string
	answer, err = s.advisor.Answer(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("asking advisor: %w", err)
	}

	parsed := intelligence.ExtractCourses(answer)
	fields["parse_path"] = string(parsed.Path)
	fields["courses"] = len(parsed.Courses)

	result = &RecommendResult{
		Query:     query,
		Answer:    answer,
		Courses:   parsed.Courses,
		ParsePath: parsed.Path,
		Notice:    parsed.Notice,
	}

	if req.SkipHistory || s.uow == nil {
		return result, nil
	}

	run := &domain.RecommendationRun{
		ID:          uuid.New().String(),
		Query:       query,
		Interests:   req.Interests,
		RawResponse: answer,
		ParsePath:   parsed.Path,
		Notice:      parsed.Notice,
		Source:      req.Source,
		Courses:     parsed.Courses,
		CreatedAt:   s.now().UTC(),
	}
	histErr := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRunRepo(tx).Create(ctx, run)
	})
	if histErr != nil {
		result.HistoryErr = fmt.Errorf("saving run: %w", histErr)
		fields["history_error"] = histErr.Error()
		return result, nil
	}
	result.RunID = run.ID
	return result, nil
}
