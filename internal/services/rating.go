package services

import (
	"context"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

type RatingService interface {
	Upsert(ctx context.Context, recipeID, userID string, value int64) (types.RatingSummary, error)
	Delete(ctx context.Context, recipeID, userID string) (types.RatingSummary, error)
	Get(ctx context.Context, recipeID, userID string) (types.RatingSummary, error)
}

// RatingAggregator is satisfied by rating.Aggregator.
type RatingAggregator interface {
	Upsert(ctx context.Context, recipeID, userID string, value int64) (types.RatingSummary, error)
	Delete(ctx context.Context, recipeID, userID string) (types.RatingSummary, error)
	Get(ctx context.Context, recipeID, userID string) (types.RatingSummary, error)
}

type ratingService struct {
	log *logger.Logger
	agg RatingAggregator
}

func NewRatingService(log *logger.Logger, agg RatingAggregator) RatingService {
	return &ratingService{log: log.With("service", "RatingService"), agg: agg}
}

func (s *ratingService) Upsert(ctx context.Context, recipeID, userID string, value int64) (types.RatingSummary, error) {
	return s.agg.Upsert(ctx, recipeID, userID, value)
}

func (s *ratingService) Delete(ctx context.Context, recipeID, userID string) (types.RatingSummary, error) {
	return s.agg.Delete(ctx, recipeID, userID)
}

func (s *ratingService) Get(ctx context.Context, recipeID, userID string) (types.RatingSummary, error) {
	return s.agg.Get(ctx, recipeID, userID)
}
