package services

import (
	"context"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

// Recommender is the part of recommend.Engine the services depend on.
type Recommender interface {
	Recommend(ctx context.Context, userID string, p types.Page) (*types.Recommendations, error)
	Popular(ctx context.Context, p types.Page) ([]types.PopularRecipe, error)
	PopularInCategory(ctx context.Context, category string, p types.Page) ([]types.PopularRecipe, error)
	SearchIngredients(ctx context.Context, wanted []string, p types.Page) ([]types.SearchHit, error)
}

type RecommendationService interface {
	ForUser(ctx context.Context, userID string, p types.Page) (*types.Recommendations, error)
	Popular(ctx context.Context, p types.Page) ([]types.PopularRecipe, error)
}

type recommendationService struct {
	log    *logger.Logger
	engine Recommender
}

func NewRecommendationService(log *logger.Logger, engine Recommender) RecommendationService {
	return &recommendationService{log: log.With("service", "RecommendationService"), engine: engine}
}

func (s *recommendationService) ForUser(ctx context.Context, userID string, p types.Page) (*types.Recommendations, error) {
	return s.engine.Recommend(ctx, userID, p)
}

func (s *recommendationService) Popular(ctx context.Context, p types.Page) ([]types.PopularRecipe, error) {
	return s.engine.Popular(ctx, p)
}
