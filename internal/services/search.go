package services

import (
	"context"
	"strings"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/textnorm"
)

type IngredientSearch struct {
	Wanted  []string          `json:"wanted"`
	Skip    int               `json:"skip"`
	Limit   int               `json:"limit"`
	Results []types.SearchHit `json:"results"`
}

type SearchService interface {
	// ByIngredients trims, lowercases and deduplicates raw before ranking.
	ByIngredients(ctx context.Context, raw []string, p types.Page) (*IngredientSearch, error)
	ByCategory(ctx context.Context, category string, p types.Page) ([]types.PopularRecipe, error)
	ByDescription(ctx context.Context, q string, p types.Page) ([]types.DescriptionHit, error)
}

type searchService struct {
	log        *logger.Logger
	engine     Recommender
	recipeRepo graph.RecipeRepo
}

func NewSearchService(log *logger.Logger, engine Recommender, recipeRepo graph.RecipeRepo) SearchService {
	return &searchService{log: log.With("service", "SearchService"), engine: engine, recipeRepo: recipeRepo}
}

func (s *searchService) ByIngredients(ctx context.Context, raw []string, p types.Page) (*IngredientSearch, error) {
	wanted := textnorm.Names(raw)
	if len(wanted) == 0 {
		return nil, invalid("ingredients must not be empty")
	}
	hits, err := s.engine.SearchIngredients(ctx, wanted, p)
	if err != nil {
		return nil, err
	}
	return &IngredientSearch{Wanted: wanted, Skip: p.Skip, Limit: p.Limit, Results: hits}, nil
}

func (s *searchService) ByCategory(ctx context.Context, category string, p types.Page) ([]types.PopularRecipe, error) {
	c := textnorm.Name(category)
	if c == "" {
		return nil, invalid("category is required")
	}
	return s.engine.PopularInCategory(ctx, c, p)
}

func (s *searchService) ByDescription(ctx context.Context, q string, p types.Page) ([]types.DescriptionHit, error) {
	norm := textnorm.Fold(q)
	if strings.TrimSpace(norm) == "" {
		return nil, invalid("q must contain letters or digits")
	}
	return s.recipeRepo.SearchDescription(ctx, norm, p)
}
