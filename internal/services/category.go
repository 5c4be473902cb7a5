package services

import (
	"context"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

type CategoryService interface {
	List(ctx context.Context) ([]types.Category, error)
	// SeedDefaults merges the embedded category list into the graph.
	SeedDefaults(ctx context.Context) error
}

type categoryService struct {
	log          *logger.Logger
	categoryRepo graph.CategoryRepo
}

func NewCategoryService(log *logger.Logger, categoryRepo graph.CategoryRepo) CategoryService {
	return &categoryService{log: log.With("service", "CategoryService"), categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]types.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) SeedDefaults(ctx context.Context) error {
	names, err := graph.SeedCategories()
	if err != nil {
		return err
	}
	return s.categoryRepo.Seed(ctx, names)
}
