package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/ctxutil"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

// RecipeService covers recipe CRUD. Methods taking an ownerID restrict the
// operation to recipes that user created; an empty ownerID lifts the restriction.
type RecipeService interface {
	Create(ctx context.Context, ownerID string, in RecipeInput) (types.Recipe, error)
	Get(ctx context.Context, recipeID string) (types.Recipe, error)
	// Detail adds the like count and rating summary to the recipe.
	Detail(ctx context.Context, recipeID string) (types.RecipeDetail, error)
	List(ctx context.Context, p types.Page) ([]types.Recipe, error)
	ByIDs(ctx context.Context, ids []string) ([]types.Recipe, error)
	ListByOwner(ctx context.Context, ownerID string, p types.Page) (types.UserRecipes, error)
	Update(ctx context.Context, ownerID, recipeID string, in RecipePatchInput) (types.Recipe, error)
	Delete(ctx context.Context, ownerID, recipeID string) error
	LikesCount(ctx context.Context, recipeID string) (types.RecipeLikes, error)
}

type recipeService struct {
	log        *logger.Logger
	recipeRepo graph.RecipeRepo
	likeRepo   graph.LikeRepo
	ratings    RatingService
}

func NewRecipeService(log *logger.Logger, recipeRepo graph.RecipeRepo, likeRepo graph.LikeRepo, ratings RatingService) RecipeService {
	return &recipeService{
		log:        log.With("service", "RecipeService"),
		recipeRepo: recipeRepo,
		likeRepo:   likeRepo,
		ratings:    ratings,
	}
}

func (s *recipeService) Create(ctx context.Context, ownerID string, in RecipeInput) (types.Recipe, error) {
	owner := strings.TrimSpace(ownerID)
	draft, err := in.draft(owner, owner != "")
	if err != nil {
		return types.Recipe{}, err
	}
	rec, err := s.recipeRepo.Create(ctx, draft)
	if err != nil {
		return types.Recipe{}, err
	}
	s.log.Info("recipe created", append(ctxutil.LogFields(ctx), "recipe_id", rec.ID, "user_id", owner)...)
	return rec, nil
}

func (s *recipeService) Get(ctx context.Context, recipeID string) (types.Recipe, error) {
	rid, err := requireID("recipe_id", recipeID)
	if err != nil {
		return types.Recipe{}, err
	}
	return s.recipeRepo.Get(ctx, rid)
}

func (s *recipeService) Detail(ctx context.Context, recipeID string) (types.RecipeDetail, error) {
	rid, err := requireID("recipe_id", recipeID)
	if err != nil {
		return types.RecipeDetail{}, err
	}
	var (
		out    types.RecipeDetail
		recipe types.Recipe
		likes  int64
		rating types.RatingSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipe, err = s.recipeRepo.Get(gctx, rid)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = s.likeRepo.CountByRecipe(gctx, rid)
		return err
	})
	g.Go(func() error {
		var err error
		rating, err = s.ratings.Get(gctx, rid, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return out, err
	}
	out.Recipe = recipe
	out.Likes = likes
	out.Rating = rating
	return out, nil
}

func (s *recipeService) List(ctx context.Context, p types.Page) ([]types.Recipe, error) {
	return s.recipeRepo.List(ctx, p)
}

func (s *recipeService) ByIDs(ctx context.Context, ids []string) ([]types.Recipe, error) {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			clean = append(clean, id)
		}
	}
	if len(clean) == 0 {
		return nil, invalid("ids must not be empty")
	}
	return s.recipeRepo.ByIDs(ctx, clean)
}

func (s *recipeService) ListByOwner(ctx context.Context, ownerID string, p types.Page) (types.UserRecipes, error) {
	uid, err := requireID("user_id", ownerID)
	if err != nil {
		return types.UserRecipes{}, err
	}
	return s.recipeRepo.ListByOwner(ctx, uid, p)
}

func (s *recipeService) Update(ctx context.Context, ownerID, recipeID string, in RecipePatchInput) (types.Recipe, error) {
	rid, err := requireID("recipe_id", recipeID)
	if err != nil {
		return types.Recipe{}, err
	}
	patch, err := in.patch()
	if err != nil {
		return types.Recipe{}, err
	}
	return s.recipeRepo.Update(ctx, strings.TrimSpace(ownerID), rid, patch)
}

func (s *recipeService) Delete(ctx context.Context, ownerID, recipeID string) error {
	rid, err := requireID("recipe_id", recipeID)
	if err != nil {
		return err
	}
	if err := s.recipeRepo.Delete(ctx, strings.TrimSpace(ownerID), rid); err != nil {
		return err
	}
	s.log.Info("recipe deleted", append(ctxutil.LogFields(ctx), "recipe_id", rid, "user_id", ownerID)...)
	return nil
}

func (s *recipeService) LikesCount(ctx context.Context, recipeID string) (types.RecipeLikes, error) {
	rid, err := requireID("recipe_id", recipeID)
	if err != nil {
		return types.RecipeLikes{}, err
	}
	n, err := s.likeRepo.CountByRecipe(ctx, rid)
	if err != nil {
		return types.RecipeLikes{}, err
	}
	return types.RecipeLikes{RecipeID: rid, Likes: n}, nil
}
