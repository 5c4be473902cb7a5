package services

import (
	"context"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/ctxutil"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

type LikeService interface {
	Like(ctx context.Context, userID, recipeID string) error
	Unlike(ctx context.Context, userID, recipeID string) error
	LikedRecipes(ctx context.Context, userID string) ([]types.Recipe, error)
	LikedIDs(ctx context.Context, userID string, p types.Page) ([]string, error)
	Count(ctx context.Context, userID string) (int64, error)
	Exists(ctx context.Context, userID, recipeID string) (bool, error)
}

type likeService struct {
	log      *logger.Logger
	likeRepo graph.LikeRepo
}

func NewLikeService(log *logger.Logger, likeRepo graph.LikeRepo) LikeService {
	return &likeService{log: log.With("service", "LikeService"), likeRepo: likeRepo}
}

func pairIDs(userID, recipeID string) (string, string, error) {
	uid, err := requireID("user_id", userID)
	if err != nil {
		return "", "", err
	}
	rid, err := requireID("recipe_id", recipeID)
	if err != nil {
		return "", "", err
	}
	return uid, rid, nil
}

func (s *likeService) Like(ctx context.Context, userID, recipeID string) error {
	uid, rid, err := pairIDs(userID, recipeID)
	if err != nil {
		return err
	}
	if err := s.likeRepo.Like(ctx, uid, rid); err != nil {
		return err
	}
	s.log.Debug("recipe liked", append(ctxutil.LogFields(ctx), "user_id", uid, "recipe_id", rid)...)
	return nil
}

func (s *likeService) Unlike(ctx context.Context, userID, recipeID string) error {
	uid, rid, err := pairIDs(userID, recipeID)
	if err != nil {
		return err
	}
	return s.likeRepo.Unlike(ctx, uid, rid)
}

func (s *likeService) LikedRecipes(ctx context.Context, userID string) ([]types.Recipe, error) {
	uid, err := requireID("user_id", userID)
	if err != nil {
		return nil, err
	}
	return s.likeRepo.LikedRecipes(ctx, uid)
}

func (s *likeService) LikedIDs(ctx context.Context, userID string, p types.Page) ([]string, error) {
	uid, err := requireID("user_id", userID)
	if err != nil {
		return nil, err
	}
	return s.likeRepo.LikedIDs(ctx, uid, p)
}

func (s *likeService) Count(ctx context.Context, userID string) (int64, error) {
	uid, err := requireID("user_id", userID)
	if err != nil {
		return 0, err
	}
	return s.likeRepo.CountByUser(ctx, uid)
}

func (s *likeService) Exists(ctx context.Context, userID, recipeID string) (bool, error) {
	uid, rid, err := pairIDs(userID, recipeID)
	if err != nil {
		return false, err
	}
	return s.likeRepo.Exists(ctx, uid, rid)
}
