package services

import (
	"context"
	"unicode/utf8"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/ctxutil"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/textnorm"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 32
)

type UserService interface {
	Signup(ctx context.Context, username string) (types.Signup, error)
	Get(ctx context.Context, userID string) (types.User, error)
	List(ctx context.Context, p types.Page) ([]types.User, error)
	Delete(ctx context.Context, userID string) (types.UserDeletion, error)
}

type userService struct {
	log      *logger.Logger
	userRepo graph.UserRepo
}

func NewUserService(log *logger.Logger, userRepo graph.UserRepo) UserService {
	return &userService{log: log.With("service", "UserService"), userRepo: userRepo}
}

func (s *userService) Signup(ctx context.Context, username string) (types.Signup, error) {
	name := textnorm.Name(username)
	if n := utf8.RuneCountInString(name); n < usernameMinLen || n > usernameMaxLen {
		return types.Signup{}, invalid("username must be %d to %d characters", usernameMinLen, usernameMaxLen)
	}
	out, err := s.userRepo.Signup(ctx, name)
	if err != nil {
		return types.Signup{}, err
	}
	if out.Created {
		s.log.Info("user signed up", append(ctxutil.LogFields(ctx), "user_id", out.User.ID, "username", out.User.Username)...)
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, userID string) (types.User, error) {
	uid, err := requireID("user_id", userID)
	if err != nil {
		return types.User{}, err
	}
	return s.userRepo.Get(ctx, uid)
}

func (s *userService) List(ctx context.Context, p types.Page) ([]types.User, error) {
	return s.userRepo.List(ctx, p)
}

func (s *userService) Delete(ctx context.Context, userID string) (types.UserDeletion, error) {
	uid, err := requireID("user_id", userID)
	if err != nil {
		return types.UserDeletion{}, err
	}
	return s.userRepo.Delete(ctx, uid)
}
