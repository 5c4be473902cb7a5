package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
)

type UserRepo interface {
	// Signup returns the existing user when username is taken.
	Signup(ctx context.Context, username string) (types.Signup, error)
	Get(ctx context.Context, userID string) (types.User, error)
	List(ctx context.Context, p types.Page) ([]types.User, error)
	// Delete removes the user and every recipe they created.
	Delete(ctx context.Context, userID string) (types.UserDeletion, error)
}

type userRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewUserRepo(client *neo4jdb.Client, baseLog *logger.Logger) UserRepo {
	return &userRepo{client: client, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Signup(ctx context.Context, username string) (types.Signup, error) {
	uid := uuid.New().String()
	out, err := r.client.ExecuteWrite(ctx, "user_signup", func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, `
MERGE (u:User {username: $username})
ON CREATE SET u.id = $uid, u.created_at = datetime()
RETURN u.id AS id, u.username AS username, u.id = $uid AS created
`, map[string]any{"uid": uid, "username": username})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("signup %q returned no row", username)
		}
		return types.Signup{
			User:    types.User{ID: recString(rec, "id"), Username: recString(rec, "username")},
			Created: recBool(rec, "created"),
		}, nil
	})
	if err != nil {
		return types.Signup{}, err
	}
	return out.(types.Signup), nil
}

func (r *userRepo) Get(ctx context.Context, userID string) (types.User, error) {
	out, err := r.client.ExecuteRead(ctx, "user_get", func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, `
MATCH (u:User {id: $uid})
RETURN u.id AS id, u.username AS username
`, map[string]any{"uid": userID})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, userID)
		}
		return types.User{ID: recString(rec, "id"), Username: recString(rec, "username")}, nil
	})
	if err != nil {
		return types.User{}, err
	}
	return out.(types.User), nil
}

func (r *userRepo) List(ctx context.Context, p types.Page) ([]types.User, error) {
	out, err := r.client.ExecuteRead(ctx, "user_list", func(tx neo4j.ManagedTransaction) (any, error) {
		recs, err := collect(ctx, tx, `
MATCH (u:User)
RETURN u.id AS id, u.username AS username
ORDER BY u.username ASC
SKIP $skip
LIMIT $limit
`, pageParams(p, nil))
		if err != nil {
			return nil, err
		}
		users := make([]types.User, 0, len(recs))
		for _, rec := range recs {
			users = append(users, types.User{ID: recString(rec, "id"), Username: recString(rec, "username")})
		}
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]types.User), nil
}

func (r *userRepo) Delete(ctx context.Context, userID string) (types.UserDeletion, error) {
	out, err := r.client.ExecuteWrite(ctx, "user_delete", func(tx neo4j.ManagedTransaction) (any, error) {
		// Ratings on recipes that survive the cascade are removed first so the
		// accumulators keep matching the remaining RATED edges.
		if err := run(ctx, tx, `
MATCH (u:User {id: $uid})-[rt:RATED]->(r:Recipe)
WHERE NOT (u)-[:CREATED]->(r)
SET r.rating_sum = coalesce(r.rating_sum, 0) - rt.value,
    r.rating_count = coalesce(r.rating_count, 0) - 1
DELETE rt
`, map[string]any{"uid": userID}); err != nil {
			return nil, err
		}
		rec, err := single(ctx, tx, `
MATCH (u:User {id: $uid})
OPTIONAL MATCH (u)-[:CREATED]->(r:Recipe)
WITH u, [x IN collect(r) WHERE x IS NOT NULL] AS rs
FOREACH (x IN rs | DETACH DELETE x)
DETACH DELETE u
RETURN size(rs) AS deleted_recipes
`, map[string]any{"uid": userID})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, userID)
		}
		return types.UserDeletion{UserID: userID, DeletedRecipes: recInt64(rec, "deleted_recipes")}, nil
	})
	if err != nil {
		return types.UserDeletion{}, err
	}
	r.log.Info("user deleted", "user_id", userID)
	return out.(types.UserDeletion), nil
}
