package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
)

type LikeRepo interface {
	// Like is idempotent. ErrNotFound when the user or the recipe is missing.
	Like(ctx context.Context, userID, recipeID string) error
	// Unlike returns ErrNotFound when there is no like to remove.
	Unlike(ctx context.Context, userID, recipeID string) error
	LikedRecipes(ctx context.Context, userID string) ([]types.Recipe, error)
	LikedIDs(ctx context.Context, userID string, p types.Page) ([]string, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByRecipe(ctx context.Context, recipeID string) (int64, error)
	Exists(ctx context.Context, userID, recipeID string) (bool, error)
}

type likeRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewLikeRepo(client *neo4jdb.Client, baseLog *logger.Logger) LikeRepo {
	return &likeRepo{client: client, log: baseLog.With("repo", "LikeRepo")}
}

func (r *likeRepo) Like(ctx context.Context, userID, recipeID string) error {
	_, err := r.client.ExecuteWrite(ctx, "like_create", func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, `
MATCH (u:User {id: $uid})
MATCH (r:Recipe {id: $rid})
MERGE (u)-[l:LIKES]->(r)
ON CREATE SET l.created_at = datetime()
RETURN u.id AS user_id
`, map[string]any{"uid": userID, "rid": recipeID})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: user or recipe", errs.ErrNotFound)
		}
		return nil, nil
	})
	return err
}

func (r *likeRepo) Unlike(ctx context.Context, userID, recipeID string) error {
	_, err := r.client.ExecuteWrite(ctx, "like_delete", func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, `
MATCH (:User {id: $uid})-[l:LIKES]->(:Recipe {id: $rid})
DELETE l
RETURN count(l) AS deleted
`, map[string]any{"uid": userID, "rid": recipeID})
		if err != nil {
			return nil, err
		}
		if recInt64(rec, "deleted") == 0 {
			return nil, fmt.Errorf("%w: like", errs.ErrNotFound)
		}
		return nil, nil
	})
	return err
}

func (r *likeRepo) LikedRecipes(ctx context.Context, userID string) ([]types.Recipe, error) {
	out, err := r.client.ExecuteRead(ctx, "like_list", func(tx neo4j.ManagedTransaction) (any, error) {
		if err := requireUser(ctx, tx, userID); err != nil {
			return nil, err
		}
		recs, err := collect(ctx, tx, `
MATCH (:User {id: $uid})-[:LIKES]->(r:Recipe)
WITH DISTINCT r
`+recipeProjection+`
ORDER BY title ASC, id ASC
`, map[string]any{"uid": userID})
		if err != nil {
			return nil, err
		}
		return decodeRecipes(recs), nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]types.Recipe), nil
}

func (r *likeRepo) LikedIDs(ctx context.Context, userID string, p types.Page) ([]string, error) {
	out, err := r.client.ExecuteRead(ctx, "like_ids", func(tx neo4j.ManagedTransaction) (any, error) {
		if err := requireUser(ctx, tx, userID); err != nil {
			return nil, err
		}
		recs, err := collect(ctx, tx, `
MATCH (:User {id: $uid})-[:LIKES]->(r:Recipe)
RETURN DISTINCT r.id AS id
ORDER BY id ASC
SKIP $skip
LIMIT $limit
`, pageParams(p, map[string]any{"uid": userID}))
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(recs))
		for _, rec := range recs {
			ids = append(ids, recString(rec, "id"))
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]string), nil
}

func (r *likeRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, "like_count_user", `
MATCH (u:User {id: $id})
RETURN COUNT { (u)-[:LIKES]->(:Recipe) } AS n
`, userID, "user")
}

func (r *likeRepo) CountByRecipe(ctx context.Context, recipeID string) (int64, error) {
	return r.count(ctx, "like_count_recipe", `
MATCH (r:Recipe {id: $id})
RETURN COUNT { (:User)-[:LIKES]->(r) } AS n
`, recipeID, "recipe")
}

func (r *likeRepo) count(ctx context.Context, op, cypher, id, kind string) (int64, error) {
	out, err := r.client.ExecuteRead(ctx, op, func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, cypher, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: %s %s", errs.ErrNotFound, kind, id)
		}
		return recInt64(rec, "n"), nil
	})
	if err != nil {
		return 0, err
	}
	return out.(int64), nil
}

func (r *likeRepo) Exists(ctx context.Context, userID, recipeID string) (bool, error) {
	out, err := r.client.ExecuteRead(ctx, "like_exists", func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, `
RETURN EXISTS { (:User {id: $uid})-[:LIKES]->(:Recipe {id: $rid}) } AS liked
`, map[string]any{"uid": userID, "rid": recipeID})
		if err != nil {
			return nil, err
		}
		return recBool(rec, "liked"), nil
	})
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}
