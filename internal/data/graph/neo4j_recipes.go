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
	"github.com/yungbote/recipegraph-backend/internal/platform/textnorm"
)

// RecipeRepo expects ingredient names and units already normalized. An empty
// ownerID means the operation is not scoped to a creator.
type RecipeRepo interface {
	Create(ctx context.Context, draft types.RecipeDraft) (types.Recipe, error)
	Get(ctx context.Context, recipeID string) (types.Recipe, error)
	List(ctx context.Context, p types.Page) ([]types.Recipe, error)
	ByIDs(ctx context.Context, ids []string) ([]types.Recipe, error)
	ListByOwner(ctx context.Context, ownerID string, p types.Page) (types.UserRecipes, error)
	Update(ctx context.Context, ownerID, recipeID string, patch types.RecipePatch) (types.Recipe, error)
	Delete(ctx context.Context, ownerID, recipeID string) error
	SearchDescription(ctx context.Context, normalized string, p types.Page) ([]types.DescriptionHit, error)
}

type recipeRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewRecipeRepo(client *neo4jdb.Client, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{client: client, log: baseLog.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) Create(ctx context.Context, draft types.RecipeDraft) (types.Recipe, error) {
	rid := uuid.New().String()
	out, err := r.client.ExecuteWrite(ctx, "recipe_create", func(tx neo4j.ManagedTransaction) (any, error) {
		if draft.OwnerID != "" {
			if err := requireUser(ctx, tx, draft.OwnerID); err != nil {
				return nil, err
			}
		}
		if draft.Category != nil {
			if err := requireCategory(ctx, tx, *draft.Category); err != nil {
				return nil, err
			}
		}
		if err := run(ctx, tx, `
CREATE (r:Recipe {
  id: $rid,
  title: $title,
  description: $description,
  description_norm: $description_norm,
  rating_sum: 0,
  rating_count: 0,
  created_at: datetime()
})
`, map[string]any{
			"rid":              rid,
			"title":            draft.Title,
			"description":      nullable(draft.Description),
			"description_norm": normDescription(draft.Description),
		}); err != nil {
			return nil, err
		}
		if draft.OwnerID != "" {
			if err := run(ctx, tx, `
MATCH (u:User {id: $uid}), (r:Recipe {id: $rid})
MERGE (u)-[:CREATED]->(r)
`, map[string]any{"uid": draft.OwnerID, "rid": rid}); err != nil {
				return nil, err
			}
		}
		if draft.Category != nil {
			if err := setCategory(ctx, tx, rid, *draft.Category); err != nil {
				return nil, err
			}
		}
		if err := replaceIngredients(ctx, tx, rid, draft.Ingredients); err != nil {
			return nil, err
		}
		return loadRecipe(ctx, tx, rid)
	})
	if err != nil {
		return types.Recipe{}, err
	}
	r.log.Debug("recipe created", "recipe_id", rid, "user_id", draft.OwnerID)
	return out.(types.Recipe), nil
}

func (r *recipeRepo) Get(ctx context.Context, recipeID string) (types.Recipe, error) {
	out, err := r.client.ExecuteRead(ctx, "recipe_get", func(tx neo4j.ManagedTransaction) (any, error) {
		return loadRecipe(ctx, tx, recipeID)
	})
	if err != nil {
		return types.Recipe{}, err
	}
	return out.(types.Recipe), nil
}

func (r *recipeRepo) List(ctx context.Context, p types.Page) ([]types.Recipe, error) {
	out, err := r.client.ExecuteRead(ctx, "recipe_list", func(tx neo4j.ManagedTransaction) (any, error) {
		recs, err := collect(ctx, tx, `
MATCH (r:Recipe)
WITH r
ORDER BY r.title ASC, r.id ASC
SKIP $skip
LIMIT $limit
`+recipeProjection+`
ORDER BY title ASC, id ASC
`, pageParams(p, nil))
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

func (r *recipeRepo) ByIDs(ctx context.Context, ids []string) ([]types.Recipe, error) {
	out, err := r.client.ExecuteRead(ctx, "recipe_by_ids", func(tx neo4j.ManagedTransaction) (any, error) {
		recs, err := collect(ctx, tx, `
UNWIND range(0, size($ids) - 1) AS idx
MATCH (r:Recipe {id: $ids[idx]})
WITH idx, r
OPTIONAL MATCH (r)-[:IN_CATEGORY]->(c:Category)
OPTIONAL MATCH (r)-[rel:HAS_INGREDIENT]->(i:Ingredient)
WITH idx, r, c, collect({name: i.name, amount: rel.amount, unit: rel.unit}) AS ingredients
RETURN r.id AS id, r.title AS title, r.description AS description, c.name AS category, ingredients
ORDER BY idx ASC
`, map[string]any{"ids": ids})
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

func (r *recipeRepo) ListByOwner(ctx context.Context, ownerID string, p types.Page) (types.UserRecipes, error) {
	out, err := r.client.ExecuteRead(ctx, "recipe_list_by_owner", func(tx neo4j.ManagedTransaction) (any, error) {
		head, err := single(ctx, tx, `
MATCH (u:User {id: $uid})
RETURN u.id AS user_id, u.username AS username, COUNT { (u)-[:CREATED]->(:Recipe) } AS total
`, map[string]any{"uid": ownerID})
		if err != nil {
			return nil, err
		}
		if head == nil {
			return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, ownerID)
		}
		recs, err := collect(ctx, tx, `
MATCH (:User {id: $uid})-[:CREATED]->(r:Recipe)
WITH r
ORDER BY r.title ASC, r.id ASC
SKIP $skip
LIMIT $limit
`+recipeProjection+`
ORDER BY title ASC, id ASC
`, pageParams(p, map[string]any{"uid": ownerID}))
		if err != nil {
			return nil, err
		}
		return types.UserRecipes{
			UserID:   recString(head, "user_id"),
			Username: recString(head, "username"),
			Total:    recInt64(head, "total"),
			Recipes:  decodeRecipes(recs),
		}, nil
	})
	if err != nil {
		return types.UserRecipes{}, err
	}
	return out.(types.UserRecipes), nil
}

func (r *recipeRepo) Update(ctx context.Context, ownerID, recipeID string, patch types.RecipePatch) (types.Recipe, error) {
	out, err := r.client.ExecuteWrite(ctx, "recipe_update", func(tx neo4j.ManagedTransaction) (any, error) {
		if err := requireRecipe(ctx, tx, ownerID, recipeID); err != nil {
			return nil, err
		}
		if patch.Category != nil {
			if err := requireCategory(ctx, tx, *patch.Category); err != nil {
				return nil, err
			}
		}
		if patch.Title != nil {
			if err := run(ctx, tx, `
MATCH (r:Recipe {id: $rid})
SET r.title = $title, r.updated_at = datetime()
`, map[string]any{"rid": recipeID, "title": *patch.Title}); err != nil {
				return nil, err
			}
		}
		if patch.Description != nil {
			if err := run(ctx, tx, `
MATCH (r:Recipe {id: $rid})
SET r.description = $description,
    r.description_norm = $description_norm,
    r.updated_at = datetime()
`, map[string]any{
				"rid":              recipeID,
				"description":      *patch.Description,
				"description_norm": normDescription(patch.Description),
			}); err != nil {
				return nil, err
			}
		}
		if patch.Category != nil {
			if err := setCategory(ctx, tx, recipeID, *patch.Category); err != nil {
				return nil, err
			}
		}
		if patch.Ingredients != nil {
			if err := replaceIngredients(ctx, tx, recipeID, patch.Ingredients); err != nil {
				return nil, err
			}
		}
		return loadRecipe(ctx, tx, recipeID)
	})
	if err != nil {
		return types.Recipe{}, err
	}
	return out.(types.Recipe), nil
}

func (r *recipeRepo) Delete(ctx context.Context, ownerID, recipeID string) error {
	_, err := r.client.ExecuteWrite(ctx, "recipe_delete", func(tx neo4j.ManagedTransaction) (any, error) {
		if err := requireRecipe(ctx, tx, ownerID, recipeID); err != nil {
			return nil, err
		}
		return nil, run(ctx, tx, `
MATCH (r:Recipe {id: $rid})
DETACH DELETE r
`, map[string]any{"rid": recipeID})
	})
	if err != nil {
		return err
	}
	r.log.Debug("recipe deleted", "recipe_id", recipeID, "user_id", ownerID)
	return nil
}

func (r *recipeRepo) SearchDescription(ctx context.Context, normalized string, p types.Page) ([]types.DescriptionHit, error) {
	out, err := r.client.ExecuteRead(ctx, "recipe_search_description", func(tx neo4j.ManagedTransaction) (any, error) {
		recs, err := collect(ctx, tx, `
CALL db.index.fulltext.queryNodes($index, $q) YIELD node, score
OPTIONAL MATCH (node)-[:IN_CATEGORY]->(c:Category)
RETURN node.id AS id, node.title AS title, node.description AS description, c.name AS category, score
ORDER BY score DESC, title ASC, id ASC
SKIP $skip
LIMIT $limit
`, pageParams(p, map[string]any{"index": DescriptionIndex, "q": normalized}))
		if err != nil {
			return nil, err
		}
		hits := make([]types.DescriptionHit, 0, len(recs))
		for _, rec := range recs {
			hits = append(hits, types.DescriptionHit{
				ID:          recString(rec, "id"),
				Title:       recString(rec, "title"),
				Description: recStringPtr(rec, "description"),
				Category:    recStringPtr(rec, "category"),
				Relevance:   recFloat64(rec, "score"),
			})
		}
		return hits, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]types.DescriptionHit), nil
}

func loadRecipe(ctx context.Context, tx neo4j.ManagedTransaction, recipeID string) (types.Recipe, error) {
	rec, err := single(ctx, tx, `
MATCH (r:Recipe {id: $rid})
`+recipeProjection, map[string]any{"rid": recipeID})
	if err != nil {
		return types.Recipe{}, err
	}
	if rec == nil {
		return types.Recipe{}, fmt.Errorf("%w: recipe %s", errs.ErrNotFound, recipeID)
	}
	return decodeRecipe(rec), nil
}

func decodeRecipes(recs []*neo4j.Record) []types.Recipe {
	out := make([]types.Recipe, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeRecipe(rec))
	}
	return out
}

func requireUser(ctx context.Context, tx neo4j.ManagedTransaction, userID string) error {
	rec, err := single(ctx, tx, `MATCH (u:User {id: $uid}) RETURN u.id AS id`, map[string]any{"uid": userID})
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: user %s", errs.ErrNotFound, userID)
	}
	return nil
}

// requireRecipe checks the recipe exists and, with an ownerID, that the owner created it.
func requireRecipe(ctx context.Context, tx neo4j.ManagedTransaction, ownerID, recipeID string) error {
	cypher := `MATCH (r:Recipe {id: $rid}) RETURN r.id AS id`
	if ownerID != "" {
		cypher = `MATCH (:User {id: $uid})-[:CREATED]->(r:Recipe {id: $rid}) RETURN r.id AS id`
	}
	rec, err := single(ctx, tx, cypher, map[string]any{"uid": ownerID, "rid": recipeID})
	if err != nil {
		return err
	}
	if rec == nil {
		if ownerID != "" {
			return fmt.Errorf("%w: recipe %s for user %s", errs.ErrNotFound, recipeID, ownerID)
		}
		return fmt.Errorf("%w: recipe %s", errs.ErrNotFound, recipeID)
	}
	return nil
}

func requireCategory(ctx context.Context, tx neo4j.ManagedTransaction, name string) error {
	rec, err := single(ctx, tx, `MATCH (c:Category {name: $name}) RETURN c.name AS name`, map[string]any{"name": name})
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("%w: unknown category %q", errs.ErrInvalidArgument, name)
	}
	return nil
}

func setCategory(ctx context.Context, tx neo4j.ManagedTransaction, recipeID, name string) error {
	return run(ctx, tx, `
MATCH (r:Recipe {id: $rid}), (c:Category {name: $name})
OPTIONAL MATCH (r)-[old:IN_CATEGORY]->(:Category)
DELETE old
MERGE (r)-[:IN_CATEGORY]->(c)
`, map[string]any{"rid": recipeID, "name": name})
}

// replaceIngredients drops every HAS_INGREDIENT edge of the recipe and writes
// lines. Ingredient nodes left without recipes are kept.
func replaceIngredients(ctx context.Context, tx neo4j.ManagedTransaction, recipeID string, lines []types.IngredientLine) error {
	if err := run(ctx, tx, `
MATCH (r:Recipe {id: $rid})-[old:HAS_INGREDIENT]->(:Ingredient)
DELETE old
`, map[string]any{"rid": recipeID}); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	return run(ctx, tx, `
MATCH (r:Recipe {id: $rid})
UNWIND $ings AS ing
MERGE (i:Ingredient {name: ing.name})
MERGE (r)-[rel:HAS_INGREDIENT]->(i)
SET rel.amount = ing.amount, rel.unit = ing.unit
`, map[string]any{"rid": recipeID, "ings": ingredientParams(lines)})
}

func normDescription(desc *string) any {
	if desc == nil {
		return nil
	}
	return textnorm.Fold(*desc)
}
