package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
	"github.com/yungbote/recipegraph-backend/internal/recommend"
)

// RecommendStore runs a whole recommendation or search query in one read
// transaction so every read sees the same committed state.
type RecommendStore struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

var _ recommend.Store = (*RecommendStore)(nil)

func NewRecommendStore(client *neo4jdb.Client, baseLog *logger.Logger) *RecommendStore {
	return &RecommendStore{client: client, log: baseLog.With("repo", "RecommendStore")}
}

func (s *RecommendStore) Read(ctx context.Context, fn func(recommend.Reader) error) (err error) {
	ctx, span := startSpan(ctx, "recommend_read")
	defer func() { endSpan(span, err) }()

	_, err = s.client.ExecuteRead(ctx, "recommend_read", func(tx neo4j.ManagedTransaction) (any, error) {
		return nil, fn(&txReader{tx: tx})
	})
	return err
}

type txReader struct {
	tx neo4j.ManagedTransaction
}

func (r *txReader) UserExists(ctx context.Context, userID string) (bool, error) {
	rec, err := single(ctx, r.tx, `
MATCH (u:User {id: $uid})
RETURN count(u) > 0 AS user_exists
`, map[string]any{"uid": userID})
	if err != nil {
		return false, err
	}
	return recBool(rec, "user_exists"), nil
}

func (r *txReader) LikedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	recs, err := collect(ctx, r.tx, `
MATCH (:User {id: $uid})-[:LIKES]->(r:Recipe)
RETURN DISTINCT r.id AS id
ORDER BY id
`, map[string]any{"uid": userID})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recString(rec, "id"))
	}
	return out, nil
}

func (r *txReader) IngredientNames(ctx context.Context, recipeIDs []string) ([]string, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	recs, err := collect(ctx, r.tx, `
MATCH (r:Recipe)-[:HAS_INGREDIENT]->(i:Ingredient)
WHERE r.id IN $ids
RETURN DISTINCT toLower(i.name) AS name
ORDER BY name
`, map[string]any{"ids": recipeIDs})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recString(rec, "name"))
	}
	return out, nil
}

func (r *txReader) Candidates(ctx context.Context, q types.CandidateQuery) ([]types.Candidate, error) {
	exclude := q.Exclude
	if exclude == nil {
		exclude = []string{}
	}
	wanted := q.AnyIngredient
	if wanted == nil {
		wanted = []string{}
	}
	recs, err := collect(ctx, r.tx, `
MATCH (r:Recipe)
WHERE NOT r.id IN $exclude
  AND ($category = '' OR EXISTS { (r)-[:IN_CATEGORY]->(:Category {name: $category}) })
  AND (NOT $require OR EXISTS { (r)-[:HAS_INGREDIENT]->(:Ingredient) })
  AND (size($wanted) = 0 OR EXISTS {
    MATCH (r)-[:HAS_INGREDIENT]->(x:Ingredient)
    WHERE toLower(x.name) IN $wanted
  })
OPTIONAL MATCH (r)-[:IN_CATEGORY]->(c:Category)
WITH r, c, COUNT { (:User)-[:LIKES]->(r) } AS likes
OPTIONAL MATCH (r)-[rel:HAS_INGREDIENT]->(i:Ingredient)
WITH r, c, likes, collect({name: i.name, amount: rel.amount, unit: rel.unit}) AS ingredients
RETURN r.id AS id, r.title AS title, r.description AS description, c.name AS category, likes, ingredients
`, map[string]any{
		"exclude":  exclude,
		"category": q.Category,
		"require":  q.RequireIngredients,
		"wanted":   wanted,
	})
	if err != nil {
		return nil, err
	}
	out := make([]types.Candidate, 0, len(recs))
	for _, rec := range recs {
		out = append(out, types.Candidate{
			ID:          recString(rec, "id"),
			Title:       recString(rec, "title"),
			Description: recStringPtr(rec, "description"),
			Category:    recStringPtr(rec, "category"),
			Ingredients: decodeLines(recValue(rec, "ingredients")),
			Likes:       recInt64(rec, "likes"),
		})
	}
	return out, nil
}
