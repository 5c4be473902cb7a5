package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
	"github.com/yungbote/recipegraph-backend/internal/platform/textnorm"
)

const DescriptionIndex = "recipe_description_norm"

var schemaStatements = []struct {
	name   string
	cypher string
}{
	{"user_id_unique", `CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`},
	{"user_username_unique", `CREATE CONSTRAINT user_username_unique IF NOT EXISTS FOR (u:User) REQUIRE u.username IS UNIQUE`},
	{"recipe_id_unique", `CREATE CONSTRAINT recipe_id_unique IF NOT EXISTS FOR (r:Recipe) REQUIRE r.id IS UNIQUE`},
	{"ingredient_name_unique", `CREATE CONSTRAINT ingredient_name_unique IF NOT EXISTS FOR (i:Ingredient) REQUIRE i.name IS UNIQUE`},
	{"category_name_unique", `CREATE CONSTRAINT category_name_unique IF NOT EXISTS FOR (c:Category) REQUIRE c.name IS UNIQUE`},
	{DescriptionIndex, `CREATE FULLTEXT INDEX ` + DescriptionIndex + ` IF NOT EXISTS FOR (r:Recipe) ON EACH [r.description_norm]`},
}

// ApplySchema creates constraints and the description full-text index, then
// backfills description_norm on recipes written without it.
func ApplySchema(ctx context.Context, client *neo4jdb.Client, log *logger.Logger) error {
	for _, stmt := range schemaStatements {
		if err := client.Run(ctx, "schema_"+stmt.name, stmt.cypher, nil); err != nil {
			return fmt.Errorf("schema %s: %w", stmt.name, err)
		}
	}
	n, err := backfillDescriptionNorm(ctx, client)
	if err != nil {
		return fmt.Errorf("backfill description_norm: %w", err)
	}
	log.Info("graph schema applied", "statements", len(schemaStatements), "backfilled", n)
	return nil
}

func backfillDescriptionNorm(ctx context.Context, client *neo4jdb.Client) (int, error) {
	out, err := client.ExecuteWrite(ctx, "schema_backfill", func(tx neo4j.ManagedTransaction) (any, error) {
		recs, err := collect(ctx, tx, `
MATCH (r:Recipe)
WHERE r.description IS NOT NULL AND r.description_norm IS NULL
RETURN r.id AS id, r.description AS description
`, nil)
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(recs))
		for _, rec := range recs {
			rows = append(rows, map[string]any{
				"id":   recString(rec, "id"),
				"norm": textnorm.Fold(recString(rec, "description")),
			})
		}
		if len(rows) == 0 {
			return 0, nil
		}
		if err := run(ctx, tx, `
UNWIND $rows AS row
MATCH (r:Recipe {id: row.id})
SET r.description_norm = row.norm
`, map[string]any{"rows": rows}); err != nil {
			return nil, err
		}
		return len(rows), nil
	})
	if err != nil {
		return 0, err
	}
	return out.(int), nil
}
