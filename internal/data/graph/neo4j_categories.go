package graph

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"gopkg.in/yaml.v3"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
)

//go:embed categories.yaml
var categoriesYAML []byte

type categorySeed struct {
	Categories []string `yaml:"categories"`
}

// SeedCategories returns the fixed category enumeration shipped with the binary.
func SeedCategories() ([]string, error) {
	var seed categorySeed
	if err := yaml.Unmarshal(categoriesYAML, &seed); err != nil {
		return nil, fmt.Errorf("parse categories.yaml: %w", err)
	}
	out := make([]string, 0, len(seed.Categories))
	seen := map[string]struct{}{}
	for _, c := range seed.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

type CategoryRepo interface {
	List(ctx context.Context) ([]types.Category, error)
	// Seed merges names as Category nodes. Existing categories are left alone.
	Seed(ctx context.Context, names []string) error
}

type categoryRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewCategoryRepo(client *neo4jdb.Client, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{client: client, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) List(ctx context.Context) ([]types.Category, error) {
	out, err := r.client.ExecuteRead(ctx, "category_list", func(tx neo4j.ManagedTransaction) (any, error) {
		recs, err := collect(ctx, tx, `
MATCH (c:Category)
RETURN c.name AS name
ORDER BY name ASC
`, nil)
		if err != nil {
			return nil, err
		}
		cats := make([]types.Category, 0, len(recs))
		for _, rec := range recs {
			cats = append(cats, types.Category{Name: recString(rec, "name")})
		}
		return cats, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]types.Category), nil
}

func (r *categoryRepo) Seed(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	_, err := r.client.ExecuteWrite(ctx, "category_seed", func(tx neo4j.ManagedTransaction) (any, error) {
		return nil, run(ctx, tx, `
UNWIND $names AS name
MERGE (:Category {name: name})
`, map[string]any{"names": names})
	})
	if err != nil {
		return err
	}
	r.log.Info("categories seeded", "count", len(names))
	return nil
}
