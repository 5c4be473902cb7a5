package graph

import (
	"context"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

var tracer = otel.Tracer("github.com/yungbote/recipegraph-backend/internal/data/graph")

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "graph."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "neo4j"), attribute.String("db.operation", op)),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// recipeProjection expects r bound to a Recipe and returns the columns decodeRecipe reads.
const recipeProjection = `
OPTIONAL MATCH (r)-[:IN_CATEGORY]->(c:Category)
OPTIONAL MATCH (r)-[rel:HAS_INGREDIENT]->(i:Ingredient)
WITH r, c, collect({name: i.name, amount: rel.amount, unit: rel.unit}) AS ingredients
RETURN r.id AS id, r.title AS title, r.description AS description, c.name AS category, ingredients`

func run(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) error {
	res, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}

func collect(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	res, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return res.Collect(ctx)
}

// single returns the first record, or nil when the query matched nothing.
func single(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) (*neo4j.Record, error) {
	recs, err := collect(ctx, tx, cypher, params)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return recs[0], nil
}

func recValue(rec *neo4j.Record, key string) any {
	if rec == nil {
		return nil
	}
	v, _ := rec.Get(key)
	return v
}

func recString(rec *neo4j.Record, key string) string {
	s, _ := recValue(rec, key).(string)
	return s
}

func recStringPtr(rec *neo4j.Record, key string) *string {
	return stringPtr(recValue(rec, key))
}

func recInt64(rec *neo4j.Record, key string) int64 {
	return toInt64(recValue(rec, key))
}

func recBool(rec *neo4j.Record, key string) bool {
	b, _ := recValue(rec, key).(bool)
	return b
}

func recFloat64(rec *neo4j.Record, key string) float64 {
	f, _ := toFloat64(recValue(rec, key))
	return f
}

func recStrings(rec *neo4j.Record, key string) []string {
	raw, _ := recValue(rec, key).([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringPtr(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func toInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}

func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}

// decodeLines reads a collected list of {name, amount, unit} maps. Entries
// without a name come from OPTIONAL MATCH misses and are dropped.
func decodeLines(v any) []types.IngredientLine {
	raw, _ := v.([]any)
	out := make([]types.IngredientLine, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if strings.TrimSpace(name) == "" {
			continue
		}
		line := types.IngredientLine{Name: name, Unit: stringPtr(m["unit"])}
		if f, ok := toFloat64(m["amount"]); ok {
			line.Amount = &f
		}
		out = append(out, line)
	}
	return types.DedupeLines(out)
}

func decodeRecipe(rec *neo4j.Record) types.Recipe {
	return types.Recipe{
		ID:          recString(rec, "id"),
		Title:       recString(rec, "title"),
		Description: recStringPtr(rec, "description"),
		Category:    recStringPtr(rec, "category"),
		Ingredients: decodeLines(recValue(rec, "ingredients")),
	}
}

func ingredientParams(lines []types.IngredientLine) []map[string]any {
	out := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		row := map[string]any{"name": l.Name, "amount": nil, "unit": nil}
		if l.Amount != nil {
			row["amount"] = *l.Amount
		}
		if l.Unit != nil {
			row["unit"] = *l.Unit
		}
		out = append(out, row)
	}
	return out
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func pageParams(p types.Page, params map[string]any) map[string]any {
	if params == nil {
		params = map[string]any{}
	}
	params["skip"] = int64(p.Skip)
	params["limit"] = int64(p.Limit)
	return params
}
