package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
	"github.com/yungbote/recipegraph-backend/internal/rating"
)

// RatingLedger keeps RATED edges and the rating_sum/rating_count accumulators
// on Recipe in one write transaction per mutation.
type RatingLedger struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

var _ rating.Ledger = (*RatingLedger)(nil)

func NewRatingLedger(client *neo4jdb.Client, baseLog *logger.Logger) *RatingLedger {
	return &RatingLedger{client: client, log: baseLog.With("repo", "RatingLedger")}
}

type ledgerResult struct {
	acc  rating.Accumulators
	mine rating.State
}

func (l *RatingLedger) Mutate(ctx context.Context, recipeID, userID string, decide func(prev rating.State) rating.Transition) (_ rating.Accumulators, _ rating.State, err error) {
	ctx, span := startSpan(ctx, "rating_mutate")
	defer func() { endSpan(span, err) }()

	out, err := l.client.ExecuteWrite(ctx, "rating_mutate", func(tx neo4j.ManagedTransaction) (any, error) {
		// The SET takes the Recipe write lock before the previous value is read,
		// so concurrent mutations of one recipe run one after another.
		rec, err := single(ctx, tx, `
MATCH (r:Recipe {id: $rid})
SET r.rating_sum = coalesce(r.rating_sum, 0),
    r.rating_count = coalesce(r.rating_count, 0)
WITH r
OPTIONAL MATCH (u:User {id: $uid})
OPTIONAL MATCH (u)-[rt:RATED]->(r)
RETURN u IS NOT NULL AS user_exists,
       rt.value AS prev,
       r.rating_sum AS rating_sum,
       r.rating_count AS rating_count
`, map[string]any{"rid": recipeID, "uid": userID})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: recipe %s", errs.ErrNotFound, recipeID)
		}
		if !recBool(rec, "user_exists") {
			return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, userID)
		}

		prev := rating.Unrated()
		if v, ok := recValue(rec, "prev").(int64); ok {
			prev = rating.RatedWith(v)
		}
		tr := decide(prev)
		acc := rating.Accumulators{
			Sum:   recInt64(rec, "rating_sum") + tr.SumDelta,
			Count: recInt64(rec, "rating_count") + tr.CountDelta,
		}
		params := map[string]any{
			"rid":   recipeID,
			"uid":   userID,
			"sum":   acc.Sum,
			"count": acc.Count,
		}

		switch tr.Kind {
		case rating.KindCreate, rating.KindUpdate:
			params["value"] = tr.Next.Value
			err = run(ctx, tx, `
MATCH (u:User {id: $uid}), (r:Recipe {id: $rid})
MERGE (u)-[rt:RATED]->(r)
ON CREATE SET rt.created_at = datetime()
SET rt.value = $value,
    rt.updated_at = datetime(),
    r.rating_sum = $sum,
    r.rating_count = $count
`, params)
		case rating.KindDelete:
			err = run(ctx, tx, `
MATCH (:User {id: $uid})-[rt:RATED]->(r:Recipe {id: $rid})
DELETE rt
SET r.rating_sum = $sum,
    r.rating_count = $count
`, params)
		}
		if err != nil {
			return nil, err
		}
		return ledgerResult{acc: acc, mine: tr.Next}, nil
	})
	if err != nil {
		return rating.Accumulators{}, rating.State{}, err
	}
	res := out.(ledgerResult)
	return res.acc, res.mine, nil
}

func (l *RatingLedger) Lookup(ctx context.Context, recipeID, userID string) (rating.Accumulators, rating.State, error) {
	out, err := l.client.ExecuteRead(ctx, "rating_lookup", func(tx neo4j.ManagedTransaction) (any, error) {
		rec, err := single(ctx, tx, `
MATCH (r:Recipe {id: $rid})
OPTIONAL MATCH (:User {id: $uid})-[mine:RATED]->(r)
RETURN coalesce(r.rating_sum, 0) AS rating_sum,
       coalesce(r.rating_count, 0) AS rating_count,
       mine.value AS my_rating
`, map[string]any{"rid": recipeID, "uid": userID})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: recipe %s", errs.ErrNotFound, recipeID)
		}
		res := ledgerResult{acc: rating.Accumulators{
			Sum:   recInt64(rec, "rating_sum"),
			Count: recInt64(rec, "rating_count"),
		}}
		if v, ok := recValue(rec, "my_rating").(int64); ok {
			res.mine = rating.RatedWith(v)
		}
		return res, nil
	})
	if err != nil {
		return rating.Accumulators{}, rating.State{}, err
	}
	res := out.(ledgerResult)
	return res.acc, res.mine, nil
}
