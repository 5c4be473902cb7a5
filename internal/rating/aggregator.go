package rating

import (
	"context"
	"fmt"
	"strings"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/observability"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/ctxutil"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

// Accumulators are the denormalized totals stored on the Recipe node.
type Accumulators struct {
	Sum   int64
	Count int64
}

// Ledger stores RATED edges and their accumulators.
//
// Mutate must run in one write transaction: lock the recipe, read the caller's
// previous state, call decide, then persist decide's Next state together with
// the accumulators moved by its deltas. It returns ErrNotFound when the user or
// the recipe does not exist; decide is not called in that case.
type Ledger interface {
	Mutate(ctx context.Context, recipeID, userID string, decide func(prev State) Transition) (Accumulators, State, error)
	// Lookup returns ErrNotFound only for an unknown recipe. An empty userID
	// or an unknown user yields Unrated.
	Lookup(ctx context.Context, recipeID, userID string) (Accumulators, State, error)
}

type Aggregator struct {
	log     *logger.Logger
	ledger  Ledger
	metrics *observability.Metrics
}

func NewAggregator(log *logger.Logger, ledger Ledger, metrics *observability.Metrics) *Aggregator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Aggregator{log: log.With("component", "RatingAggregator"), ledger: ledger, metrics: metrics}
}

func (a *Aggregator) Upsert(ctx context.Context, recipeID, userID string, value int64) (types.RatingSummary, error) {
	rid, uid, err := requireIDs(recipeID, userID)
	if err != nil {
		return types.RatingSummary{}, err
	}
	if value < MinValue || value > MaxValue {
		return types.RatingSummary{}, fmt.Errorf("%w: rating value must be between %d and %d", errs.ErrInvalidArgument, MinValue, MaxValue)
	}
	return a.mutate(ctx, "upsert", rid, uid, func(prev State) Transition { return Set(prev, value) })
}

// Delete removes the caller's rating. Deleting a missing rating changes nothing
// and is not an error.
func (a *Aggregator) Delete(ctx context.Context, recipeID, userID string) (types.RatingSummary, error) {
	rid, uid, err := requireIDs(recipeID, userID)
	if err != nil {
		return types.RatingSummary{}, err
	}
	return a.mutate(ctx, "delete", rid, uid, Remove)
}

func (a *Aggregator) Get(ctx context.Context, recipeID, userID string) (types.RatingSummary, error) {
	rid := strings.TrimSpace(recipeID)
	if rid == "" {
		return types.RatingSummary{}, fmt.Errorf("%w: recipe_id is required", errs.ErrInvalidArgument)
	}
	acc, mine, err := a.ledger.Lookup(ctx, rid, strings.TrimSpace(userID))
	if err != nil {
		return types.RatingSummary{}, err
	}
	return summarize(acc, mine), nil
}

func (a *Aggregator) mutate(ctx context.Context, op, recipeID, userID string, decide func(State) Transition) (types.RatingSummary, error) {
	var applied string
	acc, mine, err := a.ledger.Mutate(ctx, recipeID, userID, func(prev State) Transition {
		tr := decide(prev)
		applied = tr.Kind
		return tr
	})
	if err != nil {
		return types.RatingSummary{}, err
	}
	a.metrics.IncRatingMutation(op, applied)
	a.log.Debug("rating mutated", append(ctxutil.LogFields(ctx), "op", op, "transition", applied, "recipe_id", recipeID, "user_id", userID)...)
	return summarize(acc, mine), nil
}

func summarize(acc Accumulators, mine State) types.RatingSummary {
	return types.RatingSummary{
		RatingSum:   acc.Sum,
		RatingCount: acc.Count,
		RatingAvg:   types.Average(acc.Sum, acc.Count),
		MyRating:    mine.Ptr(),
	}
}

func requireIDs(recipeID, userID string) (string, string, error) {
	rid := strings.TrimSpace(recipeID)
	uid := strings.TrimSpace(userID)
	if rid == "" || uid == "" {
		return "", "", fmt.Errorf("%w: recipe_id and user_id are required", errs.ErrInvalidArgument)
	}
	return rid, uid, nil
}
