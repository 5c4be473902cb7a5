package recommend

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

// Engine answers recommendation, popularity and ingredient search queries.
// Every call reads through exactly one Store.Read and has no side effects on
// the graph.
type Engine struct {
	log     *logger.Logger
	store   Store
	metrics *observability.Metrics
	content ScoringStrategy
	popular ScoringStrategy
}

func NewEngine(log *logger.Logger, store Store, metrics *observability.Metrics) *Engine {
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{
		log:     log.With("component", "RecommendEngine"),
		store:   store,
		metrics: metrics,
		content: ContentScorer{},
		popular: PopularityScorer{},
	}
}

// Recommend picks the popularity branch when the user has liked nothing and the
// content branch otherwise. The two never mix in one response.
func (e *Engine) Recommend(ctx context.Context, userID string, p types.Page) (*types.Recommendations, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, fmt.Errorf("%w: user_id is required", errs.ErrInvalidArgument)
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: invalid page skip=%d limit=%d", errs.ErrInvalidArgument, p.Skip, p.Limit)
	}

	var (
		rows []Ranked
		mode string
	)
	err := e.store.Read(ctx, func(r Reader) error {
		exists, err := r.UserExists(ctx, uid)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: user %s", errs.ErrNotFound, uid)
		}
		profile, ok, err := BuildProfile(ctx, r, uid)
		if err != nil {
			return err
		}
		strategy := e.popular
		if ok {
			strategy = e.content
		}
		mode = strategy.Mode()
		rows, err = strategy.Rank(ctx, r, profile)
		return err
	})
	if err != nil {
		return nil, err
	}

	e.metrics.IncRecommendation(mode)
	e.log.Debug("recommendations ranked", append(ctxutil.LogFields(ctx), "user_id", uid, "mode", mode, "candidates", len(rows))...)

	return &types.Recommendations{
		UserID:  uid,
		Skip:    p.Skip,
		Limit:   p.Limit,
		Results: toScored(page(rows, p), mode),
	}, nil
}

// Popular ranks every recipe by likes.
func (e *Engine) Popular(ctx context.Context, p types.Page) ([]types.PopularRecipe, error) {
	return e.popularIn(ctx, "", p)
}

// PopularInCategory ranks the recipes of one category by likes.
func (e *Engine) PopularInCategory(ctx context.Context, category string, p types.Page) ([]types.PopularRecipe, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", errs.ErrInvalidArgument)
	}
	return e.popularIn(ctx, category, p)
}

func (e *Engine) popularIn(ctx context.Context, category string, p types.Page) ([]types.PopularRecipe, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: invalid page skip=%d limit=%d", errs.ErrInvalidArgument, p.Skip, p.Limit)
	}
	var rows []Ranked
	err := e.store.Read(ctx, func(r Reader) error {
		var err error
		rows, err = PopularityScorer{Category: category}.Rank(ctx, r, Profile{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toPopular(page(rows, p)), nil
}

// SearchIngredients ranks recipes by overlap with wanted. No recipe is excluded.
// wanted must already be normalized and non-empty.
func (e *Engine) SearchIngredients(ctx context.Context, wanted []string, p types.Page) ([]types.SearchHit, error) {
	if len(wanted) == 0 {
		return nil, fmt.Errorf("%w: ingredients must not be empty", errs.ErrInvalidArgument)
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: invalid page skip=%d limit=%d", errs.ErrInvalidArgument, p.Skip, p.Limit)
	}
	profile := NewProfile(wanted)
	var rows []Ranked
	err := e.store.Read(ctx, func(r Reader) error {
		var err error
		rows, err = ContentScorer{}.Rank(ctx, r, profile)
		return err
	})
	if err != nil {
		return nil, err
	}
	rows = page(rows, p)
	out := make([]types.SearchHit, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.SearchHit{
			ID:          row.Candidate.ID,
			Title:       row.Candidate.Title,
			Description: row.Candidate.Description,
			Category:    row.Candidate.Category,
			Matched:     row.Matched,
			Score:       row.Score,
		})
	}
	return out, nil
}
