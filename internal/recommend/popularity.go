package recommend

import (
	"context"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

// PopularityScorer ranks every recipe by its number of likes. Recipes with no
// likes stay in with score 0.
type PopularityScorer struct {
	Category string
}

func (PopularityScorer) Mode() string { return types.ModePopular }

func (s PopularityScorer) Rank(ctx context.Context, r Reader, _ Profile) ([]Ranked, error) {
	cands, err := r.Candidates(ctx, types.CandidateQuery{Category: s.Category})
	if err != nil {
		return nil, err
	}
	return scorePopularity(cands), nil
}

func scorePopularity(cands []types.Candidate) []Ranked {
	out := make([]Ranked, 0, len(cands))
	for _, c := range cands {
		out = append(out, Ranked{Candidate: c, Score: c.Likes})
	}
	rank(out)
	return out
}

func toPopular(rows []Ranked) []types.PopularRecipe {
	out := make([]types.PopularRecipe, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.PopularRecipe{
			ID:          r.Candidate.ID,
			Title:       r.Candidate.Title,
			Description: r.Candidate.Description,
			Category:    r.Candidate.Category,
			Ingredients: types.DedupeLines(r.Candidate.Ingredients),
			Likes:       r.Score,
		})
	}
	return out
}
