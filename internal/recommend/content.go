package recommend

import (
	"context"
	"strings"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

// ContentScorer ranks recipes the user has not liked by how many distinct
// profile ingredients they contain.
type ContentScorer struct{}

func (ContentScorer) Mode() string { return types.ModeContent }

func (ContentScorer) Rank(ctx context.Context, r Reader, p Profile) ([]Ranked, error) {
	if len(p.Ingredients) == 0 {
		return nil, nil
	}
	cands, err := r.Candidates(ctx, types.CandidateQuery{
		Exclude:            p.Liked,
		AnyIngredient:      p.Names(),
		RequireIngredients: true,
	})
	if err != nil {
		return nil, err
	}
	return scoreContent(p, cands), nil
}

// scoreContent drops candidates in p.Liked or without a single profile match.
func scoreContent(p Profile, cands []types.Candidate) []Ranked {
	excluded := make(map[string]struct{}, len(p.Liked))
	for _, id := range p.Liked {
		excluded[id] = struct{}{}
	}
	out := make([]Ranked, 0, len(cands))
	for _, c := range cands {
		if _, ok := excluded[c.ID]; ok {
			continue
		}
		var matched []types.IngredientLine
		seen := map[string]struct{}{}
		for _, line := range c.Ingredients {
			name := lowerName(line.Name)
			if _, dup := seen[name]; dup || !p.Has(name) {
				continue
			}
			seen[name] = struct{}{}
			line.Name = name
			matched = append(matched, line)
		}
		if len(seen) == 0 {
			continue
		}
		out = append(out, Ranked{Candidate: c, Score: int64(len(seen)), Matched: types.DedupeLines(matched)})
	}
	rank(out)
	return out
}

func lowerName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
