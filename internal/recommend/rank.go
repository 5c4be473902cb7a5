package recommend

import (
	"sort"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

// Ranked is a candidate with its score. Matched holds the ingredient lines that
// contributed to a content score.
type Ranked struct {
	Candidate types.Candidate
	Score     int64
	Matched   []types.IngredientLine
}

// rank orders by score desc, then title asc in byte order, then id so equal
// titles still come out in the same order on every call.
func rank(rows []Ranked) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Candidate.Title != b.Candidate.Title {
			return a.Candidate.Title < b.Candidate.Title
		}
		return a.Candidate.ID < b.Candidate.ID
	})
}

func page(rows []Ranked, p types.Page) []Ranked {
	start, end := p.Window(len(rows))
	return rows[start:end]
}

func lowerLines(lines []types.IngredientLine) []types.IngredientLine {
	out := make([]types.IngredientLine, 0, len(lines))
	for _, l := range lines {
		l.Name = lowerName(l.Name)
		out = append(out, l)
	}
	return types.DedupeLines(out)
}

func toScored(rows []Ranked, mode string) []types.ScoredRecipe {
	out := make([]types.ScoredRecipe, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.ScoredRecipe{
			ID:          r.Candidate.ID,
			Title:       r.Candidate.Title,
			Description: r.Candidate.Description,
			Category:    r.Candidate.Category,
			Ingredients: lowerLines(r.Candidate.Ingredients),
			Score:       r.Score,
			Mode:        mode,
		})
	}
	return out
}
