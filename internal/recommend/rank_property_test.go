package recommend

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

var ingredientPool = []string{"a", "b", "c", "d", "e", "f"}

func drawGraph(t *rapid.T) *fakeGraph {
	g := newFakeGraph()
	n := rapid.IntRange(0, 12).Draw(t, "recipes")
	for i := 0; i < n; i++ {
		title := rapid.SampledFrom([]string{"Apple Pie", "Banana Bread", "apple pie", "Stew", "Zucchini"}).Draw(t, "title")
		ings := rapid.SliceOfDistinct(rapid.SampledFrom(ingredientPool), rapid.ID[string]).Draw(t, "ingredients")
		g.addRecipe(fmt.Sprintf("r%02d", i), title, ings...)
	}
	g.users["u"] = true
	if n > 0 {
		likes := rapid.SliceOfDistinct(rapid.IntRange(0, n-1), rapid.ID[int]).Draw(t, "likes")
		for _, i := range likes {
			g.like("u", fmt.Sprintf("r%02d", i))
		}
		others := rapid.SliceOfDistinct(rapid.IntRange(0, n-1), rapid.ID[int]).Draw(t, "other_likes")
		for _, i := range others {
			g.like("other", fmt.Sprintf("r%02d", i))
		}
	}
	return g
}

func TestRankingIsOrderedAndPagesConcatenate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGraph(t)
		e := newTestEngine(g)
		full, err := e.Recommend(context.Background(), "u", types.Page{Limit: 1000})
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		rows := full.Results
		for i := 1; i < len(rows); i++ {
			a, b := rows[i-1], rows[i]
			if a.Score < b.Score || (a.Score == b.Score && a.Title > b.Title) {
				t.Fatalf("rows %d,%d out of order: %+v %+v", i-1, i, a, b)
			}
		}

		liked := map[string]bool{}
		for _, id := range g.likes["u"] {
			liked[id] = true
		}
		for _, r := range rows {
			if len(liked) > 0 {
				if r.Mode != types.ModeContent || liked[r.ID] || r.Score <= 0 {
					t.Fatalf("content branch broke exclusivity: %+v", r)
				}
			} else if r.Mode != types.ModePopular {
				t.Fatalf("cold start must be popular: %+v", r)
			}
		}

		limit := rapid.IntRange(1, 5).Draw(t, "limit")
		var paged []types.ScoredRecipe
		for skip := 0; skip <= len(rows); skip += limit {
			p, err := e.Recommend(context.Background(), "u", types.Page{Skip: skip, Limit: limit})
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			paged = append(paged, p.Results...)
		}
		if len(paged) != len(rows) {
			t.Fatalf("pages cover %d rows, full list has %d", len(paged), len(rows))
		}
		for i := range rows {
			if paged[i].ID != rows[i].ID {
				t.Fatalf("page concatenation differs at %d: %s vs %s", i, paged[i].ID, rows[i].ID)
			}
		}
	})
}

func TestContentScoreCountsDistinctProfileIngredients(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		profile := NewProfile(rapid.SliceOfDistinct(rapid.SampledFrom(ingredientPool), rapid.ID[string]).Draw(t, "profile"))
		ings := rapid.SliceOf(rapid.SampledFrom(ingredientPool)).Draw(t, "candidate")
		lines := make([]types.IngredientLine, 0, len(ings))
		want := map[string]bool{}
		for _, n := range ings {
			lines = append(lines, types.IngredientLine{Name: n})
			if profile.Has(n) {
				want[n] = true
			}
		}
		rows := scoreContent(profile, []types.Candidate{{ID: "c", Title: "C", Ingredients: lines}})
		if len(want) == 0 {
			if len(rows) != 0 {
				t.Fatalf("zero score must be dropped: %+v", rows)
			}
			return
		}
		if len(rows) != 1 || rows[0].Score != int64(len(want)) {
			t.Fatalf("score %v, want %d", rows, len(want))
		}
	})
}
