package recommend

import (
	"context"
	"sort"
	"strings"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

type fakeRecipe struct {
	id          string
	title       string
	category    string
	ingredients []string
}

// fakeGraph is an in-memory graph that implements Store and Reader.
type fakeGraph struct {
	users   map[string]bool
	recipes []fakeRecipe
	likes   map[string][]string // user -> recipe ids
	reads   int
	readErr error
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{users: map[string]bool{}, likes: map[string][]string{}}
}

func (g *fakeGraph) addRecipe(id, title string, ingredients ...string) {
	g.recipes = append(g.recipes, fakeRecipe{id: id, title: title, ingredients: ingredients})
}

func (g *fakeGraph) like(user string, recipeIDs ...string) {
	g.users[user] = true
	g.likes[user] = append(g.likes[user], recipeIDs...)
}

func (g *fakeGraph) Read(ctx context.Context, fn func(Reader) error) error {
	g.reads++
	if g.readErr != nil {
		return g.readErr
	}
	return fn(g)
}

func (g *fakeGraph) UserExists(ctx context.Context, userID string) (bool, error) {
	return g.users[userID], nil
}

func (g *fakeGraph) LikedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	return append([]string(nil), g.likes[userID]...), nil
}

func (g *fakeGraph) IngredientNames(ctx context.Context, recipeIDs []string) ([]string, error) {
	want := map[string]bool{}
	for _, id := range recipeIDs {
		want[id] = true
	}
	seen := map[string]bool{}
	var out []string
	for _, r := range g.recipes {
		if !want[r.id] {
			continue
		}
		for _, n := range r.ingredients {
			n = strings.ToLower(n)
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (g *fakeGraph) Candidates(ctx context.Context, q types.CandidateQuery) ([]types.Candidate, error) {
	excluded := map[string]bool{}
	for _, id := range q.Exclude {
		excluded[id] = true
	}
	var out []types.Candidate
	for _, r := range g.recipes {
		if excluded[r.id] {
			continue
		}
		if q.RequireIngredients && len(r.ingredients) == 0 {
			continue
		}
		if q.Category != "" && r.category != q.Category {
			continue
		}
		lines := make([]types.IngredientLine, 0, len(r.ingredients))
		for _, n := range r.ingredients {
			lines = append(lines, types.IngredientLine{Name: n})
		}
		var cat *string
		if r.category != "" {
			c := r.category
			cat = &c
		}
		out = append(out, types.Candidate{
			ID:          r.id,
			Title:       r.title,
			Category:    cat,
			Ingredients: lines,
			Likes:       g.likeCount(r.id),
		})
	}
	return out, nil
}

func (g *fakeGraph) likeCount(recipeID string) int64 {
	var n int64
	for _, ids := range g.likes {
		for _, id := range ids {
			if id == recipeID {
				n++
				break
			}
		}
	}
	return n
}
