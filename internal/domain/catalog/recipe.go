package catalog

import "sort"

// IngredientLine is one HAS_INGREDIENT edge as seen from a recipe.
// A non-nil Unit implies a non-nil Amount.
type IngredientLine struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
}

type Recipe struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Ingredients []IngredientLine `json:"ingredients"`
}

type Category struct {
	Name string `json:"name"`
}

// RecipeDraft is the input for creating a recipe. OwnerID is empty for
// recipes created outside a user scope.
type RecipeDraft struct {
	OwnerID     string
	Title       string
	Description *string
	Category    *string
	Ingredients []IngredientLine
}

// RecipePatch carries a partial update. A nil field is left untouched; a non-nil
// Ingredients slice replaces every ingredient edge.
type RecipePatch struct {
	Title       *string
	Description *string
	Category    *string
	Ingredients []IngredientLine
}

func (p RecipePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Ingredients == nil
}

type RecipeDetail struct {
	Recipe
	Likes  int64         `json:"likes"`
	Rating RatingSummary `json:"rating"`
}

type RecipeLikes struct {
	RecipeID string `json:"recipe_id"`
	Likes    int64  `json:"likes"`
}

type UserRecipes struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Total    int64    `json:"total"`
	Recipes  []Recipe `json:"results"`
}

// DedupeLines keeps the first line per name and orders the result by name.
func DedupeLines(lines []IngredientLine) []IngredientLine {
	if len(lines) == 0 {
		return []IngredientLine{}
	}
	seen := make(map[string]struct{}, len(lines))
	out := make([]IngredientLine, 0, len(lines))
	for _, l := range lines {
		if l.Name == "" {
			continue
		}
		if _, ok := seen[l.Name]; ok {
			continue
		}
		seen[l.Name] = struct{}{}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
