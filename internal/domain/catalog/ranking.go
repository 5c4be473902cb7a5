package catalog

const (
	ModeContent = "content"
	ModePopular = "popular"
)

// Candidate is a recipe snapshot handed to the scorers: summary fields, every
// ingredient line and the number of distinct users that like it.
type Candidate struct {
	ID          string
	Title       string
	Description *string
	Category    *string
	Ingredients []IngredientLine
	Likes       int64
}

// CandidateQuery narrows the recipes a scorer reads.
type CandidateQuery struct {
	// Exclude drops these recipe ids.
	Exclude []string
	// AnyIngredient keeps recipes with at least one ingredient in the set.
	AnyIngredient []string
	// RequireIngredients drops recipes without any HAS_INGREDIENT edge.
	RequireIngredients bool
	// Category keeps recipes in this category only.
	Category string
}

type ScoredRecipe struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Ingredients []IngredientLine `json:"ingredients"`
	Score       int64            `json:"score"`
	Mode        string           `json:"mode"`
}

type PopularRecipe struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Ingredients []IngredientLine `json:"ingredients"`
	Likes       int64            `json:"likes"`
}

type SearchHit struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Matched     []IngredientLine `json:"matched"`
	Score       int64            `json:"score"`
}

type DescriptionHit struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Relevance   float64 `json:"relevance"`
}

type Recommendations struct {
	UserID  string         `json:"user_id"`
	Skip    int            `json:"skip"`
	Limit   int            `json:"limit"`
	Results []ScoredRecipe `json:"results"`
}
