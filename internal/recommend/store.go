package recommend

import (
	"context"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
)

// Reader is the read side of the graph store as the scorers see it. Every
// method runs inside the transaction opened by Store.Read.
type Reader interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	LikedRecipeIDs(ctx context.Context, userID string) ([]string, error)
	// IngredientNames returns the distinct lowercased ingredient names of the given recipes.
	IngredientNames(ctx context.Context, recipeIDs []string) ([]string, error)
	Candidates(ctx context.Context, q types.CandidateQuery) ([]types.Candidate, error)
}

// Store opens one read transaction and hands its Reader to fn.
type Store interface {
	Read(ctx context.Context, fn func(Reader) error) error
}
