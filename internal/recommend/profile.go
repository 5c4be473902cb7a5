package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Profile is the ingredient preference set derived from a user's likes.
type Profile struct {
	Liked       []string
	Ingredients map[string]struct{}
}

func (p Profile) Has(name string) bool {
	_, ok := p.Ingredients[strings.ToLower(name)]
	return ok
}

// Names returns the profile ingredients sorted, for query parameters.
func (p Profile) Names() []string {
	out := make([]string, 0, len(p.Ingredients))
	for n := range p.Ingredients {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func NewProfile(names []string) Profile {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return Profile{Ingredients: set}
}

// BuildProfile returns ok=false when the user has liked nothing. A user whose
// liked recipes carry no ingredients gets an empty profile with ok=true.
func BuildProfile(ctx context.Context, r Reader, userID string) (Profile, bool, error) {
	liked, err := r.LikedRecipeIDs(ctx, userID)
	if err != nil {
		return Profile{}, false, fmt.Errorf("liked recipes: %w", err)
	}
	if len(liked) == 0 {
		return Profile{}, false, nil
	}
	names, err := r.IngredientNames(ctx, liked)
	if err != nil {
		return Profile{}, false, fmt.Errorf("profile ingredients: %w", err)
	}
	p := NewProfile(names)
	p.Liked = liked
	return p, true, nil
}
