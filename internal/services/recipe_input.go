package services

import (
	"fmt"
	"strings"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/textnorm"
)

// IngredientInput is an ingredient as submitted by a client.
type IngredientInput struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
	Unit   *string  `json:"unit"`
}

type RecipeInput struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// RecipePatchInput leaves nil fields untouched. An explicit empty ingredients
// list is rejected rather than clearing the recipe.
type RecipePatchInput struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	Ingredients []IngredientInput `json:"ingredients"`
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errs.ErrInvalidArgument}, args...)...)
}

// normalizeIngredients lowercases names and units and keeps the first line per
// name. A unit requires an amount.
func normalizeIngredients(in []IngredientInput) ([]types.IngredientLine, error) {
	if len(in) == 0 {
		return nil, invalid("at least one ingredient is required")
	}
	out := make([]types.IngredientLine, 0, len(in))
	for i, it := range in {
		name := textnorm.Name(it.Name)
		if name == "" {
			return nil, invalid("ingredients[%d].name is required", i)
		}
		line := types.IngredientLine{Name: name}
		if it.Amount != nil {
			if *it.Amount <= 0 {
				return nil, invalid("ingredients[%d].amount must be positive", i)
			}
			a := *it.Amount
			line.Amount = &a
		}
		if it.Unit != nil {
			unit := textnorm.Name(*it.Unit)
			if unit == "" {
				return nil, invalid("ingredients[%d].unit must not be blank", i)
			}
			if line.Amount == nil {
				return nil, invalid("ingredients[%d].unit requires an amount", i)
			}
			line.Unit = &unit
		}
		out = append(out, line)
	}
	return types.DedupeLines(out), nil
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", invalid("title is required")
	}
	return t, nil
}

func normalizeCategory(c *string) (*string, error) {
	if c == nil {
		return nil, nil
	}
	v := textnorm.Name(*c)
	if v == "" {
		return nil, invalid("category must not be blank")
	}
	return &v, nil
}

func (in RecipeInput) draft(ownerID string, requireCategory bool) (types.RecipeDraft, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return types.RecipeDraft{}, err
	}
	category, err := normalizeCategory(in.Category)
	if err != nil {
		return types.RecipeDraft{}, err
	}
	if requireCategory && category == nil {
		return types.RecipeDraft{}, invalid("category is required")
	}
	lines, err := normalizeIngredients(in.Ingredients)
	if err != nil {
		return types.RecipeDraft{}, err
	}
	return types.RecipeDraft{
		OwnerID:     ownerID,
		Title:       title,
		Description: in.Description,
		Category:    category,
		Ingredients: lines,
	}, nil
}

func (in RecipePatchInput) patch() (types.RecipePatch, error) {
	var p types.RecipePatch
	if in.Title != nil {
		t, err := normalizeTitle(*in.Title)
		if err != nil {
			return p, err
		}
		p.Title = &t
	}
	p.Description = in.Description
	category, err := normalizeCategory(in.Category)
	if err != nil {
		return p, err
	}
	p.Category = category
	if in.Ingredients != nil {
		lines, err := normalizeIngredients(in.Ingredients)
		if err != nil {
			return p, err
		}
		p.Ingredients = lines
	}
	if p.Empty() {
		return p, invalid("nothing to update")
	}
	return p, nil
}

func requireID(name, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", invalid("%s is required", name)
	}
	return v, nil
}
