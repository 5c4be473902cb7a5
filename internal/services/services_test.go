package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	types "github.com/yungbote/recipegraph-backend/internal/domain"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

func ptr[T any](v T) *T { return &v }

type stubRecipeRepo struct {
	graph.RecipeRepo
	created types.RecipeDraft
	patched types.RecipePatch
	owner   string
	search  string
	getErr  error
}

func (r *stubRecipeRepo) Create(ctx context.Context, d types.RecipeDraft) (types.Recipe, error) {
	r.created = d
	return types.Recipe{ID: "r1", Title: d.Title, Ingredients: d.Ingredients}, nil
}

func (r *stubRecipeRepo) Get(ctx context.Context, id string) (types.Recipe, error) {
	if r.getErr != nil {
		return types.Recipe{}, r.getErr
	}
	return types.Recipe{ID: id, Title: "Soup"}, nil
}

func (r *stubRecipeRepo) Update(ctx context.Context, owner, id string, p types.RecipePatch) (types.Recipe, error) {
	r.owner = owner
	r.patched = p
	return types.Recipe{ID: id}, nil
}

func (r *stubRecipeRepo) SearchDescription(ctx context.Context, q string, p types.Page) ([]types.DescriptionHit, error) {
	r.search = q
	return nil, nil
}

type stubLikeRepo struct {
	graph.LikeRepo
	mu    sync.Mutex
	calls int
}

func (r *stubLikeRepo) CountByRecipe(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	return 3, nil
}

type stubRatings struct{}

func (stubRatings) Upsert(ctx context.Context, rid, uid string, v int64) (types.RatingSummary, error) {
	return types.RatingSummary{}, nil
}
func (stubRatings) Delete(ctx context.Context, rid, uid string) (types.RatingSummary, error) {
	return types.RatingSummary{}, nil
}
func (stubRatings) Get(ctx context.Context, rid, uid string) (types.RatingSummary, error) {
	return types.RatingSummary{RatingSum: 9, RatingCount: 2, RatingAvg: 4.5}, nil
}

func TestCreateRecipeNormalizesIngredients(t *testing.T) {
	repo := &stubRecipeRepo{}
	svc := NewRecipeService(logger.NewNop(), repo, &stubLikeRepo{}, stubRatings{})
	_, err := svc.Create(context.Background(), "", RecipeInput{
		Title: "  Omelette ",
		Ingredients: []IngredientInput{
			{Name: " Eggs ", Amount: ptr(3.0), Unit: ptr(" KOM ")},
			{Name: "eggs"},
			{Name: "Salt"},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	d := repo.created
	if d.Title != "Omelette" || len(d.Ingredients) != 2 {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if d.Ingredients[0].Name != "eggs" || *d.Ingredients[0].Unit != "kom" || d.Ingredients[1].Name != "salt" {
		t.Fatalf("ingredients not normalized: %+v", d.Ingredients)
	}
}

func TestCreateRecipeRejectsBadInput(t *testing.T) {
	svc := NewRecipeService(logger.NewNop(), &stubRecipeRepo{}, &stubLikeRepo{}, stubRatings{})
	cases := map[string]RecipeInput{
		"no title":         {Title: " ", Ingredients: []IngredientInput{{Name: "a"}}},
		"no ingredients":   {Title: "T"},
		"unit w/o amount":  {Title: "T", Ingredients: []IngredientInput{{Name: "a", Unit: ptr("g")}}},
		"negative amount":  {Title: "T", Ingredients: []IngredientInput{{Name: "a", Amount: ptr(-1.0)}}},
		"blank ingredient": {Title: "T", Ingredients: []IngredientInput{{Name: "  "}}},
	}
	for name, in := range cases {
		if _, err := svc.Create(context.Background(), "", in); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
	in := RecipeInput{Title: "T", Ingredients: []IngredientInput{{Name: "a"}}}
	if _, err := svc.Create(context.Background(), "u1", in); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("owned recipe without category: expected ErrInvalidArgument, got %v", err)
	}
}

func TestUpdateRecipePatchRules(t *testing.T) {
	repo := &stubRecipeRepo{}
	svc := NewRecipeService(logger.NewNop(), repo, &stubLikeRepo{}, stubRatings{})
	ctx := context.Background()
	if _, err := svc.Update(ctx, "", "r1", RecipePatchInput{}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("empty patch: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.Update(ctx, "", "r1", RecipePatchInput{Ingredients: []IngredientInput{}}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("empty ingredients: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.Update(ctx, " u1 ", "r1", RecipePatchInput{Category: ptr(" Dessert ")}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.owner != "u1" || repo.patched.Category == nil || *repo.patched.Category != "dessert" {
		t.Fatalf("unexpected patch: owner=%q %+v", repo.owner, repo.patched)
	}
}

func TestDetailCombinesConcurrentReads(t *testing.T) {
	likes := &stubLikeRepo{}
	svc := NewRecipeService(logger.NewNop(), &stubRecipeRepo{}, likes, stubRatings{})
	d, err := svc.Detail(context.Background(), "r9")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d.ID != "r9" || d.Likes != 3 || d.Rating.RatingAvg != 4.5 {
		t.Fatalf("unexpected detail: %+v", d)
	}

	failing := NewRecipeService(logger.NewNop(), &stubRecipeRepo{getErr: errs.ErrNotFound}, likes, stubRatings{})
	if _, err := failing.Detail(context.Background(), "r9"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type stubEngine struct {
	Recommender
	wanted []string
}

func (e *stubEngine) SearchIngredients(ctx context.Context, wanted []string, p types.Page) ([]types.SearchHit, error) {
	e.wanted = wanted
	return []types.SearchHit{}, nil
}

func TestSearchNormalizesInput(t *testing.T) {
	engine := &stubEngine{}
	repo := &stubRecipeRepo{}
	svc := NewSearchService(logger.NewNop(), engine, repo)
	ctx := context.Background()

	out, err := svc.ByIngredients(ctx, []string{" Jaja", "sir", "", "JAJA "}, types.Page{Limit: 10})
	if err != nil {
		t.Fatalf("ByIngredients: %v", err)
	}
	if len(out.Wanted) != 2 || out.Wanted[0] != "jaja" || out.Wanted[1] != "sir" || len(engine.wanted) != 2 {
		t.Fatalf("unexpected wanted: %v", out.Wanted)
	}
	if _, err := svc.ByIngredients(ctx, []string{" ", ""}, types.Page{Limit: 10}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	if _, err := svc.ByDescription(ctx, "Pečena PILETINA!", types.Page{Limit: 10}); err != nil {
		t.Fatalf("ByDescription: %v", err)
	}
	if repo.search != "pecena piletina" {
		t.Fatalf("query not folded: %q", repo.search)
	}
	if _, err := svc.ByDescription(ctx, "?!", types.Page{Limit: 10}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

type stubUserRepo struct {
	graph.UserRepo
	got string
}

func (r *stubUserRepo) Signup(ctx context.Context, username string) (types.Signup, error) {
	r.got = username
	return types.Signup{User: types.User{ID: "u1", Username: username}, Created: true}, nil
}

func TestSignupValidatesUsername(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(logger.NewNop(), repo)
	if _, err := svc.Signup(context.Background(), "  AliCe "); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if repo.got != "alice" {
		t.Fatalf("username not normalized: %q", repo.got)
	}
	for _, bad := range []string{"ab", "  a  ", "abcdefghijklmnopqrstuvwxyz0123456"} {
		if _, err := svc.Signup(context.Background(), bad); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Fatalf("%q: expected ErrInvalidArgument, got %v", bad, err)
		}
	}
}
