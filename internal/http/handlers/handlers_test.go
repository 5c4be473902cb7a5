package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	errs "github.com/yungbote/recipegraph-backend/internal/pkg/errors"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type stubRecs struct {
	gotUser string
	gotPage types.Page
	err     error
}

func (s *stubRecs) ForUser(_ context.Context, userID string, p types.Page) (*types.Recommendations, error) {
	s.gotUser, s.gotPage = userID, p
	if s.err != nil {
		return nil, s.err
	}
	return &types.Recommendations{UserID: userID, Skip: p.Skip, Limit: p.Limit, Results: []types.ScoredRecipe{}}, nil
}

func (s *stubRecs) Popular(_ context.Context, p types.Page) ([]types.PopularRecipe, error) {
	s.gotPage = p
	return []types.PopularRecipe{{ID: "r1", Title: "Apple Pie", Likes: 3}}, s.err
}

type stubUsers struct {
	created bool
}

func (s *stubUsers) Signup(_ context.Context, username string) (types.Signup, error) {
	return types.Signup{User: types.User{ID: "u1", Username: username}, Created: s.created}, nil
}
func (s *stubUsers) Get(context.Context, string) (types.User, error) {
	return types.User{}, fmt.Errorf("%w: user", errs.ErrNotFound)
}
func (s *stubUsers) List(context.Context, types.Page) ([]types.User, error) { return nil, nil }
func (s *stubUsers) Delete(_ context.Context, userID string) (types.UserDeletion, error) {
	return types.UserDeletion{UserID: userID, DeletedRecipes: 2}, nil
}

type stubRatings struct {
	gotValue int64
	gotUser  string
	err      error
}

func (s *stubRatings) Upsert(_ context.Context, _ string, userID string, value int64) (types.RatingSummary, error) {
	s.gotUser, s.gotValue = userID, value
	v := value
	return types.RatingSummary{RatingSum: value, RatingCount: 1, RatingAvg: float64(value), MyRating: &v}, s.err
}
func (s *stubRatings) Delete(context.Context, string, string) (types.RatingSummary, error) {
	return types.RatingSummary{}, s.err
}
func (s *stubRatings) Get(_ context.Context, _ string, userID string) (types.RatingSummary, error) {
	s.gotUser = userID
	return types.RatingSummary{}, s.err
}

type stubSearch struct {
	gotRaw []string
}

func (s *stubSearch) ByIngredients(_ context.Context, raw []string, p types.Page) (*services.IngredientSearch, error) {
	s.gotRaw = raw
	return &services.IngredientSearch{Wanted: raw, Skip: p.Skip, Limit: p.Limit, Results: []types.SearchHit{}}, nil
}
func (s *stubSearch) ByCategory(context.Context, string, types.Page) ([]types.PopularRecipe, error) {
	return []types.PopularRecipe{}, nil
}
func (s *stubSearch) ByDescription(context.Context, string, types.Page) ([]types.DescriptionHit, error) {
	return nil, fmt.Errorf("%w: q must contain letters or digits", errs.ErrInvalidArgument)
}

type stubLikes struct {
	unlikeErr error
}

func (s *stubLikes) Like(context.Context, string, string) error { return nil }
func (s *stubLikes) Unlike(context.Context, string, string) error {
	return s.unlikeErr
}
func (s *stubLikes) LikedRecipes(context.Context, string) ([]types.Recipe, error) { return nil, nil }
func (s *stubLikes) LikedIDs(context.Context, string, types.Page) ([]string, error) {
	return []string{"r1"}, nil
}
func (s *stubLikes) Count(context.Context, string) (int64, error) { return 4, nil }
func (s *stubLikes) Exists(context.Context, string, string) (bool, error) {
	return true, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v body=%s", err, rec.Body.String())
	}
	return env.Error.Code
}

func TestRecommendationsPagination(t *testing.T) {
	recs := &stubRecs{}
	r := newEngine()
	h := NewRecommendationHandler(recs, RankedPages)
	r.GET("/recommendations/:user_id", h.ForUser)

	rec := do(r, http.MethodGet, "/recommendations/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if recs.gotUser != "u1" || recs.gotPage != (types.Page{Skip: 0, Limit: 10}) {
		t.Fatalf("defaults not applied: user=%q page=%+v", recs.gotUser, recs.gotPage)
	}

	for _, q := range []string{"limit=51", "limit=0", "skip=-1", "limit=ten"} {
		rec := do(r, http.MethodGet, "/recommendations/u1?"+q, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d want 400", q, rec.Code)
		}
		if code := errorCode(t, rec); code != "invalid_pagination" {
			t.Fatalf("%s: code=%q", q, code)
		}
	}

	rec = do(r, http.MethodGet, "/recommendations/u1?skip=5&limit=50", "")
	if rec.Code != http.StatusOK || recs.gotPage != (types.Page{Skip: 5, Limit: 50}) {
		t.Fatalf("explicit page rejected: status=%d page=%+v", rec.Code, recs.gotPage)
	}
}

func TestRecommendationsErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: user u9", errs.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: user_id is required", errs.ErrInvalidArgument), http.StatusBadRequest},
		{fmt.Errorf("%w: recommend_read: circuit open", errs.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newEngine()
		h := NewRecommendationHandler(&stubRecs{err: tc.err}, RankedPages)
		r.GET("/recommendations/:user_id", h.ForUser)
		rec := do(r, http.MethodGet, "/recommendations/u9", "")
		if rec.Code != tc.status {
			t.Fatalf("%v: status=%d want %d", tc.err, rec.Code, tc.status)
		}
	}
}

func TestPopularEnvelope(t *testing.T) {
	r := newEngine()
	h := NewRecommendationHandler(&stubRecs{}, RankedPages)
	r.GET("/recipes/popular", h.Popular)

	rec := do(r, http.MethodGet, "/recipes/popular?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body struct {
		Skip    int                   `json:"skip"`
		Limit   int                   `json:"limit"`
		Results []types.PopularRecipe `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Limit != 2 || len(body.Results) != 1 || body.Results[0].Likes != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSignupStatus(t *testing.T) {
	for _, tc := range []struct {
		created bool
		status  int
	}{{true, http.StatusCreated}, {false, http.StatusOK}} {
		r := newEngine()
		h := NewUserHandler(&stubUsers{created: tc.created}, nil)
		r.POST("/users", h.Signup)
		rec := do(r, http.MethodPost, "/users", `{"username":"ana"}`)
		if rec.Code != tc.status {
			t.Fatalf("created=%v: status=%d want %d", tc.created, rec.Code, tc.status)
		}
	}

	r := newEngine()
	r.POST("/users", NewUserHandler(&stubUsers{}, nil).Signup)
	if rec := do(r, http.MethodPost, "/users", `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing username: status=%d", rec.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	r := newEngine()
	r.GET("/users/:user_id", NewUserHandler(&stubUsers{}, nil).Get)
	rec := do(r, http.MethodGet, "/users/nope", "")
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "not_found" {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRatingRoutes(t *testing.T) {
	ratings := &stubRatings{}
	r := newEngine()
	h := NewRatingHandler(ratings)
	r.PUT("/ratings/:recipe_id/rating", h.Upsert)
	r.GET("/ratings/:recipe_id/rating", h.Get)

	rec := do(r, http.MethodPut, "/ratings/r1/rating?user_id=u1", `{"value":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if ratings.gotUser != "u1" || ratings.gotValue != 4 {
		t.Fatalf("unexpected call: user=%q value=%d", ratings.gotUser, ratings.gotValue)
	}
	var sum types.RatingSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.MyRating == nil || *sum.MyRating != 4 || sum.RatingCount != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	if rec := do(r, http.MethodPut, "/ratings/r1/rating?user_id=u1", `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing value: status=%d", rec.Code)
	}

	rec = do(r, http.MethodGet, "/ratings/r1/rating", "")
	if rec.Code != http.StatusOK || ratings.gotUser != "" {
		t.Fatalf("anonymous get: status=%d user=%q", rec.Code, ratings.gotUser)
	}
	if !strings.Contains(rec.Body.String(), `"my_rating":null`) {
		t.Fatalf("my_rating should be null: %s", rec.Body.String())
	}
}

func TestSearchCSVSplits(t *testing.T) {
	search := &stubSearch{}
	r := newEngine()
	h := NewSearchHandler(search, RankedPages)
	r.GET("/recipes/search", h.ByIngredients)
	r.GET("/recipes/search_csv", h.ByIngredientsCSV)
	r.GET("/recipes/search_by_description", h.ByDescription)

	if rec := do(r, http.MethodGet, "/recipes/search_csv?ingredients=eggs,%20cheese", ""); rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if want := []string{"eggs", " cheese"}; !reflect.DeepEqual(search.gotRaw, want) {
		t.Fatalf("raw=%q want %q", search.gotRaw, want)
	}

	if rec := do(r, http.MethodGet, "/recipes/search?ingredients=eggs&ingredients=flour", ""); rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if want := []string{"eggs", "flour"}; !reflect.DeepEqual(search.gotRaw, want) {
		t.Fatalf("raw=%q want %q", search.gotRaw, want)
	}

	if rec := do(r, http.MethodGet, "/recipes/search_by_description?q=%21%21", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("punctuation-only q: status=%d", rec.Code)
	}
}

func TestLikeRoutes(t *testing.T) {
	likes := &stubLikes{}
	r := newEngine()
	h := NewLikeHandler(likes, ListPages)
	r.POST("/likes", h.Like)
	r.DELETE("/likes", h.Unlike)
	r.GET("/likes/users/:user_id/count", h.Count)

	if rec := do(r, http.MethodPost, "/likes", `{"user_id":"u1","recipe_id":"r1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("like status=%d", rec.Code)
	}
	if rec := do(r, http.MethodDelete, "/likes", `{"user_id":"u1","recipe_id":"r1"}`); rec.Code != http.StatusNoContent {
		t.Fatalf("unlike status=%d", rec.Code)
	}
	likes.unlikeErr = fmt.Errorf("%w: like", errs.ErrNotFound)
	if rec := do(r, http.MethodDelete, "/likes", `{"user_id":"u1","recipe_id":"r1"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("missing like status=%d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/likes", `{"user_id":"u1"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing recipe_id status=%d", rec.Code)
	}
	rec := do(r, http.MethodGet, "/likes/users/u1/count", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":4`) {
		t.Fatalf("count: status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	for _, tc := range []struct {
		err    error
		status int
	}{{nil, http.StatusOK}, {errors.New("dial tcp: refused"), http.StatusServiceUnavailable}} {
		r := newEngine()
		r.GET("/health", NewHealthHandler(logger.NewNop(), stubPinger{err: tc.err}).HealthCheck)
		rec := do(r, http.MethodGet, "/health", "")
		if rec.Code != tc.status {
			t.Fatalf("err=%v: status=%d want %d", tc.err, rec.Code, tc.status)
		}
	}
}
