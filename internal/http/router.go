package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/recipegraph-backend/internal/http/handlers"
	httpMW "github.com/yungbote/recipegraph-backend/internal/http/middleware"
	"github.com/yungbote/recipegraph-backend/internal/observability"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string
	Tracing     bool

	UserHandler           *httpH.UserHandler
	RecipeHandler         *httpH.RecipeHandler
	SearchHandler         *httpH.SearchHandler
	LikeHandler           *httpH.LikeHandler
	CategoryHandler       *httpH.CategoryHandler
	RecommendationHandler *httpH.RecommendationHandler
	RatingHandler         *httpH.RatingHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Tracing {
		name := cfg.ServiceName
		if name == "" {
			name = "recipegraph"
		}
		r.Use(otelgin.Middleware(name))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.Use(httpMW.Metrics(cfg.Metrics))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Users
	if cfg.UserHandler != nil {
		r.POST("/users", cfg.UserHandler.Signup)
		r.GET("/users", cfg.UserHandler.List)
		r.GET("/users/:user_id", cfg.UserHandler.Get)
		r.DELETE("/users/:user_id", cfg.UserHandler.Delete)
		r.GET("/users/:user_id/recipes", cfg.UserHandler.ListRecipes)
		r.POST("/users/:user_id/recipes", cfg.UserHandler.CreateRecipe)
		r.PATCH("/users/:user_id/recipes/:recipe_id", cfg.UserHandler.UpdateRecipe)
		r.DELETE("/users/:user_id/recipes/:recipe_id", cfg.UserHandler.DeleteRecipe)
	}

	// Recipes. Static segments are registered alongside :recipe_id; gin
	// prefers the static match.
	if cfg.RecommendationHandler != nil {
		r.GET("/recipes/popular", cfg.RecommendationHandler.Popular)
		r.GET("/recommendations/:user_id", cfg.RecommendationHandler.ForUser)
	}
	if cfg.SearchHandler != nil {
		r.GET("/recipes/search", cfg.SearchHandler.ByIngredients)
		r.GET("/recipes/search_csv", cfg.SearchHandler.ByIngredientsCSV)
		r.GET("/recipes/search_by_category", cfg.SearchHandler.ByCategory)
		r.GET("/recipes/search_by_description", cfg.SearchHandler.ByDescription)
	}
	if cfg.RecipeHandler != nil {
		r.POST("/recipes", cfg.RecipeHandler.Create)
		r.GET("/recipes", cfg.RecipeHandler.List)
		r.POST("/recipes/by_ids", cfg.RecipeHandler.ByIDs)
		r.GET("/recipes/:recipe_id", cfg.RecipeHandler.Get)
		r.PATCH("/recipes/:recipe_id", cfg.RecipeHandler.Update)
		r.DELETE("/recipes/:recipe_id", cfg.RecipeHandler.Delete)
		r.GET("/recipes/:recipe_id/likes_count", cfg.RecipeHandler.LikesCount)
	}

	// Ratings
	if cfg.RatingHandler != nil {
		r.PUT("/ratings/:recipe_id/rating", cfg.RatingHandler.Upsert)
		r.DELETE("/ratings/:recipe_id/rating", cfg.RatingHandler.Delete)
		r.GET("/ratings/:recipe_id/rating", cfg.RatingHandler.Get)
	}

	// Likes
	if cfg.LikeHandler != nil {
		r.POST("/likes", cfg.LikeHandler.Like)
		r.DELETE("/likes", cfg.LikeHandler.Unlike)
		r.GET("/likes/exists", cfg.LikeHandler.Exists)
		r.GET("/likes/users/:user_id", cfg.LikeHandler.LikedRecipes)
		r.GET("/likes/users/:user_id/count", cfg.LikeHandler.Count)
		r.GET("/likes/users/:user_id/ids", cfg.LikeHandler.LikedIDs)
	}

	// Categories
	if cfg.CategoryHandler != nil {
		r.GET("/categories", cfg.CategoryHandler.List)
	}

	return r
}
