package app

import (
	httpH "github.com/yungbote/recipegraph-backend/internal/http/handlers"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	User           *httpH.UserHandler
	Recipe         *httpH.RecipeHandler
	Search         *httpH.SearchHandler
	Like           *httpH.LikeHandler
	Category       *httpH.CategoryHandler
	Recommendation *httpH.RecommendationHandler
	Rating         *httpH.RatingHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	ranked := httpH.PageLimits{Default: cfg.Pagination.DefaultLimit, Max: cfg.Pagination.MaxLimit}
	return Handlers{
		Health:         httpH.NewHealthHandler(log, store),
		User:           httpH.NewUserHandler(services.User, services.Recipe),
		Recipe:         httpH.NewRecipeHandler(services.Recipe),
		Search:         httpH.NewSearchHandler(services.Search, ranked),
		Like:           httpH.NewLikeHandler(services.Like, httpH.ListPages),
		Category:       httpH.NewCategoryHandler(services.Category),
		Recommendation: httpH.NewRecommendationHandler(services.Recommendation, ranked),
		Rating:         httpH.NewRatingHandler(services.Rating),
	}
}
