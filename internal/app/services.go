package app

import (
	"github.com/yungbote/recipegraph-backend/internal/observability"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/rating"
	"github.com/yungbote/recipegraph-backend/internal/recommend"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type Services struct {
	User           services.UserService
	Recipe         services.RecipeService
	Like           services.LikeService
	Category       services.CategoryService
	Rating         services.RatingService
	Recommendation services.RecommendationService
	Search         services.SearchService
}

func wireServices(log *logger.Logger, metrics *observability.Metrics, repos Repos) Services {
	log.Info("Wiring services...")
	engine := recommend.NewEngine(log, repos.Recommend, metrics)
	ratings := services.NewRatingService(log, rating.NewAggregator(log, repos.Ratings, metrics))
	return Services{
		User:           services.NewUserService(log, repos.User),
		Recipe:         services.NewRecipeService(log, repos.Recipe, repos.Like, ratings),
		Like:           services.NewLikeService(log, repos.Like),
		Category:       services.NewCategoryService(log, repos.Category),
		Rating:         ratings,
		Recommendation: services.NewRecommendationService(log, engine),
		Search:         services.NewSearchService(log, engine, repos.Recipe),
	}
}
