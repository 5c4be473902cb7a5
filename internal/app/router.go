package app

import (
	"github.com/yungbote/recipegraph-backend/internal/http"
	"github.com/yungbote/recipegraph-backend/internal/observability"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

func routerConfig(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers) http.RouterConfig {
	return http.RouterConfig{
		Log:                   log,
		Metrics:               metrics,
		ServiceName:           cfg.OTel.ServiceName,
		CORSOrigins:           cfg.Server.CORSOrigins,
		Tracing:               cfg.OTel.Enabled,
		HealthHandler:         handlers.Health,
		UserHandler:           handlers.User,
		RecipeHandler:         handlers.Recipe,
		SearchHandler:         handlers.Search,
		LikeHandler:           handlers.Like,
		CategoryHandler:       handlers.Category,
		RecommendationHandler: handlers.Recommendation,
		RatingHandler:         handlers.Rating,
	}
}
