package app

import (
	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
)

type Repos struct {
	User      graph.UserRepo
	Recipe    graph.RecipeRepo
	Like      graph.LikeRepo
	Category  graph.CategoryRepo
	Ratings   *graph.RatingLedger
	Recommend *graph.RecommendStore
}

func wireRepos(client *neo4jdb.Client, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      graph.NewUserRepo(client, log),
		Recipe:    graph.NewRecipeRepo(client, log),
		Like:      graph.NewLikeRepo(client, log),
		Category:  graph.NewCategoryRepo(client, log),
		Ratings:   graph.NewRatingLedger(client, log),
		Recommend: graph.NewRecommendStore(client, log),
	}
}
