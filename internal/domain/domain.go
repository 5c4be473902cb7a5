package domain

import "github.com/yungbote/recipegraph-backend/internal/domain/catalog"

const (
	ModeContent = catalog.ModeContent
	ModePopular = catalog.ModePopular
)

type User = catalog.User
type Signup = catalog.Signup
type UserDeletion = catalog.UserDeletion

type Recipe = catalog.Recipe
type RecipeDraft = catalog.RecipeDraft
type RecipePatch = catalog.RecipePatch
type RecipeDetail = catalog.RecipeDetail
type RecipeLikes = catalog.RecipeLikes
type UserRecipes = catalog.UserRecipes
type IngredientLine = catalog.IngredientLine
type Category = catalog.Category

type Candidate = catalog.Candidate
type CandidateQuery = catalog.CandidateQuery
type ScoredRecipe = catalog.ScoredRecipe
type PopularRecipe = catalog.PopularRecipe
type SearchHit = catalog.SearchHit
type DescriptionHit = catalog.DescriptionHit
type Recommendations = catalog.Recommendations

type RatingSummary = catalog.RatingSummary
type Page = catalog.Page

var Average = catalog.Average
var DedupeLines = catalog.DedupeLines
