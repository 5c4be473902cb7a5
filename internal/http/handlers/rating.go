package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type RatingHandler struct {
	ratings services.RatingService
}

func NewRatingHandler(ratings services.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// PUT /ratings/:recipe_id/rating?user_id=
// body: { "value": 1..5 }
func (h *RatingHandler) Upsert(c *gin.Context) {
	var req struct {
		Value int64 `json:"value" binding:"required"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	out, err := h.ratings.Upsert(c.Request.Context(), c.Param("recipe_id"), c.Query("user_id"), req.Value)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /ratings/:recipe_id/rating?user_id=
func (h *RatingHandler) Delete(c *gin.Context) {
	out, err := h.ratings.Delete(c.Request.Context(), c.Param("recipe_id"), c.Query("user_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /ratings/:recipe_id/rating?user_id=
// my_rating is null when user_id is absent or the user has not rated.
func (h *RatingHandler) Get(c *gin.Context) {
	out, err := h.ratings.Get(c.Request.Context(), c.Param("recipe_id"), c.Query("user_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}
