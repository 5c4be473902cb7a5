package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type RecommendationHandler struct {
	recs   services.RecommendationService
	limits PageLimits
}

func NewRecommendationHandler(recs services.RecommendationService, limits PageLimits) *RecommendationHandler {
	return &RecommendationHandler{recs: recs, limits: limits}
}

// GET /recommendations/:user_id?skip&limit
func (h *RecommendationHandler) ForUser(c *gin.Context) {
	p, err := parsePage(c, h.limits)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	out, err := h.recs.ForUser(c.Request.Context(), c.Param("user_id"), p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /recipes/popular?skip&limit
func (h *RecommendationHandler) Popular(c *gin.Context) {
	p, err := parsePage(c, h.limits)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	rows, err := h.recs.Popular(c.Request.Context(), p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skip": p.Skip, "limit": p.Limit, "results": rows})
}
