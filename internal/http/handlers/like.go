package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type LikeHandler struct {
	likes  services.LikeService
	limits PageLimits
}

func NewLikeHandler(likes services.LikeService, limits PageLimits) *LikeHandler {
	return &LikeHandler{likes: likes, limits: limits}
}

type likeRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	RecipeID string `json:"recipe_id" binding:"required"`
}

// POST /likes
// body: { "user_id": "...", "recipe_id": "..." }
func (h *LikeHandler) Like(c *gin.Context) {
	var req likeRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.likes.Like(c.Request.Context(), req.UserID, req.RecipeID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"user_id": req.UserID, "recipe_id": req.RecipeID})
}

// DELETE /likes
// body: { "user_id": "...", "recipe_id": "..." }
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req likeRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	if err := h.likes.Unlike(c.Request.Context(), req.UserID, req.RecipeID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /likes/users/:user_id
func (h *LikeHandler) LikedRecipes(c *gin.Context) {
	uid := c.Param("user_id")
	rows, err := h.likes.LikedRecipes(c.Request.Context(), uid)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_id": uid, "results": rows})
}

// GET /likes/users/:user_id/count
func (h *LikeHandler) Count(c *gin.Context) {
	uid := c.Param("user_id")
	n, err := h.likes.Count(c.Request.Context(), uid)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_id": uid, "count": n})
}

// GET /likes/users/:user_id/ids?skip&limit
func (h *LikeHandler) LikedIDs(c *gin.Context) {
	p, err := parsePage(c, h.limits)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	uid := c.Param("user_id")
	ids, err := h.likes.LikedIDs(c.Request.Context(), uid, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_id": uid, "skip": p.Skip, "limit": p.Limit, "results": ids})
}

// GET /likes/exists?user_id&recipe_id
func (h *LikeHandler) Exists(c *gin.Context) {
	uid, rid := c.Query("user_id"), c.Query("recipe_id")
	ok, err := h.likes.Exists(c.Request.Context(), uid, rid)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_id": uid, "recipe_id": rid, "liked": ok})
}
