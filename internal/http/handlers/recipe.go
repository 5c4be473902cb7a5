package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type RecipeHandler struct {
	recipes services.RecipeService
}

func NewRecipeHandler(recipes services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// POST /recipes
// Unowned recipe; category is optional here.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req services.RecipeInput
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	rec, err := h.recipes.Create(c.Request.Context(), "", req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"recipe": rec})
}

// GET /recipes?skip&limit
func (h *RecipeHandler) List(c *gin.Context) {
	p, err := parsePage(c, ListPages)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	rows, err := h.recipes.List(c.Request.Context(), p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skip": p.Skip, "limit": p.Limit, "results": rows})
}

// GET /recipes/:recipe_id
func (h *RecipeHandler) Get(c *gin.Context) {
	out, err := h.recipes.Detail(c.Request.Context(), c.Param("recipe_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// PATCH /recipes/:recipe_id
func (h *RecipeHandler) Update(c *gin.Context) {
	var req services.RecipePatchInput
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	rec, err := h.recipes.Update(c.Request.Context(), "", c.Param("recipe_id"), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, rec)
}

// DELETE /recipes/:recipe_id
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), "", c.Param("recipe_id")); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// POST /recipes/by_ids
// body: { "ids": ["..."] }
func (h *RecipeHandler) ByIDs(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	rows, err := h.recipes.ByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"results": rows})
}

// GET /recipes/:recipe_id/likes_count
func (h *RecipeHandler) LikesCount(c *gin.Context) {
	out, err := h.recipes.LikesCount(c.Request.Context(), c.Param("recipe_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}
