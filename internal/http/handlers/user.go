package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type UserHandler struct {
	users   services.UserService
	recipes services.RecipeService
}

func NewUserHandler(users services.UserService, recipes services.RecipeService) *UserHandler {
	return &UserHandler{users: users, recipes: recipes}
}

// POST /users
// body: { "username": "..." }
// 201 when the user was created, 200 when the username already existed.
func (h *UserHandler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	out, err := h.users.Signup(c.Request.Context(), req.Username)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	c.JSON(status, out)
}

// GET /users?skip&limit
func (h *UserHandler) List(c *gin.Context) {
	p, err := parsePage(c, ListPages)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	rows, err := h.users.List(c.Request.Context(), p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skip": p.Skip, "limit": p.Limit, "results": rows})
}

// GET /users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, u)
}

// DELETE /users/:user_id
func (h *UserHandler) Delete(c *gin.Context) {
	out, err := h.users.Delete(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /users/:user_id/recipes?skip&limit
func (h *UserHandler) ListRecipes(c *gin.Context) {
	p, err := parsePage(c, ListPages)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	out, err := h.recipes.ListByOwner(c.Request.Context(), c.Param("user_id"), p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"user_id":  out.UserID,
		"username": out.Username,
		"total":    out.Total,
		"skip":     p.Skip,
		"limit":    p.Limit,
		"results":  out.Recipes,
	})
}

// POST /users/:user_id/recipes
// body: { "title", "description", "category", "ingredients": [{ "name", "amount", "unit" }] }
func (h *UserHandler) CreateRecipe(c *gin.Context) {
	var req services.RecipeInput
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	rec, err := h.recipes.Create(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"recipe": rec})
}

// PATCH /users/:user_id/recipes/:recipe_id
func (h *UserHandler) UpdateRecipe(c *gin.Context) {
	var req services.RecipePatchInput
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}
	rec, err := h.recipes.Update(c.Request.Context(), c.Param("user_id"), c.Param("recipe_id"), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipe": rec})
}

// DELETE /users/:user_id/recipes/:recipe_id
func (h *UserHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), c.Param("user_id"), c.Param("recipe_id")); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
