package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/platform/textnorm"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type SearchHandler struct {
	search services.SearchService
	limits PageLimits
}

func NewSearchHandler(search services.SearchService, limits PageLimits) *SearchHandler {
	return &SearchHandler{search: search, limits: limits}
}

// GET /recipes/search?ingredients=a&ingredients=b
func (h *SearchHandler) ByIngredients(c *gin.Context) {
	h.ingredients(c, c.QueryArray("ingredients"))
}

// GET /recipes/search_csv?ingredients=a,b
func (h *SearchHandler) ByIngredientsCSV(c *gin.Context) {
	var raw []string
	for _, v := range c.QueryArray("ingredients") {
		raw = append(raw, strings.Split(v, ",")...)
	}
	h.ingredients(c, raw)
}

func (h *SearchHandler) ingredients(c *gin.Context, raw []string) {
	p, err := parsePage(c, h.limits)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	out, err := h.search.ByIngredients(c.Request.Context(), raw, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /recipes/search_by_category?category=
func (h *SearchHandler) ByCategory(c *gin.Context) {
	p, err := parsePage(c, h.limits)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	category := c.Query("category")
	rows, err := h.search.ByCategory(c.Request.Context(), category, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"category": textnorm.Name(category), "skip": p.Skip, "limit": p.Limit, "results": rows})
}

// GET /recipes/search_by_description?q=
func (h *SearchHandler) ByDescription(c *gin.Context) {
	p, err := parsePage(c, h.limits)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	q := c.Query("q")
	rows, err := h.search.ByDescription(c.Request.Context(), q, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"q": q, "skip": p.Skip, "limit": p.Limit, "results": rows})
}
