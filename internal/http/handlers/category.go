package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/http/response"
	"github.com/yungbote/recipegraph-backend/internal/services"
)

type CategoryHandler struct {
	categories services.CategoryService
}

func NewCategoryHandler(categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	rows, err := h.categories.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	response.RespondOK(c, gin.H{"results": names})
}
