package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/recipegraph-backend/internal/domain"
	"github.com/yungbote/recipegraph-backend/internal/platform/apierr"
)

// PageLimits bounds the limit query parameter of one family of endpoints.
type PageLimits struct {
	Default int
	Max     int
}

var (
	// RankedPages covers recommendation and search endpoints.
	RankedPages = PageLimits{Default: 10, Max: 50}
	// ListPages covers plain listings.
	ListPages = PageLimits{Default: 20, Max: 100}
)

func (l PageLimits) normalized() PageLimits {
	if l.Default < 1 {
		l.Default = 1
	}
	if l.Max < l.Default {
		l.Max = l.Default
	}
	return l
}

type pageQuery struct {
	Skip  *int `form:"skip" binding:"omitempty,gte=0"`
	Limit *int `form:"limit" binding:"omitempty,gte=1"`
}

func parsePage(c *gin.Context, limits PageLimits) (types.Page, error) {
	limits = limits.normalized()
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return types.Page{}, apierr.BadRequest("invalid_pagination", fmt.Errorf("skip must be >= 0 and limit >= 1: %w", err))
	}
	p := types.Page{Skip: 0, Limit: limits.Default}
	if q.Skip != nil {
		p.Skip = *q.Skip
	}
	if q.Limit != nil {
		p.Limit = *q.Limit
	}
	if p.Limit > limits.Max {
		return types.Page{}, apierr.BadRequest("invalid_pagination", fmt.Errorf("limit must be <= %d", limits.Max))
	}
	return p, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.BadRequest("invalid_request", err)
	}
	return nil
}
