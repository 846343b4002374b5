package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilefinder/internal/service"
)

type SearchHandler struct {
	Service *service.SearchService
	Logger  *zap.Logger
}

func (h *SearchHandler) Register(r *gin.Engine) {
	r.POST("/api/search", h.search)
}

// @Summary Search public profile pages
// @Tags search
// @Accept json
// @Param request body service.SearchRequest true "search query"
// @Success 200 {object} service.SearchResults
// @Failure 422 {object} map[string]string
// @Router /api/search [post]
func (h *SearchHandler) search(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	var req service.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body")
		return
	}
	results, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
