package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilefinder/internal/service"
)

type StatsHandler struct {
	Service *service.StatsService
	Logger  *zap.Logger
}

func (h *StatsHandler) Register(r *gin.Engine) {
	r.GET("/api/stats", h.stats)
}

// @Summary Store stats
// @Tags stats
// @Success 200 {object} service.StoreStats
// @Router /api/stats [get]
func (h *StatsHandler) stats(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	stats, err := h.Service.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
