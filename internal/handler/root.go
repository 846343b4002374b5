package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootHandler struct{}

func (h *RootHandler) Register(r *gin.Engine) {
	r.GET("/api/", h.info)
}

// @Summary Service info
// @Tags info
// @Success 200 {object} map[string]string
// @Router /api/ [get]
func (h *RootHandler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "LinkedIn Profile Search API"})
}
