package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilefinder/internal/service"
)

type ProfileHandler struct {
	Service *service.ProfileService
	Logger  *zap.Logger
}

func (h *ProfileHandler) Register(r *gin.Engine) {
	group := r.Group("/api/profiles")
	group.POST("", h.save)
	group.GET("", h.list)
	group.DELETE("/:id", h.delete)
	group.PUT("/:id/tags", h.updateTags)
}

// @Summary Save a profile
// @Tags profiles
// @Accept json
// @Param request body service.ProfileInput true "profile to save"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Router /api/profiles [post]
func (h *ProfileHandler) save(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	var input service.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, http.StatusBadRequest, "invalid body")
		return
	}
	profile, err := h.Service.Save(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary List saved profiles
// @Tags profiles
// @Param search_term query string false "substring match on title or snippet"
// @Param tags query string false "comma-separated tags, OR intersection"
// @Success 200 {array} models.Profile
// @Router /api/profiles [get]
func (h *ProfileHandler) list(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	items, err := h.Service.List(c.Request.Context(), c.Query("search_term"), c.Query("tags"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Delete a saved profile
// @Tags profiles
// @Param id path string true "profile id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/profiles/{id} [delete]
func (h *ProfileHandler) delete(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "profile id required")
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}

// @Summary Replace the tag list of a saved profile
// @Tags profiles
// @Accept json
// @Param id path string true "profile id"
// @Param request body []string true "full replacement tag list"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/profiles/{id}/tags [put]
func (h *ProfileHandler) updateTags(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "profile id required")
		return
	}
	var tags []string
	if err := c.ShouldBindJSON(&tags); err != nil {
		Error(c, http.StatusBadRequest, "invalid body")
		return
	}
	// A JSON null binds to a nil slice; only a real list may replace tags.
	if tags == nil {
		Error(c, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.Service.UpdateTags(c.Request.Context(), id, tags); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tags updated successfully"})
}
