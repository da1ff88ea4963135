package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/httpapi/dto"
)

type FeaturedHandler struct {
	featuredService FeaturedService
}

func NewFeaturedHandler(featuredService FeaturedService) *FeaturedHandler {
	return &FeaturedHandler{featuredService: featuredService}
}

// List GET /api/admin/featured, все записи в порядке показа
func (h *FeaturedHandler) List(c *gin.Context) {
	entries, err := h.featuredService.List(c.Request.Context())
	h.respondEntries(c, entries, err)
}

// ListActive GET /api/featured, только активные
func (h *FeaturedHandler) ListActive(c *gin.Context) {
	entries, err := h.featuredService.Active(c.Request.Context())
	h.respondEntries(c, entries, err)
}

func (h *FeaturedHandler) respondEntries(c *gin.Context, entries []featured.Entry, err error) {
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp, err := dto.CopyList[dto.FeaturedResponse](entries)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add POST /api/admin/featured
func (h *FeaturedHandler) Add(c *gin.Context) {
	var req dto.AddFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	f, err := h.featuredService.Add(c.Request.Context(), req.StoreID, req.DurationDays)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp, err := dto.CopyOne[dto.FeaturedResponse](f)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	// Запись только что начата: StartDate совпадает с текущим моментом
	resp.DaysRemaining = featured.DaysRemaining(f.EndDate, f.StartDate)
	c.JSON(http.StatusCreated, resp)
}

// Remove DELETE /api/admin/featured/:id
func (h *FeaturedHandler) Remove(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	if err := h.featuredService.Remove(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Extend POST /api/admin/featured/:id/extend
func (h *FeaturedHandler) Extend(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ExtendFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	f, err := h.featuredService.Extend(c.Request.Context(), id, req.DurationDays)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp, err := dto.CopyOne[dto.FeaturedResponse](f)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	resp.DaysRemaining = featured.DaysRemaining(f.EndDate, f.StartDate)
	c.JSON(http.StatusOK, resp)
}

// Reorder POST /api/admin/featured/reorder
func (h *FeaturedHandler) Reorder(c *gin.Context) {
	var req dto.ReorderFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.featuredService.Reorder(c.Request.Context(), *req.Index, req.Direction); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
