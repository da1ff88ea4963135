package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/dto"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

type StoreHandler struct {
	storeService StoreService
}

func NewStoreHandler(storeService StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// List GET /api/admin/stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp, err := dto.CopyList[dto.StoreResponse](stores)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus PATCH /api/admin/stores/:id/status
func (h *StoreHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStoreStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.storeService.SetStatus(c.Request.Context(), id, model.StoreStatus(req.Status)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdatePlan PATCH /api/admin/stores/:id/plan
func (h *StoreHandler) UpdatePlan(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStorePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.storeService.SetPlan(c.Request.Context(), id, model.StorePlan(req.Plan)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete DELETE /api/admin/stores/:id
func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	if err := h.storeService.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
