package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/dto"
)

type CatalogHandler struct {
	catalogService CatalogService
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListServices GET /api/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp, err := dto.CopyList[dto.ServiceResponse](services)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
