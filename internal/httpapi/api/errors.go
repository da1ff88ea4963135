package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/httpapi/httperr"
	"github.com/daltekdz/daltekdz_bot/internal/notification"
	"github.com/daltekdz/daltekdz_bot/internal/service"
)

var errInvalidID = errors.New("invalid id")

// abortWithServiceError переводит ошибку сервиса в HTTP статус
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPlan),
		errors.Is(err, featured.ErrInvalidDuration),
		errors.Is(err, featured.ErrInvalidDirection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
	case errors.Is(err, service.ErrStoreNotFound),
		errors.Is(err, featured.ErrStoreNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
	case errors.Is(err, featured.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Featured store not found", nil)
	case errors.Is(err, notification.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
