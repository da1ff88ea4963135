package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/httperr"
)

const ctxSubjectKey = "subject"

var errMissingToken = errors.New("missing bearer token")

// Authenticator проверяет adminToken и возвращает subject
type Authenticator interface {
	Authenticate(token string) (string, error)
}

type AuthMiddleware struct {
	authenticator Authenticator
	logger        *zap.Logger
}

func NewAuthMiddleware(authenticator Authenticator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// RequireAuth требует заголовок Authorization: Bearer <adminToken>
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		subject, err := m.authenticator.Authenticate(token)
		if err != nil {
			m.logger.Warn("Token validation failed", zap.Error(err))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxSubjectKey, subject)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// GetSubject возвращает subject аутентифицированного администратора
func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
