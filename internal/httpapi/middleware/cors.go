package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewCORSMiddleware разрешает админ-панели обращаться к API
func NewCORSMiddleware(allowOrigins []string, logger *zap.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	logger.Info("CORS middleware initialized", zap.Strings("allow_origins", allowOrigins))
	return cors.New(corsCfg)
}
