package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ctxRequestIDKey = "request_id"

// LoggingMiddleware пишет начало и конец каждого запроса в zap
func LoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := uuid.NewString()
		c.Set(ctxRequestIDKey, requestID)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		}
		logger.Debug("Request started", fields...)

		c.Next()

		statusCode := c.Writer.Status()
		fields = append(fields,
			zap.Int("status_code", statusCode),
			zap.Duration("duration", time.Since(startTime)),
		)
		if subject, ok := GetSubject(c); ok {
			fields = append(fields, zap.String("subject", subject))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		level := zapcore.InfoLevel
		switch {
		case statusCode >= 500:
			level = zapcore.ErrorLevel
		case statusCode >= 400:
			level = zapcore.WarnLevel
		}
		if ce := logger.Check(level, "Request completed"); ce != nil {
			ce.Write(fields...)
		}
	}
}

// GetRequestID возвращает id запроса из контекста
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
