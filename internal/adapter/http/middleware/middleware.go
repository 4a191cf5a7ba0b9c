package middleware

import (
	"net/http"
	"time"

	"goldengate/pkg/apperror"
	"goldengate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxRequestID = "request_id"
	CtxAddress   = "address"
)

// TokenValidator validates a session token and returns the wallet address
// it was minted for.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// RequestID assigns each request a UUID used in logs and error envelopes.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRequestID, uuid.NewString())
		c.Next()
	}
}

// SessionAuth validates the bearer token on private routes and stores the
// authenticated wallet address in the request context.
func SessionAuth(tokens TokenValidator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		address, err := tokens.Validate(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Msg("token validation failed")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxAddress, address)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
