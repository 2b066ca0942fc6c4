package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"keynudge/internal/utils"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// corsMiddleware allows every origin, method and header
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		// "*" is invalid alongside credentials, so the caller's origin is echoed
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if origin != "*" {
			c.Writer.Header().Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware propagates X-Request-ID, generating one when absent
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requestID returns the id assigned by requestIDMiddleware
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// requirePayments short-circuits checkout routes when no provider is configured
func (s *Server) requirePayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.payments == nil {
			utils.AbortError(c, http.StatusServiceUnavailable, "payments are not configured")
			return
		}
		c.Next()
	}
}
