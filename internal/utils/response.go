package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}

// AbortError writes an error envelope and stops the handler chain
func AbortError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}
