package utils

import "github.com/gin-gonic/gin"

// ErrorResponse sends the standard error JSON body. Every error reply
// carries a short error title and a human-readable message.
func ErrorResponse(c *gin.Context, statusCode int, errTitle string, message string) {
	c.JSON(statusCode, gin.H{
		"error":   errTitle,
		"message": message,
	})
}

// MessageResponse sends a simple success message
func MessageResponse(c *gin.Context, message string) {
	c.JSON(200, gin.H{
		"message": message,
	})
}
