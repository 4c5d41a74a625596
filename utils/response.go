// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a consistent error payload
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
