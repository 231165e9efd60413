package handlers

import (
	"github.com/gin-gonic/gin"
)

// All responses share one envelope: {"success": true, ...} on success and
// {"success": false, "error": msg} on failure.

func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
