package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONWarning answers a request that was handled but must surface a message to the guest.
func JSONWarning(c *gin.Context, code int, data interface{}, warning string) {
	c.JSON(code, gin.H{"success": true, "data": data, "warning": warning})
}
