// Package response writes the JSON envelope every API endpoint uses:
// {"success": true, "data": ...} on the happy path and
// {"success": false, "error": {code, message [, details]}} otherwise.
// Booking, catalog, and auth handlers all funnel through it so clients
// can branch on "success" alone.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails carries a field-level breakdown, e.g. the per-field
// messages from booking validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
