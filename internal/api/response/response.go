package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail writes an error body in the service's standard shape.
func Detail(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// Message writes a confirmation body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
