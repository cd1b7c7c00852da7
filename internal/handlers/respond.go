// Package handlers contains HTTP request handlers for the attendance service.
package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error server-side and responds with
// a client-safe message, so backend error text never reaches clients.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}

// parseDate parses a YYYY-MM-DD value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
