package httptransport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	platformerrors "krishi-officer-go/internal/platform/errors"
)

// RespondError writes the uniform error payload. Every domain failure maps to
// a 200 response carrying {"error": message}, except oversized request bodies
// which get a proper 413.
func RespondError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "File too large. Maximum size is 16MB",
		})
		return
	}

	msg := platformerrors.UserMessage(err)
	if msg == "" {
		msg = "Internal server error"
	}
	c.JSON(http.StatusOK, gin.H{"error": msg})
}

// RespondJSON writes a success payload.
func RespondJSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
