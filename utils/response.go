package utils

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondServerError reports an unexpected failure. The stack trace is
// included only outside release mode.
func RespondServerError(c *gin.Context, err error) {
	body := gin.H{"message": err.Error()}
	if gin.Mode() != gin.ReleaseMode {
		body["stack"] = string(debug.Stack())
	}
	c.JSON(http.StatusInternalServerError, body)
}
