package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Business writes err as a 404 for *_not_found codes and a 400 otherwise.
// Non-business errors become a 500 with fallbackCode.
func Business(c *gin.Context, err error, fallbackCode string) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, fallbackCode, "Internal error.")
		return
	}
	if strings.HasSuffix(code, "_not_found") {
		NotFound(c, code, "Not found.")
		return
	}
	BadRequest(c, code, "Invalid data.")
}
