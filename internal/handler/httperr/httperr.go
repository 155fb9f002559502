package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the response envelope. Clients match on these.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status  int       `json:"-"`
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status:  status,
		Success: false,
		Error:   ErrorBody{Code: code, Message: msg},
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Unauthorized writes the fixed envelope clients expect on missing or
// invalid authentication.
func Unauthorized(c *gin.Context, err error) {
	AbortWithError(c, http.StatusUnauthorized, err, CodeUnauthorized, "Authentication required")
}

func Forbidden(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusForbidden, err, CodeForbidden, msg)
}
