package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const CodeInvalidData = "INVALID_DATA"

// Response covers both public error shapes: {error_code, error_description} for
// rejected input and {error} for everything else.
type Response struct {
	Status           int    `json:"-"`
	ErrorCode        string `json:"error_code,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Abort helpers record the error on the context; middleware.ErrorHandler writes the body.

// preserves original error for the request log; msg is all the caller sees
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	abort(c, err, Response{Status: status, Error: msg})
}

func AbortWithInvalidData(c *gin.Context, err error, description string) {
	abort(c, err, Response{
		Status:           http.StatusBadRequest,
		ErrorCode:        CodeInvalidData,
		ErrorDescription: description,
	})
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.Abort()
}
