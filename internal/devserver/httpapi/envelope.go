package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Business codes carried in the envelope.
const (
	CodeOK         = 200
	CodeBadRequest = 400
	CodeForbidden  = 403
	CodeNotFound   = 404
	CodeConflict   = 409
	CodeInternal   = 500
)

type envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Code: CodeOK, Data: data})
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, envelope{Code: code, Msg: msg})
}
