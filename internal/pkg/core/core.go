// Package core writes gateway responses.
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiosk404/dixa-mcp/pkg/errorx"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

// ErrResponse is the error envelope returned by every gateway endpoint.
type ErrResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

// WriteResponse writes err as an ErrResponse with the status of its coder,
// or data as 200 JSON when err is nil.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		coder := errorx.ParseCoder(err)
		logger.Debug("[Gateway] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(coder.HTTPStatus(), ErrResponse{
			Code:      coder.Code(),
			Message:   err.Error(),
			Reference: coder.Reference(),
		})
		return
	}
	c.JSON(http.StatusOK, data)
}
