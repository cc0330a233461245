package v1

import (
	"errors"
	"net/http"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry/errno"
	"github.com/kiosk404/dixa-mcp/pkg/errorx"
)

// Gateway handler error codes.
// Code format: 1XXYYZ
//   - 1:  module prefix (dixa-mcp gateway)
//   - XX: resource group (00=common, 02=tool)
//   - YY: sequential error number
//   - Z:  reserved (0)

const (
	// Common request errors (100xxx).
	ErrBind   = 100001
	ErrEncode = 100002

	// Tool errors (1002xx).
	ErrToolNotFound  = 100201
	ErrValidation    = 100202
	ErrConfiguration = 100203
	ErrRemote        = 100204
	ErrDecode        = 100205
	ErrInvoke        = 100206
)

func init() {
	errorx.MustRegister(newCoder(ErrBind, http.StatusBadRequest, "Request body binding failed"))
	errorx.MustRegister(newCoder(ErrEncode, http.StatusInternalServerError, "Response encoding failed"))

	errorx.MustRegister(newCoder(ErrToolNotFound, http.StatusNotFound, "Tool not found"))
	errorx.MustRegister(newCoder(ErrValidation, http.StatusBadRequest, "Tool arguments failed validation"))
	errorx.MustRegister(newCoder(ErrConfiguration, http.StatusPreconditionFailed, "Server is missing required configuration"))
	errorx.MustRegister(newCoder(ErrRemote, http.StatusBadGateway, "Remote API request failed"))
	errorx.MustRegister(newCoder(ErrDecode, http.StatusBadGateway, "Remote API returned an undecodable response"))
	errorx.MustRegister(newCoder(ErrInvoke, http.StatusInternalServerError, "Tool invocation failed"))
}

type coder struct {
	code int
	http int
	msg  string
}

func newCoder(code, httpStatus int, msg string) *coder {
	return &coder{code: code, http: httpStatus, msg: msg}
}

func (c *coder) Code() int         { return c.code }
func (c *coder) HTTPStatus() int   { return c.http }
func (c *coder) String() string    { return c.msg }
func (c *coder) Reference() string { return "" }

// invokeCode maps an invocation error to its gateway error code.
func invokeCode(err error) int {
	if errors.Is(err, errno.ErrToolNotFound) {
		return ErrToolNotFound
	}
	switch adapter.Category(err) {
	case adapter.CategoryValidation:
		return ErrValidation
	case adapter.CategoryConfiguration:
		return ErrConfiguration
	case adapter.CategoryRemote:
		return ErrRemote
	case adapter.CategoryDecoding:
		return ErrDecode
	}
	return ErrInvoke
}
