// Package errorx attaches registered numeric codes to errors so that HTTP
// handlers can turn any error into a stable status code and message.
package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Coder describes a registered error code.
type Coder interface {
	// Code is the business error code.
	Code() int
	// HTTPStatus is the status returned to HTTP clients.
	HTTPStatus() int
	// String is the external, user-safe message.
	String() string
	// Reference is an optional documentation link.
	Reference() string
}

// ErrUnknown is used for errors that carry no registered code.
const ErrUnknown = 1

type defaultCoder struct{}

func (defaultCoder) Code() int         { return ErrUnknown }
func (defaultCoder) HTTPStatus() int   { return http.StatusInternalServerError }
func (defaultCoder) String() string    { return "An internal server error occurred" }
func (defaultCoder) Reference() string { return "" }

var (
	codeMu sync.RWMutex
	codes  = map[int]Coder{ErrUnknown: defaultCoder{}}
)

// Register adds or replaces a coder.
func Register(c Coder) {
	codeMu.Lock()
	defer codeMu.Unlock()
	codes[c.Code()] = c
}

// MustRegister adds a coder and panics if the code is already taken.
func MustRegister(c Coder) {
	codeMu.Lock()
	defer codeMu.Unlock()
	if _, ok := codes[c.Code()]; ok {
		panic(fmt.Sprintf("code %d already registered", c.Code()))
	}
	codes[c.Code()] = c
}

// withCode is an error annotated with a code and a message.
type withCode struct {
	err   error
	code  int
	cause error
}

func (w *withCode) Error() string {
	if w.cause == nil {
		return w.err.Error()
	}
	return fmt.Sprintf("%s: %s", w.err.Error(), w.cause.Error())
}

func (w *withCode) Unwrap() error { return w.cause }

// WithCode creates a new coded error.
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{err: fmt.Errorf(format, args...), code: code}
}

// WrapC wraps err with a code and a message. A nil err yields nil.
func WrapC(err error, code int, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &withCode{err: fmt.Errorf(format, args...), code: code, cause: err}
}

// ParseCoder returns the coder of the outermost coded error in the chain, or
// the unknown coder.
func ParseCoder(err error) Coder {
	var w *withCode
	if errors.As(err, &w) {
		codeMu.RLock()
		defer codeMu.RUnlock()
		if c, ok := codes[w.code]; ok {
			return c
		}
	}
	return defaultCoder{}
}

// IsCode reports whether any error in the chain carries code.
func IsCode(err error, code int) bool {
	for err != nil {
		var w *withCode
		if !errors.As(err, &w) {
			return false
		}
		if w.code == code {
			return true
		}
		err = w.cause
	}
	return false
}
