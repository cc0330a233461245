package adapter

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies invocation failures.
type ErrorCategory int

const (
	CategoryNone ErrorCategory = iota
	CategoryConfiguration
	CategoryValidation
	CategoryRemote
	CategoryDecoding
	CategoryUnknown
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryConfiguration:
		return "configuration"
	case CategoryValidation:
		return "validation"
	case CategoryRemote:
		return "remote"
	case CategoryDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// ConfigError reports a missing or unusable configuration value, such as
// an absent API key.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s is not set", e.Key)
}

// ValidationError reports the first argument that failed schema checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// RemoteError reports a non-2xx response or a failed round trip. For
// transport failures StatusCode is 0 and Err holds the cause.
type RemoteError struct {
	// Op names the failed operation. (e.g. "fetch conversation tags")
	Op         string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *RemoteError) Error() string {
	op := "remote request failed"
	if e.Op != "" {
		op = "failed to " + e.Op
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", op, e.Err)
	}
	return fmt.Sprintf("%s: %d %s\nResponse: %s", op, e.StatusCode, e.Status, e.Body)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// DecodeError reports a 2xx response whose body is not valid JSON.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response body: %v\nResponse: %s", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Category classifies err into one of the invocation error categories.
func Category(err error) ErrorCategory {
	if err == nil {
		return CategoryNone
	}
	var (
		ce *ConfigError
		ve *ValidationError
		re *RemoteError
		de *DecodeError
	)
	switch {
	case errors.As(err, &ce):
		return CategoryConfiguration
	case errors.As(err, &ve):
		return CategoryValidation
	case errors.As(err, &re):
		return CategoryRemote
	case errors.As(err, &de):
		return CategoryDecoding
	}
	return CategoryUnknown
}
