package adapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

// DefaultCredentialKey names the setting reported when no credential is
// available.
const DefaultCredentialKey = "DIXA_API_KEY"

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ExecutionContext is the per-invocation environment handed to a tool.
// It is built fresh for every call and never retained.
type ExecutionContext struct {
	// RequestID correlates log lines of one invocation.
	RequestID string
	// Log is the diagnostic sink. Nil discards.
	Log logrus.FieldLogger
	// Credential is the raw API key sent as the Authorization header.
	Credential string
	// CredentialKey names the credential setting in configuration errors.
	CredentialKey string
	// BaseURL is the remote API root. (e.g. "https://dev.dixa.io/v1")
	BaseURL string
	// Client performs the remote call. Nil uses http.DefaultClient.
	Client HTTPDoer
}

func (ec *ExecutionContext) logger() logrus.FieldLogger {
	if ec.Log != nil {
		return ec.Log
	}
	return logger.Discard()
}

func (ec *ExecutionContext) client() HTTPDoer {
	if ec.Client != nil {
		return ec.Client
	}
	return http.DefaultClient
}

// Result is the successful outcome of an invocation.
type Result struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// TextResult wraps text as a Result.
func TextResult(text string) *Result {
	return &Result{Kind: "text", Text: text}
}

// Hints describe the side effects of a tool. They tell a host whether a
// call is safe to retry.
type Hints struct {
	ReadOnly    bool `json:"readOnly"`
	Destructive bool `json:"destructive"`
	Idempotent  bool `json:"idempotent"`
}

// ExecuteFunc performs a tool's operation with already validated args.
type ExecuteFunc func(ctx context.Context, args Args, ec *ExecutionContext) (*Result, error)

// ToolSpec is a named, self-describing, invocable unit. It is immutable
// once registered.
type ToolSpec struct {
	// Name is the tool's unique name. (e.g. "getConversation")
	Name string
	// Description is a brief description of the tool's purpose.
	Description string
	// Params is the input schema.
	Params Schema
	Hints  Hints
	// Endpoint is the remote contract for HTTP-backed tools, nil otherwise.
	Endpoint *Endpoint
	Execute  ExecuteFunc
}

// Invoke checks the credential, validates raw against the schema and runs
// the tool. No network activity happens unless both checks pass.
func (t *ToolSpec) Invoke(ctx context.Context, raw map[string]any, ec *ExecutionContext) (*Result, error) {
	if ec == nil {
		ec = &ExecutionContext{}
	}
	if ec.Credential == "" {
		key := ec.CredentialKey
		if key == "" {
			key = DefaultCredentialKey
		}
		return nil, &ConfigError{Key: key}
	}

	args, err := t.Params.Validate(raw)
	if err != nil {
		ec.logger().Debugf("tool %s rejected arguments: %v", t.Name, err)
		return nil, err
	}
	return t.Execute(ctx, args, ec)
}

// NewHTTPTool builds a ToolSpec that calls ep. The endpoint is checked
// against params up front.
func NewHTTPTool(name, description string, params Schema, hints Hints, ep Endpoint) (*ToolSpec, error) {
	if err := ep.Validate(params); err != nil {
		return nil, err
	}
	return &ToolSpec{
		Name:        name,
		Description: description,
		Params:      params,
		Hints:       hints,
		Endpoint:    &ep,
		Execute:     httpExecute(ep),
	}, nil
}

func httpExecute(ep Endpoint) ExecuteFunc {
	return func(ctx context.Context, args Args, ec *ExecutionContext) (*Result, error) {
		log := ec.logger()

		req, err := ep.Build(ec.BaseURL, ec.Credential, args)
		if err != nil {
			return nil, err
		}
		log.Debugf("%s %s", req.Method, req.URL)
		if req.Body != nil {
			log.Debugf("request body: %s", req.Body)
		}

		httpReq, err := req.HTTPRequest(ctx)
		if err != nil {
			return nil, &RemoteError{Op: ep.Action, Err: err}
		}
		resp, err := ec.client().Do(httpReq)
		if err != nil {
			log.Warnf("%s %s failed: %v", req.Method, req.URL, err)
			return nil, &RemoteError{Op: ep.Action, Err: err}
		}
		defer resp.Body.Close()

		log.Debugf("%s %s -> %d", req.Method, req.URL, resp.StatusCode)
		res, err := Normalize(resp, ep.NoContent)
		var re *RemoteError
		if errors.As(err, &re) {
			re.Op = ep.Action
		}
		return res, err
	}
}
