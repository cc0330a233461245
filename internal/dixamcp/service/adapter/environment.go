package adapter

import (
	"github.com/google/uuid"

	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

// CredentialSource resolves the remote API key. It is called once per
// invocation so key rotation takes effect without a restart.
type CredentialSource func() string

// Environment holds the process-wide settings every invocation is built
// from.
type Environment struct {
	Credential    CredentialSource
	CredentialKey string
	BaseURL       string
	Client        HTTPDoer
}

// NewExecutionContext returns a fresh context for one invocation of tool,
// tagged with a new request ID.
func (e *Environment) NewExecutionContext(tool string) *ExecutionContext {
	id := uuid.NewString()
	ec := &ExecutionContext{
		RequestID:     id,
		Log:           logger.WithFields(logger.Fields{"tool": tool, "request_id": id}),
		CredentialKey: e.CredentialKey,
		BaseURL:       e.BaseURL,
		Client:        e.Client,
	}
	if e.Credential != nil {
		ec.Credential = e.Credential()
	}
	return ec
}
