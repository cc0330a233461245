package options

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDixaOptionsValidate(t *testing.T) {
	o := NewDixaOptions()
	assert.Empty(t, o.Validate())

	o.BaseURL = "not a url"
	o.Timeout = -time.Second
	assert.Len(t, o.Validate(), 2)
}

func TestDixaOptionsFlags(t *testing.T) {
	o := NewDixaOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(fs)

	assert.NoError(t, fs.Parse([]string{"--dixa.base-url=http://localhost:9000/v1", "--dixa.timeout=5s"}))
	assert.Equal(t, "http://localhost:9000/v1", o.BaseURL)
	assert.Equal(t, 5*time.Second, o.Timeout)
}

func TestDixaCredentialResolvedPerCall(t *testing.T) {
	o := NewDixaOptions()
	o.AddFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	o.APIKey = "from-flag"
	cred := o.Credential()

	t.Setenv(APIKeyEnv, "")
	assert.Equal(t, "from-flag", cred())

	t.Setenv(APIKeyEnv, "rotated")
	assert.Equal(t, "rotated", cred())

	env := o.Environment()
	assert.Equal(t, APIKeyEnv, env.CredentialKey)
	assert.Equal(t, o.BaseURL, env.BaseURL)
	assert.Equal(t, "rotated", env.NewExecutionContext("listAgents").Credential)

	viper.Reset()
}

func TestLogOptionsValidate(t *testing.T) {
	o := NewLogOptions()
	assert.Empty(t, o.Validate())

	o.Level = "loud"
	o.Format = "xml"
	assert.Len(t, o.Validate(), 2)
}
