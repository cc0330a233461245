package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaultsValidate(t *testing.T) {
	o := NewOptions()
	require.NoError(t, o.Complete())
	assert.Empty(t, o.Validate())
	assert.Equal(t, "stdio", o.MCPOptions.Transport)
}

func TestOptionsFlags(t *testing.T) {
	o := NewOptions()
	fss := o.Flags()

	require.NoError(t, fss.FlagSet("mcp").Parse([]string{"--mcp.transport=http", "--mcp.tools=listAgents,getAgent"}))
	require.NoError(t, fss.FlagSet("gateway").Parse([]string{"--gateway.enabled", "--gateway.addr=bad"}))

	assert.Equal(t, []string{"listAgents", "getAgent"}, o.MCPOptions.Tools)
	assert.Len(t, o.Validate(), 1)
}

func TestOptionsStringHidesSecrets(t *testing.T) {
	o := NewOptions()
	o.DixaOptions.APIKey = "super-secret"
	o.GatewayOptions.Token = "gateway-secret"

	s := o.String()
	assert.NotContains(t, s, "super-secret")
	assert.NotContains(t, s, "gateway-secret")
	assert.Contains(t, s, `"transport":"stdio"`)
}

func TestMCPServerConfig(t *testing.T) {
	o := NewMCPOptions()
	o.Tools = []string{"listTags"}
	cfg := o.ServerConfig("1.2.3")

	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, []string{"listTags"}, cfg.ToolFilter)
	assert.Equal(t, "dixa-mcp-server", cfg.Name)
}
