package mcp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/dixa"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
)

func newModule(t *testing.T, cfg *ServerConfig, baseURL string, key *atomic.Value) *Module {
	t.Helper()

	r := registry.New()
	require.NoError(t, dixa.Register(r))

	c := &Config{
		Server:   cfg,
		Registry: r,
		BaseURL:  baseURL,
		Credential: func() string {
			s, _ := key.Load().(string)
			return s
		},
	}
	m, err := c.Complete().New(context.Background())
	require.NoError(t, err)
	return m
}

func newClient(t *testing.T, m *Module) *client.Client {
	t.Helper()
	ctx := context.Background()

	c, err := client.NewInProcessClient(m.Server.MCPServer())
	require.NoError(t, err)
	require.NoError(t, c.Start(ctx))
	t.Cleanup(func() { _ = c.Close() })

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "test", Version: "0.0.1"}
	_, err = c.Initialize(ctx, req)
	require.NoError(t, err)
	return c
}

func callTool(t *testing.T, c *client.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := c.CallTool(context.Background(), req)
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestListToolsPublishesSchemaAndHints(t *testing.T) {
	var key atomic.Value
	m := newModule(t, nil, "http://unused", &key)
	c := newClient(t, m)

	res, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)
	require.Len(t, res.Tools, 20)

	byName := make(map[string]mcp.Tool, len(res.Tools))
	for _, tool := range res.Tools {
		byName[tool.Name] = tool
	}

	listAgents := byName["listAgents"]
	require.NotNil(t, listAgents.Annotations.ReadOnlyHint)
	assert.True(t, *listAgents.Annotations.ReadOnlyHint)
	assert.Contains(t, string(listAgents.RawInputSchema), `"pageLimit"`)

	remove := byName["removeConversationTag"]
	require.NotNil(t, remove.Annotations.DestructiveHint)
	assert.True(t, *remove.Annotations.DestructiveHint)
	assert.False(t, *remove.Annotations.ReadOnlyHint)
}

func TestToolFilter(t *testing.T) {
	var key atomic.Value
	cfg := NewServerConfig()
	cfg.ToolFilter = []string{"listAgents", "getAgent"}
	m := newModule(t, cfg, "http://unused", &key)

	assert.Len(t, m.Server.MCPServer().ListTools(), 2)
}

func TestCallTool(t *testing.T) {
	var calls atomic.Int32
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.RequestURI() {
		case "/v1/agents?pageLimit=10":
			_, _ = w.Write([]byte(`{"data":[{"id":"a1"}]}`))
		case "/v1/conversations/c1/tags/t1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	defer remote.Close()

	var key atomic.Value
	key.Store("")
	m := newModule(t, nil, remote.URL+"/v1", &key)
	c := newClient(t, m)

	t.Run("missing credential", func(t *testing.T) {
		res := callTool(t, c, "listAgents", map[string]any{"pageLimit": 10})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "DIXA_API_KEY")
		assert.Zero(t, calls.Load())
	})

	key.Store("secret")

	t.Run("validation failure", func(t *testing.T) {
		res := callTool(t, c, "getConversation", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "conversationId")
		assert.Zero(t, calls.Load())
	})

	t.Run("success", func(t *testing.T) {
		res := callTool(t, c, "listAgents", map[string]any{"pageLimit": 10})
		assert.False(t, res.IsError)
		assert.JSONEq(t, `{"data":[{"id":"a1"}]}`, resultText(t, res))
	})

	t.Run("no content", func(t *testing.T) {
		res := callTool(t, c, "tagConversation", map[string]any{"conversationId": "c1", "tagId": "t1"})
		assert.False(t, res.IsError)
		assert.JSONEq(t, `{"success":true,"message":"Tag added successfully"}`, resultText(t, res))
	})

	t.Run("remote failure", func(t *testing.T) {
		res := callTool(t, c, "getConversation", map[string]any{"conversationId": "nope"})
		assert.True(t, res.IsError)
		text := resultText(t, res)
		assert.Contains(t, text, "404")
		assert.Contains(t, text, `{"error":"not found"}`)
	})
}

func TestServerConfigValidate(t *testing.T) {
	cfg := NewServerConfig()
	assert.Empty(t, cfg.Validate())

	cfg.Transport = "sse"
	cfg.Addr = "nope"
	assert.Len(t, cfg.Validate(), 1)

	cfg.Transport = "carrier-pigeon"
	assert.Len(t, cfg.Validate(), 1)
}

func TestServeStdio(t *testing.T) {
	r := registry.New()
	require.NoError(t, dixa.Register(r))

	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","clientInfo":{"name":"t","version":"1"},"capabilities":{}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	c := &Config{Registry: r, Stdin: in, Stdout: &out}
	m, err := c.Complete().New(context.Background())
	require.NoError(t, err)

	require.NoError(t, m.Server.Serve(context.Background()))
	assert.Equal(t, ServerStatusStopped, m.Server.Status())
	assert.Contains(t, out.String(), `"dixa-mcp-server"`)
	assert.Contains(t, out.String(), `"getAnalyticsRecordsData"`)
}

type closeRecorder struct {
	bytes.Buffer
	closed atomic.Int32
}

func (c *closeRecorder) Close() error {
	c.closed.Add(1)
	return nil
}

func TestServeStdioClosesErrorLog(t *testing.T) {
	r := registry.New()
	require.NoError(t, dixa.Register(r))

	c := &Config{Registry: r, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}}
	m, err := c.Complete().New(context.Background())
	require.NoError(t, err)

	sinks := make([]*closeRecorder, 0, 3)
	m.Server.errorLog = func() io.WriteCloser {
		w := &closeRecorder{}
		sinks = append(sinks, w)
		return w
	}

	for range 3 {
		require.NoError(t, m.Server.Serve(context.Background()))
	}
	require.Len(t, sinks, 3)
	for _, w := range sinks {
		assert.EqualValues(t, 1, w.closed.Load())
	}
}
