package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry/errno"
)

func echoTool(name string) *adapter.ToolSpec {
	return &adapter.ToolSpec{
		Name:   name,
		Params: adapter.Schema{{Name: "msg", Type: adapter.String, Required: true}},
		Execute: func(_ context.Context, args adapter.Args, _ *adapter.ExecutionContext) (*adapter.Result, error) {
			msg, _ := args.String("msg")
			return adapter.TextResult(name + ":" + msg), nil
		},
	}
}

func TestRegisterAndList(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(echoTool("b")))
	require.NoError(t, r.Register(echoTool("a")))

	tools := r.Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "b", tools[0].Name)
	assert.Equal(t, "a", tools[1].Name)
	assert.Equal(t, 2, r.Len())

	tool, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", tool.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegisterRejects(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(echoTool("a")))

	assert.ErrorIs(t, r.Register(echoTool("a")), errno.ErrDuplicateTool)
	assert.ErrorIs(t, r.Register(nil), errno.ErrNilTool)
	assert.ErrorIs(t, r.Register(echoTool("")), errno.ErrEmptyToolName)
	assert.Equal(t, 1, r.Len())

	assert.Panics(t, func() { r.MustRegister(echoTool("a")) })
}

func TestInvokeRoutesByName(t *testing.T) {
	r := New()
	r.MustRegister(echoTool("a"), echoTool("b"))

	ec := &adapter.ExecutionContext{Credential: "k"}
	res, err := r.Invoke(context.Background(), "b", map[string]any{"msg": "hi"}, ec)
	require.NoError(t, err)
	assert.Equal(t, "b:hi", res.Text)

	_, err = r.Invoke(context.Background(), "nope", nil, ec)
	assert.ErrorIs(t, err, errno.ErrToolNotFound)

	_, err = r.Invoke(context.Background(), "a", map[string]any{}, ec)
	assert.Equal(t, adapter.CategoryValidation, adapter.Category(err))
}

func TestConcurrentInvoke(t *testing.T) {
	r := New()
	r.MustRegister(echoTool("a"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Invoke(context.Background(), "a", map[string]any{"msg": "x"}, &adapter.ExecutionContext{Credential: "k"})
			assert.NoError(t, err)
			assert.Equal(t, "a:x", res.Text)
		}()
	}
	wg.Wait()
}
