package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry/errno"
	"github.com/kiosk404/dixa-mcp/internal/pkg/core"
	"github.com/kiosk404/dixa-mcp/pkg/errorx"
	"github.com/kiosk404/dixa-mcp/pkg/utils/json"
)

// ToolHandler serves tool discovery and invocation over HTTP.
type ToolHandler struct {
	registry *registry.Registry
	env      *adapter.Environment
}

// NewToolHandler creates a new ToolHandler.
func NewToolHandler(r *registry.Registry, env *adapter.Environment) *ToolHandler {
	return &ToolHandler{registry: r, env: env}
}

// List handles GET /v1/tools.
func (h *ToolHandler) List(c *gin.Context) {
	tools := h.registry.Tools()
	data := make([]ToolResponse, 0, len(tools))
	for _, spec := range tools {
		resp, err := toToolResponse(spec)
		if err != nil {
			core.WriteResponse(c, errorx.WrapC(err, ErrEncode, "describe tool %q", spec.Name), nil)
			return
		}
		data = append(data, resp)
	}
	core.WriteResponse(c, nil, ToolListResponse{Data: data})
}

// Get handles GET /v1/tools/:name.
func (h *ToolHandler) Get(c *gin.Context) {
	name := c.Param("name")
	spec, ok := h.registry.Get(name)
	if !ok {
		core.WriteResponse(c, errorx.WrapC(errno.ErrToolNotFound, ErrToolNotFound, "tool %q", name), nil)
		return
	}
	resp, err := toToolResponse(spec)
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrEncode, "describe tool %q", name), nil)
		return
	}
	core.WriteResponse(c, nil, resp)
}

// Invoke handles POST /v1/tools/:name/invoke. The body is the argument
// object; an empty body means no arguments.
func (h *ToolHandler) Invoke(c *gin.Context) {
	name := c.Param("name")

	body, err := c.GetRawData()
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrBind, "read request body"), nil)
		return
	}
	args := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			core.WriteResponse(c, errorx.WrapC(err, ErrBind, "bind arguments for %q", name), nil)
			return
		}
	}

	res, err := h.registry.Invoke(c.Request.Context(), name, args, h.env.NewExecutionContext(name))
	if err != nil {
		core.WriteResponse(c, errorx.WrapC(err, invokeCode(err), "invoke %q", name), nil)
		return
	}
	core.WriteResponse(c, nil, res)
}

func toToolResponse(spec *adapter.ToolSpec) (ToolResponse, error) {
	var resp ToolResponse
	if err := copier.Copy(&resp, spec); err != nil {
		return ToolResponse{}, err
	}
	if spec.Endpoint != nil {
		resp.Method = spec.Endpoint.Method
		resp.Path = spec.Endpoint.Path
	}
	resp.InputSchema = spec.Params.JSONSchema()
	return resp, nil
}
