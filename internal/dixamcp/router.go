package dixamcp

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/handler/middleware"
	v1 "github.com/kiosk404/dixa-mcp/internal/dixamcp/handler/v1"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
)

// routerDeps holds the dependencies needed for route registration.
type routerDeps struct {
	registry      *registry.Registry
	env           *adapter.Environment
	gatewayConfig *GatewayConfig
}

func initRouter(g *gin.Engine, deps *routerDeps) {
	installMiddleware(g, deps)
	installController(g, deps)
}

func installMiddleware(g *gin.Engine, deps *routerDeps) {
	g.Use(gin.Recovery())

	if deps.gatewayConfig != nil {
		g.Use(middleware.BearerAuth(&deps.gatewayConfig.Auth))
	}
}

func installController(g *gin.Engine, deps *routerDeps) {
	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "tools": deps.registry.Len()})
	})

	if deps.gatewayConfig != nil && deps.gatewayConfig.Pprof {
		pprof.Register(g)
	}

	toolHandler := v1.NewToolHandler(deps.registry, deps.env)

	// --- /v1 route group ---
	apiV1 := g.Group("/v1")
	{
		apiV1.GET("/tools", toolHandler.List)
		apiV1.GET("/tools/:name", toolHandler.Get)
		apiV1.POST("/tools/:name/invoke", toolHandler.Invoke)
	}
}
