package dixamcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/config"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/dixa"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/mcp"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
	"github.com/kiosk404/dixa-mcp/pkg/app"
	"github.com/kiosk404/dixa-mcp/pkg/logger"
	"github.com/kiosk404/dixa-mcp/pkg/version"
)

const gatewayShutdownTimeout = 5 * time.Second

type apiServer struct {
	cfg *config.Config

	registry  *registry.Registry
	env       *adapter.Environment
	mcpModule *mcp.Module
	gateway   *http.Server
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	reg := registry.New()
	if err := dixa.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register Dixa tools: %w", err)
	}
	logger.Info("[DixaMCP] %d tools registered", reg.Len())

	env := cfg.DixaOptions.Environment()
	if env.Credential() == "" {
		logger.Warn("[DixaMCP] %s is not set; tool calls will fail until it is", env.CredentialKey)
	}

	// Initialize MCP module (K8S-style: Config → Complete → New).
	mcpCfg := &mcp.Config{
		Server:        cfg.MCPOptions.ServerConfig(version.Get().Semver()),
		Registry:      reg,
		Credential:    env.Credential,
		CredentialKey: env.CredentialKey,
		BaseURL:       env.BaseURL,
		HTTPClient:    env.Client,
	}
	mcpModule, err := mcpCfg.Complete().New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP module: %w", err)
	}
	logger.Info("[DixaMCP] MCP module initialized successfully")

	return &apiServer{
		cfg:       cfg,
		registry:  reg,
		env:       env,
		mcpModule: mcpModule,
	}, nil
}

func (s *apiServer) PrepareRun() preparedAPIServer {
	if s.cfg.GatewayOptions.Enabled {
		gatewayCfg := buildGatewayConfig(s.cfg.GatewayOptions)

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		initRouter(engine, &routerDeps{
			registry:      s.registry,
			env:           s.env,
			gatewayConfig: gatewayCfg,
		})
		s.gateway = &http.Server{
			Addr:              gatewayCfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	app.WatchConfig(func(path string) {
		level := viper.GetString("log.level")
		if level == "" {
			return
		}
		if err := logger.SetLevel(level); err != nil {
			logger.Warn("[DixaMCP] ignoring log level from %s: %v", path, err)
			return
		}
		logger.Info("[DixaMCP] log level set to %s from %s", level, path)
	})

	return preparedAPIServer{s}
}

// Run serves until SIGINT or SIGTERM, or until a transport fails.
func (s preparedAPIServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.mcpModule.Server.Serve(ctx)
		// The stdio transport ends when the host closes stdin.
		stop()
		return err
	})

	if s.gateway != nil {
		g.Go(func() error {
			logger.Info("[Gateway] listening on %s", s.gateway.Addr)
			if err := s.gateway.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("[Gateway] %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), gatewayShutdownTimeout)
			defer cancel()
			return s.gateway.Shutdown(sctx)
		})
	}

	err := g.Wait()
	if cerr := s.mcpModule.Close(); cerr != nil {
		logger.Warn("[DixaMCP] close MCP module: %v", cerr)
	}
	logger.Info("[DixaMCP] stopped")
	return err
}
