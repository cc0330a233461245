package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/dixa-mcp/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// ServerStatus represents the lifecycle state of the MCP server.
type ServerStatus int

const (
	ServerStatusStopped ServerStatus = iota
	ServerStatusServing
	ServerStatusError
)

func (s ServerStatus) String() string {
	switch s {
	case ServerStatusStopped:
		return "Stopped"
	case ServerStatusServing:
		return "Serving"
	case ServerStatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Server serves the tool registry over one MCP transport.
type Server struct {
	config *ServerConfig
	mcp    *server.MCPServer
	stdin  io.Reader
	stdout io.Writer
	// errorLog opens the sink of the stdio transport's error logger. It is
	// closed when Serve returns.
	errorLog func() io.WriteCloser

	mu       sync.RWMutex
	status   ServerStatus
	err      error
	shutdown func(context.Context) error
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Status returns the current lifecycle status.
func (s *Server) Status() ServerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the error that stopped the server, if any.
func (s *Server) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Serve blocks serving the configured transport until ctx is done or the
// transport fails.
func (s *Server) Serve(ctx context.Context) error {
	s.setStatus(ServerStatusServing, nil)
	logger.Info("[MCP] serving %d tools over %s", len(s.mcp.ListTools()), s.config.Transport)

	var err error
	switch s.config.Transport {
	case TransportStdio:
		err = s.serveStdio(ctx)
	case TransportSSE:
		sse := server.NewSSEServer(s.mcp, server.WithBaseURL(s.baseURL()))
		err = s.serveHTTP(ctx, sse.Start, sse.Shutdown)
	case TransportHTTP:
		streamable := server.NewStreamableHTTPServer(s.mcp, server.WithEndpointPath(s.config.EndpointPath))
		err = s.serveHTTP(ctx, streamable.Start, streamable.Shutdown)
	default:
		err = fmt.Errorf("unknown transport: %s", s.config.Transport)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		s.setStatus(ServerStatusError, err)
		return fmt.Errorf("[MCP] %s transport: %w", s.config.Transport, err)
	}
	s.setStatus(ServerStatusStopped, nil)
	return nil
}

// Shutdown stops an HTTP based transport. Stdio stops when the Serve
// context is cancelled.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	shutdown := s.shutdown
	s.mu.RUnlock()

	if shutdown == nil {
		return nil
	}
	return shutdown(ctx)
}

func (s *Server) serveStdio(ctx context.Context) error {
	open := s.errorLog
	if open == nil {
		open = func() io.WriteCloser { return logger.StandardLogger().WriterLevel(logrus.ErrorLevel) }
	}
	w := open()
	defer w.Close()

	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(w, "", 0))
	return stdio.Listen(ctx, s.stdin, s.stdout)
}

func (s *Server) serveHTTP(ctx context.Context, start func(string) error, shutdown func(context.Context) error) error {
	s.mu.Lock()
	s.shutdown = shutdown
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[MCP] listening on %s", s.config.Addr)
		errCh <- start(s.config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn("[MCP] shutdown: %v", err)
		}
		<-errCh
		return nil
	}
}

func (s *Server) baseURL() string {
	if s.config.BaseURL != "" {
		return s.config.BaseURL
	}
	return "http://" + s.config.Addr
}

func (s *Server) setStatus(status ServerStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.err = err
}
