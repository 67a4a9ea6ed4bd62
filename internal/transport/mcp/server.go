package mcp

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alanyang/employee-mcp/internal/metrics"
	employeesvc "github.com/alanyang/employee-mcp/internal/service/employee"
)

const (
	ServerName    = "employee-search-server"
	ServerVersion = "1.0.0"
)

// Server wraps the mark3labs/mcp-go MCPServer and exposes it over stdio or
// Streamable HTTP. Tools are registered in tools.go.
type Server struct {
	mcpSrv  *mcpserver.MCPServer
	httpSrv *mcpserver.StreamableHTTPServer
}

// New creates the MCP transport server. The debug_csv_path tool is only
// registered when debug is true.
func New(svc *employeesvc.Service, m *metrics.Metrics, debug bool) *Server {
	hooks := &mcpserver.Hooks{}
	hooks.OnRegisterSession = append(hooks.OnRegisterSession, onSessionOpen)
	hooks.OnUnregisterSession = append(hooks.OnUnregisterSession, onSessionClose)

	mcpSrv := mcpserver.NewMCPServer(
		ServerName,
		ServerVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithHooks(hooks),
		mcpserver.WithToolHandlerMiddleware(instrument(m)),
	)

	RegisterTools(mcpSrv, svc, debug)

	return &Server{
		mcpSrv:  mcpSrv,
		httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv),
	}
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpSrv
}

// Handler returns an http.Handler that serves the Streamable HTTP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}

// ServeStdio answers requests read from in on out until ctx is cancelled or
// in is closed. Tool calls run one at a time in arrival order, so responses
// come back in request order and the roster file is never read concurrently.
// Protocol errors are logged through slog.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcpSrv)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))
	mcpserver.WithWorkerPoolSize(1)(stdio)
	return stdio.Listen(ctx, in, out)
}

func onSessionOpen(ctx context.Context, session mcpserver.ClientSession) {
	slog.DebugContext(ctx, "mcp: session opened", "session_id", session.SessionID())
}

func onSessionClose(ctx context.Context, session mcpserver.ClientSession) {
	slog.DebugContext(ctx, "mcp: session closed", "session_id", session.SessionID())
}
