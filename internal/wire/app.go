package wire

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alanyang/employee-mcp/internal/adapter/csvroster"
	"github.com/alanyang/employee-mcp/internal/config"
	"github.com/alanyang/employee-mcp/internal/metrics"
	employeesvc "github.com/alanyang/employee-mcp/internal/service/employee"
	"github.com/alanyang/employee-mcp/internal/transport"
	mcptransport "github.com/alanyang/employee-mcp/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Config      *config.Config
	Registry    *prometheus.Registry
	EmployeeSvc *employeesvc.Service
	MCPServer   *mcptransport.Server

	// Server is nil unless the http transport is configured.
	Server *http.Server
}

// Build is the composition root: the only place concrete types are wired to their
// interface dependencies.
func Build(cfg *config.Config) *App {
	// ── Metrics ──────────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.NewMetrics(reg)

	// ── Adapters ─────────────────────────────────────────────────────────────
	candidates := csvroster.DefaultCandidates(cfg.Roster.Path, cfg.Roster.FileName)
	loader := csvroster.New(candidates)

	// ── Services ─────────────────────────────────────────────────────────────
	employeeSvcInstance := employeesvc.NewService(loader, m)

	mcpServer := mcptransport.New(employeeSvcInstance, m, cfg.Debug)

	app := &App{
		Config:      cfg,
		Registry:    reg,
		EmployeeSvc: employeeSvcInstance,
		MCPServer:   mcpServer,
	}

	// ── Transport ─────────────────────────────────────────────────────────────
	if cfg.Transport == config.TransportHTTP {
		router := transport.NewRouter(employeeSvcInstance, mcpServer.Handler(), reg)
		app.Server = &http.Server{
			Addr:    cfg.HTTP.Addr,
			Handler: router,
		}
	}

	slog.Info("application wired",
		"transport", cfg.Transport,
		"candidates", candidates,
		"debug", cfg.Debug,
	)

	return app
}
