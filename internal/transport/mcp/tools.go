package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/alanyang/employee-mcp/internal/lib/logger/sl"
	"github.com/alanyang/employee-mcp/internal/metrics"
	employeesvc "github.com/alanyang/employee-mcp/internal/service/employee"
)

const (
	ToolSearchByName = "search_employee_by_name"
	ToolGetByID      = "get_employee_by_id"
	ToolGetAll       = "get_all_employees"
	ToolDebugPath    = "debug_csv_path"
)

// RegisterTools registers the employee lookup tools on the server.
// Add a new tool by adding a new AddTool call; server.go never changes.
func RegisterTools(s *mcpserver.MCPServer, svc *employeesvc.Service, debug bool) {
	s.AddTool(mcpmcp.NewTool(ToolSearchByName,
		mcpmcp.WithDescription("Search employees by name. Case-insensitive partial match."),
		mcpmcp.WithString("name", mcpmcp.Required(), mcpmcp.Description("Employee name or part of it")),
	), searchByNameHandler(svc))

	s.AddTool(mcpmcp.NewTool(ToolGetByID,
		mcpmcp.WithDescription("Get an employee's details by employee ID. Exact, case-sensitive match."),
		mcpmcp.WithString("employeeId", mcpmcp.Required(), mcpmcp.Description("Employee ID")),
	), getByIDHandler(svc))

	s.AddTool(mcpmcp.NewTool(ToolGetAll,
		mcpmcp.WithDescription("List every employee in the roster."),
	), getAllHandler(svc))

	if debug {
		s.AddTool(mcpmcp.NewTool(ToolDebugPath,
			mcpmcp.WithDescription("Show where the roster file is looked up and which locations exist."),
		), debugPathHandler(svc))
	}
}

// ── Tool handlers ─────────────────────────────────────────────────────────

// Handlers never return a protocol error: every outcome, including an
// unreadable roster, is a text result.

func searchByNameHandler(svc *employeesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		name := argString(req, "name")
		return mcpmcp.NewToolResultText(svc.SearchByName(ctx, name)), nil
	}
}

func getByIDHandler(svc *employeesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id := argString(req, "employeeId")
		return mcpmcp.NewToolResultText(svc.GetByID(ctx, id)), nil
	}
}

func getAllHandler(svc *employeesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, _ mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		return mcpmcp.NewToolResultText(svc.All(ctx)), nil
	}
}

func debugPathHandler(svc *employeesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, _ mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		return mcpmcp.NewToolResultText(svc.DebugPaths(ctx)), nil
	}
}

// argString coerces a tool argument to a string. Numbers and booleans are
// formatted, a missing argument is "".
func argString(req mcpmcp.CallToolRequest, key string) string {
	return cast.ToString(req.GetArguments()[key])
}

// instrument logs and times every tool call. The request ID and tool name are
// attached to the context so logs written while handling the call carry them.
func instrument(m *metrics.Metrics) mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
			tool := req.Params.Name
			ctx = sl.WithContextAttrs(ctx,
				slog.String("request_id", uuid.NewString()),
				slog.String("tool", tool),
			)
			start := time.Now()

			res, err := next(ctx, req)

			elapsed := time.Since(start)
			if m != nil {
				m.ToolCalls.WithLabelValues(tool).Inc()
				m.ToolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
			}
			slog.InfoContext(ctx, "mcp: tool call", "duration", elapsed)
			return res, err
		}
	}
}
