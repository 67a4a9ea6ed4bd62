package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainemployee "github.com/alanyang/employee-mcp/internal/domain/employee"
	"github.com/alanyang/employee-mcp/internal/lib/logger/sl"
	"github.com/alanyang/employee-mcp/internal/metrics"
	portroster "github.com/alanyang/employee-mcp/internal/port/roster"
)

// Status is the outcome of one roster load.
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnavailable Status = "unavailable"
)

// LoadResult carries the roster together with why it may be empty.
// An unavailable roster is always empty; an ok roster may be empty too
// when the file has no data rows.
type LoadResult struct {
	Roster domainemployee.Roster
	Status Status
	Err    error
}

// Service answers the employee lookup queries.
// Every call reloads the roster; load failures degrade to an empty roster and
// are never returned to the caller.
type Service struct {
	src     portroster.Source
	metrics *metrics.Metrics
}

func NewService(src portroster.Source, m *metrics.Metrics) *Service {
	return &Service{src: src, metrics: m}
}

// Load reads the roster fresh from the source.
func (s *Service) Load(ctx context.Context) LoadResult {
	roster, err := s.src.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "employee: failed to load roster", sl.Err(err))
		s.countLoad(StatusUnavailable)
		return LoadResult{Roster: domainemployee.Roster{}, Status: StatusUnavailable, Err: err}
	}
	if roster == nil {
		roster = domainemployee.Roster{}
	}
	s.countLoad(StatusOK)
	return LoadResult{Roster: roster, Status: StatusOK}
}

// SearchByName returns a text report of every employee whose name contains
// name, ignoring case.
func (s *Service) SearchByName(ctx context.Context, name string) string {
	matches := s.Load(ctx).Roster.SearchByName(name)
	if len(matches) == 0 {
		return fmt.Sprintf(`No employees matched "%s".`, name)
	}

	blocks := make([]string, 0, len(matches))
	for _, e := range matches {
		blocks = append(blocks, FormatDetail(e))
	}
	return fmt.Sprintf("Search results: %d\n\n", len(matches)) + strings.Join(blocks, "\n\n")
}

// GetByID returns a text report of the first employee with the given ID.
func (s *Service) GetByID(ctx context.Context, id string) string {
	e, ok := s.Load(ctx).Roster.FindByID(id)
	if !ok {
		return fmt.Sprintf(`No employee found with ID "%s".`, id)
	}
	return FormatDetail(e)
}

// All returns every employee, one line each.
func (s *Service) All(ctx context.Context) string {
	roster := s.Load(ctx).Roster
	if len(roster) == 0 {
		return "No employee data found."
	}

	lines := make([]string, 0, len(roster))
	for _, e := range roster {
		lines = append(lines, FormatLine(e))
	}
	return fmt.Sprintf("All employees (%d)\n\n", len(roster)) + strings.Join(lines, "\n")
}

// DebugPaths reports whether each roster candidate path exists. It never
// reads the file.
func (s *Service) DebugPaths(ctx context.Context) string {
	candidates := s.src.Inspect(ctx)
	if len(candidates) == 0 {
		return "No roster file candidates configured."
	}

	var b strings.Builder
	b.WriteString("Roster file candidates:")
	for _, c := range candidates {
		state := "missing"
		if c.Exists {
			state = "found"
		}
		fmt.Fprintf(&b, "\n%s: %s", c.Path, state)
	}
	return b.String()
}

// FormatDetail renders one employee as a labelled block.
func FormatDetail(e domainemployee.Employee) string {
	return fmt.Sprintf("Employee ID: %s\nName: %s\nEmail: %s", e.ID, e.Name, e.Email)
}

// FormatLine renders one employee as a pipe-delimited line.
func FormatLine(e domainemployee.Employee) string {
	return fmt.Sprintf("%s | %s | %s", e.ID, e.Name, e.Email)
}

func (s *Service) countLoad(status Status) {
	if s.metrics == nil {
		return
	}
	s.metrics.RosterLoads.WithLabelValues(string(status)).Inc()
}
