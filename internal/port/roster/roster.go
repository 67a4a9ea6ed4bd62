package roster

import (
	"context"

	"github.com/alanyang/employee-mcp/internal/domain/employee"
)

//go:generate mockgen -source=roster.go -destination=../../mocks/mock_roster.go -package=mocks

// Source is the storage abstraction for the employee roster.
// service/employee depends on this interface, not on the CSV file layout.
type Source interface {
	// Load reads the roster from scratch. Nothing is cached between calls.
	Load(ctx context.Context) (employee.Roster, error)

	// Inspect reports, for every configured location, whether it currently exists.
	Inspect(ctx context.Context) []employee.Candidate
}
