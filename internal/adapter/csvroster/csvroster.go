package csvroster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alanyang/employee-mcp/internal/domain/employee"
)

// DefaultFileName is the roster file looked up next to the working directory
// and the installed binary when no override is configured.
const DefaultFileName = "employees.csv"

// NotFoundError is returned when none of the candidate paths exists.
type NotFoundError struct {
	Attempted []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("roster file not found, tried: %s", strings.Join(e.Attempted, ", "))
}

func (e *NotFoundError) Unwrap() error { return employee.ErrRosterUnavailable }

// DefaultCandidates builds the lookup order: the override path, the working
// directory, the parent of the executable's directory, then the executable's
// directory. Locations that cannot be determined are left out.
func DefaultCandidates(override, fileName string) []string {
	if fileName == "" {
		fileName = DefaultFileName
	}

	var paths []string
	if override != "" {
		paths = append(paths, override)
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, fileName))
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "..", fileName),
			filepath.Join(dir, fileName),
		)
	}
	return paths
}

// Loader reads the roster from the first existing candidate path on every call.
// It implements port/roster.Source.
type Loader struct {
	candidates []string
}

// New creates a Loader over the given candidate paths, tried in order.
// Empty entries are skipped.
func New(candidates []string) *Loader {
	return &Loader{candidates: append([]string(nil), candidates...)}
}

// Candidates returns the configured paths in lookup order.
func (l *Loader) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Load locates, reads and parses the roster file.
func (l *Loader) Load(ctx context.Context) (employee.Roster, error) {
	path, err := l.locate()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load roster: %w: %w", employee.ErrRosterUnavailable, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w: %w", path, employee.ErrRosterUnavailable, err)
	}
	return Parse(string(data)), nil
}

// Inspect reports whether each configured candidate currently exists.
func (l *Loader) Inspect(_ context.Context) []employee.Candidate {
	out := make([]employee.Candidate, 0, len(l.candidates))
	for _, p := range l.candidates {
		if p == "" {
			continue
		}
		out = append(out, employee.Candidate{Path: p, Exists: exists(p)})
	}
	return out
}

func (l *Loader) locate() (string, error) {
	attempted := make([]string, 0, len(l.candidates))
	for _, p := range l.candidates {
		if p == "" {
			continue
		}
		attempted = append(attempted, p)
		if exists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Attempted: attempted}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Parse converts roster file content into employees. The first line is a
// header and is dropped. Each following line is split on commas and the first
// three fields, trimmed, become ID, name and email. Short lines leave the
// missing fields empty; no other validation is done and quoting is not
// supported.
func Parse(content string) employee.Roster {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) <= 1 {
		return employee.Roster{}
	}

	out := make(employee.Roster, 0, len(lines)-1)
	for _, line := range lines[1:] {
		out = append(out, parseLine(line))
	}
	return out
}

func parseLine(line string) employee.Employee {
	fields := strings.SplitN(line, ",", 4)
	var e employee.Employee
	for i, f := range fields {
		f = strings.TrimSpace(f)
		switch i {
		case 0:
			e.ID = f
		case 1:
			e.Name = f
		case 2:
			e.Email = f
		}
	}
	return e
}
