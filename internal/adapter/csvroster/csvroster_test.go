package csvroster_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/employee-mcp/internal/adapter/csvroster"
	"github.com/alanyang/employee-mcp/internal/domain/employee"
)

const sampleCSV = "ID,Name,Email\n001,Alice Smith,alice@x.com\n002,Bob Jones,bob@x.com"

// ── Parse ─────────────────────────────────────────────────────────────────────

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    employee.Roster
	}{
		{
			name:    "header and two rows",
			content: sampleCSV,
			want: employee.Roster{
				{ID: "001", Name: "Alice Smith", Email: "alice@x.com"},
				{ID: "002", Name: "Bob Jones", Email: "bob@x.com"},
			},
		},
		{
			name:    "fields are trimmed and CRLF endings tolerated",
			content: "ID,Name,Email\r\n 001 ,  Alice Smith\t, alice@x.com \r\n",
			want:    employee.Roster{{ID: "001", Name: "Alice Smith", Email: "alice@x.com"}},
		},
		{
			name:    "short row leaves missing fields empty",
			content: "ID,Name,Email\n003,Carol",
			want:    employee.Roster{{ID: "003", Name: "Carol"}},
		},
		{
			name:    "extra columns are ignored",
			content: "ID,Name,Email,Dept\n004,Dave,dave@x.com,Sales",
			want:    employee.Roster{{ID: "004", Name: "Dave", Email: "dave@x.com"}},
		},
		{
			name:    "header only",
			content: "ID,Name,Email\n",
			want:    employee.Roster{},
		},
		{
			name:    "empty file",
			content: "",
			want:    employee.Roster{},
		},
		{
			name:    "byte order mark before header",
			content: "\ufeffID,Name,Email\n005,Eve,eve@x.com",
			want:    employee.Roster{{ID: "005", Name: "Eve", Email: "eve@x.com"}},
		},
		{
			name:    "duplicate IDs are kept",
			content: "ID,Name,Email\n006,A,a@x.com\n006,B,b@x.com",
			want: employee.Roster{
				{ID: "006", Name: "A", Email: "a@x.com"},
				{ID: "006", Name: "B", Email: "b@x.com"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, csvroster.Parse(tc.content))
		})
	}
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_UsesFirstExistingCandidate(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	filet.File(t, first, "ID,Name,Email\n001,First,first@x.com")
	filet.File(t, second, "ID,Name,Email\n002,Second,second@x.com")

	loader := csvroster.New([]string{filepath.Join(dir, "missing.csv"), first, second})

	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "First", got[0].Name)
}

func TestLoad_SkipsEmptyCandidates(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "employees.csv")
	filet.File(t, path, sampleCSV)

	got, err := csvroster.New([]string{"", path}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLoad_ReReadsOnEveryCall(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "employees.csv")
	filet.File(t, path, sampleCSV)
	loader := csvroster.New([]string{path})

	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, os.WriteFile(path, []byte("ID,Name,Email\n009,Zed,zed@x.com"), 0o600))

	got, err = loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "009", got[0].ID)
}

func TestLoad_NotFoundNamesAllAttemptedPaths(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")

	_, err := csvroster.New([]string{a, "", b}).Load(context.Background())
	require.Error(t, err)

	var nf *csvroster.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{a, b}, nf.Attempted)
	assert.ErrorIs(t, err, employee.ErrRosterUnavailable)
	assert.Contains(t, err.Error(), a)
	assert.Contains(t, err.Error(), b)
}

func TestLoad_NoCandidates(t *testing.T) {
	_, err := csvroster.New(nil).Load(context.Background())
	assert.ErrorIs(t, err, employee.ErrRosterUnavailable)
}

func TestLoad_ReadErrorIsUnavailable(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")

	// A directory exists but cannot be read as a file.
	_, err := csvroster.New([]string{dir}).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrRosterUnavailable)
}

func TestLoad_CancelledContext(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "employees.csv")
	filet.File(t, path, sampleCSV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := csvroster.New([]string{path}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, employee.ErrRosterUnavailable)
}

// ── Inspect ──────────────────────────────────────────────────────────────────

func TestInspect(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	present := filepath.Join(dir, "present.csv")
	missing := filepath.Join(dir, "missing.csv")
	filet.File(t, present, sampleCSV)

	got := csvroster.New([]string{missing, "", present}).Inspect(context.Background())

	assert.Equal(t, []employee.Candidate{
		{Path: missing, Exists: false},
		{Path: present, Exists: true},
	}, got)
}

// ── DefaultCandidates ─────────────────────────────────────────────────────────

func TestDefaultCandidates_Order(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	exe, err := os.Executable()
	require.NoError(t, err)
	exeDir := filepath.Dir(exe)

	got := csvroster.DefaultCandidates("/override/roster.csv", "staff.csv")

	assert.Equal(t, []string{
		"/override/roster.csv",
		filepath.Join(wd, "staff.csv"),
		filepath.Join(exeDir, "..", "staff.csv"),
		filepath.Join(exeDir, "staff.csv"),
	}, got)
}

func TestDefaultCandidates_NoOverrideUsesDefaultFileName(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got := csvroster.DefaultCandidates("", "")

	require.Len(t, got, 3)
	assert.Equal(t, filepath.Join(wd, csvroster.DefaultFileName), got[0])
}
