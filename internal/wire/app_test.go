package wire_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/employee-mcp/internal/config"
	employeesvc "github.com/alanyang/employee-mcp/internal/service/employee"
	"github.com/alanyang/employee-mcp/internal/wire"
)

func testConfig(transport, rosterPath string) *config.Config {
	return &config.Config{
		Env:       "local",
		Transport: transport,
		Roster:    config.RosterConfig{Path: rosterPath, FileName: "no-such-roster-file.csv"},
		HTTP:      config.HTTPConfig{Addr: "127.0.0.1:0"},
	}
}

func TestBuild_Stdio(t *testing.T) {
	app := wire.Build(testConfig(config.TransportStdio, ""))

	require.NotNil(t, app.MCPServer)
	require.NotNil(t, app.EmployeeSvc)
	assert.Nil(t, app.Server, "stdio transport must not open a listener")
}

func TestBuild_HTTP(t *testing.T) {
	app := wire.Build(testConfig(config.TransportHTTP, ""))

	require.NotNil(t, app.Server)
	assert.Equal(t, "127.0.0.1:0", app.Server.Addr)
	assert.NotNil(t, app.Server.Handler)
}

func TestBuild_OverridePathIsUsedFirst(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "override.csv")
	filet.File(t, path, "ID,Name,Email\n001,Alice Smith,alice@x.com")

	app := wire.Build(testConfig(config.TransportStdio, path))

	res := app.EmployeeSvc.Load(context.Background())
	require.Equal(t, employeesvc.StatusOK, res.Status)
	assert.Len(t, res.Roster, 1)
}
