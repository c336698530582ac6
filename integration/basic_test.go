//go:build basic

package integration

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFairlensWithSQLite runs the CLI end to end against a throwaway SQLite
// database file.
func TestFairlensWithSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fairlens.db")
	env := []string{
		"FAIRLENS_BACKEND=sqlite",
		"FAIRLENS_DB_CONNECT=" + dbPath,
	}

	require.NoError(t, runFairlensCommand(t, env, "records", "migrate"))
	require.NoError(t, runFairlensCommand(t, env, "records", "status"))
	require.NoError(t, runFairlensCommand(t, env, "report", "--company", "acme"))
	require.NoError(t, runFairlensCommand(t, env, "trends", "--company", "acme"))
}

// TestComplianceGateFailsOnEmptyStore checks that the compliance command
// exits non-zero when the period has no reports.
func TestComplianceGateFailsOnEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fairlens.db")
	env := []string{
		"FAIRLENS_BACKEND=sqlite",
		"FAIRLENS_DB_CONNECT=" + dbPath,
	}

	require.NoError(t, runFairlensCommand(t, env, "records", "migrate"))

	cmd := exec.Command(getFairlensBinary(), "compliance", "--company", "acme")
	cmd.Dir = "../"
	cmd.Env = append(cmd.Environ(), env...)
	output, err := cmd.CombinedOutput()
	require.Error(t, err, "compliance should fail on an empty store")

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(output), "compliance"), "output should mention compliance: %s", output)
}
