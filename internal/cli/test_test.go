package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: nav-and-classify
steps:
  - op: select_section
    arg: precincts
  - op: classify_share
    value: 0.50
    expect_label: Contested
  - op: classify_group
    arg: black
    expect_token: race-black
`

const failingScenario = `
name: wrong-expectation
steps:
  - op: classify_share
    value: 0.65
    expect_label: Contested
`

func TestTestCommandPassing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nav_and_classify.yaml", passingScenario)

	out, err := executeCommand(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ nav-and-classify")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wrong.yaml", failingScenario)

	out, err := executeCommand(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong-expectation")
}

func TestTestCommandGoldenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nav_and_classify.yaml", passingScenario)

	// First run writes the golden file, second run compares against it.
	_, err := executeCommand(t, "test", dir, "--update")
	require.NoError(t, err)

	goldenPath := filepath.Join(dir, "golden", "nav_and_classify.golden")
	_, statErr := os.Stat(goldenPath)
	require.NoError(t, statErr, "golden file should exist after --update")

	out, err := executeCommand(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ nav-and-classify")
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nav_and_classify.yaml", passingScenario)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0755))
	writeFile(t, filepath.Join(dir, "golden"), "nav_and_classify.golden", "{stale}")

	out, err := executeCommand(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "does not match golden file")
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nav_and_classify.yaml", passingScenario)
	writeFile(t, dir, "wrong.yaml", failingScenario)

	out, err := executeCommand(t, "test", dir, "--filter", "nav_*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandEmptyDir(t *testing.T) {
	out, err := executeCommand(t, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommandMissingDir(t *testing.T) {
	_, err := executeCommand(t, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
