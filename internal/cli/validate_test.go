package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
dashboard: {
	rulesets: "political-outcome": {
		domain: {min: 0.0, max: 1.0}
		rules: [
			{bound: 0.65, label: "Dem-Won", token: "outcome-dem-won"},
			{bound: 0.52, label: "Lean Dem", token: "outcome-lean-dem"},
			{bound: 0.48, label: "Contested", token: "outcome-contested"},
			{bound: 0.35, label: "Lean Rep", token: "outcome-lean-rep"},
			{bound: 0.0, label: "Rep-Won", token: "outcome-rep-won"},
		]
	}
	sections: [
		{id: "overview", label: "State Overview"},
		{id: "precincts", label: "Precinct Analysis", subsections: [
			{id: "prec-outcomes", label: "Election Outcomes"},
		]},
	]
}
`

func writeConfigDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dashboard.cue"), []byte(content), 0644))
	return dir
}

func TestValidateValidConfig(t *testing.T) {
	dir := writeConfigDir(t, validConfig)
	out, err := executeCommand(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Configuration valid")
	assert.Contains(t, out, "1 rule set(s)")
	assert.Contains(t, out, "2 section(s)")
}

func TestValidateBadRuleOrder(t *testing.T) {
	dir := writeConfigDir(t, `
dashboard: {
	rulesets: outcome: {
		rules: [
			{bound: 0.35, label: "Lean Rep", token: "outcome-lean-rep"},
			{bound: 0.65, label: "Dem-Won", token: "outcome-dem-won"},
			{bound: 0.0, label: "Rep-Won", token: "outcome-rep-won"},
		]
	}
	sections: [{id: "overview", label: "Overview"}]
}
`)
	out, err := executeCommand(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Configuration invalid")
}

func TestValidateMissingDir(t *testing.T) {
	_, err := executeCommand(t, "validate", "/nonexistent/config")
	require.Error(t, err)
}

func TestValidateJSONOutput(t *testing.T) {
	dir := writeConfigDir(t, validConfig)
	out, err := executeCommand(t, "--format", "json", "validate", dir)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
}

func TestClassifyWithConfigDir(t *testing.T) {
	dir := writeConfigDir(t, validConfig)
	out, err := executeCommand(t, "--config", dir, "classify", "share", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Lean Dem")
}
