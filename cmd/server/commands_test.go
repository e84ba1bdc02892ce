package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/pto-projector/api"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config="))
	err := cmd.Execute()
	return out.String(), err
}

func TestProjectCmd_Table(t *testing.T) {
	// GIVEN: One workday before a single vacation day
	out, err := run(t, "project",
		"--pto", "0", "--sick", "0",
		"--pto-rate", "1.0", "--sick-rate", "0.5",
		"--today", "2025-03-03",
		"--date", "2025-03-04", "--date", "2025-02-30")

	// THEN: One row, plus a note about the bad date
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, out)
	assert.Contains(t, lines[0], "DATE")
	assert.Equal(t, []string{"2025-03-04", "0.00", "4.00", "1", "8.00", "4.00", "8.00", "0.00"}, strings.Fields(lines[1]))
	assert.Equal(t, `skipped date "2025-02-30"`, lines[2])
}

func TestProjectCmd_DateBeyondHorizon(t *testing.T) {
	out, err := run(t, "project", "--today", "2025-03-03", "--date", "2040-01-01")

	require.NoError(t, err)
	assert.Equal(t, "no projection\nskipped date \"2040-01-01\"\n", out)
}

func TestProjectCmd_UnparseableNumber(t *testing.T) {
	out, err := run(t, "project", "--pto-rate", "abc", "--date", "2025-03-04", "--today", "2025-03-03")

	require.NoError(t, err)
	assert.Equal(t, "no projection\n", out)
}

func TestProjectCmd_JSON(t *testing.T) {
	out, err := run(t, "project",
		"--pto", "-45", "--sick", "40",
		"--today", "2025-03-04", "--date", "2025-03-04",
		"-o", "json")
	require.NoError(t, err)

	var resp api.ProjectionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "-45.00", resp.Results[0].PTOBalance)
	assert.Equal(t, "27.00", resp.Results[0].SickBalance)
}

func TestProjectCmd_YAML(t *testing.T) {
	out, err := run(t, "project", "--pto", "20", "--today", "2025-03-04", "--date", "2025-03-04", "-o", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "results:")
	assert.Contains(t, out, "2025-03-04")
	assert.Contains(t, out, "pto_balance:")
	assert.Contains(t, out, "12.00")
}

func TestProjectCmd_Errors(t *testing.T) {
	_, err := run(t, "project", "--today", "2025-13-01")
	assert.ErrorContains(t, err, "--today")

	_, err = run(t, "project", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestHolidaysCmd(t *testing.T) {
	out, err := run(t, "holidays")

	require.NoError(t, err)
	assert.Contains(t, out, "company holidays, 2025")
	assert.Contains(t, out, "2025-11-28  Fri  Native American Heritage Day")
	assert.Equal(t, 11, strings.Count(out, "\n"))
}

func TestHolidaysCmd_Federal(t *testing.T) {
	t.Setenv("PTO_HOLIDAYS_SOURCE", "us-federal")
	t.Setenv("PTO_HOLIDAYS_YEAR", "2026")

	out, err := run(t, "holidays")

	require.NoError(t, err)
	assert.Contains(t, out, "us-federal holidays, 2026")
	assert.Contains(t, out, "2026-07-03")
	assert.NotContains(t, out, "Native American Heritage Day")
}

func TestRoot_UnknownHolidaySource(t *testing.T) {
	t.Setenv("PTO_HOLIDAYS_SOURCE", "lunar")

	_, err := run(t, "holidays")
	assert.Error(t, err)
}
