package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headhunt/headhunt-helper/internal/models"
)

func exportedRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	svc := NewCSVExportService(path)

	applied := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	require.NoError(t, svc.Export([]models.JobApplication{
		{ID: 1, CompanyName: "Acme", Position: "Engineer", JobURL: "https://a",
			Status: models.StatusApplied, AppliedTime: applied, Location: "Remote"},
		{ID: 2, CompanyName: "Globex", Position: "Manager", JobURL: "https://b",
			Status: models.StatusRejected, AppliedTime: applied},
	}))

	rows := exportedRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"1", "Acme", "Engineer", "https://a", "APPLIED",
		"2026-08-28 10:30:00", "Remote", "", "", "", ""}, rows[1])
	assert.Equal(t, "2", rows[2][0])
}

func TestExportEscapesSpecialCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	svc := NewCSVExportService(path)

	require.NoError(t, svc.Export([]models.JobApplication{{
		ID:          1,
		CompanyName: `Acme, Inc.`,
		Position:    `Senior "10x" Engineer`,
		JobURL:      "https://a",
		Status:      models.StatusApplied,
		AppliedTime: time.Now(),
		Notes:       "line one\nline two",
	}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, `"Acme, Inc."`)
	assert.Contains(t, content, `""10x""`)

	// The escaped fields survive a round trip through a CSV reader.
	rows := exportedRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, `Acme, Inc.`, rows[1][1])
	assert.Equal(t, `Senior "10x" Engineer`, rows[1][2])
	assert.Equal(t, "line one\nline two", rows[1][10])
}

func TestExportOverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	svc := NewCSVExportService(path)

	now := time.Now()
	require.NoError(t, svc.Export([]models.JobApplication{
		{ID: 1, CompanyName: "Acme", Position: "Engineer", JobURL: "https://a", Status: models.StatusApplied, AppliedTime: now},
		{ID: 2, CompanyName: "Globex", Position: "Manager", JobURL: "https://b", Status: models.StatusApplied, AppliedTime: now},
	}))
	require.NoError(t, svc.Export([]models.JobApplication{
		{ID: 3, CompanyName: "Initech", Position: "Analyst", JobURL: "https://c", Status: models.StatusApplied, AppliedTime: now},
	}))

	rows := exportedRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "Initech", rows[1][1])
}

func TestExportEmptyListWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, NewCSVExportService(path).Export(nil))

	rows := exportedRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}

func TestExportUnwritablePathReturnsError(t *testing.T) {
	svc := NewCSVExportService(filepath.Join(t.TempDir(), "missing", "out.csv"))
	err := svc.Export(nil)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "create csv file"))
}
