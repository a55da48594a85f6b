package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/headhunt/headhunt-helper/internal/models"
	"github.com/headhunt/headhunt-helper/internal/repository"
)

var dbSeq atomic.Int64

// newTestDB opens a uniquely-named shared in-memory sqlite database so
// gorm's connection pool sees one store per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.JobApplication{}))
	return db
}

func newTestApps(t *testing.T) (*ApplicationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	csv := NewCSVExportService(filepath.Join(t.TempDir(), "job_applications.csv"))
	return NewApplicationService(repository.NewApplicationRepository(db), csv), db
}

func countApps(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.JobApplication{}).Count(&n).Error)
	return n
}

// fakeCompleter stands in for the model API.
type fakeCompleter struct {
	reply  string
	err    error
	prompt string // last prompt seen
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
