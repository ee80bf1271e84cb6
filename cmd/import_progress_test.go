package cmd

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bnema/dsec/internal/application"
	"github.com/bnema/dsec/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportProgressShowsSourceWhileRunning(t *testing.T) {
	m := newImportProgress(context.Background(), "bundle.toml", 3, nil)

	assert.Contains(t, m.View(), "importing 3 app(s) from bundle.toml")
}

func TestImportProgressTalliesReportWhenFinished(t *testing.T) {
	m := newImportProgress(context.Background(), "stdin", 3, nil)

	next, cmd := m.Update(importFinishedMsg{report: application.ImportReport{
		Created:        []domain.AppID{"api", "web"},
		Skipped:        []domain.AppID{"db"},
		SecretsWritten: 4,
	}})
	require.NotNil(t, cmd)

	finished := next.(importProgress)
	assert.True(t, finished.finished)
	assert.Contains(t, finished.View(), "2 created, 0 updated, 1 skipped")
}

func TestImportProgressReportsFailure(t *testing.T) {
	m := newImportProgress(context.Background(), "bundle.toml", 1, nil)

	next, _ := m.Update(importFinishedMsg{
		report: application.ImportReport{SecretsWritten: 2},
		err:    errors.New("disk full"),
	})

	assert.Contains(t, next.View(), "import from bundle.toml stopped after 2 secret(s)")
}

func TestTrackImportReturnsReportAndError(t *testing.T) {
	want := application.ImportReport{Created: []domain.AppID{"api"}, SecretsWritten: 1}

	got, err := trackImport(context.Background(), io.Discard, "bundle.toml", 1, func(context.Context) (application.ImportReport, error) {
		return want, nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	importErr := errors.New("boom")
	_, err = trackImport(context.Background(), io.Discard, "bundle.toml", 1, func(context.Context) (application.ImportReport, error) {
		return application.ImportReport{}, importErr
	})
	require.ErrorIs(t, err, importErr)
}
