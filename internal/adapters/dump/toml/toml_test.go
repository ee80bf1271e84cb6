package toml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/dsec/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 2, 14, 11, 0, 0, 123000000, time.UTC)

func sampleBundle() domain.Bundle {
	return domain.Bundle{Apps: []domain.AppBundle{
		{
			App: domain.App{ID: "demo", Name: "Demo", CreatedAt: createdAt},
			Secrets: []domain.Secret{
				{Key: "HOST", Value: "localhost"},
				{Key: "PORT", Value: "3000", CreatedAt: createdAt, UpdatedAt: createdAt.Add(time.Hour)},
				{Key: "EMPTY", Value: ""},
			},
		},
		{
			App:     domain.App{ID: "bare", Name: "Bare"},
			Secrets: []domain.Secret{},
		},
	}}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBundle()))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleBundle(), got)
}

func TestEncodeWritesVersionedLayout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBundle()))

	out := buf.String()
	assert.Contains(t, out, "version = 1")
	assert.Contains(t, out, "[[apps]]")
	assert.Contains(t, out, "[[apps.secrets]]")
	assert.Regexp(t, `id = ['"]demo['"]`, out)
	assert.Regexp(t, `created_at = ['"]2026-02-14T11:00:00.123Z['"]`, out)
	assert.Regexp(t, `updated_at = ['"]2026-02-14T12:00:00.123Z['"]`, out)
}

func TestDecodeRejectsMalformedTimestamps(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		`app "demo" created_at`: `
[[apps]]
id = "demo"
name = "Demo"
created_at = "yesterday"
`,
		`secret "PORT" in app "demo" created_at`: `
[[apps]]
id = "demo"
name = "Demo"

[[apps.secrets]]
key = "PORT"
value = "3000"
created_at = "2026-13-40"
`,
		`secret "PORT" in app "demo" updated_at`: `
[[apps]]
id = "demo"
name = "Demo"

[[apps.secrets]]
key = "PORT"
value = "3000"
updated_at = "not a time"
`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, name)
		})
	}
}

func TestDecodeMissingVersionDefaultsToCurrent(t *testing.T) {
	t.Parallel()

	doc := `
[[apps]]
id = "demo"
name = "Demo"

[[apps.secrets]]
key = "PORT"
value = "3000"
`
	got, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, got.Apps, 1)
	assert.Equal(t, domain.AppID("demo"), got.Apps[0].App.ID)
	assert.True(t, got.Apps[0].App.CreatedAt.IsZero())
	assert.Equal(t, []domain.Secret{{Key: "PORT", Value: "3000"}}, got.Apps[0].Secrets)
}

func TestDecodeRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("version = 2\n"))
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "unsupported bundle schema version 2")
}

func TestDecodeRejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("[[apps]\nid = "))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("version = 1\n[[apps]]\nid = \"demo\"\nsecret_ref = \"x\"\n"))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "bundle.toml")
	require.NoError(t, WriteFile(path, sampleBundle()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(bundleFileMode), info.Mode().Perm())

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleBundle(), got)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".dsec-bundle-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteFileReplacesExistingBundle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bundle.toml")
	require.NoError(t, WriteFile(path, sampleBundle()))
	require.NoError(t, WriteFile(path, domain.Bundle{}))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got.Apps)
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
