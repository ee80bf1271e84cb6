package application

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/dsec/internal/adapters/storage/sqlite"
	"github.com/bnema/dsec/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by one millisecond on every reading.
type stepClock struct {
	mu   sync.Mutex
	next time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.next
	c.next = c.next.Add(time.Millisecond)
	return now
}

type services struct {
	apps     *AppService
	secrets  *SecretService
	transfer *TransferService
	clock    *stepClock
}

func newSQLiteServices(t *testing.T) services {
	t.Helper()

	root := filepath.Join(t.TempDir(), "apps")
	units := sqlite.NewUnits(root, nil)
	registry := sqlite.NewRegistry(root, units, nil)
	clock := &stepClock{next: fixedNow}

	return services{
		apps:     NewAppService(units, registry, clock, nil),
		secrets:  NewSecretService(units, clock, nil),
		transfer: NewTransferService(units, registry, clock, nil),
		clock:    clock,
	}
}

func TestAppAndSecretLifecycleOnSQLite(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteServices(t)

	created, err := svc.apps.CreateApp(ctx, "demo", "Demo")
	require.NoError(t, err)
	assert.Equal(t, domain.AppID("demo"), created.ID)
	assert.Equal(t, "Demo", created.Name)
	assert.True(t, fixedNow.Equal(created.CreatedAt))

	_, err = svc.apps.CreateApp(ctx, "demo", "Again")
	require.ErrorIs(t, err, domain.ErrAppAlreadyExists)

	port, err := svc.secrets.AddSecret(ctx, "demo", "PORT", "3000")
	require.NoError(t, err)
	_, err = svc.secrets.AddSecret(ctx, "demo", "HOST", "localhost")
	require.NoError(t, err)

	summaries, err := svc.apps.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].SecretCount)
	assert.Equal(t, "Demo", summaries[0].Name)

	updated, err := svc.secrets.AddSecret(ctx, "demo", "PORT", "4000")
	require.NoError(t, err)
	assert.Equal(t, "4000", updated.Value)
	assert.True(t, port.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(port.UpdatedAt))

	require.NoError(t, svc.secrets.DeleteSecret(ctx, "demo", "PORT"))
	require.NoError(t, svc.secrets.DeleteSecret(ctx, "demo", "PORT"))

	_, err = svc.secrets.RequireSecret(ctx, "demo", "PORT")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)

	remaining, err := svc.secrets.ListSecrets(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "HOST", remaining[0].Key)

	summaries, err = svc.apps.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].SecretCount)

	require.NoError(t, svc.apps.DeleteApp(ctx, "demo"))
	_, ok, err := svc.apps.GetApp(ctx, "demo")
	require.NoError(t, err)
	assert.False(t, ok)

	summaries, err = svc.apps.ListApps(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = svc.secrets.ListSecrets(ctx, "demo")
	require.ErrorIs(t, err, domain.ErrAppNotFound)

	err = svc.apps.DeleteApp(ctx, "demo")
	require.ErrorIs(t, err, domain.ErrAppNotFound)
}

func TestSecretCountTracksDistinctKeysAcrossUpsertsAndDeletes(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteServices(t)

	_, err := svc.apps.CreateApp(ctx, "demo", "Demo")
	require.NoError(t, err)

	steps := []struct {
		op  string
		key string
	}{
		{"set", "A"}, {"set", "B"}, {"set", "A"}, {"delete", "C"},
		{"set", "C"}, {"delete", "A"}, {"set", "D"}, {"delete", "A"},
		{"set", "A"}, {"delete", "B"}, {"set", "B"}, {"set", "B"},
		{"delete", "D"}, {"delete", "C"},
	}

	present := map[string]struct{}{}
	for i, step := range steps {
		switch step.op {
		case "set":
			_, err = svc.secrets.AddSecret(ctx, "demo", step.key, fmt.Sprintf("v%d", i))
			present[step.key] = struct{}{}
		case "delete":
			err = svc.secrets.DeleteSecret(ctx, "demo", step.key)
			delete(present, step.key)
		}
		require.NoError(t, err, "step %d", i)

		summaries, err := svc.apps.ListApps(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, len(present), summaries[0].SecretCount, "step %d: %s %s", i, step.op, step.key)
	}
}

func TestGetAppAndListAppsAgreeOnNameAndCreationTime(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteServices(t)

	created, err := svc.apps.CreateApp(ctx, "demo", "Demo Service")
	require.NoError(t, err)

	got, ok, err := svc.apps.GetApp(ctx, "demo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Demo Service", got.Name)

	summaries, err := svc.apps.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, got.Name, summaries[0].Name)
	assert.True(t, created.CreatedAt.Equal(summaries[0].CreatedAt))
	assert.True(t, got.CreatedAt.Equal(summaries[0].CreatedAt))
}

func TestRecreatedAppStartsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteServices(t)

	_, err := svc.apps.CreateApp(ctx, "demo", "Demo")
	require.NoError(t, err)
	_, err = svc.secrets.AddSecret(ctx, "demo", "PORT", "3000")
	require.NoError(t, err)
	require.NoError(t, svc.apps.DeleteApp(ctx, "demo"))

	_, err = svc.apps.CreateApp(ctx, "demo", "Demo")
	require.NoError(t, err)

	secrets, err := svc.secrets.ListSecrets(ctx, "demo")
	require.NoError(t, err)
	assert.Empty(t, secrets)
}

func TestExportImportRoundTripOnSQLite(t *testing.T) {
	ctx := context.Background()
	source := newSQLiteServices(t)

	_, err := source.apps.CreateApp(ctx, "api", "API")
	require.NoError(t, err)
	_, err = source.apps.CreateApp(ctx, "web", "Web")
	require.NoError(t, err)
	_, err = source.secrets.AddSecret(ctx, "api", "TOKEN", "s3cr3t")
	require.NoError(t, err)
	_, err = source.secrets.AddSecret(ctx, "web", "EMPTY", "")
	require.NoError(t, err)

	bundle, err := source.transfer.Export(ctx)
	require.NoError(t, err)
	require.Len(t, bundle.Apps, 2)

	target := newSQLiteServices(t)
	target.clock.next = fixedNow.Add(24 * time.Hour)
	report, err := target.transfer.Import(ctx, bundle, false)
	require.NoError(t, err)
	assert.Equal(t, []domain.AppID{"api", "web"}, report.Created)
	assert.Equal(t, 2, report.SecretsWritten)

	got, ok, err := target.apps.GetApp(ctx, "api")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "API", got.Name)
	assert.True(t, bundle.Apps[0].App.CreatedAt.Equal(got.CreatedAt))

	token, err := target.secrets.RequireSecret(ctx, "api", "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", token.Value)
	exported := bundle.Apps[0].Secrets[0]
	assert.True(t, exported.CreatedAt.Equal(token.CreatedAt))
	assert.True(t, exported.UpdatedAt.Equal(token.UpdatedAt))

	empty, err := target.secrets.RequireSecret(ctx, "web", "EMPTY")
	require.NoError(t, err)
	assert.Equal(t, "", empty.Value)
}
