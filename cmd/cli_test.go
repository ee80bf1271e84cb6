package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	root := newStorageRoot(t)

	stdout, _, err := executeCLI(t, root, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestAppLifecycle(t *testing.T) {
	root := newStorageRoot(t)

	stdout, _, err := executeCLI(t, root, "app", "create", "demo", "--name", "Demo")
	require.NoError(t, err)
	assert.Equal(t, "created app demo (Demo)\n", stdout)
	assert.FileExists(t, filepath.Join(root, "demo.db"))

	_, _, err = executeCLI(t, root, "app", "create", "demo", "--name", "Again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app already exists")

	stdout, _, err = executeCLI(t, root, "app", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "apps: 1")
	assert.Contains(t, stdout, "Demo (demo)")
	assert.Contains(t, stdout, "0 secrets")

	stdout, _, err = executeCLI(t, root, "app", "get", "demo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name:    Demo")

	stdout, _, err = executeCLI(t, root, "app", "delete", "demo")
	require.NoError(t, err)
	assert.Equal(t, "deleted app demo\n", stdout)
	assert.NoFileExists(t, filepath.Join(root, "demo.db"))

	_, _, err = executeCLI(t, root, "app", "get", "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app not found")
}

func TestAppCreateDefaultsNameToID(t *testing.T) {
	root := newStorageRoot(t)

	stdout, _, err := executeCLI(t, root, "app", "create", "svc", "--json")
	require.NoError(t, err)

	var created map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &created))
	assert.Equal(t, "svc", created["id"])
	assert.Equal(t, "svc", created["name"])
}

func TestAppCreateRejectsInvalidID(t *testing.T) {
	root := newStorageRoot(t)

	for _, id := range []string{"my app", "../escape", "app.db"} {
		_, _, err := executeCLI(t, root, "app", "create", id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must contain only alphanumeric characters")
	}

	entries, err := os.ReadDir(root)
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestAppListJSONOutput(t *testing.T) {
	root := newStorageRoot(t)
	mustRun(t, root, "app", "create", "beta", "--name", "Beta")
	mustRun(t, root, "app", "create", "alpha", "--name", "Alpha")
	mustRun(t, root, "secret", "set", "alpha", "PORT", "3000")

	stdout, _, err := executeCLI(t, root, "app", "list", "--json")
	require.NoError(t, err)

	var summaries []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		SecretCount int    `json:"secretCount"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].ID)
	assert.Equal(t, 1, summaries[0].SecretCount)
	assert.Equal(t, "beta", summaries[1].ID)
	assert.Equal(t, 0, summaries[1].SecretCount)
}

func TestSecretLifecycle(t *testing.T) {
	root := newStorageRoot(t)
	mustRun(t, root, "app", "create", "demo", "--name", "Demo")

	stdout, _, err := executeCLI(t, root, "secret", "set", "demo", "PORT", "3000")
	require.NoError(t, err)
	assert.Equal(t, "stored PORT in demo\n", stdout)
	mustRun(t, root, "secret", "set", "demo", "HOST", "localhost")
	mustRun(t, root, "secret", "set", "demo", "PORT", "4000")

	stdout, _, err = executeCLI(t, root, "secret", "get", "demo", "PORT")
	require.NoError(t, err)
	assert.Equal(t, "4000\n", stdout)

	stdout, _, err = executeCLI(t, root, "secret", "list", "demo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 secrets")
	assert.Contains(t, stdout, "HOST")
	assert.NotContains(t, stdout, "localhost")

	stdout, _, err = executeCLI(t, root, "secret", "list", "demo", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "localhost")

	stdout, _, err = executeCLI(t, root, "secret", "list", "demo", "--json")
	require.NoError(t, err)
	var secrets []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &secrets))
	assert.Len(t, secrets, 2)

	mustRun(t, root, "secret", "delete", "demo", "PORT")
	mustRun(t, root, "secret", "delete", "demo", "PORT")

	_, _, err = executeCLI(t, root, "secret", "get", "demo", "PORT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret not found")
}

func TestSecretSetFromStdin(t *testing.T) {
	root := newStorageRoot(t)
	mustRun(t, root, "app", "create", "demo")

	_, _, err := executeCLIWithInput(t, root, "multi word value\n", "secret", "set", "demo", "TOKEN", "--stdin")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, root, "secret", "get", "demo", "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "multi word value\n", stdout)
}

func TestSecretCommandsOnMissingApp(t *testing.T) {
	root := newStorageRoot(t)

	for _, args := range [][]string{
		{"secret", "list", "ghost"},
		{"secret", "get", "ghost", "K"},
		{"secret", "set", "ghost", "K", "v"},
		{"secret", "delete", "ghost", "K"},
	} {
		_, _, err := executeCLI(t, root, args...)
		require.Error(t, err, strings.Join(args, " "))
		assert.Contains(t, err.Error(), "app not found")
	}
}

func TestSecretSetRejectsInvalidKey(t *testing.T) {
	root := newStorageRoot(t)
	mustRun(t, root, "app", "create", "demo")

	_, _, err := executeCLI(t, root, "secret", "set", "demo", "BAD.KEY", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key must contain only alphanumeric characters")
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newStorageRoot(t)
	mustRun(t, source, "app", "create", "api", "--name", "API")
	mustRun(t, source, "secret", "set", "api", "TOKEN", "s3cr3t")
	mustRun(t, source, "app", "create", "web", "--name", "Web")

	bundlePath := filepath.Join(t.TempDir(), "bundle.toml")
	_, stderr, err := executeCLI(t, source, "export", "--output", bundlePath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "exported 2 app(s)")

	target := newStorageRoot(t)
	stdout, _, err := executeCLI(t, target, "import", bundlePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "created: api, web")
	assert.Contains(t, stdout, "secrets written: 1")

	stdout, _, err = executeCLI(t, target, "secret", "get", "api", "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t\n", stdout)

	stdout, _, err = executeCLI(t, target, "import", bundlePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "skipped: api, web")
}

func TestExportToStdoutAndImportFromStdin(t *testing.T) {
	source := newStorageRoot(t)
	mustRun(t, source, "app", "create", "api")
	mustRun(t, source, "secret", "set", "api", "PORT", "3000")

	bundle, _, err := executeCLI(t, source, "export", "api")
	require.NoError(t, err)
	assert.Contains(t, bundle, "[[apps]]")

	target := newStorageRoot(t)
	mustRun(t, target, "app", "create", "api")
	mustRun(t, target, "secret", "set", "api", "PORT", "1")

	stdout, _, err := executeCLIWithInput(t, target, bundle, "import", "-", "--overwrite")
	require.NoError(t, err)
	assert.Contains(t, stdout, "updated: api")

	stdout, _, err = executeCLI(t, target, "secret", "get", "api", "PORT")
	require.NoError(t, err)
	assert.Equal(t, "3000\n", stdout)
}

func TestExportUnknownApp(t *testing.T) {
	root := newStorageRoot(t)

	_, _, err := executeCLI(t, root, "export", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app not found")
}

func TestImportRejectsNewerBundle(t *testing.T) {
	root := newStorageRoot(t)
	path := filepath.Join(t.TempDir(), "future.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, _, err := executeCLI(t, root, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bundle schema version 99")
}

func TestRunInjectsSecretsIntoChildEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	root := newStorageRoot(t)
	mustRun(t, root, "app", "create", "demo")
	mustRun(t, root, "secret", "set", "demo", "DSEC_TEST_PORT", "3000")
	t.Setenv("DSEC_TEST_PORT", "overridden")
	t.Setenv("DSEC_TEST_KEPT", "kept")

	stdout, _, err := executeCLI(t, root, "run", "demo", "--", "sh", "-c", `printf '%s %s' "$DSEC_TEST_PORT" "$DSEC_TEST_KEPT"`)
	require.NoError(t, err)
	assert.Equal(t, "3000 kept", stdout)
}

func TestRunRequiresCommand(t *testing.T) {
	root := newStorageRoot(t)

	_, _, err := executeCLI(t, root, "run", "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run requires an app and a command")
}

func TestRunOnMissingApp(t *testing.T) {
	root := newStorageRoot(t)

	_, _, err := executeCLI(t, root, "run", "ghost", "--", "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app not found")
}

func TestServeFailsOnInvalidListenAddress(t *testing.T) {
	root := newStorageRoot(t)

	_, _, err := executeCLI(t, root, "serve", "--listen", "127.0.0.1:notaport")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on 127.0.0.1:notaport")
}

func TestMalformedConfigIsReported(t *testing.T) {
	root := newStorageRoot(t)
	setTestEnv(t, root)
	configHome := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "dsec"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "dsec", "config.toml"), []byte("[log\n"), 0o600))
	t.Setenv("XDG_CONFIG_HOME", configHome)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"app", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestInvalidLogLevelFromEnvironment(t *testing.T) {
	root := newStorageRoot(t)
	setTestEnv(t, root)
	t.Setenv("DSEC_LOG_LEVEL", "loud")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"app", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func newStorageRoot(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "apps")
}

func mustRun(t *testing.T, root string, args ...string) {
	t.Helper()

	_, stderr, err := executeCLI(t, root, args...)
	require.NoError(t, err, "dsec %s: %s", strings.Join(args, " "), stderr)
}

func executeCLI(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, root, "", args...)
}

func executeCLIWithInput(t *testing.T, root string, input string, args ...string) (string, string, error) {
	t.Helper()

	setTestEnv(t, root)
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// setTestEnv isolates config and storage from the developer's machine.
func setTestEnv(t *testing.T, root string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("DSEC_STORAGE_ROOT", root)
	t.Setenv("DSEC_LOG_LEVEL", "error")
	t.Setenv("DSEC_LOG_FORMAT", "console")
	t.Setenv("DSEC_METRICS_ENABLED", "false")
}
