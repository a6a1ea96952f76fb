package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// isolateConfig points the config home at a temporary directory and masks
// settings from the caller's environment.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("CREATE_VITE_REACT_HOME", t.TempDir())
	t.Setenv("CREATE_VITE_REACT_TEMPLATE", "")
	t.Setenv("CREATE_VITE_REACT_EXCLUDE", "")
	t.Setenv("CREATE_VITE_REACT_DEFAULT_DIR", "")
}

func resetFlags() {
	templateFlag, templateDirFlag, excludeFlags, verbose = "", "", nil, false
	versionShort, versionJSON = false, false
}

func executeRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootScaffoldsProject(t *testing.T) {
	isolateConfig(t)
	cwd := t.TempDir()
	chdir(t, cwd)

	out, err := executeRoot(t, "", "web", "--template", "ts")
	require.NoError(t, err)

	assert.Contains(t, out, "Success!")
	assert.FileExists(t, filepath.Join(cwd, "web", "src", "main.tsx"))
	assert.FileExists(t, filepath.Join(cwd, "web", ".gitignore"))
}

func TestRootCancelledIsNotAnError(t *testing.T) {
	isolateConfig(t)
	chdir(t, t.TempDir())

	out, err := executeRoot(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Operation cancelled")
}

func TestRootRejectsExtraArgs(t *testing.T) {
	isolateConfig(t)
	chdir(t, t.TempDir())

	_, err := executeRoot(t, "", "one", "two")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	out, err := executeRoot(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "create-vite-react version 1.2.3 (commit: abc123, built: 2026-01-01)\n", out)

	out, err = executeRoot(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = executeRoot(t, "", "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","date":"2026-01-01","module":"github.com/vitereact-labs/create-vite-react"}`, out)
}

func TestConfigSetAndGet(t *testing.T) {
	isolateConfig(t)

	out, err := executeRoot(t, "", "config", "set", "template", "ts")
	require.NoError(t, err)
	assert.Equal(t, "Set template = ts\n", out)

	out, err = executeRoot(t, "", "config", "get", "template")
	require.NoError(t, err)
	assert.Equal(t, "ts\n", out)
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	isolateConfig(t)
	_, err := executeRoot(t, "", "config", "set", "colour", "blue")
	assert.ErrorContains(t, err, "unknown config key")

	_, err = executeRoot(t, "", "config", "set", "template", "vue")
	assert.Error(t, err)

	for _, dir := range []string{"", "/", "  "} {
		_, err = executeRoot(t, "", "config", "set", "default_dir", dir)
		assert.ErrorContains(t, err, "default_dir must name a directory")
	}

	out, err := executeRoot(t, "", "config", "set", "default_dir", "web")
	require.NoError(t, err)
	assert.Equal(t, "Set default_dir = web\n", out)
}

func TestConfigGetExcludeDefaults(t *testing.T) {
	isolateConfig(t)
	out, err := executeRoot(t, "", "config", "get", "exclude")
	require.NoError(t, err)
	assert.Contains(t, out, "node_modules")
}
