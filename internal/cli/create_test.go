package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitereact-labs/create-vite-react/internal/config"
	"github.com/vitereact-labs/create-vite-react/internal/project"
	"github.com/vitereact-labs/create-vite-react/internal/prompt"
)

func defaultOptions() createOptions {
	return createOptions{DefaultDir: "vite-react-app"}
}

// writeTemplate lays out the minimal template used by the end-to-end cases.
func writeTemplate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":   "<html></html>",
		"src/main.js":  "console.log('main')",
		"package.json": `{"name":"template"}`,
		"_gitignore":   "node_modules\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func manifestName(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	var pkg map[string]any
	require.NoError(t, json.Unmarshal(data, &pkg))
	name, _ := pkg["name"].(string)
	return name
}

func TestCreateNewDirectoryFromPrompt(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd}
	opts := defaultOptions()
	opts.TemplateDir = writeTemplate(t)

	var out bytes.Buffer
	err := runCreate(pc, strings.NewReader("my-app\n"), &out, opts)
	require.NoError(t, err)

	root := filepath.Join(cwd, "my-app")
	assert.FileExists(t, filepath.Join(root, "index.html"))
	assert.FileExists(t, filepath.Join(root, "src", "main.js"))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(root, "_gitignore"))
	assert.Equal(t, "my-app", manifestName(t, root))

	assert.Contains(t, out.String(), "Scaffolding project into "+root)
	assert.Contains(t, out.String(), "Success!")
	assert.Contains(t, out.String(), "cd my-app")
	assert.Contains(t, out.String(), "npm run dev")
}

func TestCreateDefaultProjectName(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd}

	// Empty project name, then the TypeScript question.
	err := runCreate(pc, strings.NewReader("\n\n"), &bytes.Buffer{}, defaultOptions())
	require.NoError(t, err)

	root := filepath.Join(cwd, "vite-react-app")
	assert.Equal(t, "vite-react-app", manifestName(t, root))
	assert.FileExists(t, filepath.Join(root, "src", "main.jsx"))
}

func TestCreateTypeScriptVariant(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd, Args: []string{"ts-app"}}

	err := runCreate(pc, strings.NewReader("yes\n"), &bytes.Buffer{}, defaultOptions())
	require.NoError(t, err)

	root := filepath.Join(cwd, "ts-app")
	assert.FileExists(t, filepath.Join(root, "src", "main.tsx"))
	assert.FileExists(t, filepath.Join(root, "tsconfig.json"))
	assert.Equal(t, "ts-app", manifestName(t, root))
}

func TestCreateCurrentDirectoryWithOnlyMetadata(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "current-app")
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, project.MetadataDir), 0755))
	pc := project.Context{Cwd: cwd, Args: []string{"."}}
	opts := defaultOptions()
	opts.Template = "js"

	var out bytes.Buffer
	// No input: any question would cancel the run.
	err := runCreate(pc, strings.NewReader(""), &out, opts)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "is not empty")
	assert.NotContains(t, out.String(), "cd ")
	assert.DirExists(t, filepath.Join(cwd, project.MetadataDir))
	assert.FileExists(t, filepath.Join(cwd, "index.html"))
	assert.Equal(t, "current-app", manifestName(t, cwd))
}

func TestCreatePackageNamePrompt(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd, Args: []string{"My Cool App"}}
	opts := defaultOptions()
	opts.Template = "js"

	var out bytes.Buffer
	// Accept the suggested package name.
	err := runCreate(pc, strings.NewReader("\n"), &out, opts)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Package name: (my-cool-app)")
	assert.Equal(t, "my-cool-app", manifestName(t, filepath.Join(cwd, "My Cool App")))
}

func TestCreatePackageNameRetriesInvalidInput(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd, Args: []string{"Bad Name"}}
	opts := defaultOptions()
	opts.Template = "js"

	var out bytes.Buffer
	err := runCreate(pc, strings.NewReader("Still Bad\n@acme/web\n"), &out, opts)
	require.NoError(t, err)

	assert.Contains(t, out.String(), errInvalidPackageName.Error())
	assert.Equal(t, "@acme/web", manifestName(t, filepath.Join(cwd, "Bad Name")))
}

func TestCreateOverwriteDeclined(t *testing.T) {
	cwd := t.TempDir()
	target := filepath.Join(cwd, "existing")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "notes.txt"), []byte("keep me"), 0644))
	pc := project.Context{Cwd: cwd, Args: []string{"existing"}}

	var out bytes.Buffer
	err := runCreate(pc, strings.NewReader("n\n"), &out, defaultOptions())
	require.ErrorIs(t, err, prompt.ErrCancelled)

	assert.Contains(t, out.String(), `Target directory "existing" is not empty`)
	data, readErr := os.ReadFile(filepath.Join(target, "notes.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "keep me", string(data))

	entries, readErr := os.ReadDir(target)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestCreateOverwriteAccepted(t *testing.T) {
	cwd := t.TempDir()
	target := filepath.Join(cwd, "existing")
	require.NoError(t, os.MkdirAll(filepath.Join(target, project.MetadataDir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "notes.txt"), nil, 0644))
	pc := project.Context{Cwd: cwd, Args: []string{"existing/"}}
	opts := defaultOptions()
	opts.Template = "ts"

	err := runCreate(pc, strings.NewReader("y\n"), &bytes.Buffer{}, opts)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(target, "notes.txt"))
	assert.DirExists(t, filepath.Join(target, project.MetadataDir))
	assert.Equal(t, "existing", manifestName(t, target))
}

func TestCreateCurrentDirectoryOverwriteMessage(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "notes.txt"), nil, 0644))
	pc := project.Context{Cwd: cwd, Args: []string{"."}}

	var out bytes.Buffer
	err := runCreate(pc, strings.NewReader("no\n"), &out, defaultOptions())
	require.ErrorIs(t, err, prompt.ErrCancelled)
	assert.Contains(t, out.String(), "Current directory is not empty")
}

func TestCreateExcludesFromTemplateDir(t *testing.T) {
	tpl := writeTemplate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(tpl, "node_modules", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tpl, "node_modules", "pkg", "file.js"), nil, 0644))

	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd, Args: []string{"app"}}
	opts := defaultOptions()
	opts.TemplateDir = tpl
	opts.Exclude = config.DefaultExclude

	require.NoError(t, runCreate(pc, strings.NewReader(""), &bytes.Buffer{}, opts))

	assert.NoDirExists(t, filepath.Join(cwd, "app", "node_modules"))
	assert.FileExists(t, filepath.Join(cwd, "app", "src", "main.js"))
}

func TestCreateUnknownTemplate(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd, Args: []string{"app"}}
	opts := defaultOptions()
	opts.Template = "vue"

	err := runCreate(pc, strings.NewReader(""), &bytes.Buffer{}, opts)
	require.Error(t, err)
	assert.NoDirExists(t, filepath.Join(cwd, "app"))
}

func TestCreateTemplateDirMissing(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd, Args: []string{"app"}}
	opts := defaultOptions()
	opts.TemplateDir = filepath.Join(cwd, "nope")

	err := runCreate(pc, strings.NewReader(""), &bytes.Buffer{}, opts)
	assert.Error(t, err)
}

func TestCreateClosedInputCancels(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd}

	err := runCreate(pc, strings.NewReader(""), &bytes.Buffer{}, defaultOptions())
	require.ErrorIs(t, err, prompt.ErrCancelled)

	entries, readErr := os.ReadDir(cwd)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestCreateBlankDefaultDirKeepsWorkingDirectory(t *testing.T) {
	for _, dir := range []string{"", "/", "  "} {
		t.Run(fmt.Sprintf("%q", dir), func(t *testing.T) {
			cwd := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(cwd, "index.html"), []byte("MINE"), 0644))
			pc := project.Context{Cwd: cwd}
			opts := defaultOptions()
			opts.DefaultDir = dir

			// Accept the default name, then the TypeScript question.
			err := runCreate(pc, strings.NewReader("\n\n"), &bytes.Buffer{}, opts)
			require.NoError(t, err)

			assert.FileExists(t, filepath.Join(cwd, "vite-react-app", "index.html"))
			data, readErr := os.ReadFile(filepath.Join(cwd, "index.html"))
			require.NoError(t, readErr)
			assert.Equal(t, "MINE", string(data))
		})
	}
}

func TestCreateDefaultDirIsFormatted(t *testing.T) {
	cwd := t.TempDir()
	pc := project.Context{Cwd: cwd}
	opts := defaultOptions()
	opts.DefaultDir = "app/ "

	var out bytes.Buffer
	// No package name question: the formatted default is already valid.
	err := runCreate(pc, strings.NewReader("\n\n"), &out, opts)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Project name: (app)")
	assert.NotContains(t, out.String(), "Package name:")
	assert.Equal(t, "app", manifestName(t, filepath.Join(cwd, "app")))
}
