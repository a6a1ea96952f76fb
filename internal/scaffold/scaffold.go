package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vitereact-labs/create-vite-react/internal/manifest"
)

// gitignoreTemplateName is how templates ship their .gitignore; npm drops
// files named .gitignore when publishing, so the rename happens on write.
const gitignoreTemplateName = "_gitignore"

// Options describes one materialization.
type Options struct {
	Root        string // absolute target directory
	Overwrite   bool   // empty Root before populating
	Source      fs.FS  // filesystem holding the template
	TemplateDir string // template directory inside Source ("." for its root)
	PackageName string // value written to package.json "name"
	Exclude     []Pattern
	Logger      logrus.FieldLogger
}

// Result holds the outcome of a materialization.
type Result struct {
	Root     string
	Files    []string // top-level entries written into Root
	Warnings []string
}

// Materialize prepares opts.Root, copies the template into it and writes
// the patched package.json.
func Materialize(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}
	log = log.WithField("root", opts.Root)

	entries, err := fs.ReadDir(opts.Source, opts.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", opts.TemplateDir, err)
	}

	log.WithField("overwrite", opts.Overwrite).Debug("preparing target directory")
	if err := Prepare(opts.Root, opts.Overwrite); err != nil {
		return nil, err
	}

	result := &Result{Root: opts.Root}
	c := newCopier(opts.Source, opts.Exclude, log)

	for _, entry := range entries {
		if entry.Name() == manifest.FileName {
			continue
		}
		src := path.Join(opts.TemplateDir, entry.Name())
		if MatchesPatterns(src, opts.Exclude) {
			log.WithField("path", src).Debug("excluded")
			continue
		}

		outName := TargetName(entry.Name())
		if err := c.copyEntry(src, filepath.Join(opts.Root, outName)); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, outName)
	}

	warnings, err := writeManifest(opts)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, manifest.FileName)
	result.Warnings = warnings

	log.WithField("files", len(result.Files)).Debug("template materialized")
	return result, nil
}

// Prepare makes root ready to receive a template. With overwrite set, its
// contents are removed first (the metadata directory survives). root and
// any missing parents are created.
func Prepare(root string, overwrite bool) error {
	if overwrite {
		if err := EmptyDir(root); err != nil {
			return fmt.Errorf("emptying %s: %w", root, err)
		}
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", root, err)
	}
	return nil
}

// TargetName maps a top-level template entry name to the name it is
// written under.
func TargetName(name string) string {
	if name == gitignoreTemplateName {
		return ".gitignore"
	}
	return name
}

// writeManifest patches the template's package.json into Root and returns
// validation problems of the result as warnings.
func writeManifest(opts Options) ([]string, error) {
	src := path.Join(opts.TemplateDir, manifest.FileName)
	data, err := fs.ReadFile(opts.Source, src)
	if err != nil {
		return nil, fmt.Errorf("reading template manifest %s: %w", src, err)
	}

	out, err := manifest.Patch(data, opts.PackageName)
	if err != nil {
		return nil, fmt.Errorf("patching template manifest %s: %w", src, err)
	}

	dest := filepath.Join(opts.Root, manifest.FileName)
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dest, err)
	}

	var warnings []string
	valResult, valErr := manifest.Validate(out)
	if valErr != nil {
		warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", manifest.FileName, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			warnings = append(warnings, issue.String())
		}
	}
	return warnings, nil
}
