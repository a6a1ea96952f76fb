// Package templates bundles the project skeletons the CLI can generate.
// Each variant is a directory in the embedded FS, listed in templates.yaml.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

// FS holds every template variant. The all: prefix keeps _gitignore and
// other underscore or dot files that embed skips by default.
//
//go:embed all:template-js all:template-ts templates.yaml
var FS embed.FS

const registryFile = "templates.yaml"

// Variant describes one template directory inside FS.
type Variant struct {
	Name        string `yaml:"name"`
	Dir         string `yaml:"dir"`
	Description string `yaml:"description"`
	TypeScript  bool   `yaml:"typescript"`
}

type registry struct {
	Variants []Variant `yaml:"variants"`
}

var (
	loadOnce sync.Once
	variants []Variant
	loadErr  error
)

// Variants returns the registered template variants in declaration order.
func Variants() ([]Variant, error) {
	loadOnce.Do(func() {
		variants, loadErr = parseRegistry(FS)
	})
	return variants, loadErr
}

func parseRegistry(fsys fs.FS) ([]Variant, error) {
	data, err := fs.ReadFile(fsys, registryFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", registryFile, err)
	}

	var r registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", registryFile, err)
	}

	for _, v := range r.Variants {
		info, err := fs.Stat(fsys, v.Dir)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", v.Name, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template %q: %s is not a directory", v.Name, v.Dir)
		}
	}
	return r.Variants, nil
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	all, err := Variants()
	if err != nil {
		return Variant{}, err
	}
	for _, v := range all {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown template %q (available: %s)", name, Names(all))
}

// ForTypeScript returns the first variant whose language matches ts.
func ForTypeScript(ts bool) (Variant, error) {
	all, err := Variants()
	if err != nil {
		return Variant{}, err
	}
	for _, v := range all {
		if v.TypeScript == ts {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("no template registered for typescript=%t", ts)
}

// Names joins variant names for help and error messages.
func Names(vs []Variant) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return strings.Join(names, ", ")
}
