package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Context is the process state scaffolding depends on.
type Context struct {
	Cwd  string   // absolute working directory
	Args []string // positional arguments after flag parsing
}

// NewContext captures the current working directory together with args.
func NewContext(args []string) (Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Context{}, fmt.Errorf("getting current directory: %w", err)
	}
	return Context{Cwd: cwd, Args: args}, nil
}

// TargetArg returns the formatted first positional argument, or "".
func (c Context) TargetArg() string {
	if len(c.Args) == 0 {
		return ""
	}
	return FormatTargetDir(c.Args[0])
}

// Resolve returns the absolute project root for targetDir. An empty
// targetDir resolves to the working directory itself.
func (c Context) Resolve(targetDir string) string {
	if filepath.IsAbs(targetDir) {
		return filepath.Clean(targetDir)
	}
	return filepath.Join(c.Cwd, targetDir)
}

// ProjectName is the name a project in targetDir is known by. The current
// directory ("" or ".") is named after its basename.
func (c Context) ProjectName(targetDir string) string {
	if targetDir == "" || targetDir == "." {
		return filepath.Base(c.Cwd)
	}
	return targetDir
}

// Relative returns root relative to the working directory, falling back to
// root itself when no relative path exists (e.g. another volume).
func (c Context) Relative(root string) string {
	rel, err := filepath.Rel(c.Cwd, root)
	if err != nil {
		return root
	}
	return rel
}
