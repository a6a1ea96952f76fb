package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vitereact-labs/create-vite-react/internal/platform"
	"github.com/vitereact-labs/create-vite-react/internal/project"
)

// copier mirrors entries of a read-only template filesystem onto disk.
type copier struct {
	fsys    fs.FS
	exclude []Pattern
	log     logrus.FieldLogger
}

func newCopier(fsys fs.FS, exclude []Pattern, log logrus.FieldLogger) *copier {
	if log == nil {
		log = discardLogger()
	}
	return &copier{fsys: fsys, exclude: exclude, log: log}
}

// Copy copies src from fsys to the on-disk path dest. A directory is copied
// recursively; a regular file is copied byte for byte, replacing dest.
// Nothing happens when src matches one of the exclude patterns, and an
// excluded directory is skipped along with everything below it.
func Copy(fsys fs.FS, src, dest string, exclude []Pattern) error {
	return newCopier(fsys, exclude, nil).copy(src, dest)
}

// CopyDir creates destDir if needed and copies every entry of srcDir into
// it. Patterns in exclude are checked against each entry's full path in
// fsys, at every level of the tree.
func CopyDir(fsys fs.FS, srcDir, destDir string, exclude []Pattern) error {
	return newCopier(fsys, exclude, nil).copyDir(srcDir, destDir)
}

func (c *copier) copy(src, dest string) error {
	if MatchesPatterns(src, c.exclude) {
		c.log.WithField("path", src).Debug("excluded")
		return nil
	}
	return c.copyEntry(src, dest)
}

// copyEntry copies src without consulting the exclusion patterns.
func (c *copier) copyEntry(src, dest string) error {
	info, err := fs.Stat(c.fsys, src)
	if err != nil {
		return fmt.Errorf("reading template entry %s: %w", src, err)
	}

	switch {
	case info.IsDir():
		return c.copyDir(src, dest)
	case info.Mode().IsRegular():
		return c.copyFile(src, dest, info.Mode())
	default:
		return fmt.Errorf("template entry %s: unsupported file type %s", src, info.Mode().Type())
	}
}

func (c *copier) copyDir(srcDir, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", destDir, err)
	}

	entries, err := fs.ReadDir(c.fsys, srcDir)
	if err != nil {
		return fmt.Errorf("listing template directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		destPath := filepath.Join(destDir, entry.Name())
		if err := c.copy(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile writes src to dest with the source permissions, made owner-writable.
func (c *copier) copyFile(src, dest string, mode fs.FileMode) error {
	in, err := c.fsys.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	perm := platform.WritablePerm(mode)
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dest, err)
	}

	// OpenFile only applies perm to new files; an overwritten file keeps its
	// old bits otherwise.
	if err := platform.Chmod(dest, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dest, err)
	}

	c.log.WithField("file", dest).Debug("copied")
	return nil
}

// EmptyDir removes everything inside dir except the version-control
// metadata directory. A missing dir is not an error.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.Name() == project.MetadataDir {
			continue
		}
		// RemoveAll treats an already-removed path as success.
		target := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("removing %s: %w", target, err)
		}
	}
	return nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
