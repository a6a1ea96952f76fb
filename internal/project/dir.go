package project

import (
	"fmt"
	"os"
)

// MetadataDir is the version-control directory that IsEmpty ignores and
// that scaffolding never removes, so a project can be generated inside an
// already-initialized repository.
const MetadataDir = ".git"

// IsEmpty reports whether dir has no entries, or only MetadataDir.
// dir must exist; callers check existence first.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return true, nil
	}
	return len(entries) == 1 && entries[0].Name() == MetadataDir, nil
}

// Exists reports whether path exists. Stat failures other than "not exist"
// count as existing so that the caller surfaces them on first real access.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
