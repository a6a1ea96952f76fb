package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// WritablePerm returns the permission bits of mode with owner read and write
// added. Embedded files report 0444, which would leave generated projects
// read-only.
func WritablePerm(mode fs.FileMode) os.FileMode {
	return mode.Perm() | 0o600
}
