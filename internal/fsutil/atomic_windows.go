//go:build windows

package fsutil

import "os"

// writeFileAtomic falls back to a plain write on Windows, where renameio
// offers no replacement guarantee.
func writeFileAtomic(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
