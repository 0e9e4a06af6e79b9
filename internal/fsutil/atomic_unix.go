//go:build !windows

package fsutil

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic uses renameio for atomic file writing on Unix systems:
// the data goes to a temp file in the same directory which is then renamed
// over the target.
func writeFileAtomic(name string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}
