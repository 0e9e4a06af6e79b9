package fsutil

import (
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// FileSystem defines the filesystem operations a rename run needs.
type FileSystem interface {
	// ReadDir lists the entries of a directory, sorted by name.
	ReadDir(name string) ([]os.DirEntry, error)

	// Stat returns file info, following symbolic links.
	Stat(name string) (os.FileInfo, error)

	// Lstat returns file info without following symbolic links.
	Lstat(name string) (os.FileInfo, error)

	// ReadFile reads a whole file.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the content of a file.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// Rename moves a file or directory.
	Rename(oldpath, newpath string) error
}

// OS implements FileSystem on the host filesystem.
type OS struct{}

// NewOS returns the host filesystem implementation.
func NewOS() *OS {
	return &OS{}
}

func (*OS) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

func (*OS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (*OS) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }

func (*OS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile writes data so that readers never observe a truncated file.
// An existing file must itself be writable: the atomic replace only needs
// write access to the directory, which would silently bypass a read-only
// file mode.
func (*OS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := checkWritable(name); err != nil {
		return err
	}
	return writeFileAtomic(name, data, perm)
}

// checkWritable opens an existing file for writing without truncating it.
// A file that does not exist yet is writable by definition.
func checkWritable(name string) error {
	f, err := os.OpenFile(name, os.O_WRONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return f.Close()
}

func (*OS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

// IsText reports whether data looks like text. Detection walks up the MIME
// hierarchy, so formats derived from text/plain (JSON, CSV, source code)
// count as text.
func IsText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
