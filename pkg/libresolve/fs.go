package libresolve

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts the file system operations used during resolution.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Glob returns the names matching the shell pattern.
func (r *RealFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
