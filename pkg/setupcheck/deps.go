package setupcheck

import (
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// FileSystem abstracts file access for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Open opens the named file for reading.
func (r *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: checks open user-named files
}

// PathLooker abstracts executable lookup for testability.
type PathLooker interface {
	LookPath(file string) (string, error)
}

// RealPathLooker implements PathLooker using the real PATH.
type RealPathLooker struct{}

// LookPath searches for an executable in PATH.
func (r *RealPathLooker) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
