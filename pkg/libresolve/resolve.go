// Package libresolve locates the qbdpy binding shared object on disk.
//
// The search order is deterministic: an explicit path wins, then the
// QBDIRUN_LIBRARY environment variable, then the install manifest, then a
// fixed list of candidate directories scanned for the platform library name.
package libresolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/qbdi-tools/qbdirun/pkg/manifest"
)

// EnvVar overrides library resolution with an explicit path.
const EnvVar = "QBDIRUN_LIBRARY"

// ErrNotFound is returned when no searched location holds the library.
var ErrNotFound = errors.New("binding library not found")

// Resolver locates the binding shared object.
type Resolver struct {
	Explicit string              // --library flag; bypasses the search
	Getenv   func(string) string // injected for testing; defaults to os.Getenv
	Manifest *manifest.Manifest  // optional install manifest
	Dirs     []string            // candidate directories; defaults to CandidateDirs()
	FS       FileSystem          // injected for testing
}

// Resolve returns the absolute path of the first location holding the
// library as a regular file. The same filesystem state always yields the
// same path.
func (r *Resolver) Resolve() (string, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if r.Explicit != "" {
		return r.verify(r.Explicit, "explicit path")
	}

	if fromEnv := getenv(EnvVar); fromEnv != "" {
		return r.verify(fromEnv, EnvVar)
	}

	if r.Manifest != nil {
		return r.verify(r.Manifest.LibraryPath(), "install manifest")
	}

	dirs := r.Dirs
	if dirs == nil {
		dirs = CandidateDirs()
	}

	for _, dir := range dirs {
		matches, err := r.FS.Glob(filepath.Join(dir, libGlob))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, match := range matches {
			if info, err := r.FS.Stat(match); err == nil && info.Mode().IsRegular() {
				return filepath.Abs(match)
			}
		}
	}

	return "", fmt.Errorf("%w (searched %s)", ErrNotFound, strings.Join(dirs, ", "))
}

// verify checks that path names an existing regular file and returns it
// as an absolute path. source names where the path came from, for errors.
func (r *Resolver) verify(path, source string) (string, error) {
	info, err := r.FS.Stat(path)
	if err != nil {
		return "", fmt.Errorf("library from %s: %w", source, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("library from %s: %s is not a regular file", source, path)
	}
	return filepath.Abs(path)
}

// CandidateDirs returns the directories searched for the library and its
// install manifest, in search order. Best effort: directories that cannot
// be determined are skipped.
func CandidateDirs() []string {
	var dirs []string

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		dirs = append(dirs, exeDir, filepath.Join(exeDir, "..", "lib", "qbdpy"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "lib", "qbdpy"))
	}
	dirs = append(dirs,
		filepath.Join("/usr", "local", "lib", "qbdpy"),
		filepath.Join("/usr", "lib", "qbdpy"),
	)

	return dirs
}
