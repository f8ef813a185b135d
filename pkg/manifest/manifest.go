// Package manifest reads the install manifest that ships with the qbdpy
// binding. The manifest describes the built artifact: the shared object's
// file name, the engine version it was built against, and an optional
// checksum of the library file.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// FileName is the manifest's well-known file name inside an install directory.
const FileName = "manifest.json"

// EnvVar overrides manifest discovery with an explicit path.
const EnvVar = "QBDIRUN_MANIFEST"

// ErrNotFound is returned when no manifest exists in any searched location.
// A missing manifest is not fatal for a launch; callers decide.
var ErrNotFound = errors.New("install manifest not found")

// Manifest holds the parsed install metadata.
type Manifest struct {
	Path              string // manifest file location on disk
	Library           string // shared object file name or path
	Version           string // engine/binding version, semver
	ChecksumAlgorithm string // "sha256" or "blake3"; empty when no checksum
	Checksum          string // hex digest of the library file
}

// Dir returns the directory containing the manifest file.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// LibraryPath resolves the manifest's library field to an absolute path.
// Relative entries are resolved against the manifest's own directory.
func (m *Manifest) LibraryPath() string {
	if filepath.IsAbs(m.Library) {
		return m.Library
	}
	return filepath.Join(m.Dir(), m.Library)
}

// Load reads and parses a manifest file.
func Load(path string, fsys FileSystem) (*Manifest, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	jsonStr := string(content)
	if !gjson.Valid(jsonStr) {
		return nil, fmt.Errorf("manifest %s: invalid JSON", path)
	}

	library := gjson.Get(jsonStr, "library")
	if !library.Exists() || library.String() == "" {
		return nil, fmt.Errorf("manifest %s: missing required field %q", path, "library")
	}

	m := &Manifest{
		Path:              path,
		Library:           library.String(),
		Version:           gjson.Get(jsonStr, "version").String(),
		ChecksumAlgorithm: gjson.Get(jsonStr, "checksum.algorithm").String(),
		Checksum:          gjson.Get(jsonStr, "checksum.value").String(),
	}

	if m.Checksum != "" && m.ChecksumAlgorithm == "" {
		m.ChecksumAlgorithm = "sha256"
	}

	return m, nil
}

// Discover locates and loads the install manifest. The QBDIRUN_MANIFEST
// environment variable wins; otherwise each candidate directory is probed
// for a manifest.json. Returns ErrNotFound when no location has one.
func Discover(getenv func(string) string, dirs []string, fsys FileSystem) (*Manifest, error) {
	if explicit := getenv(EnvVar); explicit != "" {
		return Load(explicit, fsys)
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, FileName)
		if _, err := fsys.Stat(path); err != nil {
			continue
		}
		return Load(path, fsys)
	}

	return nil, ErrNotFound
}
