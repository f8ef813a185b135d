package main

import (
	"errors"
	"os"

	"github.com/qbdi-tools/qbdirun/pkg/libresolve"
	"github.com/qbdi-tools/qbdirun/pkg/manifest"
)

// resolveLibrary locates the binding shared object, consulting the install
// manifest when one is discoverable. A missing manifest is fine; any other
// manifest problem is surfaced.
func resolveLibrary(explicit string) (string, *manifest.Manifest, error) {
	dirs := libresolve.CandidateDirs()

	m, err := manifest.Discover(os.Getenv, dirs, &manifest.RealFileSystem{})
	if err != nil {
		if !errors.Is(err, manifest.ErrNotFound) {
			return "", nil, err
		}
		m = nil
	}

	r := &libresolve.Resolver{
		Explicit: explicit,
		Manifest: m,
		Dirs:     dirs,
		FS:       &libresolve.RealFileSystem{},
	}

	path, err := r.Resolve()
	if err != nil {
		return "", nil, err
	}
	return path, m, nil
}
