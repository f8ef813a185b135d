// Package setupcheck validates an instrumented launch before it happens:
// the binding library, the user script, and the target executable.
package setupcheck

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/qbdi-tools/qbdirun/pkg/check"
	"github.com/qbdi-tools/qbdirun/pkg/integrity"
	"github.com/qbdi-tools/qbdirun/pkg/manifest"
)

// LibraryCheck verifies the resolved binding library: it exists as a
// regular file, matches the manifest checksum when one is recorded, and
// carries an engine version inside the requested bounds.
type LibraryCheck struct {
	Path      string             // resolved library path
	Manifest  *manifest.Manifest // optional install manifest
	MinEngine string             // --min-engine: minimum engine version (inclusive)
	MaxEngine string             // --max-engine: maximum engine version (exclusive)
	FS        FileSystem         // injected for testing
}

// Run executes the library check.
func (c *LibraryCheck) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("library: %s", c.Path),
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		return result.Failf("not found: %v", err)
	}
	if !info.Mode().IsRegular() {
		return result.Failf("not a regular file")
	}
	result.AddDetailf("size: %d bytes", info.Size())

	if c.Manifest == nil {
		if c.MinEngine != "" || c.MaxEngine != "" {
			return result.Failf("engine version bounds requested but no install manifest found")
		}
		result.AddDetail("manifest: none")
		result.Status = check.StatusOK
		return result
	}

	if c.Manifest.Checksum != "" {
		algorithm := integrity.Algorithm(c.Manifest.ChecksumAlgorithm)
		if err := integrity.Verify(c.Path, c.Manifest.Checksum, algorithm, c.FS); err != nil {
			return result.Failf("%v", err)
		}
		result.AddDetailf("checksum: %s verified", algorithm)
	}

	if c.Manifest.Version != "" {
		result.AddDetailf("engine version: %s", c.Manifest.Version)
		if err := c.checkVersionBounds(&result); err != nil {
			return result
		}
	} else if c.MinEngine != "" || c.MaxEngine != "" {
		return result.Failf("engine version bounds requested but manifest has no version")
	}

	result.Status = check.StatusOK
	return result
}

func (c *LibraryCheck) checkVersionBounds(result *check.Result) error {
	if c.MinEngine == "" && c.MaxEngine == "" {
		return nil
	}

	v, err := semver.NewVersion(c.Manifest.Version)
	if err != nil {
		result.Failf("manifest version %q is not valid semver: %v", c.Manifest.Version, err)
		return err
	}

	if c.MinEngine != "" {
		min, err := semver.NewVersion(c.MinEngine)
		if err != nil {
			result.Failf("invalid --min-engine version: %v", err)
			return err
		}
		// Minimum is inclusive.
		if v.Compare(min) < 0 {
			err := fmt.Errorf("engine version %s below minimum %s", v, min)
			result.Fail(fmt.Sprintf("engine version %s < minimum %s", v, min), err)
			return err
		}
	}

	if c.MaxEngine != "" {
		max, err := semver.NewVersion(c.MaxEngine)
		if err != nil {
			result.Failf("invalid --max-engine version: %v", err)
			return err
		}
		// Maximum is exclusive.
		if v.Compare(max) >= 0 {
			err := fmt.Errorf("engine version %s at or above maximum %s", v, max)
			result.Fail(fmt.Sprintf("engine version %s >= maximum %s", v, max), err)
			return err
		}
	}

	return nil
}

// ScriptCheck verifies that the user script exists and is readable. The
// preloaded binding loads it inside the child, so a bad path would
// otherwise only surface after the target has started.
type ScriptCheck struct {
	Path string     // script path as given on the command line
	FS   FileSystem // injected for testing
}

// Run executes the script check.
func (c *ScriptCheck) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("script: %s", c.Path),
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		return result.Failf("not found: %v", err)
	}
	if info.IsDir() {
		return result.Failf("is a directory, not a script")
	}
	if !info.Mode().IsRegular() {
		return result.Failf("not a regular file")
	}

	f, err := c.FS.Open(c.Path)
	if err != nil {
		return result.Failf("not readable: %v", err)
	}
	_ = f.Close()

	result.Status = check.StatusOK
	result.AddDetailf("size: %d bytes", info.Size())
	return result
}

// TargetCheck verifies that the target executable can be resolved.
type TargetCheck struct {
	Name   string     // target name or path as given on the command line
	Looker PathLooker // injected for testing
}

// Run executes the target check.
func (c *TargetCheck) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("target: %s", c.Name),
	}

	path, err := c.Looker.LookPath(c.Name)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}

	result.Status = check.StatusOK
	result.AddDetailf("path: %s", path)
	return result
}
