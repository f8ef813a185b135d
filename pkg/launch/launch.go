// Package launch spawns the instrumented target process. The launcher does
// no work concurrently with the child: it starts the target with the
// overlaid environment and inherited standard streams, blocks until the
// child exits, and reports the child's exit code.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Spec describes a single instrumented launch.
type Spec struct {
	Target string   // executable name or path; resolved via PATH by the OS layer
	Args   []string // arguments passed to the target
	Env    []string // full child environment, already overlaid
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner abstracts process spawning for testability.
type Runner interface {
	// Run spawns the target, waits for it, and returns its exit code.
	// The error is non-nil only for launcher-side failures (the target
	// could not be started); a child that ran and exited non-zero is
	// reported through the exit code alone.
	Run(spec Spec) (int, error)
}

// RealRunner is the production implementation.
type RealRunner struct{}

// Run spawns the target and blocks until it terminates.
func (r *RealRunner) Run(spec Spec) (int, error) {
	// #nosec G204 -- intentional: the target command comes from CLI args
	// which are under user control.
	cmd := exec.Command(spec.Target, spec.Args...)
	cmd.Env = spec.Env
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return exitCode(exitError), nil
		}
		return -1, fmt.Errorf("failed to launch %q: %w", spec.Target, err)
	}
	return 0, nil
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(spec Spec) (int, error)
}

// Run calls the mock function.
func (m *MockRunner) Run(spec Spec) (int, error) {
	return m.RunFunc(spec)
}
