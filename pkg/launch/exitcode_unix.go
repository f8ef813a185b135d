//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// exitCode maps a child's wait status to the launcher's exit code. A child
// killed by a signal reports the shell convention 128+signal.
func exitCode(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
