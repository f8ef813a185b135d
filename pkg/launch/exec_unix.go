//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// execFunc is swapped out in tests.
var execFunc = syscall.Exec

// Exec replaces the launcher process with the target, keeping the overlaid
// environment. Does not return on success.
func Exec(target string, args []string, env []string) error {
	binary, err := exec.LookPath(target)
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention.
	argv := append([]string{target}, args...)
	return execFunc(binary, argv, env)
}
