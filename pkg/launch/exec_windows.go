//go:build windows

package launch

import "errors"

// ErrExecNotSupported indicates exec mode is not available on Windows.
// Windows has no exec syscall that replaces the current process.
var ErrExecNotSupported = errors.New("exec mode not supported on Windows")

// Exec is not supported on Windows.
func Exec(target string, args []string, env []string) error {
	return ErrExecNotSupported
}
