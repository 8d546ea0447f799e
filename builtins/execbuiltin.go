package builtins

import (
	"os"
	"os/exec"
	"syscall"
)

// execReplace replaces the shell process image with the given command,
// the same way the original shell's exec builtin calls execvp directly
// instead of forking. On success this never returns.
func execReplace(argv []string) error {
	if len(argv) < 2 {
		return ErrNotEnoughArgs
	}

	path, err := exec.LookPath(argv[1])
	if err != nil {
		return err
	}

	return syscall.Exec(path, argv[1:], os.Environ())
}
