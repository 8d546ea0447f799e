// Package builtins implements the shell commands handled internally
// rather than by spawning a child process: cd, exec, set, get, exit,
// help.
package builtins

import (
	"errors"
	"io"

	"github.com/rfjakob/goshell/parser"
)

var (
	ErrTooManyArgs   = errors.New("Too many arguments")
	ErrNotEnoughArgs = errors.New("Not enough arguments")
	ErrNumericArgReq = errors.New("Numeric argument required")
	ErrNoHomeDir     = errors.New("Failed to determine home directory")
)

// Context carries what a builtin needs from the running shell without
// giving it access to the whole REPL: where to write output, and how
// to request shell termination.
type Context struct {
	Stdout      io.Writer
	Stderr      io.Writer
	RequestExit func(code int)
}

// Dispatch runs cmd if its argv[0] names a builtin, reporting handled
// so the caller knows whether to fall through to process spawning.
func Dispatch(ctx *Context, cmd parser.Command) (handled bool, err error) {
	if len(cmd.Argv) == 0 {
		return false, nil
	}

	switch cmd.Argv[0] {
	case "cd":
		return true, cd(cmd.Argv)
	case "exec":
		return true, execReplace(cmd.Argv)
	case "set":
		return true, setEnv(cmd.Argv)
	case "get":
		return true, getEnv(ctx, cmd.Argv)
	case "exit":
		return true, exitShell(ctx, cmd.Argv)
	case "help":
		return true, help(ctx, cmd.Argv)
	default:
		return false, nil
	}
}
