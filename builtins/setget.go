package builtins

import (
	"fmt"
	"os"
)

func setEnv(argv []string) error {
	if len(argv) < 3 {
		return ErrNotEnoughArgs
	}
	if len(argv) > 3 {
		return ErrTooManyArgs
	}
	return os.Setenv(argv[1], argv[2])
}

func getEnv(ctx *Context, argv []string) error {
	if len(argv) < 2 {
		return ErrNotEnoughArgs
	}
	if len(argv) > 2 {
		return ErrTooManyArgs
	}
	if val, ok := os.LookupEnv(argv[1]); ok {
		fmt.Fprintln(ctx.Stdout, val)
	}
	return nil
}
