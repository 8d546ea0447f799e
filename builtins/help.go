package builtins

import "fmt"

const helpText = `goshell
Commands below are handled internally:

 - cd <directory>       change the working directory (home directory if omitted)
 - exec <command> [...] replace the shell process with the given command
 - set <var> <value>    set an environment variable
 - get <var>            print an environment variable
 - exit [status]        exit the shell (status 0 if omitted)`

func help(ctx *Context, argv []string) error {
	if len(argv) > 1 {
		return ErrTooManyArgs
	}
	fmt.Fprintln(ctx.Stdout, helpText)
	return nil
}
