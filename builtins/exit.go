package builtins

import "strconv"

// exitShell requests shell termination with the given status, or 0 if
// none was given. strconv.Atoi rejects trailing garbage the same way
// the original's strtol-plus-endptr check does.
func exitShell(ctx *Context, argv []string) error {
	if len(argv) > 2 {
		return ErrTooManyArgs
	}

	code := 0
	if len(argv) == 2 {
		n, err := strconv.Atoi(argv[1])
		if err != nil {
			return ErrNumericArgReq
		}
		code = n
	}

	ctx.RequestExit(code)
	return nil
}
