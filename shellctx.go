package main

// ShellContext is process-wide state threaded by reference through the
// REPL and built-ins, rather than kept ambient/global — see DESIGN.md for
// why this departs from the C original's single static kai_ctx_t.
type ShellContext struct {
	// Running is false once a built-in (exit) or a fatal loop error has
	// requested shell termination.
	Running bool

	// Jobs is the number of background pipelines spawned but not yet
	// reaped. Incremented on a successful background spawn, decremented
	// by a successful non-blocking reap.
	Jobs int

	// ExitCode is the process exit status, set by the exit built-in or
	// on an unrecoverable loop error.
	ExitCode int
}

// NewShellContext returns a ShellContext ready to drive the REPL.
func NewShellContext() *ShellContext {
	return &ShellContext{Running: true}
}
