// Package executor runs a parsed Pipeline: built-ins are dispatched
// in-process, external commands are spawned via os/exec, and
// multi-stage pipelines are chained through OS pipes.
package executor

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/rfjakob/goshell/builtins"
	"github.com/rfjakob/goshell/parser"
)

// ErrRedirFile covers any failure to open a redirection target, for
// either reading or writing.
var ErrRedirFile = errors.New("Failed to open file for redirection")

// RunResult reports how a Run call finished.
type RunResult struct {
	// BackgroundPID is nonzero when a single-stage command was spawned
	// detached; the caller is responsible for accounting it as a job
	// and later observing its completion via PollBackground.
	BackgroundPID int
}

// Executor owns the built-in dispatch table and the bookkeeping for
// background jobs spawned from single-stage commands.
type Executor struct {
	builtinCtx *builtins.Context
	done       chan int
}

// New returns an Executor whose built-ins write through builtinCtx.
func New(builtinCtx *builtins.Context) *Executor {
	return &Executor{builtinCtx: builtinCtx, done: make(chan int, 32)}
}

// Run dispatches a built-in if the pipeline is a single command naming
// one, otherwise spawns the pipeline's stages as external processes.
//
// Only a single-stage pipeline can run in the background: a multi-stage
// pipeline is always waited for synchronously, matching the original
// shell's behavior where a trailing '&' only has effect on a lone
// command.
func (e *Executor) Run(p *parser.Pipeline) (RunResult, error) {
	if len(p.Stages) == 1 {
		handled, err := builtins.Dispatch(e.builtinCtx, p.Stages[0])
		if handled {
			return RunResult{}, err
		}
		return e.runSingle(p.Stages[0], p.Background)
	}

	return RunResult{}, e.runPipeline(p)
}

// PollBackground non-blockingly reports the pid of a background job
// that has finished since the last call, or ok=false if none has.
func (e *Executor) PollBackground() (pid int, ok bool) {
	select {
	case pid := <-e.done:
		return pid, true
	default:
		return 0, false
	}
}

func (e *Executor) runSingle(cmd parser.Command, background bool) (RunResult, error) {
	c := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if cmd.OutputFile != "" {
		f, err := os.OpenFile(cmd.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o664)
		if err != nil {
			return RunResult{}, ErrRedirFile
		}
		defer f.Close()
		c.Stdout = f
	}
	if cmd.InputFile != "" {
		f, err := os.Open(cmd.InputFile)
		if err != nil {
			return RunResult{}, ErrRedirFile
		}
		defer f.Close()
		c.Stdin = f
	}

	if err := c.Start(); err != nil {
		return RunResult{}, err
	}

	if background {
		pid := c.Process.Pid
		go func() {
			c.Wait()
			e.done <- pid
		}()
		return RunResult{BackgroundPID: pid}, nil
	}

	return RunResult{}, c.Wait()
}

// runPipeline chains n commands left to right through OS pipes. Only
// the first stage's InputFile and the last stage's OutputFile are
// honored, matching the original shell: a redirection on a middle
// stage is parsed but never applied.
func (e *Executor) runPipeline(p *parser.Pipeline) error {
	stages := p.Stages
	n := len(stages)
	cmds := make([]*exec.Cmd, n)
	var toClose []io.Closer

	closeAll := func() {
		for _, c := range toClose {
			c.Close()
		}
	}

	for i, stage := range stages {
		cmds[i] = exec.Command(stage.Argv[0], stage.Argv[1:]...)
		cmds[i].Stderr = os.Stderr
	}

	cmds[0].Stdin = os.Stdin
	if stages[0].InputFile != "" {
		f, err := os.Open(stages[0].InputFile)
		if err != nil {
			return ErrRedirFile
		}
		toClose = append(toClose, f)
		cmds[0].Stdin = f
	}

	cmds[n-1].Stdout = os.Stdout
	if stages[n-1].OutputFile != "" {
		f, err := os.OpenFile(stages[n-1].OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o664)
		if err != nil {
			closeAll()
			return ErrRedirFile
		}
		toClose = append(toClose, f)
		cmds[n-1].Stdout = f
	}

	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			closeAll()
			return err
		}
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
		toClose = append(toClose, r, w)
	}

	for _, c := range cmds {
		if err := c.Start(); err != nil {
			closeAll()
			return err
		}
	}

	// Every pipe end has been inherited (dup'd) by its child at Start;
	// the parent's copies must close now or the downstream reader will
	// never see EOF.
	closeAll()

	var waitErr error
	for _, c := range cmds {
		if err := c.Wait(); err != nil && waitErr == nil {
			waitErr = err
		}
	}
	return waitErr
}
