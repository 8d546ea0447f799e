package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/rfjakob/goshell/builtins"
	"github.com/rfjakob/goshell/executor"
	"github.com/rfjakob/goshell/history"
	"github.com/rfjakob/goshell/lineedit"
	"github.com/rfjakob/goshell/parser"
)

// REPL ties the line editor, parser, and executor together for one
// shell session.
type REPL struct {
	ctx     *ShellContext
	cfg     *Config
	hist    *history.History
	editor  *lineedit.Editor
	scanner *bufio.Scanner // used instead of editor when stdin isn't a terminal
	exec    *executor.Executor
	jobLog  *JobLog
}

// NewREPL wires up a ready-to-run shell session from cfg.
func NewREPL(cfg *Config) *REPL {
	ctx := NewShellContext()
	hist := history.New(cfg.historySize(history.DefaultCapacity))

	r := &REPL{
		ctx:    ctx,
		cfg:    cfg,
		hist:   hist,
		jobLog: NewJobLog(32),
	}

	builtinCtx := &builtins.Context{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		RequestExit: func(code int) {
			ctx.ExitCode = code
			ctx.Running = false
		},
	}
	r.exec = executor.New(builtinCtx)

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		r.editor = lineedit.New(hist, os.Stdin, os.Stdout)
	} else {
		r.scanner = bufio.NewScanner(os.Stdin)
	}

	return r
}

// Run drives the shell until a builtin clears Running or input is
// exhausted, returning the process exit code.
func (r *REPL) Run() int {
	for r.ctx.Running {
		r.pollJobs()

		line, ok := r.readLine()
		if !ok {
			break
		}
		if line == "" {
			continue
		}

		pipeline, err := parser.Parse(line)
		if err != nil {
			fmt.Printf("[!] Error: %s\n", err)
			continue
		}
		if pipeline == nil {
			continue
		}

		res, err := r.exec.Run(pipeline)
		if err != nil {
			fmt.Printf("[!] Error: %s\n", err)
			continue
		}

		if res.BackgroundPID > 0 {
			r.ctx.Jobs++
			msg := fmt.Sprintf("[%d] job started - total jobs: %d", res.BackgroundPID, r.ctx.Jobs)
			fmt.Println(msg)
			r.jobLog.Add(msg)
		}
	}

	return r.ctx.ExitCode
}

func (r *REPL) pollJobs() {
	for {
		pid, ok := r.exec.PollBackground()
		if !ok {
			return
		}
		r.ctx.Jobs--
		msg := fmt.Sprintf("[%d] job finished - total jobs: %d", pid, r.ctx.Jobs)
		fmt.Println(msg)
		r.jobLog.Add(msg)
	}
}

// readLine fetches the next input line. ok is false once input is
// exhausted: EOF on a piped/scripted input, or Ctrl-D on an empty
// interactive line. A read error also yields ok=false, after logging it
// and setting a nonzero exit code. An interrupted (Ctrl-C) or blank line
// comes back as ok=true with an empty line, so the caller just loops again.
func (r *REPL) readLine() (string, bool) {
	if r.editor != nil {
		res, err := r.editor.ReadLine(Prompt(r.cfg))
		if err != nil {
			log.Printf("goshell: %v", err)
			r.ctx.ExitCode = 1
			r.ctx.Running = false
			return "", false
		}
		if res.EOF {
			return "", false
		}
		return res.Line, true
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			log.Printf("goshell: %v", err)
			r.ctx.ExitCode = 1
			r.ctx.Running = false
		}
		return "", false
	}
	return r.scanner.Text(), true
}
