// Package lineedit implements the shell's raw-mode line editor: a
// single-byte read loop over stdin that redraws the current line after
// every keystroke, with history recall bound to the up/down arrows.
package lineedit

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/rfjakob/goshell/history"
)

// Recaller is the subset of history.History the editor drives. Defined
// here so the editor can be tested against a fake without pulling in
// the concrete ring implementation.
type Recaller interface {
	Add(line string) int
	GetPrev() (string, bool)
	GetNext() (string, bool)
	PeekLast() (string, bool)
}

var _ Recaller = (*history.History)(nil)

// Result reports why ReadLine returned.
type Result struct {
	Line        string
	Interrupted bool // user pressed Ctrl-C
	EOF         bool // user pressed Ctrl-D on an empty line
}

// Editor reads one line at a time from a terminal placed in raw mode,
// rendering the prompt and buffer itself rather than relying on the
// terminal driver's line discipline.
type Editor struct {
	hist Recaller
	in   *os.File
	out  *os.File
}

// New returns an Editor reading from in and writing prompts/redraws to
// out, recalling lines through hist.
func New(hist Recaller, in, out *os.File) *Editor {
	return &Editor{hist: hist, in: in, out: out}
}

// ReadLine puts the terminal in raw mode, renders prompt, and reads one
// line of input, honoring backspace/delete/left/right and up/down
// history recall. "!!" alone on the line is expanded to the last
// history entry and echoed before being returned.
func (e *Editor) ReadLine(prompt string) (Result, error) {
	oldState, err := term.MakeRaw(int(e.in.Fd()))
	if err != nil {
		return Result{}, err
	}
	defer term.Restore(int(e.in.Fd()), oldState)

	r := bufio.NewReader(e.in)
	buf := make([]byte, 0, 64)
	cursor := 0

	redraw := func() {
		fmt.Fprint(e.out, "\x1b[2K\r")
		fmt.Fprint(e.out, prompt)
		e.out.Write(buf)
		moveCursor(e.out, -len(buf))
		moveCursor(e.out, cursor)
	}

	for {
		redraw()

		b, err := r.ReadByte()
		if err != nil {
			return Result{}, err
		}

		if !isControlByte(b) {
			buf = insertAt(buf, cursor, b)
			cursor++
			continue
		}

		k, err := classify(b, r)
		if err != nil {
			return Result{}, err
		}

		switch k {
		case keyEnter:
			fmt.Fprintln(e.out)
			return e.commit(string(buf))

		case keyInterrupt:
			fmt.Fprintln(e.out)
			return Result{Interrupted: true}, nil

		case keyEOF:
			if len(buf) == 0 {
				fmt.Fprintln(e.out)
				return Result{EOF: true}, nil
			}

		case keyBackspace:
			if cursor > 0 {
				buf = removeAt(buf, cursor-1)
				cursor--
			}

		case keyDelete:
			if cursor < len(buf) {
				buf = removeAt(buf, cursor)
			}

		case keyLeft:
			if cursor > 0 {
				cursor--
			}

		case keyRight:
			if cursor < len(buf) {
				cursor++
			}

		case keyUp:
			if prev, ok := e.hist.GetPrev(); ok {
				buf = []byte(prev)
				cursor = len(buf)
			}

		case keyDown:
			if next, ok := e.hist.GetNext(); ok {
				buf = []byte(next)
			} else {
				buf = buf[:0]
			}
			cursor = len(buf)
		}
	}
}

// commit finalizes a line submitted with Enter: it resolves a bare
// "!!" against the most recent history entry, otherwise records the
// line and returns it.
func (e *Editor) commit(line string) (Result, error) {
	if line == "!!" {
		last, ok := e.hist.PeekLast()
		if !ok {
			fmt.Fprintln(os.Stderr, "[!] No entries in history")
			return Result{}, nil
		}
		fmt.Fprintln(e.out, last)
		e.hist.Add(last)
		return Result{Line: last}, nil
	}

	e.hist.Add(line)
	return Result{Line: line}, nil
}

func moveCursor(out *os.File, offset int) {
	if offset == 0 {
		return
	}
	dir := byte('C')
	n := offset
	if offset < 0 {
		dir = 'D'
		n = -offset
	}
	fmt.Fprintf(out, "\x1b[%d%c", n, dir)
}

func insertAt(buf []byte, index int, b byte) []byte {
	buf = append(buf, 0)
	copy(buf[index+1:], buf[index:])
	buf[index] = b
	return buf
}

func removeAt(buf []byte, index int) []byte {
	return append(buf[:index], buf[index+1:]...)
}
