package lineedit

import (
	"bufio"
	"os"
	"strings"
	"testing"
)

type fakeHistory struct {
	last    string
	hasLast bool
	added   []string
}

func (f *fakeHistory) Add(line string) int {
	f.added = append(f.added, line)
	f.last = line
	f.hasLast = true
	return len(line)
}

func (f *fakeHistory) GetPrev() (string, bool) { return "", false }
func (f *fakeHistory) GetNext() (string, bool) { return "", false }
func (f *fakeHistory) PeekLast() (string, bool) {
	return f.last, f.hasLast
}

func TestInsertAndRemoveAt(t *testing.T) {
	buf := []byte("ac")
	buf = insertAt(buf, 1, 'b')
	if string(buf) != "abc" {
		t.Fatalf("insertAt = %q, want abc", buf)
	}

	buf = removeAt(buf, 1)
	if string(buf) != "ac" {
		t.Fatalf("removeAt = %q, want ac", buf)
	}
}

func TestClassifyControlBytes(t *testing.T) {
	cases := map[byte]key{
		byteEnter:     keyEnter,
		byteInterrupt: keyInterrupt,
		byteEOF:       keyEOF,
		byteBackspace: keyBackspace,
	}
	for b, want := range cases {
		got, err := classify(b, bufio.NewReader(strings.NewReader("")))
		if err != nil || got != want {
			t.Fatalf("classify(%#x) = %v, %v, want %v, nil", b, got, err, want)
		}
	}
}

func TestClassifyAnsiArrows(t *testing.T) {
	cases := map[string]key{
		"[A":  keyUp,
		"[B":  keyDown,
		"[C":  keyRight,
		"[D":  keyLeft,
		"[3~": keyDelete,
	}
	for seq, want := range cases {
		got, err := classify(byteEscape, bufio.NewReader(strings.NewReader(seq)))
		if err != nil || got != want {
			t.Fatalf("classify(ESC %q) = %v, %v, want %v, nil", seq, got, err, want)
		}
	}
}

func TestCommitRecordsLine(t *testing.T) {
	h := &fakeHistory{}
	e := New(h, os.Stdin, os.Stdout)
	res, err := e.commit("echo hi")
	if err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if res.Line != "echo hi" {
		t.Fatalf("Line = %q, want %q", res.Line, "echo hi")
	}
	if len(h.added) != 1 || h.added[0] != "echo hi" {
		t.Fatalf("history.Add not called with the line: %v", h.added)
	}
}

func TestCommitBangBangExpandsLastEntry(t *testing.T) {
	h := &fakeHistory{last: "ls -la", hasLast: true}
	e := New(h, os.Stdin, os.Stdout)
	res, err := e.commit("!!")
	if err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if res.Line != "ls -la" {
		t.Fatalf("Line = %q, want %q", res.Line, "ls -la")
	}
	if len(h.added) != 1 || h.added[0] != "ls -la" {
		t.Fatalf("history.Add not called with the expanded line: %v", h.added)
	}
}

func TestCommitBangBangNoHistory(t *testing.T) {
	h := &fakeHistory{}
	e := New(h, os.Stdin, os.Stdout)
	res, err := e.commit("!!")
	if err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if res.Line != "" {
		t.Fatalf("Line = %q, want empty", res.Line)
	}
}
