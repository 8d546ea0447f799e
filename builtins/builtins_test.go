package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rfjakob/goshell/parser"
)

func newTestContext() (*Context, *bytes.Buffer, *int, *bool) {
	out := &bytes.Buffer{}
	exitCode := 0
	exited := false
	ctx := &Context{
		Stdout: out,
		Stderr: out,
		RequestExit: func(code int) {
			exitCode = code
			exited = true
		},
	}
	return ctx, out, &exitCode, &exited
}

func TestDispatchUnknownCommandNotHandled(t *testing.T) {
	ctx, _, _, _ := newTestContext()
	handled, err := Dispatch(ctx, parser.Command{Argv: []string{"ls"}})
	if handled || err != nil {
		t.Fatalf("Dispatch(ls) = %v, %v, want false, nil", handled, err)
	}
}

func TestCdHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ctx, _, _, _ := newTestContext()
	handled, err := Dispatch(ctx, parser.Command{Argv: []string{"cd"}})
	if !handled || err != nil {
		t.Fatalf("Dispatch(cd) = %v, %v", handled, err)
	}

	cwd, _ := os.Getwd()
	realHome, _ := filepath.EvalSymlinks(home)
	realCwd, _ := filepath.EvalSymlinks(cwd)
	if realCwd != realHome {
		t.Fatalf("cwd = %q, want %q", realCwd, realHome)
	}
}

func TestCdTooManyArgs(t *testing.T) {
	ctx, _, _, _ := newTestContext()
	_, err := Dispatch(ctx, parser.Command{Argv: []string{"cd", "a", "b"}})
	if err != ErrTooManyArgs {
		t.Fatalf("err = %v, want ErrTooManyArgs", err)
	}
}

func TestCdRelativeJoinsAgainstCwd(t *testing.T) {
	base := t.TempDir()
	sub := filepath.Join(base, "child")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	oldCwd, _ := os.Getwd()
	defer os.Chdir(oldCwd)
	if err := os.Chdir(base); err != nil {
		t.Fatal(err)
	}

	ctx, _, _, _ := newTestContext()
	handled, err := Dispatch(ctx, parser.Command{Argv: []string{"cd", "child"}})
	if !handled || err != nil {
		t.Fatalf("Dispatch(cd child) = %v, %v", handled, err)
	}

	cwd, _ := os.Getwd()
	realSub, _ := filepath.EvalSymlinks(sub)
	realCwd, _ := filepath.EvalSymlinks(cwd)
	if realCwd != realSub {
		t.Fatalf("cwd = %q, want %q", realCwd, realSub)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx, out, _, _ := newTestContext()

	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"set", "GOSHELL_TEST", "hello"}}); err != nil {
		t.Fatalf("set error: %v", err)
	}
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"get", "GOSHELL_TEST"}}); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got := out.String(); got != "hello\n" {
		t.Fatalf("get output = %q, want %q", got, "hello\n")
	}
}

func TestSetArgCounts(t *testing.T) {
	ctx, _, _, _ := newTestContext()
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"set", "ONLY"}}); err != ErrNotEnoughArgs {
		t.Fatalf("err = %v, want ErrNotEnoughArgs", err)
	}
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"set", "a", "b", "c"}}); err != ErrTooManyArgs {
		t.Fatalf("err = %v, want ErrTooManyArgs", err)
	}
}

func TestGetUnsetVarPrintsNothing(t *testing.T) {
	os.Unsetenv("GOSHELL_TEST_UNSET")
	ctx, out, _, _ := newTestContext()
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"get", "GOSHELL_TEST_UNSET"}}); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if out.String() != "" {
		t.Fatalf("output = %q, want empty", out.String())
	}
}

func TestExitDefaultsToZero(t *testing.T) {
	ctx, _, code, exited := newTestContext()
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"exit"}}); err != nil {
		t.Fatalf("exit error: %v", err)
	}
	if !*exited || *code != 0 {
		t.Fatalf("exited=%v code=%d, want true, 0", *exited, *code)
	}
}

func TestExitWithCode(t *testing.T) {
	ctx, _, code, exited := newTestContext()
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"exit", "42"}}); err != nil {
		t.Fatalf("exit error: %v", err)
	}
	if !*exited || *code != 42 {
		t.Fatalf("exited=%v code=%d, want true, 42", *exited, *code)
	}
}

func TestExitNonNumericArg(t *testing.T) {
	ctx, _, _, exited := newTestContext()
	_, err := Dispatch(ctx, parser.Command{Argv: []string{"exit", "abc"}})
	if err != ErrNumericArgReq {
		t.Fatalf("err = %v, want ErrNumericArgReq", err)
	}
	if *exited {
		t.Fatalf("exit should not have been requested")
	}
}

func TestHelpPrintsNonEmptyText(t *testing.T) {
	ctx, out, _, _ := newTestContext()
	if _, err := Dispatch(ctx, parser.Command{Argv: []string{"help"}}); err != nil {
		t.Fatalf("help error: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("help produced no output")
	}
}

func TestHelpTooManyArgs(t *testing.T) {
	ctx, out, _, _ := newTestContext()
	_, err := Dispatch(ctx, parser.Command{Argv: []string{"help", "foo", "bar"}})
	if err != ErrTooManyArgs {
		t.Fatalf("err = %v, want ErrTooManyArgs", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want empty", out.String())
	}
}
