// Package parser turns one line of shell input into a Pipeline: a
// sequence of Commands connected by unquoted '|', each with its own
// argv and optional input/output redirection target.
package parser

import (
	"errors"
	"strings"
)

// ErrInvalidSyntax covers every malformed-input case this package
// detects: unmatched quotes, a leading/empty/doubled pipe segment, a
// redirection operator with no target, or an empty quoted target.
var ErrInvalidSyntax = errors.New("Invalid syntax")

// Command is one stage of a Pipeline.
type Command struct {
	Argv       []string
	InputFile  string // "" means no input redirection
	OutputFile string // "" means no output redirection
}

// Pipeline is one or more Commands connected by '|', plus whether the
// whole pipeline should run detached from the foreground wait loop.
type Pipeline struct {
	Stages     []Command
	Background bool
}

// Parse parses one line of input. A blank line (or one that is only
// whitespace) yields (nil, nil): there is nothing to run, and it is
// not an error.
func Parse(line string) (*Pipeline, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, nil
	}
	if trimmed[0] == '|' {
		return nil, ErrInvalidSyntax
	}

	segments, err := splitPipeline(trimmed)
	if err != nil {
		return nil, err
	}

	last := len(segments) - 1
	stripped, background := stripBackground(segments[last])
	segments[last] = stripped

	stages := make([]Command, len(segments))
	for i, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, ErrInvalidSyntax
		}
		cmd, err := parseStage(seg)
		if err != nil {
			return nil, err
		}
		stages[i] = cmd
	}

	return &Pipeline{Stages: stages, Background: background}, nil
}

// splitPipeline splits s on unquoted '|', leaving quote characters in
// place for the per-stage parser to consume. It reports ErrInvalidSyntax
// on an unbalanced quote anywhere in the line.
func splitPipeline(s string) ([]string, error) {
	var segments []string
	var cur strings.Builder
	quotes := 0 // 0 none, 1 double, 2 single

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && quotes != 2:
			quotes ^= 1
			cur.WriteByte(c)
		case c == '\'' && quotes != 1:
			quotes ^= 2
			cur.WriteByte(c)
		case c == '|' && quotes == 0:
			segments = append(segments, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if quotes != 0 {
		return nil, ErrInvalidSyntax
	}
	segments = append(segments, cur.String())
	return segments, nil
}

// stripBackground trims seg and reports whether it ends in an unquoted
// '&', returning the text with that marker removed.
func stripBackground(seg string) (string, bool) {
	t := strings.TrimSpace(seg)
	if strings.HasSuffix(t, "&") {
		return strings.TrimSpace(strings.TrimSuffix(t, "&")), true
	}
	return t, false
}

// parseStage extracts redirection targets from one pipeline stage, then
// tokenizes whatever is left into argv.
func parseStage(seg string) (Command, error) {
	cmdText, inFile, outFile, err := splitRedirections(seg)
	if err != nil {
		return Command{}, err
	}

	argv, err := tokenize(cmdText)
	if err != nil {
		return Command{}, err
	}
	if len(argv) == 0 {
		return Command{}, ErrInvalidSyntax
	}

	return Command{Argv: argv, InputFile: inFile, OutputFile: outFile}, nil
}

// splitRedirections scans seg from right to left for the rightmost
// unquoted '>' and the rightmost unquoted '<', each introducing a
// redirection target. A quoted redirection character stops the scan
// entirely: text to its left is no longer examined. An operator of a
// kind already found becomes a literal character left in cmdText,
// matching the rule that only the last occurrence of each operator
// type is honored.
func splitRedirections(seg string) (cmdText, inFile, outFile string, err error) {
	b := []byte(seg)
	quotes := 0
	haveOut, haveIn := false, false

	i := len(b) - 1
	for i > 0 && (!haveOut || !haveIn) {
		c := b[i]
		switch {
		case c == '"' && quotes != 2:
			quotes ^= 1
			i--
		case c == '\'' && quotes != 1:
			quotes ^= 2
			i--
		case c == '>' || c == '<':
			if quotes != 0 {
				i = 0
				continue
			}
			isOut := c == '>'
			if (isOut && haveOut) || (!isOut && haveIn) {
				i--
				continue
			}

			target, rest, terr := extractRedirTarget(b, i)
			if terr != nil {
				return "", "", "", terr
			}
			if isOut {
				outFile, haveOut = target, true
			} else {
				inFile, haveIn = target, true
			}
			b = rest
			i = len(b) - 1
		default:
			i--
		}
	}

	return string(b), inFile, outFile, nil
}

// extractRedirTarget reads the filename following the operator at
// b[opIdx], returning the target and the operator-and-target-stripped
// remainder of b with trailing whitespace trimmed.
func extractRedirTarget(b []byte, opIdx int) (string, []byte, error) {
	j := opIdx + 1
	for j < len(b) && b[j] == ' ' {
		j++
	}
	if j >= len(b) {
		return "", nil, ErrInvalidSyntax
	}

	var target string
	if b[j] == '"' || b[j] == '\'' {
		q := b[j]
		start := j + 1
		k := start
		for k < len(b) && b[k] != q {
			k++
		}
		if k >= len(b) || k == start {
			return "", nil, ErrInvalidSyntax
		}
		target = string(b[start:k])
	} else {
		start := j
		for j < len(b) && b[j] != ' ' {
			j++
		}
		target = string(b[start:j])
	}

	rest := b[:opIdx]
	for len(rest) > 0 && rest[len(rest)-1] == ' ' {
		rest = rest[:len(rest)-1]
	}
	return target, rest, nil
}

// tokenize splits s into argv, stripping quote characters so that
// adjacent quoted and unquoted fragments concatenate into one element
// (a' 'b -> "a b") and preserving literal quote characters that are
// themselves nested inside the other quote type ('"' -> `"`).
func tokenize(s string) ([]string, error) {
	var argv []string
	var cur strings.Builder
	hasToken := false
	quotes := 0

	flush := func() {
		if hasToken || cur.Len() > 0 {
			argv = append(argv, cur.String())
			cur.Reset()
			hasToken = false
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && quotes != 2:
			quotes ^= 1
			hasToken = true
		case c == '\'' && quotes != 1:
			quotes ^= 2
			hasToken = true
		case c == ' ' && quotes == 0:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	if quotes != 0 {
		return nil, ErrInvalidSyntax
	}
	flush()

	return argv, nil
}
