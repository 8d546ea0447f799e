package lineedit

import "bufio"

// key names the control action a byte (or escape sequence) produced.
type key int

const (
	keyPrintable key = iota
	keyEnter
	keyInterrupt
	keyEOF
	keyBackspace
	keyUp
	keyDown
	keyLeft
	keyRight
	keyDelete
	keyIgnored // recognized control byte / escape sequence with no editor action
)

const (
	byteEnter     = '\n'
	byteReturn    = '\r' // Enter in raw mode, where CR is not translated to NL
	byteInterrupt = 0x03
	byteEOF       = 0x04
	byteBackspace = 0x7f
	byteEscape    = 0x1b
)

func isControlByte(b byte) bool {
	return b < 0x20 || b == byteBackspace
}

// classify turns one input byte into a key, consuming further bytes
// from r for multi-byte ANSI escape sequences (cursor keys, delete).
func classify(b byte, r *bufio.Reader) (key, error) {
	switch b {
	case byteEnter, byteReturn:
		return keyEnter, nil
	case byteInterrupt:
		return keyInterrupt, nil
	case byteEOF:
		return keyEOF, nil
	case byteBackspace:
		return keyBackspace, nil
	case byteEscape:
		return classifyEscape(r)
	default:
		return keyIgnored, nil
	}
}

// classifyEscape parses the remainder of a CSI sequence: ESC '[' ... .
func classifyEscape(r *bufio.Reader) (key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return keyIgnored, err
	}
	if b != '[' {
		return keyIgnored, nil
	}

	b, err = r.ReadByte()
	if err != nil {
		return keyIgnored, err
	}

	switch b {
	case 'A':
		return keyUp, nil
	case 'B':
		return keyDown, nil
	case 'C':
		return keyRight, nil
	case 'D':
		return keyLeft, nil
	case '3':
		tail, err := r.ReadByte()
		if err != nil {
			return keyIgnored, err
		}
		if tail == '~' {
			return keyDelete, nil
		}
		return keyIgnored, nil
	case '2':
		tail, err := r.ReadByte()
		if err != nil {
			return keyIgnored, err
		}
		if tail == '~' {
			return keyIgnored, nil // insert key: no editing mode to toggle
		}
		return keyIgnored, nil
	default:
		return keyIgnored, nil
	}
}
