package cellio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Mode selects how cell values are encoded on input and output.
type Mode int

const (
	// Chars reads and writes cell values as unicode code points.
	Chars Mode = iota

	// Numbers reads whitespace-delimited decimal integers and writes each
	// value as a decimal line.
	Numbers
)

var modeNames = [...]string{
	Chars:   "char",
	Numbers: "numeric",
}

func (m Mode) String() string {
	if int(m) >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText encodes the mode name.
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("invalid io mode %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText parses a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	for i, name := range modeNames {
		if string(text) == name {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("invalid io mode %q, expected one of %v", text, strings.Join(modeNames[:], ", "))
}

// IO implements both cell I/O callbacks around a reader and writer pair.
type IO struct {
	Mode Mode

	in  io.RuneScanner
	out WriteFlusher
}

// New creates an IO reading from r and writing to w in the given mode.
func New(r io.Reader, w io.Writer, mode Mode) *IO {
	return &IO{
		Mode: mode,
		in:   newRuneScanner(r),
		out:  NewWriteFlusher(w),
	}
}

func newRuneScanner(r io.Reader) io.RuneScanner {
	if rs, is := r.(io.RuneScanner); is {
		return rs
	}
	return bufio.NewReader(r)
}

// Flush flushes any buffered output.
func (cio *IO) Flush() error { return cio.out.Flush() }

// Print writes one cell value.
func (cio *IO) Print(value int) error {
	if cio.Mode == Numbers {
		var buf [24]byte
		b := strconv.AppendInt(buf[:0], int64(value), 10)
		b = append(b, '\n')
		_, err := cio.out.Write(b)
		return err
	}
	return WriteRune(cio.out, rune(value))
}

// Input reads one cell value, flushing any pending output first so that
// prompts are visible before blocking. Returns io.EOF once input is
// exhausted.
func (cio *IO) Input() (int, error) {
	if err := cio.out.Flush(); err != nil {
		return 0, err
	}
	if cio.Mode == Numbers {
		return cio.scanInt()
	}
	r, _, err := cio.in.ReadRune()
	if err != nil {
		return 0, err
	}
	return int(r), nil
}

func (cio *IO) scanInt() (int, error) {
	var sb strings.Builder
	for {
		r, _, err := cio.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
			break
		}
	}
	for {
		r, _, err := cio.in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		} else if unicode.IsSpace(r) {
			break
		}
		sb.WriteRune(r)
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, fmt.Errorf("invalid numeric input: %w", err)
	}
	return n, nil
}
