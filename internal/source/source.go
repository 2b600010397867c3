package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Location names a position within a Program's source.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col) }

// Program is program text assembled from one or more named sources; each
// source is remembered so that text positions may be mapped back to where
// they came from.
type Program struct {
	Text  string
	spans []span
}

type span struct {
	Location
	start int
}

func (prog Program) String() string { return prog.Text }

func (prog *Program) add(name string, line int, text string) {
	prog.spans = append(prog.spans, span{Location{name, line, 1}, len(prog.Text)})
	prog.Text += text
}

// Locate maps a text position to its source location; lines and columns are
// counted from 1, columns in bytes. Positions past the end of the text locate
// to just after the last source.
func (prog Program) Locate(pos int) Location {
	if len(prog.spans) == 0 {
		return Location{Line: 1, Col: pos + 1}
	}
	if pos < 0 {
		pos = 0
	}
	i := sort.Search(len(prog.spans), func(i int) bool {
		return prog.spans[i].start > pos
	}) - 1
	if i < 0 {
		i = 0
	}
	sp := prog.spans[i]
	end := pos
	if end > len(prog.Text) {
		end = len(prog.Text)
	}
	text := prog.Text[sp.start:end]
	loc := sp.Location
	if n := strings.Count(text, "\n"); n > 0 {
		loc.Line += n
		text = text[strings.LastIndexByte(text, '\n')+1:]
	}
	loc.Col = len(text) + 1 + pos - end
	return loc
}

// FromText creates a program from literal text, like a command line
// argument.
func FromText(name, text string) Program {
	var prog Program
	prog.add(name, 1, text)
	return prog
}

// ReadFiles reads and concatenates the given program files.
func ReadFiles(paths ...string) (Program, error) {
	var prog Program
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return prog, err
		}
		err = prog.read(path, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return prog, err
		}
	}
	return prog, nil
}

func (prog *Program) read(name string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %v: %w", name, err)
	}
	prog.add(name, 1, string(b))
	return nil
}

// LineReader reads one line at a time, without its line ending; it is
// implemented by terminal line editors like readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Terminator ends interactive program entry when entered on a line by itself
// right after a blank line.
const Terminator = "."

// InteractiveName names programs read by ReadInteractive.
const InteractiveName = "<stdin>"

// ReadInteractive reads a program entered line by line, ending with a blank
// line followed by a Terminator line. Lines are joined without separators.
// Running out of lines ends entry early with whatever was read.
func ReadInteractive(lr LineReader) (Program, error) {
	var prog Program
	blank := false
	for n := 1; ; n++ {
		line, err := lr.Readline()
		if err == io.EOF {
			return prog, nil
		} else if err != nil {
			return prog, err
		}
		if blank && line == Terminator {
			return prog, nil
		}
		blank = line == ""
		if !blank {
			prog.add(InteractiveName, n, line)
		}
	}
}

// Lines adapts a plain reader into a LineReader. A *bufio.Reader is used
// as is, and nothing past the last line returned is consumed from it, so it
// may be read further once line reading is done.
func Lines(r io.Reader) LineReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return bufLines{br}
}

type bufLines struct{ *bufio.Reader }

func (bl bufLines) Readline() (string, error) {
	line, err := bl.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
