package source_test

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcorbin/gobf/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromText(t *testing.T) {
	prog := source.FromText("<arg>", "+[-]\n>.")
	assert.Equal(t, "+[-]\n>.", prog.String())
	assert.Equal(t, source.Location{Name: "<arg>", Line: 1, Col: 2}, prog.Locate(1))
	assert.Equal(t, source.Location{Name: "<arg>", Line: 2, Col: 1}, prog.Locate(5))
	assert.Equal(t, "<arg>:2:2", prog.Locate(6).String())
	assert.Equal(t, "<arg>:2:4", prog.Locate(8).String(), "expected positions past the end to keep counting")
}

func Test_ReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bf")
	b := filepath.Join(dir, "b.bf")
	require.NoError(t, os.WriteFile(a, []byte("++\n+"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("[\n-]"), 0o644))

	prog, err := source.ReadFiles(a, b)
	require.NoError(t, err)
	assert.Equal(t, "++\n+[\n-]", prog.Text)
	assert.Equal(t, source.Location{Name: a, Line: 2, Col: 1}, prog.Locate(3))
	assert.Equal(t, source.Location{Name: b, Line: 1, Col: 1}, prog.Locate(4))
	assert.Equal(t, source.Location{Name: b, Line: 2, Col: 2}, prog.Locate(7))

	_, err = source.ReadFiles(filepath.Join(dir, "missing.bf"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected not exist error, got %v", err)
}

func Test_ReadInteractive(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		text  string
		loc   map[int]string
	}{
		{
			name:  "terminated",
			input: "++\n[-]\n\n.\nignored\n",
			text:  "++[-]",
			loc: map[int]string{
				1: "<stdin>:1:2",
				3: "<stdin>:2:2",
			},
		},
		{
			name:  "dot without blank line is program text",
			input: "+\n.\n\n.\n",
			text:  "+.",
		},
		{
			name:  "blank lines inside",
			input: "+\n\n-\n\n.\n",
			text:  "+-",
			loc: map[int]string{
				1: "<stdin>:3:1",
			},
		},
		{
			name:  "eof ends entry",
			input: "+>\r\n<",
			text:  "+><",
		},
		{
			name:  "empty",
			input: "",
			text:  "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := source.ReadInteractive(source.Lines(strings.NewReader(tc.input)))
			require.NoError(t, err)
			assert.Equal(t, tc.text, prog.Text)
			for pos, loc := range tc.loc {
				assert.Equal(t, loc, prog.Locate(pos).String(), "expected location of %v", pos)
			}
		})
	}
}

type errLines struct{ err error }

func (el errLines) Readline() (string, error) { return "", el.err }

func Test_ReadInteractive_error(t *testing.T) {
	bang := errors.New("interrupt")
	_, err := source.ReadInteractive(errLines{bang})
	assert.Equal(t, bang, err)

	_, err = source.ReadInteractive(errLines{io.EOF})
	assert.NoError(t, err)
}

func Test_Lines_shared(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("+,.\r\n\n.\nXY"))
	prog, err := source.ReadInteractive(source.Lines(br))
	require.NoError(t, err)
	assert.Equal(t, "+,.", prog.Text, "expected program before the terminator")

	rest, err := io.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, "XY", string(rest), "expected input after the terminator left unread")
}

func Test_Lines_unterminated(t *testing.T) {
	lr := source.Lines(strings.NewReader("a\nb"))
	for _, want := range []string{"a", "b"} {
		line, err := lr.Readline()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err := lr.Readline()
	assert.Equal(t, io.EOF, err, "expected EOF after the last line")
}
