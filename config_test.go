package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gobf/internal/cellio"
)

func Test_ParseConfig(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		want    Config
		wantErr string
	}{
		{
			name: "empty",
			in:   "",
			want: DefaultConfig(),
		},
		{
			name: "all keys",
			in: lines(
				`maxlen_tape: 100`,
				`maxsize_cell: 16`,
				`is_left_unbound: true`,
				`io: numeric`,
				`loop_scan: naive`,
				`eof: zero`,
			),
			want: Config{
				TapeLimit:   100,
				CellSize:    16,
				LeftUnbound: true,
				IO:          cellio.Numbers,
				LoopScan:    NaiveLoops,
				EOF:         EOFZero,
			},
		},
		{
			name: "partial",
			in:   "eof: keep\n",
			want: Config{
				TapeLimit: defaultTapeLimit,
				CellSize:  defaultCellSize,
				EOF:       EOFKeep,
			},
		},
		{
			name: "unbounded tape",
			in:   "maxlen_tape: 0\n",
			want: Config{CellSize: defaultCellSize},
		},
		{
			name:    "unknown key",
			in:      "tape_size: 10\n",
			wantErr: "tape_size",
		},
		{
			name:    "bad enum",
			in:      "eof: stop\n",
			wantErr: `invalid eof mode "stop", expected one of error, zero, keep`,
		},
		{
			name:    "bad io",
			in:      "io: hex\n",
			wantErr: `invalid io mode "hex"`,
		},
		{
			name:    "bad cell size",
			in:      "maxsize_cell: 0\n",
			wantErr: "config: test.yaml: invalid maxsize_cell 0, must be at least 1",
		},
		{
			name:    "negative tape",
			in:      "maxlen_tape: -1\n",
			wantErr: "config: test.yaml: invalid maxlen_tape -1, must not be negative",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig("test.yaml", strings.NewReader(tc.in))
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err, "unexpected parse error")
			assert.Equal(t, tc.want, cfg, "expected config")
		})
	}
}

func Test_LoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxsize_cell: 4\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err, "unexpected load error")
	assert.Equal(t, 4, cfg.CellSize, "expected loaded cell size")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist, "expected missing file error")
}

func Test_WithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 4
	cfg.TapeLimit = 2
	cfg.LeftUnbound = true
	cfg.LoopScan = NaiveLoops
	cfg.EOF = EOFKeep

	vm := New("-<,[[-]+]", WithConfig(cfg))
	assert.Equal(t, 4, vm.tape.CellSize, "expected cell size")
	assert.Equal(t, 2, vm.tape.Limit, "expected tape limit")
	assert.True(t, vm.tape.LeftUnbound, "expected left unbound tape")
	assert.Equal(t, NaiveLoops, vm.loopScan, "expected loop scan")
	assert.Equal(t, EOFKeep, vm.eof, "expected eof mode")

	err := vm.Run(context.Background())
	assert.Equal(t, UnmatchedLoopClose{8}, err, "expected naive skip to strand the outer ']'")
	lo, cells := vm.tape.Cells()
	assert.Equal(t, -1, lo, "expected a cell left of the anchor")
	assert.Equal(t, []int{1, 3}, cells, "expected cells after the run")
}
