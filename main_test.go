package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_run(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gobf.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(lines(
		`maxsize_cell: 4`,
		`eof: zero`,
	)), 0o644))

	for _, tc := range []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "program argument",
			args:    []string{"-e", ",."},
			stdin:   "hi",
			wantOut: "h",
		},
		{
			name:    "interactive entry then input",
			stdin:   "+,.\n\n.\nX",
			wantOut: "X",
		},
		{
			name:    "interactive numeric echo",
			args:    []string{"-numeric"},
			stdin:   ",>,\n<.>.\n\n.\n3 4\n",
			wantOut: "3\n4\n",
		},
		{
			name:    "eof stops quietly",
			args:    []string{"-e", ",.,."},
			stdin:   "a",
			wantOut: "a",
		},
		{
			name:    "config applies",
			args:    []string{"-config", configPath, "-numeric", "-e", "-.,."},
			wantOut: "3\n0\n",
		},
		{
			name:    "flags override config",
			args:    []string{"-config", configPath, "-numeric", "-cell-size", "8", "-eof", "keep", "-e", "-.,."},
			wantOut: "7\n7\n",
		},
		{
			name:       "invalid flag value",
			args:       []string{"-cell-size", "0", "-e", "+"},
			wantCode:   1,
			wantErrOut: "invalid maxsize_cell 0",
		},
		{
			name:       "unknown flag",
			args:       []string{"-bogus"},
			wantCode:   2,
			wantErrOut: "flag provided but not defined: -bogus",
		},
		{
			name:       "run error located",
			args:       []string{"-e", "+\n+]"},
			wantCode:   1,
			wantErrOut: "closes no running loop",
		},
		{
			name:    "debugger shares input",
			args:    []string{"-debug", "-e", ",."},
			stdin:   "c\nZ",
			wantOut: "@0 <arg>:1:1 ',' get -- ptr:0 cell:0\nZ@2 end of program\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut strings.Builder
			code := run(context.Background(), tc.args, strings.NewReader(tc.stdin), &out, &errOut)
			assert.Equal(t, tc.wantCode, code, "expected exit code; stderr:\n%v", errOut.String())
			assert.Equal(t, tc.wantOut, out.String(), "expected output")
			if tc.wantErrOut != "" {
				assert.Contains(t, errOut.String(), tc.wantErrOut, "expected error output")
			}
		})
	}
}
