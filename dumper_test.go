package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_vmDumper(t *testing.T) {
	for _, tc := range []struct {
		name   string
		vm     func() *VM
		window int
		want   string
	}{
		{
			name: "fresh",
			vm:   func() *VM { return New("+.") },
			want: lines(
				`# VM Dump`,
				`  iptr: 0 / 2`,
				`  prog: +.`,
				`        ^`,
				`  loops: []`,
				`# Tape [0, 1) ptr:0`,
				`  @0 0 <NUL> <-`,
			),
		},
		{
			name: "done",
			vm: func() *VM {
				vm := New("+>++<")
				vm.Run(context.Background())
				return vm
			},
			want: lines(
				`# VM Dump`,
				`  iptr: 5 / 5`,
				`  prog: +>++<`,
				`             ^`,
				`  loops: []`,
				`# Tape [0, 2) ptr:0`,
				`  @0 1 <SOH> <-`,
				`  @1 2 <STX>`,
			),
		},
		{
			name: "window",
			vm: func() *VM {
				vm := New("++++++[->+<]")
				vm.Seek(6)
				return vm
			},
			window: 2,
			want: lines(
				`# VM Dump`,
				`  iptr: 6 / 12`,
				`  prog: ...++[->...`,
				`             ^`,
				`  loops: []`,
				`# Tape [0, 1) ptr:0`,
				`  @0 0 <NUL> <-`,
			),
		},
		{
			name: "non-ascii comments",
			vm: func() *VM {
				vm := New("é+ü[-]")
				vm.Seek(5)
				return vm
			},
			window: 2,
			want: lines(
				`# VM Dump`,
				`  iptr: 5 / 8`,
				`  prog: ...  [-]`,
				`             ^`,
				`  loops: []`,
				`# Tape [0, 1) ptr:0`,
				`  @0 0 <NUL> <-`,
			),
		},
		{
			name: "in loop",
			vm: func() *VM {
				vm := New("+++++[>+++++++++++++<-]\n")
				for vm.Tell() != 9 {
					vm.Step()
				}
				return vm
			},
			want: lines(
				`# VM Dump`,
				`  iptr: 9 / 24`,
				`  prog: +++++[>+++++++++++++<-] `,
				`                 ^`,
				`  loops: [5]`,
				`# Tape [0, 2) ptr:1`,
				`  @0 5 <ENQ>`,
				`  @1 2 <STX> <-`,
			),
		},
		{
			name: "printable cells",
			vm: func() *VM {
				vm := New("")
				for _, c := range "A \x7f" {
					vm.tape.Stor(int(c))
					vm.tape.Right()
				}
				vm.tape.Stor(200)
				return vm
			},
			want: lines(
				`# VM Dump`,
				`  iptr: 0 / 0`,
				`  prog: `,
				`        ^`,
				`  loops: []`,
				`# Tape [0, 4) ptr:3`,
				`  @0 65 'A'`,
				`  @1 32 <SP>`,
				`  @2 127 <DEL>`,
				`  @3 200 <-`,
			),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			vmDumper{vm: tc.vm(), out: &out, window: tc.window}.dump()
			assert.Equal(t, tc.want, out.String(), "expected dump")
		})
	}
}
