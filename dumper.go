package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/gobf/internal/cellio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	// window is how many program bytes to show either side of the
	// instruction pointer, defaulting to defaultDumpWindow.
	window int
}

const defaultDumpWindow = 32

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  iptr: %v / %v\n", dump.vm.iptr, len(dump.vm.prog))
	dump.dumpProg()
	fmt.Fprintf(dump.out, "  loops: %v\n", dump.vm.loops)
	dump.dumpTape()
}

// dumpProg prints the program around the instruction pointer, with a caret
// under the current instruction. Control bytes, like line breaks, and the
// bytes of any non-ASCII characters are shown as spaces, so that the window
// never splits a character and the caret stays aligned.
func (dump vmDumper) dumpProg() {
	window := dump.window
	if window == 0 {
		window = defaultDumpWindow
	}
	prog, iptr := dump.vm.prog, dump.vm.iptr

	start, end := iptr-window, iptr+window+1
	if start < 0 {
		start = 0
	}
	if end > len(prog) {
		end = len(prog)
	}
	if start > end {
		start = end
	}

	line := []byte("  prog: ")
	if start > 0 {
		line = append(line, "..."...)
	}
	caret := len(line) + iptr - start
	for i := start; i < end; i++ {
		if c := prog[i]; c < 0x20 || c >= 0x7f {
			line = append(line, ' ')
		} else {
			line = append(line, c)
		}
	}
	if end < len(prog) {
		line = append(line, "..."...)
	}
	fmt.Fprintf(dump.out, "%s\n", line)

	if iptr >= 0 && iptr <= len(prog) {
		fmt.Fprintf(dump.out, "%*s^\n", caret, "")
	}
}

func (dump vmDumper) dumpTape() {
	lo, cells := dump.vm.tape.Cells()
	ptr := dump.vm.tape.Ptr()
	hi := lo + len(cells)
	fmt.Fprintf(dump.out, "# Tape [%v, %v) ptr:%v\n", lo, hi, ptr)

	width := len(strconv.Itoa(lo))
	if w := len(strconv.Itoa(hi - 1)); w > width {
		width = w
	}
	for i, val := range cells {
		offset := lo + i
		if val == 0 && offset != ptr {
			continue
		}
		fmt.Fprintf(dump.out, "  @%*v %v", width, offset, val)
		if desc := cellio.Describe(val); desc != "" {
			fmt.Fprintf(dump.out, " %v", desc)
		}
		if offset == ptr {
			fmt.Fprintf(dump.out, " <-")
		}
		fmt.Fprintf(dump.out, "\n")
	}
}
