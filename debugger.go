package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gobf/internal/source"
)

// debugger drives a VM interactively through Step, Tell, and Seek.
type debugger struct {
	vm   *VM
	prog source.Program
	in   source.LineReader
	out  io.Writer

	// flush, if set, is called after every command so that program output
	// is seen before the next prompt.
	flush func() error

	last string
}

var debuggerHelp = lines(
	`commands:`,
	`  s, step [N]   execute N instructions (default 1)`,
	`  n, next       step over the loop starting at the current instruction`,
	`  c, continue   run until the end of the program`,
	`  t, tell       print the instruction pointer`,
	`  seek N        move the instruction pointer to N`,
	`  d, dump       dump the VM state`,
	`  tape          dump only the tape`,
	`  q, quit       stop debugging`,
	`an empty line repeats the last command`,
)

// run reads and executes commands until quit, end of input, or a VM error.
func (db *debugger) run(ctx context.Context) error {
	db.where()
	for {
		line, err := db.in.Readline()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			line = db.last
		}
		db.last = line

		quit, err := db.exec(ctx, strings.Fields(line))
		if db.flush != nil {
			if ferr := db.flush(); err == nil {
				err = ferr
			}
		}
		if err != nil {
			fmt.Fprintf(db.out, "error: %v\n", err)
			return err
		} else if quit {
			return nil
		}
	}
}

func (db *debugger) exec(ctx context.Context, args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}
	switch cmd, args := args[0], args[1:]; cmd {
	case "s", "step":
		n := 1
		if len(args) > 0 {
			if n, err = strconv.Atoi(args[0]); err != nil {
				fmt.Fprintf(db.out, "invalid step count %q\n", args[0])
				return false, nil
			}
		}
		for ; n > 0 && !db.done(); n-- {
			if err := db.vm.Step(); err != nil {
				return false, err
			}
		}
		db.where()

	case "n", "next":
		depth := len(db.vm.loops)
		if !db.done() {
			if err := db.vm.Step(); err != nil {
				return false, err
			}
		}
		for len(db.vm.loops) > depth && !db.done() {
			if err := db.vm.Step(); err != nil {
				return false, err
			}
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		db.where()

	case "c", "continue":
		if err := db.vm.Run(ctx); err != nil {
			return false, err
		}
		db.where()

	case "t", "tell":
		fmt.Fprintf(db.out, "%v\n", db.vm.Tell())

	case "seek":
		if len(args) != 1 {
			fmt.Fprintf(db.out, "usage: seek N\n")
			return false, nil
		}
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(db.out, "invalid position %q\n", args[0])
			return false, nil
		}
		db.vm.Seek(pos)
		db.where()

	case "d", "dump":
		vmDumper{vm: db.vm, out: db.out}.dump()

	case "tape":
		vmDumper{vm: db.vm, out: db.out}.dumpTape()

	case "q", "quit":
		return true, nil

	case "h", "help", "?":
		io.WriteString(db.out, debuggerHelp)

	default:
		fmt.Fprintf(db.out, "unknown command %q, try help\n", cmd)
	}
	return false, nil
}

func (db *debugger) done() bool {
	if db.vm.Done() {
		fmt.Fprintf(db.out, "program finished\n")
		return true
	}
	return false
}

// where prints the current instruction and its source location.
func (db *debugger) where() {
	iptr := db.vm.Tell()
	if iptr < 0 || iptr >= len(db.vm.prog) {
		fmt.Fprintf(db.out, "@%v end of program\n", iptr)
		return
	}
	op := db.vm.prog[iptr]
	fmt.Fprintf(db.out, "@%v %v %q %v -- ptr:%v cell:%v\n",
		iptr, db.prog.Locate(iptr), op, opName(op),
		db.vm.tape.Ptr(), db.vm.tape.Load())
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
