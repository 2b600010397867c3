package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/jcorbin/gobf/internal/tape"
)

//// Environment

// VM executes a program directly from its text, one byte at a time.  The
// machine has a tape of integer cells with a data pointer into it, an
// instruction pointer into the program text, and a loop stack recording
// where each currently running loop began.
//
// There is no parse phase: the instruction pointer may be moved anywhere by
// Seek between any two steps, and execution simply continues from there.
type VM struct {
	logging

	prog string // program text
	iptr int    // instruction pointer

	// The loop stack holds the position of the '[' of every loop whose body
	// is currently running, innermost last.
	loops []int

	tape tape.Tape

	input    InputFunc
	print    PrintFunc
	eof      EOFMode
	loopScan LoopScan
}

// InputFunc provides one value for the ',' operator, returning io.EOF when no
// more input is available.
type InputFunc func() (int, error)

// PrintFunc consumes one value from the '.' operator.
type PrintFunc func(value int) error

//// Operators

// Symbol   Name         Function
//    >     next         move the data pointer one cell right
//    <     prev         move the data pointer one cell left
//    +     incr         increment the current cell
//    -     decr         decrement the current cell
//    [     loop         enter the loop body if the current cell is non-zero,
//                       otherwise skip past its matching ]
//    ]     endloop      jump back to the loop body if the current cell is
//                       non-zero, otherwise leave the loop
//    .     put          output the current cell
//    ,     get          input into the current cell
//
// Any other byte is a comment.
const operators = "><+-[].,"

var opNames = [...]string{
	'>': "next",
	'<': "prev",
	'+': "incr",
	'-': "decr",
	'[': "loop",
	']': "endloop",
	'.': "put",
	',': "get",
}

func opName(op byte) string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "comment"
}

// step dispatches the operator at the instruction pointer, then advances the
// instruction pointer by one. Operators that jump do so to one before where
// execution should resume, relying on that final increment.
//
// On error the instruction pointer is left at the failed operator.
func (vm *VM) step() error {
	if vm.iptr < 0 || vm.iptr >= len(vm.prog) {
		return vm.halt(progError(vm.iptr))
	}

	op := vm.prog[vm.iptr]
	if vm.logfn != nil && strings.IndexByte(operators, op) >= 0 {
		vm.logf(">", "@%v %v -- ptr:%v cell:%v loops:%v",
			vm.iptr, opName(op), vm.tape.Ptr(), vm.tape.Load(), vm.loops)
	}

	var err error
	switch op {
	case '>':
		vm.tape.Right()
	case '<':
		vm.tape.Left()
	case '+':
		vm.tape.Incr()
	case '-':
		vm.tape.Decr()
	case '[':
		err = vm.loop()
	case ']':
		err = vm.endloop()
	case '.':
		err = vm.put()
	case ',':
		err = vm.get()
	}
	if err != nil {
		return vm.halt(err)
	}

	vm.iptr++
	return nil
}

func (vm *VM) run(ctx context.Context) error {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}
	for vm.iptr != len(vm.prog) {
		if err := vm.step(); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return vm.halt(err)
		}
	}
	vm.logf("#", "done @%v", vm.iptr)
	return nil
}

//// Loop Control

// A loop that is entered pushes the position of its '[', so that its ']' can
// jump back there; the following increment then resumes at the first
// instruction of the body, without re-evaluating the '['.
//
// A loop that is skipped jumps to its matching ']', so that the following
// increment resumes just after it; the ']' itself is not evaluated.
//
// Either way the matching ']' must exist: a '[' with no match fails even when
// its body would run, rather than running off the end of the program.
func (vm *VM) loop() error {
	end := vm.matchLoop(vm.iptr)
	if end < 0 {
		return UnmatchedLoopOpen{Pos: vm.iptr}
	}
	if vm.tape.Load() != 0 {
		vm.loops = append(vm.loops, vm.iptr)
		return nil
	}
	vm.logf("#", "skip loop @%v -> @%v", vm.iptr, end)
	vm.iptr = end
	return nil
}

func (vm *VM) endloop() error {
	i := len(vm.loops) - 1
	if i < 0 {
		return UnmatchedLoopClose{Pos: vm.iptr}
	}
	if vm.tape.Load() != 0 {
		vm.iptr = vm.loops[i]
		return nil
	}
	vm.loops = vm.loops[:i]
	return nil
}

// matchLoop returns the position of the ']' matching the '[' at the given
// position, or -1 if there is none.
func (vm *VM) matchLoop(at int) int {
	if vm.loopScan == NaiveLoops {
		if i := strings.IndexByte(vm.prog[at:], ']'); i >= 0 {
			return at + i
		}
		return -1
	}
	depth := 0
	for i := at; i < len(vm.prog); i++ {
		switch vm.prog[i] {
		case '[':
			depth++
		case ']':
			if depth--; depth == 0 {
				return i
			}
		}
	}
	return -1
}

//// Input/Output

func (vm *VM) put() error {
	return vm.print(vm.tape.Load())
}

func (vm *VM) get() error {
	val, err := vm.input()
	if errors.Is(err, io.EOF) {
		switch vm.eof {
		case EOFZero:
			val, err = 0, nil
		case EOFKeep:
			return nil
		}
	}
	if err != nil {
		return err
	}
	vm.tape.Stor(val)
	return nil
}
