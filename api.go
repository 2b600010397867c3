package main

import (
	"context"

	"github.com/jcorbin/gobf/internal/panicerr"
)

// New creates a VM ready to run program from its start, with an empty loop
// stack and a tape holding a single zero cell.
func New(program string, opts ...VMOption) *VM {
	vm := VM{prog: program}
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run steps until the instruction pointer reaches the end of the program, an
// error occurs, or ctx is done. A panic from an I/O callback is returned as an
// error carrying its stack.
func (vm *VM) Run(ctx context.Context) error {
	return panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
}

// Step executes the single instruction at the instruction pointer, then
// advances it. Non-operator bytes are no-ops that only advance.
func (vm *VM) Step() error {
	return panicerr.Recover("VM", vm.step)
}

// Done returns true once the instruction pointer is at the end of the program.
func (vm *VM) Done() bool { return vm.iptr == len(vm.prog) }

// Tell returns the instruction pointer.
func (vm *VM) Tell() int { return vm.iptr }

// Seek sets the instruction pointer without any validation; an out of bounds
// position fails on the next Step or Run.
func (vm *VM) Seek(pos int) { vm.iptr = pos }

func WithInput(fn InputFunc) VMOption     { return withInput(fn) }
func WithPrint(fn PrintFunc) VMOption     { return withPrint(fn) }
func WithTapeLimit(limit int) VMOption    { return withTapeLimit(limit) }
func WithCellSize(size int) VMOption      { return withCellSize(size) }
func WithLeftUnbound(left bool) VMOption  { return withLeftUnbound(left) }
func WithEOF(mode EOFMode) VMOption       { return mode }
func WithLoopScan(scan LoopScan) VMOption { return scan }
func WithConfig(cfg Config) VMOption      { return cfg.options() }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
