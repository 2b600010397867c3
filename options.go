package main

import (
	"fmt"
	"io"
	"strings"
)

// VMOption configures a VM under construction.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, skipping any nil ones.
func VMOptions(opts ...VMOption) VMOption {
	var all vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	return all
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

const (
	defaultTapeLimit = 30000
	defaultCellSize  = 256
)

var defaultOptions = VMOptions(
	withInput(nil),
	withPrint(nil),
	withTapeLimit(defaultTapeLimit),
	withCellSize(defaultCellSize),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption InputFunc
type printOption PrintFunc
type tapeLimitOption int
type cellSizeOption int
type leftUnboundOption bool

func withInput(fn InputFunc) inputOption          { return inputOption(fn) }
func withPrint(fn PrintFunc) printOption          { return printOption(fn) }
func withTapeLimit(limit int) tapeLimitOption     { return tapeLimitOption(limit) }
func withCellSize(size int) cellSizeOption        { return cellSizeOption(size) }
func withLeftUnbound(left bool) leftUnboundOption { return leftUnboundOption(left) }

func (fn inputOption) apply(vm *VM) {
	if fn == nil {
		vm.input = noInput
	} else {
		vm.input = InputFunc(fn)
	}
}

func (fn printOption) apply(vm *VM) {
	if fn == nil {
		vm.print = discardPrint
	} else {
		vm.print = PrintFunc(fn)
	}
}

func (limit tapeLimitOption) apply(vm *VM)  { vm.tape.Limit = int(limit) }
func (size cellSizeOption) apply(vm *VM)    { vm.tape.CellSize = int(size) }
func (left leftUnboundOption) apply(vm *VM) { vm.tape.LeftUnbound = bool(left) }
func (mode EOFMode) apply(vm *VM)           { vm.eof = mode }
func (scan LoopScan) apply(vm *VM)          { vm.loopScan = scan }

func noInput() (int, error)        { return 0, io.EOF }
func discardPrint(value int) error { return nil }

// EOFMode determines what the ',' operator does once input is exhausted.
type EOFMode int

const (
	// EOFError stops execution, returning io.EOF.
	EOFError EOFMode = iota

	// EOFZero stores 0 in the current cell.
	EOFZero

	// EOFKeep leaves the current cell unchanged.
	EOFKeep
)

var eofModeNames = [...]string{
	EOFError: "error",
	EOFZero:  "zero",
	EOFKeep:  "keep",
}

func (mode EOFMode) String() string { return enumString("EOFMode", eofModeNames[:], int(mode)) }

// MarshalText encodes the mode name.
func (mode EOFMode) MarshalText() ([]byte, error) {
	return enumMarshal("eof mode", eofModeNames[:], int(mode))
}

// UnmarshalText parses a mode name.
func (mode *EOFMode) UnmarshalText(text []byte) error {
	i, err := enumUnmarshal("eof mode", eofModeNames[:], text)
	if err == nil {
		*mode = EOFMode(i)
	}
	return err
}

// LoopScan determines how a skipped loop's closing ']' is found.
type LoopScan int

const (
	// NestedLoops counts nested brackets to find the matching ']'.
	NestedLoops LoopScan = iota

	// NaiveLoops takes the first ']' after the '[', even if it closes a
	// nested loop.
	NaiveLoops
)

var loopScanNames = [...]string{
	NestedLoops: "nested",
	NaiveLoops:  "naive",
}

func (scan LoopScan) String() string { return enumString("LoopScan", loopScanNames[:], int(scan)) }

// MarshalText encodes the scan name.
func (scan LoopScan) MarshalText() ([]byte, error) {
	return enumMarshal("loop scan", loopScanNames[:], int(scan))
}

// UnmarshalText parses a scan name.
func (scan *LoopScan) UnmarshalText(text []byte) error {
	i, err := enumUnmarshal("loop scan", loopScanNames[:], text)
	if err == nil {
		*scan = LoopScan(i)
	}
	return err
}

func enumString(typ string, names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%v(%d)", typ, i)
}

func enumMarshal(what string, names []string, i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("invalid %v %d", what, i)
	}
	return []byte(names[i]), nil
}

func enumUnmarshal(what string, names []string, text []byte) (int, error) {
	for i, name := range names {
		if string(text) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %v %q, expected one of %v", what, text, strings.Join(names, ", "))
}
