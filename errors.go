package main

import "fmt"

// UnmatchedLoopOpen is returned when a '[' has no matching ']' anywhere after
// it in the program.
type UnmatchedLoopOpen struct{ Pos int }

// UnmatchedLoopClose is returned when a ']' is reached while no loop is
// running, as happens after a naive loop skip stops at a nested ']', or after
// a Seek into the middle of a loop body.
type UnmatchedLoopClose struct{ Pos int }

// progError is returned when stepping with the instruction pointer outside
// of the program, which only a Seek can cause.
type progError int

func (err UnmatchedLoopOpen) Error() string {
	return fmt.Sprintf("the '[' at position %v in the program is unmatched by a ']'", err.Pos)
}

func (err UnmatchedLoopClose) Error() string {
	return fmt.Sprintf("the ']' at position %v in the program closes no running loop", err.Pos)
}

func (iptr progError) Error() string {
	return fmt.Sprintf("instruction pointer %v out of program bounds", int(iptr))
}

// Position returns the program position of the offending '['.
func (err UnmatchedLoopOpen) Position() int { return err.Pos }

// Position returns the program position of the offending ']'.
func (err UnmatchedLoopClose) Position() int { return err.Pos }

// Position returns the offending instruction pointer.
func (iptr progError) Position() int { return int(iptr) }

// positioned is implemented by errors that relate to a program position.
type positioned interface {
	error
	Position() int
}
