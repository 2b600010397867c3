/* Package main: gobf -- a brainfuck virtual machine

Brainfuck is an eight operator language with a single data structure: a tape
of integer cells, and a data pointer selecting one of them. Programs are text;
any byte that is not one of the eight operators is a comment, so programs may
be annotated freely.

	>  move the data pointer one cell right
	<  move the data pointer one cell left
	+  increment the current cell
	-  decrement the current cell
	[  if the current cell is zero, skip past the matching ]
	]  if the current cell is non-zero, go back to the matching [
	.  output the current cell
	,  input a value into the current cell

Tape

The tape starts as a single zero cell, and grows a zero cell at a time as the
data pointer first moves onto it. By default the tape is limited to 30000
cells, extending only rightward from the first cell:

	- moving left of the first cell wraps around to the rightmost allocated one
	- moving right of the last permitted cell wraps around to the leftmost one

Left-unbound tapes may also grow leftward, to negative offsets; the limit then
applies separately to each side. A limit of 0 lets the tape grow without end.

Cell values are always reduced modulo the cell size, which defaults to 256;
so decrementing a zero cell yields 255, and incrementing 255 yields 0.

Loops

The VM runs directly over the program text; there is no compiled form. The
instruction pointer advances by one after every operator, and the loop
operators jump to just before where execution should resume:

	- an entered loop pushes the position of its [ onto the loop stack
	- a skipped loop jumps to its matching ]
	- a ] with a non-zero cell jumps back to the [ on top of the loop stack
	- a ] with a zero cell pops the loop stack, falling through

A [ must always have a matching ], even if its body is about to run. By
default brackets nest; the naive loop scan instead takes the first ] after a
skipped [, which may then leave a later ] closing no running loop.

Input and Output

Cell values are read and written either as characters, one UTF-8 rune per
cell, or as whitespace separated decimal numbers. Once input is exhausted the
, operator by default stops the program, returning io.EOF; it may instead
store a zero, or leave the cell unchanged.

Debugging

The VM may be driven one step at a time: Tell and Seek read and move the
instruction pointer, and the -debug flag runs the program under a small
interactive debugger built on them. The -trace flag logs every operator
executed along with the data pointer, the current cell, and the loop stack.

*/
package main
