package tape

// DefaultCellSize provides a default for Tape.CellSize.
const DefaultCellSize = 256

// Tape implements a growable sequence of integer cells addressed by a signed
// offset from an anchor cell at offset 0.
//
// Cells to the right of the anchor (including it) are always available for
// growth; cells to the left only when LeftUnbound is set. A non-zero Limit
// bounds the number of cells on either side of the anchor: moving past the
// limit wraps the pointer around to the opposite allocated edge rather than
// allocating.
//
// The zero value is a usable right-only, unbounded tape of byte cells.
type Tape struct {
	// Limit specifies the maximum tape length, 0 meaning unbounded.
	Limit int

	// CellSize specifies the modulus for cell values, defaulting to
	// DefaultCellSize when not positive.
	CellSize int

	// LeftUnbound allows growth to the left of the anchor cell.
	LeftUnbound bool

	right []int // offsets 0, 1, 2, ...
	left  []int // offsets -1, -2, -3, ...
	ptr   int
}

func (t *Tape) init() {
	if len(t.right) == 0 {
		t.right = append(t.right, 0)
	}
}

func (t *Tape) cellSize() int {
	if t.CellSize > 0 {
		return t.CellSize
	}
	return DefaultCellSize
}

// Ptr returns the offset of the current cell.
func (t *Tape) Ptr() int { return t.ptr }

// Bounds returns the currently allocated offset range [lo, hi).
func (t *Tape) Bounds() (lo, hi int) {
	t.init()
	return -len(t.left), len(t.right)
}

// Right moves the pointer one cell to the right, allocating a new zero cell
// at the right edge if necessary. At the rightmost legal offset of a limited
// tape, the pointer wraps to the leftmost allocated cell instead.
func (t *Tape) Right() {
	t.init()
	if t.Limit != 0 && t.ptr == t.Limit-1 {
		t.ptr = -len(t.left)
		return
	}
	if t.ptr == len(t.right)-1 {
		t.right = append(t.right, 0)
	}
	t.ptr++
}

// Left moves the pointer one cell to the left. Right-only tapes wrap from
// the anchor to the rightmost allocated cell; left-unbound tapes allocate a
// new zero cell at the left edge, wrapping only at a limited tape's leftmost
// legal offset.
func (t *Tape) Left() {
	t.init()
	if !t.LeftUnbound && t.ptr == 0 ||
		t.LeftUnbound && t.Limit != 0 && t.ptr == -t.Limit {
		t.ptr = len(t.right) - 1
		return
	}
	if t.LeftUnbound && t.ptr == -len(t.left) {
		t.left = append(t.left, 0)
	}
	t.ptr--
}

func (t *Tape) cell() *int {
	t.init()
	if t.ptr >= 0 {
		return &t.right[t.ptr]
	}
	return &t.left[-t.ptr-1]
}

// Load returns the value of the current cell.
func (t *Tape) Load() int { return *t.cell() }

// Stor sets the current cell, reducing value modulo the cell size.
func (t *Tape) Stor(value int) {
	size := t.cellSize()
	value %= size
	if value < 0 {
		value += size
	}
	*t.cell() = value
}

// Incr increments the current cell, wrapping from the largest value to 0.
func (t *Tape) Incr() {
	if c := t.cell(); *c >= t.cellSize()-1 {
		*c = 0
	} else {
		*c++
	}
}

// Decr decrements the current cell, wrapping from 0 to the largest value.
func (t *Tape) Decr() {
	if c := t.cell(); *c <= 0 {
		*c = t.cellSize() - 1
	} else {
		*c--
	}
}

// Cells returns a copy of all allocated cells in offset order, along with
// the offset of the first one.
func (t *Tape) Cells() (lo int, cells []int) {
	t.init()
	cells = make([]int, 0, len(t.left)+len(t.right))
	for i := len(t.left) - 1; i >= 0; i-- {
		cells = append(cells, t.left[i])
	}
	cells = append(cells, t.right...)
	return -len(t.left), cells
}
