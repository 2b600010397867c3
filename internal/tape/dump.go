package tape

// Dump provides data for testing.
type Dump struct {
	Left  []int
	Right []int
	Ptr   int
}

// Dump tape data for testing.
func (t *Tape) Dump() (d Dump) {
	d.Left = t.left
	d.Right = t.right
	d.Ptr = t.ptr
	return d
}
