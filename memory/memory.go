// Package memory implements the interpreter's tape of byte cells.
package memory

// Memory is a fixed-length tape of byte cells. The length is chosen once
// at construction and never changes; all cells start at zero.
type Memory struct {
	cells []byte
}

// New creates a tape with size zeroed cells.
func New(size int) (mem *Memory) {
	mem = &Memory{
		cells: make([]byte, size),
	}

	return
}

// Get returns the cell at index.
func (mem *Memory) Get(index int) (value byte, err error) {
	if index < 0 || index >= len(mem.cells) {
		err = ErrCellBounds
		return
	}

	value = mem.cells[index]
	return
}

// Set replaces the cell at index.
func (mem *Memory) Set(index int, value byte) (err error) {
	if index < 0 || index >= len(mem.cells) {
		err = ErrCellBounds
		return
	}

	mem.cells[index] = value
	return
}

// Len returns the cell count.
func (mem *Memory) Len() int {
	return len(mem.cells)
}

// Reset zeroes all cells.
func (mem *Memory) Reset() {
	clear(mem.cells)
}
