// Package io provides the I/O collaborators for the interpreter engine.
// The engine itself never touches process streams; it pulls input bytes
// from an Input and pushes output cells to an Output, one at a time.
package io

import (
	"io"
)

// Input pulls exactly one byte at a time from a stream. An error return
// means no further bytes are available.
type Input interface {
	ReadByte() (value byte, err error)
}

// Output accepts one cell value at a time and writes its character code
// to a stream. No flushing contract beyond eventual visibility.
type Output interface {
	WriteCell(value byte) (err error)
}

// Tape adapts an io.Reader and io.Writer pair to the Input and Output
// collaborator contracts.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Input = (*Tape)(nil)
var _ Output = (*Tape)(nil)

// ReadByte reads a single byte from the input stream.
func (tc *Tape) ReadByte() (value byte, err error) {
	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if err != nil {
		return
	}

	value = one[0]
	return
}

// WriteCell writes a cell value to the output stream as a character code.
// Values above 0x7f encode as multi-byte runes, matching a character
// stream rather than a binary one.
func (tc *Tape) WriteCell(value byte) (err error) {
	_, err = tc.Output.Write([]byte(string(rune(value))))
	return
}
