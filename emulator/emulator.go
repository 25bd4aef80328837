// Copyright 2026, Mikka Sendke

package emulator

import (
	"github.com/mikkasendke/brainfinterpreter/brain"
	"github.com/mikkasendke/brainfinterpreter/io"
	"github.com/mikkasendke/brainfinterpreter/memory"
	"github.com/mikkasendke/brainfinterpreter/token"
)

// Emulator ties the tokenizer, memory tape, engine, and I/O tape into a
// single runnable unit.
//
// The tape is sized to the number of increment tokens in the program.
// This reproduces the reference interpreter exactly: it is a
// compatibility quirk, not a recommended sizing rule, and it means a
// program can have fewer cells than it addresses (a `,.` program has
// zero cells and fails on its first cell access).
type Emulator struct {
	Verbose      bool // If set, enables verbose logging.
	*brain.Brain      // Reference to the engine state.

	Tape io.Tape // Byte I/O for the engine.
}

// NewEmulator creates an emulator with no program loaded.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Brain: brain.New(nil, memory.New(0)),
	}

	emu.Brain.Input = &emu.Tape
	emu.Brain.Output = &emu.Tape

	return
}

// Load tokenizes source, sizes a fresh tape by its increment count, and
// installs a new engine over both. I/O wiring is preserved.
func (emu *Emulator) Load(source string) {
	tokens := token.NewTokenizer(source).Tokenize()
	cells := token.Count(tokens, token.TOKEN_INCREMENT)

	emu.Brain = brain.New(tokens, memory.New(cells))
	emu.Brain.Input = &emu.Tape
	emu.Brain.Output = &emu.Tape
}

// Reset rewinds the engine for another run of the loaded program.
func (emu *Emulator) Reset() {
	emu.Brain.Reset()
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Brain.Pc
}

// CellCount returns the size of the memory tape.
func (emu *Emulator) CellCount() int {
	return emu.Brain.Memory.Len()
}

// Tick executes a single instruction. A failing instruction is reported
// with the program counter at which it failed.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Brain.Done() {
		done = true
		return
	}

	emu.Brain.Verbose = emu.Verbose

	pc := emu.Brain.Pc
	err = emu.Brain.Tick()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Run executes the loaded program to completion.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
