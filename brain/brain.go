package brain

import (
	"errors"
	"fmt"
	"log"

	"github.com/mikkasendke/brainfinterpreter/io"
	"github.com/mikkasendke/brainfinterpreter/memory"
	"github.com/mikkasendke/brainfinterpreter/token"
)

// Input is the engine's input collaborator.
type Input io.Input

// Output is the engine's output collaborator.
type Output io.Output

// Brain is the interpreter engine state.
type Brain struct {
	Verbose bool // Set to enable verbose logging.

	Pc      int // Program counter, index into Instructions.
	Pointer int // Address pointer, index into Memory.

	Instructions []token.Token  // Instruction sequence, fixed for the run.
	Memory       *memory.Memory // Memory tape, sized before the run.

	Input  Input  // Byte source for TOKEN_INPUT.
	Output Output // Byte sink for TOKEN_OUTPUT.
}

// New creates an engine over an instruction sequence and a memory tape.
func New(instructions []token.Token, mem *memory.Memory) (bb *Brain) {
	bb = &Brain{
		Instructions: instructions,
		Memory:       mem,
	}

	return
}

// String returns the current engine state as a string.
func (bb *Brain) String() (text string) {
	text = fmt.Sprintf("   pc: %04d\n  ptr: %04d\n", bb.Pc, bb.Pointer)

	value, err := bb.Memory.Get(bb.Pointer)
	if err == nil {
		text += fmt.Sprintf(" cell: 0x%02x\n", value)
	} else {
		text += " cell: ----\n"
	}

	return
}

// Reset rewinds the program counter and address pointer and zeroes memory.
func (bb *Brain) Reset() {
	bb.Pc = 0
	bb.Pointer = 0
	bb.Memory.Reset()
}

// Done reports whether the program counter has run past the program.
func (bb *Brain) Done() bool {
	return bb.Pc >= len(bb.Instructions)
}

// Run executes instructions until the program counter runs past the end
// of the program, or an operation fails.
func (bb *Brain) Run() (err error) {
	for !bb.Done() {
		err = bb.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Tick executes the instruction at the program counter, then advances
// the program counter past it. A jump operation sets the program counter
// to the matching delimiter's own index, so the advance lands one past
// the match.
func (bb *Brain) Tick() (err error) {
	if bb.Done() {
		err = ErrNoInstruction
		return
	}

	tok := bb.Instructions[bb.Pc]

	if bb.Verbose {
		log.Printf("%04d: %v ptr=%d", bb.Pc, tok, bb.Pointer)
	}

	err = bb.Execute(tok)
	if err != nil {
		return
	}

	bb.Pc++

	return
}

// Execute dispatches a single instruction. The program counter is only
// moved by the jump operations; normal advancement is Tick's job.
func (bb *Brain) Execute(tok token.Token) (err error) {
	switch tok {
	case token.TOKEN_MOVE_LEFT:
		err = bb.moveLeft()
	case token.TOKEN_MOVE_RIGHT:
		err = bb.moveRight()
	case token.TOKEN_INCREMENT:
		err = bb.increment()
	case token.TOKEN_DECREMENT:
		err = bb.decrement()
	case token.TOKEN_OUTPUT:
		err = bb.output()
	case token.TOKEN_INPUT:
		err = bb.input()
	case token.TOKEN_LOOP_START:
		err = bb.loopStart()
	case token.TOKEN_LOOP_END:
		err = bb.loopEnd()
	default:
		err = ErrTokenInvalid
	}

	return
}

// moveLeft moves the address pointer one cell toward the start of the
// tape. Moving left past cell 0 is an error, never a wrap.
func (bb *Brain) moveLeft() (err error) {
	if bb.Pointer == 0 {
		err = ErrPointerBounds
		return
	}

	bb.Pointer--
	return
}

// moveRight moves the address pointer one cell toward the end of the tape.
func (bb *Brain) moveRight() (err error) {
	if bb.Pointer+1 >= bb.Memory.Len() {
		err = ErrPointerBounds
		return
	}

	bb.Pointer++
	return
}

func (bb *Brain) increment() (err error) {
	var value byte
	value, err = bb.Memory.Get(bb.Pointer)
	if err != nil {
		return
	}

	// Byte arithmetic wraps modulo 256.
	return bb.Memory.Set(bb.Pointer, value+1)
}

func (bb *Brain) decrement() (err error) {
	var value byte
	value, err = bb.Memory.Get(bb.Pointer)
	if err != nil {
		return
	}

	return bb.Memory.Set(bb.Pointer, value-1)
}

func (bb *Brain) output() (err error) {
	var value byte
	value, err = bb.Memory.Get(bb.Pointer)
	if err != nil {
		return
	}

	return bb.Output.WriteCell(value)
}

func (bb *Brain) input() (err error) {
	var value byte
	value, err = bb.Input.ReadByte()
	if err != nil {
		err = errors.Join(ErrNoInput, err)
		return
	}

	return bb.Memory.Set(bb.Pointer, value)
}

// loopStart jumps to the matching TOKEN_LOOP_END when the current cell is
// zero, skipping the loop body. With a nonzero cell it falls through.
func (bb *Brain) loopStart() (err error) {
	var value byte
	value, err = bb.Memory.Get(bb.Pointer)
	if err != nil || value != 0 {
		return
	}

	var index int
	index, err = bb.findMatchingClose()
	if err != nil {
		return
	}

	bb.Pc = index
	return
}

// loopEnd jumps back to the matching TOKEN_LOOP_START when the current
// cell is nonzero, re-entering the loop body. With a zero cell it falls
// through, exiting the loop.
func (bb *Brain) loopEnd() (err error) {
	var value byte
	value, err = bb.Memory.Get(bb.Pointer)
	if err != nil || value == 0 {
		return
	}

	var index int
	index, err = bb.findMatchingOpen()
	if err != nil {
		return
	}

	bb.Pc = index
	return
}

// findMatchingClose scans forward from the instruction after the program
// counter for the TOKEN_LOOP_END balancing the delimiter at the program
// counter.
func (bb *Brain) findMatchingClose() (index int, err error) {
	open := 0
	for index = bb.Pc + 1; index < len(bb.Instructions); index++ {
		switch bb.Instructions[index] {
		case token.TOKEN_LOOP_START:
			open++
		case token.TOKEN_LOOP_END:
			if open == 0 {
				return
			}
			open--
		}
	}

	err = ErrNoMatchingClose
	return
}

// findMatchingOpen scans backward from the instruction before the program
// counter for the TOKEN_LOOP_START balancing the delimiter at the program
// counter.
func (bb *Brain) findMatchingOpen() (index int, err error) {
	closed := 0
	for index = bb.Pc - 1; index >= 0; index-- {
		switch bb.Instructions[index] {
		case token.TOKEN_LOOP_END:
			closed++
		case token.TOKEN_LOOP_START:
			if closed == 0 {
				return
			}
			closed--
		}
	}

	err = ErrNoMatchingOpen
	return
}
