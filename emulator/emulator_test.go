package emulator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/mikkasendke/brainfinterpreter/brain"
	"github.com/mikkasendke/brainfinterpreter/memory"
)

// Multiplies 8 by 8 cell-by-cell, then counts up through 'A', 'B', 'C'.
const abcProgram = "++++++++[>++++++++<-]>+.+.+."

const helloProgram = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]" +
	">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func doRun(emu *Emulator, source string, input []byte, t *testing.T) (output []byte) {
	assert := assert.New(t)

	emu.Load(source)

	emu.Tape.Input = bytes.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	err := emu.Run()
	assert.NoError(err)
	if err != nil {
		t.Log(emu.Brain.String())
		t.Fatalf("%v", err)
	}

	output = tape_output.Bytes()
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Brain)
	assert.Equal(0, emu.CellCount())
}

// The tape is sized by the increment count of the loaded program.
func TestCellCount(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		cells  int
	}){
		{"none", "><.,[]", 0},
		{"empty", "", 0},
		{"counted", "++[->++<]", 4},
		{"comments_ignored", "add + one + more +", 3},
	}

	for _, entry := range table {
		emu := NewEmulator()
		emu.Load(entry.source)
		assert.Equal(entry.cells, emu.CellCount(), entry.name)
	}
}

func TestRunGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)

	table := [](struct {
		name   string
		source string
		input  []byte
	}){
		{"hello_world", helloProgram, nil},
		{"abc", abcProgram, nil},
		{"echo", "+,.+,.", []byte("Hi")},
	}

	for _, entry := range table {
		emu := NewEmulator()
		output := doRun(emu, entry.source, entry.input, t)
		g.Assert(t, entry.name, output)
	}
}

func TestRunTwice(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	first := doRun(emu, abcProgram, nil, t)

	emu.Reset()
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	assert.NoError(emu.Run())
	assert.Equal(first, tape_output.Bytes())
}

func TestSingleStep(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load("++.")
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	for pc := range 3 {
		assert.Equal(pc, emu.Pc())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal([]byte{2}, tape_output.Bytes())
}

// Runtime failures carry the program counter they happened at.
func TestRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load("+<")

	err := emu.Run()
	assert.ErrorIs(err, brain.ErrPointerBounds)

	var rt *ErrRuntime
	assert.ErrorAs(err, &rt)
	assert.Equal(1, rt.Pc)
}

// A program without increments has no cells at all.
func TestZeroCellProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load(",.")
	emu.Tape.Input = bytes.NewReader([]byte{65})
	emu.Tape.Output = &bytes.Buffer{}

	assert.Equal(0, emu.CellCount())
	assert.True(errors.Is(emu.Run(), memory.ErrCellBounds))
}
