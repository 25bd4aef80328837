package emulator

import (
	"github.com/mikkasendke/brainfinterpreter/translate"
)

var f = translate.From

// ErrRuntime indicates the program counter of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
