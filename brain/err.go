package brain

import (
	"errors"

	"github.com/mikkasendke/brainfinterpreter/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrPointerBounds   = errors.New(f("address pointer out of bounds"))
	ErrNoInput         = errors.New(f("no input"))
	ErrNoInstruction   = errors.New(f("no instruction at this index"))
	ErrTokenInvalid    = errors.New(f("token invalid"))
	ErrNoMatchingClose = errors.New(f("no matching closing bracket"))
	ErrNoMatchingOpen  = errors.New(f("no matching opening bracket"))
)
