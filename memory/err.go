package memory

import (
	"errors"

	"github.com/mikkasendke/brainfinterpreter/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrCellBounds = errors.New(f("cell index out of bounds"))
)
