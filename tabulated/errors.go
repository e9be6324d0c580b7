package tabulated

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrValidation      = fmt.Errorf("validation: %w", commerr.ErrInvalidArgument)
	ErrIndexOutOfRange = fmt.Errorf("index out of range: %w", commerr.ErrOutOfRange)
	ErrOrderViolation  = fmt.Errorf("order violation: %w", commerr.ErrReject)
	ErrState           = errors.New("invalid state")
	ErrFormat          = errors.New("bad format")
	ErrConfiguration   = errors.New("configuration")
)

func indexError(index, count int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, count)
}
