package arrays

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "arrays: ". Operations wrap these sentinels
// with their name via arraysErrorf; callers match with errors.Is.
var (
	// ErrLengthMismatch indicates two slices that must be the same length are not.
	ErrLengthMismatch = errors.New("arrays: length mismatch")
)

// Operation names used in wrapped errors.
const (
	opDot = "Dot"
)

// arraysErrorf tags err with the operation name.
func arraysErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
