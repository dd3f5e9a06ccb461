package assignment

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("assignment: input does not exist")
	ErrFormat       = errors.New("assignment: invalid format")
)

// FormatError は入力の特定行を解釈できなかったことを表します。
type FormatError struct {
	Line  int
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("assignment: invalid format in line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("assignment: invalid %s in line %d: %v", e.Field, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is は errors.Is(err, ErrFormat) を満たすために実装しています。
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
