package tstoken

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is matched by every *InvalidCharacterError.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError is returned by Decode for the first character of a
// token that is not in DecodeSymbols.
type InvalidCharacterError struct {
	Char   rune
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
