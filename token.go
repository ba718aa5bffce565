package tstoken

import (
	"errors"
	"unicode/utf8"
)

// ErrEmptyToken is returned by SplitToken for the empty string.
var ErrEmptyToken = errors.New("empty token")

// SplitToken separates a token into its positional part and trailing salt
// symbol. Every character must be in EncodeSymbols, otherwise an
// *InvalidCharacterError is returned.
func SplitToken(token string) (digits string, salt rune, err error) {
	if token == "" {
		return "", 0, ErrEmptyToken
	}
	for offset, r := range token {
		if !encodeAlphabet.Contains(r) {
			return "", 0, &InvalidCharacterError{Char: r, Offset: offset}
		}
	}

	salt, size := utf8.DecodeLastRuneInString(token)
	return token[:len(token)-size], salt, nil
}

// IsToken reports whether s has the shape Encode produces: at least one
// character, all of them from EncodeSymbols.
func IsToken(s string) bool {
	_, _, err := SplitToken(s)
	return err == nil
}
