// Package subtle provides the low-level positional notation primitives used by tstoken.
// It works on raw alphabets and arbitrary-precision integers; most users should use
// the high-level API in the parent package instead.
package subtle

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"
)

// ErrInvalidSymbol is matched by every *InvalidSymbolError.
var ErrInvalidSymbol = errors.New("symbol not in alphabet")

// InvalidSymbolError reports the first rune of an input that is not part of the alphabet.
type InvalidSymbolError struct {
	Symbol rune
	Offset int // byte offset of Symbol in the input
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at offset %d", e.Symbol, e.Offset)
}

// Is reports whether target is ErrInvalidSymbol.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// Alphabet is an ordered set of unique symbols. The position of a symbol is its
// digit value; the number of symbols is the radix.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	radix   *big.Int
}

// NewAlphabet builds an Alphabet from the runes of s in order.
// It fails when s has fewer than two symbols or repeats a symbol.
func NewAlphabet(s string) (*Alphabet, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("alphabet is not valid UTF-8")
	}
	symbols := []rune(s)
	if len(symbols) < 2 {
		return nil, fmt.Errorf("alphabet must have at least 2 symbols, got %d", len(symbols))
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if prev, ok := index[r]; ok {
			return nil, fmt.Errorf("duplicate symbol %q at positions %d and %d", r, prev, i)
		}
		index[r] = i
	}

	return &Alphabet{
		symbols: symbols,
		index:   index,
		radix:   big.NewInt(int64(len(symbols))),
	}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// It is intended for package-level alphabet constants.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic("subtle: " + err.Error())
	}
	return a
}

// Radix returns the number of symbols.
func (a *Alphabet) Radix() int { return len(a.symbols) }

// Symbol returns the symbol for digit value i. It panics if i is out of range.
func (a *Alphabet) Symbol(i int) rune { return a.symbols[i] }

// Index returns the digit value of r.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is a symbol of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a *Alphabet) String() string { return string(a.symbols) }

// Encode writes n in positional notation over the alphabet, most significant
// symbol first. Values <= 0 produce the empty string: there is no symbol for
// zero on its own, the loop simply never runs.
func (a *Alphabet) Encode(n *big.Int) string {
	if n == nil || n.Sign() <= 0 {
		return ""
	}

	var digits []rune
	temp := new(big.Int).Set(n)
	var remainder big.Int
	for temp.Sign() > 0 {
		temp.QuoRem(temp, a.radix, &remainder)
		digits = append(digits, a.symbols[remainder.Int64()])
	}

	// digits were produced least significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Decode reads s as positional notation over the alphabet.
// The empty string decodes to 0. The first rune outside the alphabet aborts
// decoding with an *InvalidSymbolError.
func (a *Alphabet) Decode(s string) (*big.Int, error) {
	result := big.NewInt(0)
	digit := new(big.Int)

	for offset, r := range s {
		i, ok := a.index[r]
		if !ok {
			return nil, &InvalidSymbolError{Symbol: r, Offset: offset}
		}
		result.Mul(result, a.radix)
		result.Add(result, digit.SetInt64(int64(i)))
	}

	return result, nil
}
