package tstoken

import "github.com/vdparikh/tstoken/subtle"

const (
	// EncodeSymbols is the encoder's digit set: position is digit value, radix 62.
	EncodeSymbols = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DecodeSymbols is the decoder's digit set. It extends EncodeSymbols with
	// punctuation, so the decoder reads tokens in a wider radix than the encoder
	// wrote them in. Existing tokens depend on both sets staying exactly as is.
	DecodeSymbols = EncodeSymbols + "!@#$%^&*()-_+=<>?"
)

var (
	encodeAlphabet = subtle.MustAlphabet(EncodeSymbols)
	decodeAlphabet = subtle.MustAlphabet(DecodeSymbols)

	encodeRunes = []rune(EncodeSymbols)
)

// EncodeRadix returns the radix tokens are written in.
func EncodeRadix() int { return encodeAlphabet.Radix() }

// DecodeRadix returns the radix tokens are read in.
func DecodeRadix() int { return decodeAlphabet.Radix() }
