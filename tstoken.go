// Package tstoken turns integers, typically Unix millisecond timestamps, into
// short alphanumeric tokens and reads integers back out of tokens.
//
// A token is the timestamp's whole seconds written in radix 62 over
// EncodeSymbols, most significant symbol first, followed by one random salt
// symbol. Decoding reads every symbol of a token, salt included, in the wider
// radix of DecodeSymbols and scales the result back to milliseconds.
//
// Because the two radixes differ and the salt is never stripped, Decode is not
// the inverse of Encode. Tokens already stored by callers rely on this exact
// behavior, so treat a token as an opaque, compact label, not as a reversible
// encoding. The scheme provides no confidentiality or integrity.
//
// Example usage:
//
//	codec := tstoken.New()
//
//	token := codec.EncodeTime(time.Now())
//	// token might be "1Lr6Sxq"
//
//	n, err := codec.Decode(token)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id := codec.RandomString(16)
package tstoken

import (
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/vdparikh/tstoken/subtle"
)

// Codec encodes and decodes tokens. It holds no mutable state of its own and
// is safe for concurrent use as long as its Source is.
type Codec struct {
	src Source
}

// Option configures a Codec.
type Option func(*Codec)

// WithSource sets the random Source used for salts, fallback timestamps and
// random strings. A nil src is ignored.
func WithSource(src Source) Option {
	return func(c *Codec) {
		if src != nil {
			c.src = src
		}
	}
}

// New creates a Codec. Without options it draws from CryptoSource.
func New(opts ...Option) *Codec {
	c := &Codec{src: CryptoSource()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode returns the token for timestampMs. A nil timestampMs is replaced by
// a synthesized value (see Synthesize). Timestamps under one second encode to
// the salt symbol alone.
//
// Encode never fails.
func (c *Codec) Encode(timestampMs *big.Int) string {
	if timestampMs == nil {
		timestampMs = c.Synthesize()
	}

	seconds := msToSeconds(timestampMs)
	salt, _ := Choose(c.src, encodeRunes)

	return encodeAlphabet.Encode(seconds) + string(salt)
}

// EncodeUint64 is Encode for a native millisecond count.
func (c *Codec) EncodeUint64(ms uint64) string {
	return c.Encode(new(big.Int).SetUint64(ms))
}

// EncodeTime encodes t.UnixMilli(). Instants before the epoch have no
// positional part and yield the salt symbol alone.
func (c *Codec) EncodeTime(t time.Time) string {
	return c.Encode(big.NewInt(t.UnixMilli()))
}

// Synthesize returns the fallback timestamp Encode uses when none is given.
func (c *Codec) Synthesize() *big.Int {
	return synthesize(c.src)
}

// Decode reads token in the DecodeSymbols radix and returns the value times
// 1000. The empty token decodes to 0. The first character outside
// DecodeSymbols aborts decoding with an *InvalidCharacterError.
func (c *Codec) Decode(token string) (*big.Int, error) {
	return decode(token)
}

func decode(token string) (*big.Int, error) {
	seconds, err := decodeAlphabet.Decode(token)
	if err != nil {
		var symErr *subtle.InvalidSymbolError
		if errors.As(err, &symErr) {
			return nil, &InvalidCharacterError{Char: symErr.Symbol, Offset: symErr.Offset}
		}
		return nil, err
	}
	return secondsToMs(seconds), nil
}

// RandomString returns n symbols drawn independently and uniformly from
// EncodeSymbols. It has no relation to Encode or Decode. n <= 0 yields "".
func (c *Codec) RandomString(n int) string {
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)
	radix := len(encodeRunes)
	for i := 0; i < n; i++ {
		b.WriteRune(encodeRunes[int(c.src.Float64()*float64(radix))])
	}
	return b.String()
}

var defaultCodec = New()

// Encode encodes timestampMs with a Codec backed by CryptoSource.
func Encode(timestampMs *big.Int) string { return defaultCodec.Encode(timestampMs) }

// Decode decodes token. It uses no randomness.
func Decode(token string) (*big.Int, error) { return decode(token) }

// RandomString returns n random EncodeSymbols drawn from CryptoSource.
func RandomString(n int) string { return defaultCodec.RandomString(n) }

var _ TokenCodec = (*Codec)(nil)
