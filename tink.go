// This file defines the codec interface shared with the tinktoken package.
// For keyset-backed codecs, see the tinktoken package.

package tstoken

import "math/big"

// TokenCodec is implemented by *Codec and by the keyed codecs built by tinktoken.
// Implementations must be safe for concurrent use.
type TokenCodec interface {
	// Encode returns the token for a millisecond timestamp. nil means
	// "no timestamp" and makes the codec synthesize one.
	Encode(timestampMs *big.Int) string

	// Decode reads an integer back out of token. It is deterministic and
	// does not invert Encode.
	Decode(token string) (*big.Int, error)

	// RandomString returns n random symbols from EncodeSymbols.
	RandomString(n int) string
}
