// Package tinktoken provides Tink integration for tstoken.
// This file contains the factory for building codecs from Tink keyset handles.
package tinktoken

import (
	"fmt"
	"io"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/tstoken"
)

// New creates a keyed codec from the primary key of a keyset handle.
// The KeyManager is registered with Tink's registry if it is not already.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinktoken.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	codec, err := tinktoken.New(handle)
//	if err != nil {
//	    return err
//	}
//	token := codec.Encode(big.NewInt(time.Now().UnixMilli()))
func New(handle *keyset.Handle) (tstoken.TokenCodec, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}

	if err := Register(); err != nil {
		return nil, fmt.Errorf("failed to register key manager: %w", err)
	}

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}

	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}

	codec, ok := primary.Primitive.(*tstoken.Codec)
	if !ok {
		return nil, fmt.Errorf("primary key %d is not a salt seed key", primary.KeyID)
	}

	return codec, nil
}

// ReadCleartextJSON reads an unencrypted JSON keyset, as written by WriteCleartextJSON.
func ReadCleartextJSON(r io.Reader) (*keyset.Handle, error) {
	handle, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read keyset: %w", err)
	}
	return handle, nil
}

// WriteCleartextJSON writes handle as an unencrypted JSON keyset.
// Anyone holding the output can reproduce the codec's salt sequence.
func WriteCleartextJSON(handle *keyset.Handle, w io.Writer) error {
	if err := insecurecleartextkeyset.Write(handle, keyset.NewJSONWriter(w)); err != nil {
		return fmt.Errorf("failed to write keyset: %w", err)
	}
	return nil
}
