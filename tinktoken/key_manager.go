// Package tinktoken provides Tink integration for tstoken.
// This file contains the KeyManager implementation that registers keyed codecs with Tink's registry.
package tinktoken

import (
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"github.com/google/tink/go/subtle/random"
	"github.com/vdparikh/tstoken"
	"google.golang.org/protobuf/proto"
)

const (
	// SaltSeedKeyTypeURL is the type URL for salt seed keys in Tink's registry.
	SaltSeedKeyTypeURL = "type.googleapis.com/tstoken.SaltSeedKey"

	// SeedSize is the only accepted key size: one ChaCha8 seed.
	SeedSize = 32
)

// KeyManager implements registry.KeyManager for salt seed keys.
// The key value is a raw 32-byte seed; the primitive is a *tstoken.Codec whose
// salts and random strings come from a ChaCha8 stream seeded with it.
type KeyManager struct {
	typeURL string
}

// NewKeyManager creates a new salt seed key manager.
func NewKeyManager() *KeyManager {
	return &KeyManager{
		typeURL: SaltSeedKeyTypeURL,
	}
}

// Primitive creates a keyed *tstoken.Codec from the given serialized key.
func (km *KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) != SeedSize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(serializedKey), SeedSize)
	}

	var seed [SeedSize]byte
	copy(seed[:], serializedKey)

	return tstoken.New(tstoken.WithSource(tstoken.SeededSource(seed))), nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *KeyManager) TypeURL() string {
	return km.typeURL
}

// NewKey generates a new key according to the given key template.
// The returned message is the same *tink_go_proto.KeyData NewKeyData builds.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	return km.NewKeyData(serializedKeyTemplate)
}

// NewKeyData creates a new KeyData from the given key template.
// The template value, if present, is a single byte holding the key size.
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tink_go_proto.KeyData, error) {
	if len(serializedKeyTemplate) > 0 {
		if size := int(serializedKeyTemplate[0]); size != SeedSize {
			return nil, fmt.Errorf("invalid key size in template: %d bytes (must be %d)", size, SeedSize)
		}
	}

	return &tink_go_proto.KeyData{
		TypeUrl:         km.typeURL,
		Value:           random.GetRandomBytes(SeedSize),
		KeyMaterialType: tink_go_proto.KeyData_SYMMETRIC,
	}, nil
}

// Verify that KeyManager implements registry.KeyManager
var _ registry.KeyManager = (*KeyManager)(nil)

// KeyTemplate creates a key template for salt seed keys:
//
//	handle, err := keyset.NewHandle(tinktoken.KeyTemplate())
func KeyTemplate() *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          SaltSeedKeyTypeURL,
		Value:            []byte{SeedSize},
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}

// NewKeysetHandleFromKey creates a keyset handle holding seed as its only,
// primary key. This is useful for pinning a salt sequence in tests or for
// seeds that come from an external key store.
//
// Note: This creates an unencrypted keyset.
func NewKeysetHandleFromKey(seed []byte) (*keyset.Handle, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(seed), SeedSize)
	}

	keyID := random.GetRandomUint32()
	for keyID == 0 {
		keyID = random.GetRandomUint32()
	}

	keysetKey := &tink_go_proto.Keyset_Key{
		KeyData: &tink_go_proto.KeyData{
			TypeUrl:         SaltSeedKeyTypeURL,
			Value:           append([]byte(nil), seed...),
			KeyMaterialType: tink_go_proto.KeyData_SYMMETRIC,
		},
		KeyId:            keyID,
		Status:           tink_go_proto.KeyStatusType_ENABLED,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}

	ks := &tink_go_proto.Keyset{
		PrimaryKeyId: keyID,
		Key:          []*tink_go_proto.Keyset_Key{keysetKey},
	}

	buf := &keyset.MemReaderWriter{Keyset: ks}
	return insecurecleartextkeyset.Read(buf)
}
