package tinktoken

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/tstoken"
)

func newBenchCodec(b *testing.B) tstoken.TokenCodec {
	b.Helper()
	if err := Register(); err != nil {
		b.Fatalf("Failed to register KeyManager: %v", err)
	}

	handle, err := keyset.NewHandle(KeyTemplate())
	if err != nil {
		b.Fatalf("Failed to create keyset handle: %v", err)
	}

	codec, err := New(handle)
	if err != nil {
		b.Fatalf("Failed to create codec: %v", err)
	}
	return codec
}

// BenchmarkEncode compares keyed and crypto-sourced codecs across value sizes
func BenchmarkEncode(b *testing.B) {
	codecs := []struct {
		name  string
		codec tstoken.TokenCodec
	}{
		{"Keyed", newBenchCodec(b)},
		{"Crypto", tstoken.New()},
	}

	values := []struct {
		name string
		ms   *big.Int
	}{
		{"Zero", big.NewInt(0)},
		{"Timestamp", big.NewInt(1700000000000)},
		{"Wide_256bit", new(big.Int).Lsh(big.NewInt(1), 256)},
	}

	for _, c := range codecs {
		for _, v := range values {
			b.Run(c.name+"/"+v.name, func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = c.codec.Encode(v.ms)
				}
			})
		}
	}
}

// BenchmarkDecode benchmarks Decode on tokens of increasing length
func BenchmarkDecode(b *testing.B) {
	codec := newBenchCodec(b)

	tokens := []struct {
		name  string
		token string
	}{
		{"Salt_only", "v"},
		{"Timestamp", "1R31EQv"},
		{"Long_64", codec.RandomString(64)},
	}

	for _, tc := range tokens {
		b.Run(tc.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := codec.Decode(tc.token); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkRandomString benchmarks fixed-length random string generation
func BenchmarkRandomString(b *testing.B) {
	codec := newBenchCodec(b)

	for _, n := range []int{8, 32, 128} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = codec.RandomString(n)
			}
		})
	}
}
