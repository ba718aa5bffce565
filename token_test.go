package tstoken

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToken(t *testing.T) {
	digits, salt, err := SplitToken("1R31EQv")
	require.NoError(t, err)
	assert.Equal(t, "1R31EQ", digits)
	assert.Equal(t, 'v', salt)

	digits, salt, err = SplitToken("k")
	require.NoError(t, err)
	assert.Equal(t, "", digits)
	assert.Equal(t, 'k', salt)
}

func TestSplitToken_Errors(t *testing.T) {
	_, _, err := SplitToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)

	// decodable, but never produced by Encode
	_, _, err = SplitToken("ab!")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, '!', charErr.Char)
	assert.Equal(t, 2, charErr.Offset)
}

func TestIsToken(t *testing.T) {
	codec := New()
	for i := 0; i < 20; i++ {
		assert.True(t, IsToken(codec.Encode(big.NewInt(int64(i)*987654321))))
	}
	assert.False(t, IsToken(""))
	assert.False(t, IsToken("abc-def"))
}
