package usecase

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tokenID, err := GenerateTokenID()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(tokenID)
		require.NoError(t, err)
		assert.Len(t, raw, 32)

		assert.False(t, seen[tokenID], "token ids must not repeat")
		seen[tokenID] = true
	}
}
