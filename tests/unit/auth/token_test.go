package auth_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayloft/stayloft/internal/auth"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestNewToken_Format(t *testing.T) {
	t.Parallel()

	token, err := auth.NewToken()
	require.NoError(t, err)

	assert.Regexp(t, hexToken, token, "token should be 64 lowercase hex characters")
}

func TestNewToken_Uniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := auth.NewToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token should not repeat")
		seen[token] = true
	}
}
