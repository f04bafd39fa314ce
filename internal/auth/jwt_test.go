package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	token, err := Issue("user-123", "Parent", "edutrack", "test-key")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := Parse(token, "test-key", "edutrack")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Parent", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestTokenHasNoExpiry(t *testing.T) {
	token, err := Issue("user-123", "Teacher", "edutrack", "test-key")
	assert.NoError(t, err)

	claims, err := Parse(token, "test-key", "edutrack")
	assert.NoError(t, err)
	// Tokens are deliberately unbounded; see security notes.
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, err := Issue("user-123", "Parent", "edutrack", "test-key")
	assert.NoError(t, err)

	_, err = Parse(token, "other-key", "edutrack")
	assert.Error(t, err)
}

func TestParseRejectsIssuerMismatch(t *testing.T) {
	token, err := Issue("user-123", "Parent", "someone-else", "test-key")
	assert.NoError(t, err)

	_, err = Parse(token, "test-key", "edutrack")
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("garbage", "test-key", "edutrack")
	assert.Error(t, err)
}
