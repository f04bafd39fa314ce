package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashAndVerify(t *testing.T) {
	svc := NewPasswordService(4) // min cost keeps the test fast

	digest, err := svc.Hash("s3cret-pw")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", digest)
	assert.True(t, strings.HasPrefix(digest, "$2"))

	assert.True(t, svc.Verify(digest, "s3cret-pw"))
	assert.False(t, svc.Verify(digest, "wrong-pw"))
}

func TestPasswordHashUniqueSalt(t *testing.T) {
	svc := NewPasswordService(4)

	first, err := svc.Hash("same-password")
	assert.NoError(t, err)
	second, err := svc.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(first, "same-password"))
	assert.True(t, svc.Verify(second, "same-password"))
}

func TestPasswordTooLong(t *testing.T) {
	svc := NewPasswordService(4)

	_, err := svc.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
