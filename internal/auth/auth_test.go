package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	Init("test-secret")

	token, err := GenerateJWT("64f1c0ffee0000000000aaaa", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000aaaa", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	Init("test-secret")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	Init("secret-one")
	token, err := GenerateJWT("64f1c0ffee0000000000aaaa", "user")
	require.NoError(t, err)

	Init("secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
