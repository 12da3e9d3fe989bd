package services

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountHashesPasswordAndRejectsDuplicates(t *testing.T) {
	useTestDatabase(t)

	account, err := NewAccount("juno", "Juno", "juno@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotContains(t, account.PasswordHash, "hunter22")

	_, err = NewAccount("juno", "Another", "other@example.com", "pw")
	require.Error(t, err)
	_, err = NewAccount("other", "Other", "juno@example.com", "pw")
	require.Error(t, err)
}

func TestAuthAccountChecksPassword(t *testing.T) {
	useTestDatabase(t)

	_, err := NewAccount("io", "Io", "io@example.com", "correct-horse")
	require.NoError(t, err)

	account, err := AuthAccount("io@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "io", account.Name)

	_, err = AuthAccount("io@example.com", "wrong")
	require.Error(t, err)
	_, err = AuthAccount("nobody@example.com", "correct-horse")
	require.Error(t, err)
}

func TestJwtRoundTrip(t *testing.T) {
	useTestDatabase(t)
	viper.Set("security.jwt_secret", "test-secret")

	account, err := NewAccount("callisto", "Callisto", "callisto@example.com", "pw123456")
	require.NoError(t, err)

	token, err := EncodeJwt(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userId, err := DecodeJwt(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, userId)

	_, err = DecodeJwt(token + "corrupted")
	require.Error(t, err)
}
