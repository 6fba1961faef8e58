package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := Generate("secret", "user-1", "Cashier", "pos-api", 5)
	require.NoError(t, err)

	userID, role, err := Parse("secret", "pos-api", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Cashier", role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Generate("secret", "user-1", "Cashier", "pos-api", 5)
	require.NoError(t, err)

	_, _, err = Parse("other", "pos-api", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := Generate("secret", "user-1", "Cashier", "pos-api", -5)
	require.NoError(t, err)

	_, _, err = Parse("secret", "pos-api", token)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "u", "Cashier", "pos-api", 5)
	assert.Error(t, err)

	_, _, err = Parse("", "", "x.y.z")
	assert.Error(t, err)
}

func TestParse_Issuer(t *testing.T) {
	token, err := Generate("secret", "user-1", "Cashier", "otro-servicio", 5)
	require.NoError(t, err)

	_, _, err = Parse("secret", "pos-api", token)
	assert.Error(t, err, "issuer distinto debe rechazarse")

	_, role, err := Parse("secret", "", token)
	require.NoError(t, err, "sin issuer configurado no se valida")
	assert.Equal(t, "Cashier", role)
}
