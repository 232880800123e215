package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Key:      []byte("test-signing-key"),
		Issuer:   "workshop-api",
		Audience: "workshop-api-clients",
		TTL:      time.Hour,
	}
}

func TestIssueAndVerify(t *testing.T) {
	cfg := testConfig()

	token, err := Issue(cfg)
	require.NoError(t, err)

	claims, err := Verify(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, Subject, claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	cfg := testConfig()

	token, err := Issue(cfg)
	require.NoError(t, err)

	other := cfg
	other.Key = []byte("a-different-key")
	_, err = Verify(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	cfg := testConfig()

	token, err := Issue(cfg)
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"
	_, err = Verify(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	issued := time.Now()
	cfg.Now = func() time.Time { return issued }

	token, err := Issue(cfg)
	require.NoError(t, err)

	cfg.Now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = Verify(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify(testConfig(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
