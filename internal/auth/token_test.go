package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/jobpilot/internal/apperr"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret)

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	issuer := NewIssuer(testSecret)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	// Accepted one minute before expiry.
	issuer.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	// Rejected one minute after expiry.
	issuer.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewIssuer(testSecret).Issue(7)
	require.NoError(t, err)

	_, err = NewIssuer("a-completely-different-secret-value-------------").Verify(token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewIssuer(testSecret)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	}
}

func TestIssueUniqueTokens(t *testing.T) {
	issuer := NewIssuer(testSecret)

	// Same user, same second: the jti claim still makes each token unique.
	a, err := issuer.Issue(1)
	require.NoError(t, err)
	b, err := issuer.Issue(1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
