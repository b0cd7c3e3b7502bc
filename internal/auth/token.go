// Package auth issues and verifies the signed identity tokens used by the
// API layer. Tokens are stateless: validity is a function of signature and
// expiry only, there is no server-side revocation.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobpilot/jobpilot/internal/apperr"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

// Issuer signs and verifies identity tokens with a process-wide HMAC secret.
type Issuer struct {
	secret []byte

	// now is swapped out in tests to pin issuance and verification time.
	now func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue produces a signed token embedding userID, expiring TokenTTL from now.
func (i *Issuer) Issue(userID uint) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	now := i.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates signature and expiry and returns the embedded user ID.
// Every failure collapses to apperr.ErrUnauthorized; the caller gets no hint
// which check rejected the token.
func (i *Issuer) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return 0, apperr.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, apperr.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, apperr.ErrUnauthorized
	}

	return uint(userID), nil
}
