package accounts

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session tokens are HS256 JWTs carrying the session row id as jti. The token
// is only a handle: expiry and revocation live on the session row, which
// stays authoritative.
func signSessionToken(secret []byte, sessionID, userID uuid.UUID, issued time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID.String(),
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSessionToken(secret []byte, token string) (sessionID uuid.UUID, err error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return uuid.Parse(claims.ID)
}
