package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingUsername is returned when a token carries no username claim.
	// An empty username is a valid claim.
	ErrMissingUsername = errors.New("session token has no username claim")

	// ErrInvalidTokenParams is returned when a token cannot be issued with
	// the given parameters.
	ErrInvalidTokenParams = errors.New("invalid params for generating session token")
)

// sessionClaims is the payload of a session token. Username is a pointer so
// that an absent claim can be told apart from an empty username.
type sessionClaims struct {
	Username *string `json:"username"`
	jwt.RegisteredClaims
}

// generateToken creates a signed HMAC-SHA256 JWT for username.
//
// The token includes:
//   - Issuer    (iss): identifies the service that issued the token
//   - username       : the signed-in username, possibly empty
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus lifetime
func generateToken(issuer, username string, lifetime time.Duration, signKey []byte, now time.Time) (string, error) {
	if issuer == "" || len(signKey) == 0 || lifetime <= 0 {
		return "", ErrInvalidTokenParams
	}

	claims := &sessionClaims{
		Username: &username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// parseToken validates tokenString at time now and returns the username it
// carries.
//
// Validation includes:
//   - signature verification with signKey, HS256 only
//   - issuer (iss) check against issuer
//   - a required expiration (exp) and an issued-at (iat) not in the future
//   - presence of the username claim
func parseToken(tokenString string, signKey []byte, issuer string, now time.Time) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == nil {
		return "", ErrMissingUsername
	}

	return *claims.Username, nil
}
