package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_InvalidParams(t *testing.T) {
	now := time.Now()

	_, err := generateToken("", "alice", time.Hour, []byte("key"), now)
	require.ErrorIs(t, err, ErrInvalidTokenParams)

	_, err = generateToken("iss", "alice", time.Hour, nil, now)
	require.ErrorIs(t, err, ErrInvalidTokenParams)

	_, err = generateToken("iss", "alice", 0, []byte("key"), now)
	require.ErrorIs(t, err, ErrInvalidTokenParams)

	_, err = generateToken("iss", "alice", -time.Second, []byte("key"), now)
	require.ErrorIs(t, err, ErrInvalidTokenParams)
}

func TestGenerateToken_Claims(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	signed, err := generateToken("iss", "alice", time.Hour, []byte("key"), now)
	require.NoError(t, err)

	claims := &sessionClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	require.NoError(t, err)

	assert.Equal(t, "iss", claims.Issuer)
	require.NotNil(t, claims.Username)
	assert.Equal(t, "alice", *claims.Username)
	require.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.IssuedAt.Time.Equal(now))
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(time.Hour)))
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	username := "alice"
	claims := &sessionClaims{
		Username: &username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = parseToken(signed, []byte("key"), "iss", time.Now())
	require.Error(t, err)
}

func TestParseToken_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{name: "plain", username: "Alice.Smith"},
		{name: "empty username", username: ""},
		{name: "unicode", username: "алиса"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			signed, err := generateToken("iss", tt.username, time.Hour, []byte("key"), now)
			require.NoError(t, err)

			username, err := parseToken(signed, []byte("key"), "iss", now)
			require.NoError(t, err)
			assert.Equal(t, tt.username, username)
		})
	}
}

func TestParseToken_MissingUsernameClaim(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = parseToken(signed, []byte("key"), "iss", now)
	require.ErrorIs(t, err, ErrMissingUsername)
}

func TestParseToken_RequiresExpiration(t *testing.T) {
	username := "alice"
	claims := &sessionClaims{
		Username:         &username,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "iss", IssuedAt: jwt.NewNumericDate(time.Now())},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = parseToken(signed, []byte("key"), "iss", time.Now())
	require.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestParseToken_Lifetime(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	signed, err := generateToken("iss", "alice", time.Hour, []byte("key"), issued)
	require.NoError(t, err)

	_, err = parseToken(signed, []byte("key"), "iss", issued.Add(59*time.Minute))
	require.NoError(t, err)

	_, err = parseToken(signed, []byte("key"), "iss", issued.Add(2*time.Hour))
	require.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = parseToken(signed, []byte("key"), "iss", issued.Add(-time.Hour))
	require.ErrorIs(t, err, jwt.ErrTokenUsedBeforeIssued)
}
