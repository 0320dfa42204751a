package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjobs/snapjobs-back/pkg/cache"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "dev@example.com", "pro", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, "pro", claims.Tier)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateJWT_ForeignIssuer(t *testing.T) {
	// A token signed with our secret but minted by another service
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		Email:  "dev@example.com",
		Tier:   "pro",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "some-other-service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_WrongAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "dev@example.com", "free", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(1, "dev@example.com", "free", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestTokenBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { cacheClient.Close() })

	blacklist := NewTokenBlacklist(cacheClient)
	ctx := context.Background()

	token, err := GenerateJWT(7, "dev@example.com", "enterprise", testSecret, 24)
	require.NoError(t, err)

	// Valid before revocation
	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	assert.ErrorContains(t, err, "revoked")

	// Blacklist entry expires with the token
	mr.FastForward(2 * time.Hour)
	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}
