package secrets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentManager_GetSecret(t *testing.T) {
	t.Setenv("TEST_SECRET_VALUE", "hunter2")

	m := NewEnvironmentManager(DefaultConfig())

	val, err := m.GetSecret(context.Background(), "TEST_SECRET_VALUE")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", val)
}

func TestEnvironmentManager_Missing(t *testing.T) {
	m := NewEnvironmentManager(DefaultConfig())

	_, err := m.GetSecret(context.Background(), "DOES_NOT_EXIST_AT_ALL")
	assert.Error(t, err)
}

func TestEnvironmentManager_CachesValues(t *testing.T) {
	t.Setenv("CACHED_SECRET", "first")

	m := NewEnvironmentManager(Config{Backend: "env", CacheDuration: time.Hour})
	ctx := context.Background()

	val, err := m.GetSecret(ctx, "CACHED_SECRET")
	require.NoError(t, err)
	require.Equal(t, "first", val)

	// Env change is invisible until the cache is refreshed
	t.Setenv("CACHED_SECRET", "second")

	val, err = m.GetSecret(ctx, "CACHED_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "first", val)

	require.NoError(t, m.RefreshCache(ctx))

	val, err = m.GetSecret(ctx, "CACHED_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "second", val)
}

func TestLoadCommonSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/snapjobs")
	t.Setenv("ENCRYPTION_KEY", "a2V5LWtleS1rZXkta2V5LWtleS1rZXkta2V5LWtleQ==")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	m := NewEnvironmentManager(DefaultConfig())

	s, err := LoadCommonSecrets(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "jwt-secret", s.JWTSecret)
	assert.Equal(t, "sk_test_123", s.StripeSecretKey)
	assert.Empty(t, s.OpenAIAPIKey)
}

func TestLoadCommonSecrets_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	// no DATABASE_URL

	m := NewEnvironmentManager(DefaultConfig())

	_, err := LoadCommonSecrets(context.Background(), m)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestNewManager_UnknownBackend(t *testing.T) {
	_, err := NewManager(Config{Backend: "vault"})
	assert.Error(t, err)
}
