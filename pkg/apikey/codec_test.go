package apikey

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
	codec, err := NewCodec(key)
	require.NoError(t, err)
	return codec
}

func TestNewCodec_InvalidKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not base64", "not-base64!!!"},
		{"too short", base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, 16))},
		{"too long", base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, 48))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := NewCodec(tt.key)
			assert.Error(t, err)
			assert.Nil(t, codec)
		})
	}
}

func TestCodec_Generate_PrefixPerTier(t *testing.T) {
	codec := testCodec(t)

	tests := []struct {
		tier   plans.Tier
		prefix string
	}{
		{plans.TierFree, "sjm_fr_"},
		{plans.TierPro, "sjm_pr_"},
		{plans.TierEnterprise, "sjm_ent_"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			secret, err := codec.Generate(tt.tier)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(secret, tt.prefix))

			// 64 hex chars of body and 8 of suffix after the prefix
			rest := strings.TrimPrefix(secret, tt.prefix)
			parts := strings.Split(rest, "_")
			require.Len(t, parts, 2)
			assert.Len(t, parts[0], 64)
			assert.Len(t, parts[1], 8)
		})
	}
}

func TestCodec_Generate_UnknownTier(t *testing.T) {
	codec := testCodec(t)

	_, err := codec.Generate(plans.Tier("platinum"))
	assert.ErrorIs(t, err, plans.ErrInvalidPlanTier)
}

func TestCodec_Generate_Unique(t *testing.T) {
	codec := testCodec(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		secret, err := codec.Generate(plans.TierPro)
		require.NoError(t, err)
		assert.False(t, seen[secret], "duplicate credential generated")
		seen[secret] = true
	}
}

func TestCodec_EncryptDecrypt_RoundTrip(t *testing.T) {
	codec := testCodec(t)

	for _, tier := range plans.Tiers() {
		t.Run(string(tier), func(t *testing.T) {
			secret, err := codec.Generate(tier)
			require.NoError(t, err)

			ciphertext, iv, tag, err := codec.Encrypt(secret)
			require.NoError(t, err)
			assert.NotContains(t, ciphertext, secret)

			got, err := codec.Decrypt(ciphertext, iv, tag)
			require.NoError(t, err)
			assert.Equal(t, secret, got)
		})
	}
}

func TestCodec_Encrypt_FreshNonce(t *testing.T) {
	codec := testCodec(t)

	ct1, iv1, _, err := codec.Encrypt("sjm_pr_secret")
	require.NoError(t, err)
	ct2, iv2, _, err := codec.Encrypt("sjm_pr_secret")
	require.NoError(t, err)

	assert.NotEqual(t, iv1, iv2)
	assert.NotEqual(t, ct1, ct2)
}

func TestCodec_Decrypt_TamperDetection(t *testing.T) {
	codec := testCodec(t)

	ciphertext, iv, tag, err := codec.Encrypt("sjm_fr_secret")
	require.NoError(t, err)

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'f' {
			b[0] = '0'
		} else {
			b[0] = 'f'
		}
		return string(b)
	}

	tests := []struct {
		name        string
		ct, iv, tag string
	}{
		{"tampered ciphertext", flip(ciphertext), iv, tag},
		{"tampered iv", ciphertext, flip(iv), tag},
		{"tampered tag", ciphertext, iv, flip(tag)},
		{"bad ciphertext encoding", "zz", iv, tag},
		{"bad iv encoding", ciphertext, "zz", tag},
		{"bad tag encoding", ciphertext, iv, "zz"},
		{"truncated iv", ciphertext, iv[:8], tag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decrypt(tt.ct, tt.iv, tt.tag)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.Empty(t, got)
		})
	}
}

func TestCodec_Decrypt_WrongKey(t *testing.T) {
	codec := testCodec(t)

	otherKey := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x24}, 32))
	other, err := NewCodec(otherKey)
	require.NoError(t, err)

	ciphertext, iv, tag, err := codec.Encrypt("sjm_ent_secret")
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext, iv, tag)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
