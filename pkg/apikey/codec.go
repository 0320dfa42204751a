package apikey

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

// Codec generates plan-tagged API credentials and handles their
// authenticated encryption for at-rest storage. The plaintext only ever
// exists in memory on the way to the caller.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec creates a codec from a base64-encoded 256-bit key. A missing
// or malformed key is a startup configuration error, so callers should
// treat a non-nil error as fatal.
func NewCodec(base64Key string) (*Codec, error) {
	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Codec{aead: aead}, nil
}

// Generate produces a new plaintext credential for the given plan tier.
// The tier-specific prefix makes a credential's plan visually
// identifiable without decryption.
func (c *Codec) Generate(tier plans.Tier) (string, error) {
	policy, err := plans.PolicyFor(tier)
	if err != nil {
		return "", err
	}

	body := make([]byte, 32)
	if _, err := rand.Read(body); err != nil {
		return "", fmt.Errorf("failed to generate random key body: %w", err)
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate random key suffix: %w", err)
	}

	return fmt.Sprintf("%s_%s_%s", policy.KeyPrefix, hex.EncodeToString(body), hex.EncodeToString(suffix)), nil
}

// Encrypt seals a plaintext credential with AES-256-GCM under a fresh
// random nonce. Ciphertext, nonce and authentication tag are returned
// hex-encoded for storage in separate columns.
func (c *Codec) Encrypt(secret string) (ciphertext, iv, authTag string, err error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", "", "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(secret), nil)

	// Seal appends the tag to the ciphertext; store them separately.
	split := len(sealed) - c.aead.Overhead()
	ciphertext = hex.EncodeToString(sealed[:split])
	iv = hex.EncodeToString(nonce)
	authTag = hex.EncodeToString(sealed[split:])

	return ciphertext, iv, authTag, nil
}

// Decrypt opens a stored credential. Any tampering with ciphertext,
// nonce or tag fails authentication and yields ErrDecryptionFailed.
func (c *Codec) Decrypt(ciphertext, iv, authTag string) (string, error) {
	ct, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext encoding", ErrDecryptionFailed)
	}
	nonce, err := hex.DecodeString(iv)
	if err != nil {
		return "", fmt.Errorf("%w: bad iv encoding", ErrDecryptionFailed)
	}
	tag, err := hex.DecodeString(authTag)
	if err != nil {
		return "", fmt.Errorf("%w: bad auth tag encoding", ErrDecryptionFailed)
	}
	if len(nonce) != c.aead.NonceSize() {
		return "", fmt.Errorf("%w: bad nonce length", ErrDecryptionFailed)
	}

	plain, err := c.aead.Open(nil, nonce, append(ct, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return string(plain), nil
}
