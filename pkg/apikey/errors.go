package apikey

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a key does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("api key not found")

	// ErrAlreadyRevealed is returned when a reveal is attempted on a key
	// whose plaintext was already shown once.
	ErrAlreadyRevealed = errors.New("api key already revealed")

	// ErrDecryptionFailed indicates the stored ciphertext failed
	// authentication. This points at corruption or a key mismatch, not
	// user error.
	ErrDecryptionFailed = errors.New("api key decryption failed")
)

// QuotaError is returned when generating a key would exceed the active-key
// limit of the owner's plan tier.
type QuotaError struct {
	Limit   int
	Current int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("api key quota exceeded: %d of %d active keys in use", e.Current, e.Limit)
}
