package apikey

import (
	"context"
	"fmt"
	"time"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/apikey"
	"github.com/snapjobs/snapjobs-back/ent/user"
	"github.com/snapjobs/snapjobs-back/pkg/database"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

// Service handles the API key lifecycle: generate, list, reveal once,
// toggle and revoke. Every mutating operation runs in a single
// transaction; quota-sensitive ones serialize per owner via a row lock.
type Service struct {
	db            *ent.Client
	codec         *Codec
	lockOwnerRows bool
}

// Option configures a Service.
type Option func(*Service)

// WithOwnerRowLocks enables SELECT ... FOR UPDATE on the owner row in
// generate and reveal transactions. Requires a dialect with row-level
// locking (postgres); leave disabled on sqlite test databases.
func WithOwnerRowLocks() Option {
	return func(s *Service) {
		s.lockOwnerRows = true
	}
}

// NewService creates a new API key service.
func NewService(db *ent.Client, codec *Codec, opts ...Option) *Service {
	s := &Service{
		db:    db,
		codec: codec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GeneratedKey is returned once, on creation. Value carries the plaintext
// credential and is never persisted or shown again.
type GeneratedKey struct {
	ID        int       `json:"id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
	Revealed  bool      `json:"revealed"`
}

// KeySummary is the non-secret listing view of an API key.
type KeySummary struct {
	ID         int        `json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	IsActive   bool       `json:"isActive"`
	Revealed   bool       `json:"revealed"`
	RevealedAt *time.Time `json:"revealedAt"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	PlanTag    string     `json:"planTag"`
}

// Generate issues a new API key for the owner, enforcing the plan
// quota under an owner row lock so concurrent requests cannot both pass
// the check. Returns the plaintext exactly once.
func (s *Service) Generate(ctx context.Context, ownerID int) (*GeneratedKey, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result *GeneratedKey
	err := database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		owner, err := s.ownerForUpdate(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		policy, err := plans.PolicyFor(plans.Tier(owner.PlanTier))
		if err != nil {
			return err
		}

		active, err := tx.APIKey.Query().
			Where(
				apikey.OwnerIDEQ(ownerID),
				apikey.IsActiveEQ(true),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count active keys: %w", err)
		}

		if active >= policy.KeyLimit {
			return &QuotaError{Limit: policy.KeyLimit, Current: active}
		}

		secret, err := s.codec.Generate(plans.Tier(owner.PlanTier))
		if err != nil {
			return err
		}

		ciphertext, iv, tag, err := s.codec.Encrypt(secret)
		if err != nil {
			return err
		}

		row, err := tx.APIKey.Create().
			SetOwnerID(ownerID).
			SetSecretCiphertext(ciphertext).
			SetIv(iv).
			SetAuthTag(tag).
			SetPlanTag(policy.ShortCode).
			SetIsActive(true).
			SetRevealed(false).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create api key: %w", err)
		}

		result = &GeneratedKey{
			ID:        row.ID,
			Value:     secret,
			CreatedAt: row.CreatedAt,
			IsActive:  row.IsActive,
			Revealed:  row.Revealed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// List returns the owner's keys, newest first, without any secret fields.
func (s *Service) List(ctx context.Context, ownerID int) ([]KeySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.APIKey.Query().
		Where(apikey.OwnerIDEQ(ownerID)).
		Order(ent.Desc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	summaries := make([]KeySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, KeySummary{
			ID:         row.ID,
			CreatedAt:  row.CreatedAt,
			IsActive:   row.IsActive,
			Revealed:   row.Revealed,
			RevealedAt: row.RevealedAt,
			LastUsedAt: row.LastUsedAt,
			PlanTag:    row.PlanTag,
		})
	}

	return summaries, nil
}

// CountActive returns the number of active keys the owner currently holds.
func (s *Service) CountActive(ctx context.Context, ownerID int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := s.db.APIKey.Query().
		Where(
			apikey.OwnerIDEQ(ownerID),
			apikey.IsActiveEQ(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active keys: %w", err)
	}
	return count, nil
}

// Reveal decrypts and returns a key's plaintext exactly once. The
// reveal-count check and its increment run in the same transaction as
// the read, so two concurrent reveals cannot both observe count zero.
func (s *Service) Reveal(ctx context.Context, ownerID, keyID int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var secret string
	err := database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		if _, err := s.ownerForUpdate(ctx, tx, ownerID); err != nil {
			return err
		}

		row, err := tx.APIKey.Query().
			Where(
				apikey.IDEQ(keyID),
				apikey.OwnerIDEQ(ownerID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get api key: %w", err)
		}

		if row.RevealCount > 0 {
			return ErrAlreadyRevealed
		}

		secret, err = s.codec.Decrypt(row.SecretCiphertext, row.Iv, row.AuthTag)
		if err != nil {
			return err
		}

		// Guarded increment: a concurrent reveal that slipped past the
		// read above loses here and reports AlreadyRevealed.
		n, err := tx.APIKey.Update().
			Where(
				apikey.IDEQ(keyID),
				apikey.RevealCountEQ(0),
			).
			SetRevealed(true).
			AddRevealCount(1).
			SetRevealedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark key revealed: %w", err)
		}
		if n == 0 {
			return ErrAlreadyRevealed
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return secret, nil
}

// Toggle flips a key's active state, or sets it when enable is non-nil.
// Returns the resulting state. Reveal state is unaffected.
func (s *Service) Toggle(ctx context.Context, ownerID, keyID int, enable *bool) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var active bool
	err := database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		row, err := tx.APIKey.Query().
			Where(
				apikey.IDEQ(keyID),
				apikey.OwnerIDEQ(ownerID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get api key: %w", err)
		}

		active = !row.IsActive
		if enable != nil {
			active = *enable
		}

		if err := tx.APIKey.UpdateOne(row).
			SetIsActive(active).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to toggle api key: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return active, nil
}

// Revoke hard-deletes a key. Deletion is final; subsequent operations on
// the id report not found.
func (s *Service) Revoke(ctx context.Context, ownerID, keyID int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		n, err := tx.APIKey.Delete().
			Where(
				apikey.IDEQ(keyID),
				apikey.OwnerIDEQ(ownerID),
			).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete api key: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ownerForUpdate loads the owner row, locking it when row locks are
// enabled so quota checks and reveals serialize per owner.
func (s *Service) ownerForUpdate(ctx context.Context, tx *ent.Tx, ownerID int) (*ent.User, error) {
	q := tx.User.Query().Where(user.IDEQ(ownerID))
	if s.lockOwnerRows {
		q = q.ForUpdate()
	}

	owner, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return owner, nil
}
