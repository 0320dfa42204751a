package apikey

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snapjobs/snapjobs-back/ent"
	entkey "github.com/snapjobs/snapjobs-back/ent/apikey"
	"github.com/snapjobs/snapjobs-back/ent/enttest"
	"github.com/snapjobs/snapjobs-back/ent/user"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	// Row locks stay off: sqlite has no FOR UPDATE. The guarded
	// reveal-count update still covers the one-time invariant.
	svc := NewService(client, testCodec(t))
	return client, svc
}

var userSeq atomic.Int64

func createUser(t *testing.T, client *ent.Client, tier user.PlanTier) *ent.User {
	t.Helper()

	u, err := client.User.Create().
		SetEmail(string(tier) + "-owner-" + strconv.FormatInt(userSeq.Add(1), 10) + "@example.com").
		SetName("Test Owner").
		SetPlanTier(tier).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestService_Generate(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)

	key, err := svc.Generate(context.Background(), owner.ID)
	require.NoError(t, err)

	assert.NotZero(t, key.ID)
	assert.True(t, strings.HasPrefix(key.Value, "sjm_pr_"))
	assert.True(t, key.IsActive)
	assert.False(t, key.Revealed)

	// Only ciphertext is persisted
	row, err := client.APIKey.Get(context.Background(), key.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, row.SecretCiphertext)
	assert.NotEmpty(t, row.Iv)
	assert.NotEmpty(t, row.AuthTag)
	assert.NotContains(t, row.SecretCiphertext, key.Value)
	assert.Equal(t, "pr", row.PlanTag)
}

func TestService_Generate_QuotaPerTier(t *testing.T) {
	tests := []struct {
		tier  user.PlanTier
		limit int
	}{
		{user.PlanTierFree, 1},
		{user.PlanTierPro, 3},
		{user.PlanTierEnterprise, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			client, svc := setupService(t)
			owner := createUser(t, client, tt.tier)
			ctx := context.Background()

			for i := 0; i < tt.limit; i++ {
				_, err := svc.Generate(ctx, owner.ID)
				require.NoError(t, err)
			}

			_, err := svc.Generate(ctx, owner.ID)
			var quotaErr *QuotaError
			require.ErrorAs(t, err, &quotaErr)
			assert.Equal(t, tt.limit, quotaErr.Limit)
			assert.Equal(t, tt.limit, quotaErr.Current)
		})
	}
}

func TestService_Generate_DisabledKeysFreeQuota(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierFree)
	ctx := context.Background()

	first, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	_, err = svc.Generate(ctx, owner.ID)
	var quotaErr *QuotaError
	require.ErrorAs(t, err, &quotaErr)

	// Toggling the key off frees the slot; only active keys count.
	active, err := svc.Toggle(ctx, owner.ID, first.ID, nil)
	require.NoError(t, err)
	assert.False(t, active)

	second, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Generate_UnknownOwner(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Generate(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierEnterprise)
	other := createUser(t, client, user.PlanTierFree)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Generate(ctx, owner.ID)
		require.NoError(t, err)
	}
	_, err := svc.Generate(ctx, other.ID)
	require.NoError(t, err)

	keys, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, keys, 3)

	for _, k := range keys {
		assert.True(t, k.IsActive)
		assert.False(t, k.Revealed)
		assert.Nil(t, k.RevealedAt)
		assert.Equal(t, "ent", k.PlanTag)
	}
}

func TestService_List_Empty(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierFree)

	keys, err := svc.List(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestService_Reveal_ExactlyOnce(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	secret, err := svc.Reveal(ctx, owner.ID, key.ID)
	require.NoError(t, err)
	assert.Equal(t, key.Value, secret)

	// Second reveal is refused.
	_, err = svc.Reveal(ctx, owner.ID, key.ID)
	assert.ErrorIs(t, err, ErrAlreadyRevealed)

	row, err := client.APIKey.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.True(t, row.Revealed)
	assert.Equal(t, 1, row.RevealCount)
	assert.NotNil(t, row.RevealedAt)
}

func TestService_Reveal_GuardedIncrement(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	// Two racers that both read reveal_count == 0 race on the guarded
	// update; the condition admits exactly one of them.
	mark := func() (int, error) {
		return client.APIKey.Update().
			Where(
				entkey.IDEQ(key.ID),
				entkey.RevealCountEQ(0),
			).
			SetRevealed(true).
			AddRevealCount(1).
			SetRevealedAt(time.Now()).
			Save(ctx)
	}

	n, err := mark()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = mark()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	row, err := client.APIKey.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.RevealCount)
}

func TestService_Reveal_ConcurrentCallers(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	const callers = 4
	secrets := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			secrets[i], errs[i] = svc.Reveal(ctx, owner.ID, key.ID)
		}(i)
	}
	close(start)
	wg.Wait()

	// At most one caller gets the plaintext; everyone else errors.
	winners := 0
	for i := 0; i < callers; i++ {
		if errs[i] == nil {
			winners++
			assert.Equal(t, key.Value, secrets[i])
		} else {
			assert.Empty(t, secrets[i])
		}
	}
	assert.LessOrEqual(t, winners, 1)

	// The row never records more than one reveal.
	row, err := client.APIKey.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, row.RevealCount, 1)
	assert.Equal(t, winners == 1, row.Revealed)
}

func TestService_Reveal_NotFound(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)

	_, err := svc.Reveal(context.Background(), owner.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Reveal_OtherOwnersKey(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	intruder := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	// Another user's key is indistinguishable from a missing one.
	_, err = svc.Reveal(ctx, intruder.ID, key.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed attempt did not burn the owner's reveal.
	secret, err := svc.Reveal(ctx, owner.ID, key.ID)
	require.NoError(t, err)
	assert.Equal(t, key.Value, secret)
}

func TestService_Reveal_CorruptCiphertext(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierFree)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	err = client.APIKey.UpdateOneID(key.ID).
		SetAuthTag("deadbeefdeadbeefdeadbeefdeadbeef").
		Exec(ctx)
	require.NoError(t, err)

	_, err = svc.Reveal(ctx, owner.ID, key.ID)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	// A failed decryption does not consume the reveal.
	row, err := client.APIKey.Get(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, row.RevealCount)
}

func TestService_Toggle(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	active, err := svc.Toggle(ctx, owner.ID, key.ID, nil)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.Toggle(ctx, owner.ID, key.ID, nil)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestService_Toggle_ExplicitTarget(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	enable := true
	// Enabling an already-active key is a no-op, not an error.
	active, err := svc.Toggle(ctx, owner.ID, key.ID, &enable)
	require.NoError(t, err)
	assert.True(t, active)

	disable := false
	active, err = svc.Toggle(ctx, owner.ID, key.ID, &disable)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestService_Toggle_PreservesRevealState(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	_, err = svc.Reveal(ctx, owner.ID, key.ID)
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, owner.ID, key.ID, nil)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, owner.ID, key.ID, nil)
	require.NoError(t, err)

	// Disabling and re-enabling does not grant another reveal.
	_, err = svc.Reveal(ctx, owner.ID, key.ID)
	assert.ErrorIs(t, err, ErrAlreadyRevealed)
}

func TestService_Toggle_NotFound(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)

	_, err := svc.Toggle(context.Background(), owner.ID, 9999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Revoke(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, owner.ID, key.ID))

	// Revocation is terminal: everything afterwards is not found.
	_, err = svc.Reveal(ctx, owner.ID, key.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Toggle(ctx, owner.ID, key.ID, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Revoke(ctx, owner.ID, key.ID), ErrNotFound)

	keys, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestService_Revoke_OtherOwnersKey(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierPro)
	intruder := createUser(t, client, user.PlanTierPro)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Revoke(ctx, intruder.ID, key.ID), ErrNotFound)

	keys, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestService_Revoke_FreesQuota(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierFree)
	ctx := context.Background()

	key, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	_, err = svc.Generate(ctx, owner.ID)
	var quotaErr *QuotaError
	require.ErrorAs(t, err, &quotaErr)

	require.NoError(t, svc.Revoke(ctx, owner.ID, key.ID))

	_, err = svc.Generate(ctx, owner.ID)
	require.NoError(t, err)
}

func TestService_CountActive(t *testing.T) {
	client, svc := setupService(t)
	owner := createUser(t, client, user.PlanTierEnterprise)
	ctx := context.Background()

	first, err := svc.Generate(ctx, owner.ID)
	require.NoError(t, err)
	_, err = svc.Generate(ctx, owner.ID)
	require.NoError(t, err)

	count, err := svc.CountActive(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.Toggle(ctx, owner.ID, first.ID, nil)
	require.NoError(t, err)

	count, err = svc.CountActive(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
