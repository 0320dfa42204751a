package billing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/enttest"
	"github.com/snapjobs/snapjobs-back/ent/subscription"
	"github.com/snapjobs/snapjobs-back/ent/user"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

type stubPrices map[string]string

func (s stubPrices) PriceIDForCode(_ context.Context, code string) (string, error) {
	if id, ok := s[code]; ok {
		return id, nil
	}
	return "", plans.ErrInvalidPlanTier
}

func setupBilling(t *testing.T) (*ent.Client, *Service) {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, stubPrices{"pro": "price_pro", "enterprise": "price_ent"}, &StripeConfig{
		WebhookSecret: "whsec_test",
		SuccessURL:    "https://snapjobsai.com/dashboard?success=true",
		CancelURL:     "https://snapjobsai.com/pricing?canceled=true",
	})
	return client, svc
}

func checkoutEvent(t *testing.T, userID, planCode, subID string) stripe.Event {
	t.Helper()

	raw, err := json.Marshal(map[string]interface{}{
		"id":           "cs_test_123",
		"metadata":     map[string]string{"user_id": userID, "plan_code": planCode},
		"subscription": map[string]string{"id": subID},
	})
	require.NoError(t, err)

	return stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestHandleCheckoutCompleted_UpgradesUser(t *testing.T) {
	client, svc := setupBilling(t)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("upgrade@example.com").
		SetName("Upgrader").
		SetPlanTier(user.PlanTierFree).
		Save(ctx)
	require.NoError(t, err)

	event := checkoutEvent(t, "1", "pro", "sub_123")
	require.NoError(t, svc.handleCheckoutCompleted(ctx, event))

	updated, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PlanTierPro, updated.PlanTier)

	sub, err := client.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ("sub_123")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.TierPro, sub.Tier)
	assert.Equal(t, subscription.StatusActive, sub.Status)
}

func TestHandleCheckoutCompleted_UnknownPlan(t *testing.T) {
	client, svc := setupBilling(t)
	ctx := context.Background()

	_, err := client.User.Create().
		SetEmail("bad@example.com").
		SetName("Bad Plan").
		Save(ctx)
	require.NoError(t, err)

	event := checkoutEvent(t, "1", "platinum", "sub_999")
	assert.ErrorIs(t, svc.handleCheckoutCompleted(ctx, event), plans.ErrInvalidPlanTier)
}

func TestHandleCheckoutCompleted_MalformedUserID(t *testing.T) {
	client, svc := setupBilling(t)
	ctx := context.Background()

	_, err := client.User.Create().
		SetEmail("mangled@example.com").
		SetName("Mangled Metadata").
		Save(ctx)
	require.NoError(t, err)

	event := checkoutEvent(t, "not-a-number", "pro", "sub_888")
	err = svc.handleCheckoutCompleted(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")

	// Nothing was written for the garbled event
	n, err := client.Subscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHandleSubscriptionDeleted_DowngradesToFree(t *testing.T) {
	client, svc := setupBilling(t)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("churn@example.com").
		SetName("Churner").
		SetPlanTier(user.PlanTierEnterprise).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Subscription.Create().
		SetUserID(u.ID).
		SetTier(subscription.TierEnterprise).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID("sub_churn").
		Save(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]string{"id": "sub_churn"})
	require.NoError(t, err)
	event := stripe.Event{
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: raw},
	}

	require.NoError(t, svc.handleSubscriptionDeleted(ctx, event))

	updated, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PlanTierFree, updated.PlanTier)

	sub, err := client.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ("sub_churn")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusCanceled, sub.Status)
	assert.NotNil(t, sub.CanceledAt)
}

func TestSubscriptionStatusMapping(t *testing.T) {
	tests := []struct {
		in   stripe.SubscriptionStatus
		want subscription.Status
	}{
		{stripe.SubscriptionStatusActive, subscription.StatusActive},
		{stripe.SubscriptionStatusCanceled, subscription.StatusCanceled},
		{stripe.SubscriptionStatusPastDue, subscription.StatusPastDue},
		{stripe.SubscriptionStatusUnpaid, subscription.StatusUnpaid},
		{stripe.SubscriptionStatusTrialing, subscription.StatusActive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SubscriptionStatus(tt.in))
	}
}

func TestCreateCheckoutSession_Validation(t *testing.T) {
	client, svc := setupBilling(t)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("checkout@example.com").
		SetName("Buyer").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.CreateCheckoutSession(ctx, u.ID, "platinum")
	assert.ErrorIs(t, err, plans.ErrInvalidPlanTier)

	_, err = svc.CreateCheckoutSession(ctx, u.ID, "free")
	assert.ErrorContains(t, err, "checkout")
}
