package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	billingportalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/subscription"
	"github.com/snapjobs/snapjobs-back/ent/user"
	"github.com/snapjobs/snapjobs-back/pkg/plans"
)

// PriceResolver maps a plan code to its Stripe price ID.
type PriceResolver interface {
	PriceIDForCode(ctx context.Context, code string) (string, error)
}

// Service handles Stripe billing operations
type Service struct {
	db     *ent.Client
	prices PriceResolver
	config *StripeConfig
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// CheckoutResponse carries the hosted checkout URL back to the frontend
type CheckoutResponse struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl"`
}

// PortalResponse carries the customer portal URL
type PortalResponse struct {
	PortalURL string `json:"portalUrl"`
}

// NewService creates a new billing service
func NewService(db *ent.Client, prices PriceResolver, config *StripeConfig) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:     db,
		prices: prices,
		config: config,
	}
}

// CreateCheckoutSession creates a Stripe checkout session upgrading the
// user to the given plan. The plan code and user id travel in session
// metadata so the webhook can apply the upgrade.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID int, planCode string) (*CheckoutResponse, error) {
	if !plans.Valid(plans.Tier(planCode)) {
		return nil, fmt.Errorf("%w: %q", plans.ErrInvalidPlanTier, planCode)
	}
	if planCode == string(plans.TierFree) {
		return nil, fmt.Errorf("%w: free plan does not require checkout", plans.ErrInvalidPlanTier)
	}

	priceID, err := s.prices.PriceIDForCode(ctx, planCode)
	if err != nil {
		return nil, err
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	customerID := ""
	if u.StripeCustomerID != nil {
		customerID = *u.StripeCustomerID
	}
	if customerID == "" {
		params := &stripe.CustomerParams{
			Email: stripe.String(u.Email),
			Name:  stripe.String(u.Name),
		}
		cust, err := customer.New(params)
		if err != nil {
			return nil, fmt.Errorf("failed to create stripe customer: %w", err)
		}
		customerID = cust.ID

		if err := s.db.User.UpdateOneID(userID).
			SetStripeCustomerID(customerID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to store stripe customer id: %w", err)
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
	}
	params.AddMetadata("user_id", fmt.Sprintf("%d", userID))
	params.AddMetadata("plan_code", planCode)

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// CreateCustomerPortalSession creates a Stripe customer portal session
func (s *Service) CreateCustomerPortalSession(ctx context.Context, userID int, returnURL string) (*PortalResponse, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if u.StripeCustomerID == nil || *u.StripeCustomerID == "" {
		return nil, fmt.Errorf("user has no billing account")
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*u.StripeCustomerID),
		ReturnURL: stripe.String(returnURL),
	}

	sess, err := billingportalsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &PortalResponse{PortalURL: sess.URL}, nil
}

// HandleWebhook verifies and dispatches a Stripe webhook event
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted upgrades the user's plan tier and records the
// subscription
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	userIDStr, ok := sess.Metadata["user_id"]
	if !ok {
		return fmt.Errorf("user_id not found in metadata")
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return fmt.Errorf("invalid user_id in metadata: %q", userIDStr)
	}

	planCode := sess.Metadata["plan_code"]
	if !plans.Valid(plans.Tier(planCode)) {
		return fmt.Errorf("%w: %q", plans.ErrInvalidPlanTier, planCode)
	}

	log.Printf("✅ Checkout completed: user_id=%d, plan=%s, subscription=%s", userID, planCode, sess.Subscription.ID)

	if err := s.db.User.UpdateOneID(userID).
		SetPlanTier(user.PlanTier(planCode)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update user plan tier: %w", err)
	}

	_, err = s.db.Subscription.Create().
		SetUserID(userID).
		SetTier(subscription.Tier(planCode)).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID(sess.Subscription.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// handleSubscriptionUpdated syncs subscription status and billing period
func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("⚠️  Subscription not found in DB: %s", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	_, err = s.db.Subscription.UpdateOne(entSub).
		SetStatus(SubscriptionStatus(sub.Status)).
		SetCurrentPeriodStart(time.Unix(sub.CurrentPeriodStart, 0)).
		SetCurrentPeriodEnd(time.Unix(sub.CurrentPeriodEnd, 0)).
		SetCancelAtPeriodEnd(sub.CancelAtPeriodEnd).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}

// handleSubscriptionDeleted downgrades the user back to the free tier
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	entSub, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to find subscription: %w", err)
	}

	now := time.Now()
	if _, err := s.db.Subscription.UpdateOne(entSub).
		SetStatus(subscription.StatusCanceled).
		SetCanceledAt(now).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if err := s.db.User.UpdateOneID(entSub.UserID).
		SetPlanTier(user.PlanTierFree).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to downgrade user: %w", err)
	}

	log.Printf("✅ Subscription %s canceled, user %d downgraded to free", sub.ID, entSub.UserID)

	return nil
}

// SubscriptionStatus maps a Stripe subscription status to the local enum.
// Anything unknown is treated as active so a new Stripe status never
// locks a paying customer out.
func SubscriptionStatus(status stripe.SubscriptionStatus) subscription.Status {
	switch status {
	case stripe.SubscriptionStatusCanceled:
		return subscription.StatusCanceled
	case stripe.SubscriptionStatusPastDue:
		return subscription.StatusPastDue
	case stripe.SubscriptionStatusUnpaid:
		return subscription.StatusUnpaid
	default:
		return subscription.StatusActive
	}
}
