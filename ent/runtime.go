// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/snapjobs/snapjobs-back/ent/apikey"
	"github.com/snapjobs/snapjobs-back/ent/healthlog"
	"github.com/snapjobs/snapjobs-back/ent/plan"
	"github.com/snapjobs/snapjobs-back/ent/planfeature"
	"github.com/snapjobs/snapjobs-back/ent/schema"
	"github.com/snapjobs/snapjobs-back/ent/subscription"
	"github.com/snapjobs/snapjobs-back/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescOwnerID is the schema descriptor for owner_id field.
	apikeyDescOwnerID := apikeyFields[0].Descriptor()
	// apikey.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	apikey.OwnerIDValidator = apikeyDescOwnerID.Validators[0].(func(int) error)
	// apikeyDescSecretCiphertext is the schema descriptor for secret_ciphertext field.
	apikeyDescSecretCiphertext := apikeyFields[1].Descriptor()
	// apikey.SecretCiphertextValidator is a validator for the "secret_ciphertext" field. It is called by the builders before save.
	apikey.SecretCiphertextValidator = apikeyDescSecretCiphertext.Validators[0].(func(string) error)
	// apikeyDescIv is the schema descriptor for iv field.
	apikeyDescIv := apikeyFields[2].Descriptor()
	// apikey.IvValidator is a validator for the "iv" field. It is called by the builders before save.
	apikey.IvValidator = apikeyDescIv.Validators[0].(func(string) error)
	// apikeyDescAuthTag is the schema descriptor for auth_tag field.
	apikeyDescAuthTag := apikeyFields[3].Descriptor()
	// apikey.AuthTagValidator is a validator for the "auth_tag" field. It is called by the builders before save.
	apikey.AuthTagValidator = apikeyDescAuthTag.Validators[0].(func(string) error)
	// apikeyDescPlanTag is the schema descriptor for plan_tag field.
	apikeyDescPlanTag := apikeyFields[4].Descriptor()
	// apikey.PlanTagValidator is a validator for the "plan_tag" field. It is called by the builders before save.
	apikey.PlanTagValidator = func() func(string) error {
		validators := apikeyDescPlanTag.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(plan_tag string) error {
			for _, fn := range fns {
				if err := fn(plan_tag); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// apikeyDescIsActive is the schema descriptor for is_active field.
	apikeyDescIsActive := apikeyFields[5].Descriptor()
	// apikey.DefaultIsActive holds the default value on creation for the is_active field.
	apikey.DefaultIsActive = apikeyDescIsActive.Default.(bool)
	// apikeyDescRevealed is the schema descriptor for revealed field.
	apikeyDescRevealed := apikeyFields[6].Descriptor()
	// apikey.DefaultRevealed holds the default value on creation for the revealed field.
	apikey.DefaultRevealed = apikeyDescRevealed.Default.(bool)
	// apikeyDescRevealCount is the schema descriptor for reveal_count field.
	apikeyDescRevealCount := apikeyFields[7].Descriptor()
	// apikey.DefaultRevealCount holds the default value on creation for the reveal_count field.
	apikey.DefaultRevealCount = apikeyDescRevealCount.Default.(int)
	// apikey.RevealCountValidator is a validator for the "reveal_count" field. It is called by the builders before save.
	apikey.RevealCountValidator = apikeyDescRevealCount.Validators[0].(func(int) error)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[10].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	healthlogFields := schema.HealthLog{}.Fields()
	_ = healthlogFields
	// healthlogDescTotalSeconds is the schema descriptor for total_seconds field.
	healthlogDescTotalSeconds := healthlogFields[1].Descriptor()
	// healthlog.DefaultTotalSeconds holds the default value on creation for the total_seconds field.
	healthlog.DefaultTotalSeconds = healthlogDescTotalSeconds.Default.(int)
	// healthlog.TotalSecondsValidator is a validator for the "total_seconds" field. It is called by the builders before save.
	healthlog.TotalSecondsValidator = healthlogDescTotalSeconds.Validators[0].(func(int) error)
	// healthlogDescTotalUptimeSeconds is the schema descriptor for total_uptime_seconds field.
	healthlogDescTotalUptimeSeconds := healthlogFields[2].Descriptor()
	// healthlog.DefaultTotalUptimeSeconds holds the default value on creation for the total_uptime_seconds field.
	healthlog.DefaultTotalUptimeSeconds = healthlogDescTotalUptimeSeconds.Default.(int)
	// healthlog.TotalUptimeSecondsValidator is a validator for the "total_uptime_seconds" field. It is called by the builders before save.
	healthlog.TotalUptimeSecondsValidator = healthlogDescTotalUptimeSeconds.Validators[0].(func(int) error)
	// healthlogDescUpdatedAt is the schema descriptor for updated_at field.
	healthlogDescUpdatedAt := healthlogFields[4].Descriptor()
	// healthlog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	healthlog.DefaultUpdatedAt = healthlogDescUpdatedAt.Default.(func() time.Time)
	// healthlog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	healthlog.UpdateDefaultUpdatedAt = healthlogDescUpdatedAt.UpdateDefault.(func() time.Time)
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescCode is the schema descriptor for code field.
	planDescCode := planFields[0].Descriptor()
	// plan.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	plan.CodeValidator = planDescCode.Validators[0].(func(string) error)
	// planDescName is the schema descriptor for name field.
	planDescName := planFields[1].Descriptor()
	// plan.NameValidator is a validator for the "name" field. It is called by the builders before save.
	plan.NameValidator = planDescName.Validators[0].(func(string) error)
	// planDescPrice is the schema descriptor for price field.
	planDescPrice := planFields[2].Descriptor()
	// plan.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	plan.PriceValidator = planDescPrice.Validators[0].(func(int) error)
	// planDescBillingPeriod is the schema descriptor for billing_period field.
	planDescBillingPeriod := planFields[3].Descriptor()
	// plan.DefaultBillingPeriod holds the default value on creation for the billing_period field.
	plan.DefaultBillingPeriod = planDescBillingPeriod.Default.(string)
	// planDescAPIKeyLimit is the schema descriptor for api_key_limit field.
	planDescAPIKeyLimit := planFields[5].Descriptor()
	// plan.APIKeyLimitValidator is a validator for the "api_key_limit" field. It is called by the builders before save.
	plan.APIKeyLimitValidator = planDescAPIKeyLimit.Validators[0].(func(int) error)
	// planDescRequestLimit is the schema descriptor for request_limit field.
	planDescRequestLimit := planFields[6].Descriptor()
	// plan.RequestLimitValidator is a validator for the "request_limit" field. It is called by the builders before save.
	plan.RequestLimitValidator = planDescRequestLimit.Validators[0].(func(int) error)
	// planDescIsRecommended is the schema descriptor for is_recommended field.
	planDescIsRecommended := planFields[7].Descriptor()
	// plan.DefaultIsRecommended holds the default value on creation for the is_recommended field.
	plan.DefaultIsRecommended = planDescIsRecommended.Default.(bool)
	planfeatureFields := schema.PlanFeature{}.Fields()
	_ = planfeatureFields
	// planfeatureDescPlanID is the schema descriptor for plan_id field.
	planfeatureDescPlanID := planfeatureFields[0].Descriptor()
	// planfeature.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	planfeature.PlanIDValidator = planfeatureDescPlanID.Validators[0].(func(int) error)
	// planfeatureDescFeature is the schema descriptor for feature field.
	planfeatureDescFeature := planfeatureFields[1].Descriptor()
	// planfeature.FeatureValidator is a validator for the "feature" field. It is called by the builders before save.
	planfeature.FeatureValidator = planfeatureDescFeature.Validators[0].(func(string) error)
	// planfeatureDescFeatureOrder is the schema descriptor for feature_order field.
	planfeatureDescFeatureOrder := planfeatureFields[2].Descriptor()
	// planfeature.DefaultFeatureOrder holds the default value on creation for the feature_order field.
	planfeature.DefaultFeatureOrder = planfeatureDescFeatureOrder.Default.(int)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescUserID is the schema descriptor for user_id field.
	subscriptionDescUserID := subscriptionFields[0].Descriptor()
	// subscription.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subscription.UserIDValidator = subscriptionDescUserID.Validators[0].(func(int) error)
	// subscriptionDescStripeSubscriptionID is the schema descriptor for stripe_subscription_id field.
	subscriptionDescStripeSubscriptionID := subscriptionFields[3].Descriptor()
	// subscription.StripeSubscriptionIDValidator is a validator for the "stripe_subscription_id" field. It is called by the builders before save.
	subscription.StripeSubscriptionIDValidator = subscriptionDescStripeSubscriptionID.Validators[0].(func(string) error)
	// subscriptionDescCancelAtPeriodEnd is the schema descriptor for cancel_at_period_end field.
	subscriptionDescCancelAtPeriodEnd := subscriptionFields[6].Descriptor()
	// subscription.DefaultCancelAtPeriodEnd holds the default value on creation for the cancel_at_period_end field.
	subscription.DefaultCancelAtPeriodEnd = subscriptionDescCancelAtPeriodEnd.Default.(bool)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[8].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
