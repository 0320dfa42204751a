// Code generated by ent, DO NOT EDIT.

package plan

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldName, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPrice, v))
}

// BillingPeriod applies equality check predicate on the "billing_period" field. It's identical to BillingPeriodEQ.
func BillingPeriod(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldBillingPeriod, v))
}

// StripePriceID applies equality check predicate on the "stripe_price_id" field. It's identical to StripePriceIDEQ.
func StripePriceID(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStripePriceID, v))
}

// APIKeyLimit applies equality check predicate on the "api_key_limit" field. It's identical to APIKeyLimitEQ.
func APIKeyLimit(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldAPIKeyLimit, v))
}

// RequestLimit applies equality check predicate on the "request_limit" field. It's identical to RequestLimitEQ.
func RequestLimit(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRequestLimit, v))
}

// IsRecommended applies equality check predicate on the "is_recommended" field. It's identical to IsRecommendedEQ.
func IsRecommended(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldIsRecommended, v))
}

// ColorFrom applies equality check predicate on the "color_from" field. It's identical to ColorFromEQ.
func ColorFrom(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldColorFrom, v))
}

// ColorTo applies equality check predicate on the "color_to" field. It's identical to ColorToEQ.
func ColorTo(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldColorTo, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldName, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldPrice, v))
}

// BillingPeriodEQ applies the EQ predicate on the "billing_period" field.
func BillingPeriodEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldBillingPeriod, v))
}

// BillingPeriodNEQ applies the NEQ predicate on the "billing_period" field.
func BillingPeriodNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldBillingPeriod, v))
}

// BillingPeriodIn applies the In predicate on the "billing_period" field.
func BillingPeriodIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldBillingPeriod, vs...))
}

// BillingPeriodNotIn applies the NotIn predicate on the "billing_period" field.
func BillingPeriodNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldBillingPeriod, vs...))
}

// BillingPeriodGT applies the GT predicate on the "billing_period" field.
func BillingPeriodGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldBillingPeriod, v))
}

// BillingPeriodGTE applies the GTE predicate on the "billing_period" field.
func BillingPeriodGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldBillingPeriod, v))
}

// BillingPeriodLT applies the LT predicate on the "billing_period" field.
func BillingPeriodLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldBillingPeriod, v))
}

// BillingPeriodLTE applies the LTE predicate on the "billing_period" field.
func BillingPeriodLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldBillingPeriod, v))
}

// BillingPeriodContains applies the Contains predicate on the "billing_period" field.
func BillingPeriodContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldBillingPeriod, v))
}

// BillingPeriodHasPrefix applies the HasPrefix predicate on the "billing_period" field.
func BillingPeriodHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldBillingPeriod, v))
}

// BillingPeriodHasSuffix applies the HasSuffix predicate on the "billing_period" field.
func BillingPeriodHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldBillingPeriod, v))
}

// BillingPeriodEqualFold applies the EqualFold predicate on the "billing_period" field.
func BillingPeriodEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldBillingPeriod, v))
}

// BillingPeriodContainsFold applies the ContainsFold predicate on the "billing_period" field.
func BillingPeriodContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldBillingPeriod, v))
}

// StripePriceIDEQ applies the EQ predicate on the "stripe_price_id" field.
func StripePriceIDEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldStripePriceID, v))
}

// StripePriceIDNEQ applies the NEQ predicate on the "stripe_price_id" field.
func StripePriceIDNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldStripePriceID, v))
}

// StripePriceIDIn applies the In predicate on the "stripe_price_id" field.
func StripePriceIDIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldStripePriceID, vs...))
}

// StripePriceIDNotIn applies the NotIn predicate on the "stripe_price_id" field.
func StripePriceIDNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldStripePriceID, vs...))
}

// StripePriceIDGT applies the GT predicate on the "stripe_price_id" field.
func StripePriceIDGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldStripePriceID, v))
}

// StripePriceIDGTE applies the GTE predicate on the "stripe_price_id" field.
func StripePriceIDGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldStripePriceID, v))
}

// StripePriceIDLT applies the LT predicate on the "stripe_price_id" field.
func StripePriceIDLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldStripePriceID, v))
}

// StripePriceIDLTE applies the LTE predicate on the "stripe_price_id" field.
func StripePriceIDLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldStripePriceID, v))
}

// StripePriceIDContains applies the Contains predicate on the "stripe_price_id" field.
func StripePriceIDContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldStripePriceID, v))
}

// StripePriceIDHasPrefix applies the HasPrefix predicate on the "stripe_price_id" field.
func StripePriceIDHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldStripePriceID, v))
}

// StripePriceIDHasSuffix applies the HasSuffix predicate on the "stripe_price_id" field.
func StripePriceIDHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldStripePriceID, v))
}

// StripePriceIDIsNil applies the IsNil predicate on the "stripe_price_id" field.
func StripePriceIDIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldStripePriceID))
}

// StripePriceIDNotNil applies the NotNil predicate on the "stripe_price_id" field.
func StripePriceIDNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldStripePriceID))
}

// StripePriceIDEqualFold applies the EqualFold predicate on the "stripe_price_id" field.
func StripePriceIDEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldStripePriceID, v))
}

// StripePriceIDContainsFold applies the ContainsFold predicate on the "stripe_price_id" field.
func StripePriceIDContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldStripePriceID, v))
}

// APIKeyLimitEQ applies the EQ predicate on the "api_key_limit" field.
func APIKeyLimitEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldAPIKeyLimit, v))
}

// APIKeyLimitNEQ applies the NEQ predicate on the "api_key_limit" field.
func APIKeyLimitNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldAPIKeyLimit, v))
}

// APIKeyLimitIn applies the In predicate on the "api_key_limit" field.
func APIKeyLimitIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldAPIKeyLimit, vs...))
}

// APIKeyLimitNotIn applies the NotIn predicate on the "api_key_limit" field.
func APIKeyLimitNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldAPIKeyLimit, vs...))
}

// APIKeyLimitGT applies the GT predicate on the "api_key_limit" field.
func APIKeyLimitGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldAPIKeyLimit, v))
}

// APIKeyLimitGTE applies the GTE predicate on the "api_key_limit" field.
func APIKeyLimitGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldAPIKeyLimit, v))
}

// APIKeyLimitLT applies the LT predicate on the "api_key_limit" field.
func APIKeyLimitLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldAPIKeyLimit, v))
}

// APIKeyLimitLTE applies the LTE predicate on the "api_key_limit" field.
func APIKeyLimitLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldAPIKeyLimit, v))
}

// RequestLimitEQ applies the EQ predicate on the "request_limit" field.
func RequestLimitEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldRequestLimit, v))
}

// RequestLimitNEQ applies the NEQ predicate on the "request_limit" field.
func RequestLimitNEQ(v int) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldRequestLimit, v))
}

// RequestLimitIn applies the In predicate on the "request_limit" field.
func RequestLimitIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldRequestLimit, vs...))
}

// RequestLimitNotIn applies the NotIn predicate on the "request_limit" field.
func RequestLimitNotIn(vs ...int) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldRequestLimit, vs...))
}

// RequestLimitGT applies the GT predicate on the "request_limit" field.
func RequestLimitGT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldRequestLimit, v))
}

// RequestLimitGTE applies the GTE predicate on the "request_limit" field.
func RequestLimitGTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldRequestLimit, v))
}

// RequestLimitLT applies the LT predicate on the "request_limit" field.
func RequestLimitLT(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldRequestLimit, v))
}

// RequestLimitLTE applies the LTE predicate on the "request_limit" field.
func RequestLimitLTE(v int) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldRequestLimit, v))
}

// IsRecommendedEQ applies the EQ predicate on the "is_recommended" field.
func IsRecommendedEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldIsRecommended, v))
}

// IsRecommendedNEQ applies the NEQ predicate on the "is_recommended" field.
func IsRecommendedNEQ(v bool) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldIsRecommended, v))
}

// ColorFromEQ applies the EQ predicate on the "color_from" field.
func ColorFromEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldColorFrom, v))
}

// ColorFromNEQ applies the NEQ predicate on the "color_from" field.
func ColorFromNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldColorFrom, v))
}

// ColorFromIn applies the In predicate on the "color_from" field.
func ColorFromIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldColorFrom, vs...))
}

// ColorFromNotIn applies the NotIn predicate on the "color_from" field.
func ColorFromNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldColorFrom, vs...))
}

// ColorFromGT applies the GT predicate on the "color_from" field.
func ColorFromGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldColorFrom, v))
}

// ColorFromGTE applies the GTE predicate on the "color_from" field.
func ColorFromGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldColorFrom, v))
}

// ColorFromLT applies the LT predicate on the "color_from" field.
func ColorFromLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldColorFrom, v))
}

// ColorFromLTE applies the LTE predicate on the "color_from" field.
func ColorFromLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldColorFrom, v))
}

// ColorFromContains applies the Contains predicate on the "color_from" field.
func ColorFromContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldColorFrom, v))
}

// ColorFromHasPrefix applies the HasPrefix predicate on the "color_from" field.
func ColorFromHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldColorFrom, v))
}

// ColorFromHasSuffix applies the HasSuffix predicate on the "color_from" field.
func ColorFromHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldColorFrom, v))
}

// ColorFromIsNil applies the IsNil predicate on the "color_from" field.
func ColorFromIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldColorFrom))
}

// ColorFromNotNil applies the NotNil predicate on the "color_from" field.
func ColorFromNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldColorFrom))
}

// ColorFromEqualFold applies the EqualFold predicate on the "color_from" field.
func ColorFromEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldColorFrom, v))
}

// ColorFromContainsFold applies the ContainsFold predicate on the "color_from" field.
func ColorFromContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldColorFrom, v))
}

// ColorToEQ applies the EQ predicate on the "color_to" field.
func ColorToEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEQ(FieldColorTo, v))
}

// ColorToNEQ applies the NEQ predicate on the "color_to" field.
func ColorToNEQ(v string) predicate.Plan {
	return predicate.Plan(sql.FieldNEQ(FieldColorTo, v))
}

// ColorToIn applies the In predicate on the "color_to" field.
func ColorToIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldIn(FieldColorTo, vs...))
}

// ColorToNotIn applies the NotIn predicate on the "color_to" field.
func ColorToNotIn(vs ...string) predicate.Plan {
	return predicate.Plan(sql.FieldNotIn(FieldColorTo, vs...))
}

// ColorToGT applies the GT predicate on the "color_to" field.
func ColorToGT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGT(FieldColorTo, v))
}

// ColorToGTE applies the GTE predicate on the "color_to" field.
func ColorToGTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldGTE(FieldColorTo, v))
}

// ColorToLT applies the LT predicate on the "color_to" field.
func ColorToLT(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLT(FieldColorTo, v))
}

// ColorToLTE applies the LTE predicate on the "color_to" field.
func ColorToLTE(v string) predicate.Plan {
	return predicate.Plan(sql.FieldLTE(FieldColorTo, v))
}

// ColorToContains applies the Contains predicate on the "color_to" field.
func ColorToContains(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContains(FieldColorTo, v))
}

// ColorToHasPrefix applies the HasPrefix predicate on the "color_to" field.
func ColorToHasPrefix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasPrefix(FieldColorTo, v))
}

// ColorToHasSuffix applies the HasSuffix predicate on the "color_to" field.
func ColorToHasSuffix(v string) predicate.Plan {
	return predicate.Plan(sql.FieldHasSuffix(FieldColorTo, v))
}

// ColorToIsNil applies the IsNil predicate on the "color_to" field.
func ColorToIsNil() predicate.Plan {
	return predicate.Plan(sql.FieldIsNull(FieldColorTo))
}

// ColorToNotNil applies the NotNil predicate on the "color_to" field.
func ColorToNotNil() predicate.Plan {
	return predicate.Plan(sql.FieldNotNull(FieldColorTo))
}

// ColorToEqualFold applies the EqualFold predicate on the "color_to" field.
func ColorToEqualFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldEqualFold(FieldColorTo, v))
}

// ColorToContainsFold applies the ContainsFold predicate on the "color_to" field.
func ColorToContainsFold(v string) predicate.Plan {
	return predicate.Plan(sql.FieldContainsFold(FieldColorTo, v))
}

// HasFeatures applies the HasEdge predicate on the "features" edge.
func HasFeatures() predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeaturesTable, FeaturesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeaturesWith applies the HasEdge predicate on the "features" edge with a given conditions (other predicates).
func HasFeaturesWith(preds ...predicate.PlanFeature) predicate.Plan {
	return predicate.Plan(func(s *sql.Selector) {
		step := newFeaturesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plan) predicate.Plan {
	return predicate.Plan(sql.NotPredicates(p))
}
