// Code generated by ent, DO NOT EDIT.

package apikey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldOwnerID, v))
}

// SecretCiphertext applies equality check predicate on the "secret_ciphertext" field. It's identical to SecretCiphertextEQ.
func SecretCiphertext(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldSecretCiphertext, v))
}

// Iv applies equality check predicate on the "iv" field. It's identical to IvEQ.
func Iv(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldIv, v))
}

// AuthTag applies equality check predicate on the "auth_tag" field. It's identical to AuthTagEQ.
func AuthTag(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldAuthTag, v))
}

// PlanTag applies equality check predicate on the "plan_tag" field. It's identical to PlanTagEQ.
func PlanTag(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldPlanTag, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldIsActive, v))
}

// Revealed applies equality check predicate on the "revealed" field. It's identical to RevealedEQ.
func Revealed(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldRevealed, v))
}

// RevealCount applies equality check predicate on the "reveal_count" field. It's identical to RevealCountEQ.
func RevealCount(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldRevealCount, v))
}

// RevealedAt applies equality check predicate on the "revealed_at" field. It's identical to RevealedAtEQ.
func RevealedAt(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldRevealedAt, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldOwnerID, vs...))
}

// SecretCiphertextEQ applies the EQ predicate on the "secret_ciphertext" field.
func SecretCiphertextEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldSecretCiphertext, v))
}

// SecretCiphertextNEQ applies the NEQ predicate on the "secret_ciphertext" field.
func SecretCiphertextNEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldSecretCiphertext, v))
}

// SecretCiphertextIn applies the In predicate on the "secret_ciphertext" field.
func SecretCiphertextIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldSecretCiphertext, vs...))
}

// SecretCiphertextNotIn applies the NotIn predicate on the "secret_ciphertext" field.
func SecretCiphertextNotIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldSecretCiphertext, vs...))
}

// SecretCiphertextGT applies the GT predicate on the "secret_ciphertext" field.
func SecretCiphertextGT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldSecretCiphertext, v))
}

// SecretCiphertextGTE applies the GTE predicate on the "secret_ciphertext" field.
func SecretCiphertextGTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldSecretCiphertext, v))
}

// SecretCiphertextLT applies the LT predicate on the "secret_ciphertext" field.
func SecretCiphertextLT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldSecretCiphertext, v))
}

// SecretCiphertextLTE applies the LTE predicate on the "secret_ciphertext" field.
func SecretCiphertextLTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldSecretCiphertext, v))
}

// SecretCiphertextContains applies the Contains predicate on the "secret_ciphertext" field.
func SecretCiphertextContains(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContains(FieldSecretCiphertext, v))
}

// SecretCiphertextHasPrefix applies the HasPrefix predicate on the "secret_ciphertext" field.
func SecretCiphertextHasPrefix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasPrefix(FieldSecretCiphertext, v))
}

// SecretCiphertextHasSuffix applies the HasSuffix predicate on the "secret_ciphertext" field.
func SecretCiphertextHasSuffix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasSuffix(FieldSecretCiphertext, v))
}

// SecretCiphertextEqualFold applies the EqualFold predicate on the "secret_ciphertext" field.
func SecretCiphertextEqualFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldSecretCiphertext, v))
}

// SecretCiphertextContainsFold applies the ContainsFold predicate on the "secret_ciphertext" field.
func SecretCiphertextContainsFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldSecretCiphertext, v))
}

// IvEQ applies the EQ predicate on the "iv" field.
func IvEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldIv, v))
}

// IvNEQ applies the NEQ predicate on the "iv" field.
func IvNEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldIv, v))
}

// IvIn applies the In predicate on the "iv" field.
func IvIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldIv, vs...))
}

// IvNotIn applies the NotIn predicate on the "iv" field.
func IvNotIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldIv, vs...))
}

// IvGT applies the GT predicate on the "iv" field.
func IvGT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldIv, v))
}

// IvGTE applies the GTE predicate on the "iv" field.
func IvGTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldIv, v))
}

// IvLT applies the LT predicate on the "iv" field.
func IvLT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldIv, v))
}

// IvLTE applies the LTE predicate on the "iv" field.
func IvLTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldIv, v))
}

// IvContains applies the Contains predicate on the "iv" field.
func IvContains(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContains(FieldIv, v))
}

// IvHasPrefix applies the HasPrefix predicate on the "iv" field.
func IvHasPrefix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasPrefix(FieldIv, v))
}

// IvHasSuffix applies the HasSuffix predicate on the "iv" field.
func IvHasSuffix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasSuffix(FieldIv, v))
}

// IvEqualFold applies the EqualFold predicate on the "iv" field.
func IvEqualFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldIv, v))
}

// IvContainsFold applies the ContainsFold predicate on the "iv" field.
func IvContainsFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldIv, v))
}

// AuthTagEQ applies the EQ predicate on the "auth_tag" field.
func AuthTagEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldAuthTag, v))
}

// AuthTagNEQ applies the NEQ predicate on the "auth_tag" field.
func AuthTagNEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldAuthTag, v))
}

// AuthTagIn applies the In predicate on the "auth_tag" field.
func AuthTagIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldAuthTag, vs...))
}

// AuthTagNotIn applies the NotIn predicate on the "auth_tag" field.
func AuthTagNotIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldAuthTag, vs...))
}

// AuthTagGT applies the GT predicate on the "auth_tag" field.
func AuthTagGT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldAuthTag, v))
}

// AuthTagGTE applies the GTE predicate on the "auth_tag" field.
func AuthTagGTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldAuthTag, v))
}

// AuthTagLT applies the LT predicate on the "auth_tag" field.
func AuthTagLT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldAuthTag, v))
}

// AuthTagLTE applies the LTE predicate on the "auth_tag" field.
func AuthTagLTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldAuthTag, v))
}

// AuthTagContains applies the Contains predicate on the "auth_tag" field.
func AuthTagContains(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContains(FieldAuthTag, v))
}

// AuthTagHasPrefix applies the HasPrefix predicate on the "auth_tag" field.
func AuthTagHasPrefix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasPrefix(FieldAuthTag, v))
}

// AuthTagHasSuffix applies the HasSuffix predicate on the "auth_tag" field.
func AuthTagHasSuffix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasSuffix(FieldAuthTag, v))
}

// AuthTagEqualFold applies the EqualFold predicate on the "auth_tag" field.
func AuthTagEqualFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldAuthTag, v))
}

// AuthTagContainsFold applies the ContainsFold predicate on the "auth_tag" field.
func AuthTagContainsFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldAuthTag, v))
}

// PlanTagEQ applies the EQ predicate on the "plan_tag" field.
func PlanTagEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldPlanTag, v))
}

// PlanTagNEQ applies the NEQ predicate on the "plan_tag" field.
func PlanTagNEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldPlanTag, v))
}

// PlanTagIn applies the In predicate on the "plan_tag" field.
func PlanTagIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldPlanTag, vs...))
}

// PlanTagNotIn applies the NotIn predicate on the "plan_tag" field.
func PlanTagNotIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldPlanTag, vs...))
}

// PlanTagGT applies the GT predicate on the "plan_tag" field.
func PlanTagGT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldPlanTag, v))
}

// PlanTagGTE applies the GTE predicate on the "plan_tag" field.
func PlanTagGTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldPlanTag, v))
}

// PlanTagLT applies the LT predicate on the "plan_tag" field.
func PlanTagLT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldPlanTag, v))
}

// PlanTagLTE applies the LTE predicate on the "plan_tag" field.
func PlanTagLTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldPlanTag, v))
}

// PlanTagContains applies the Contains predicate on the "plan_tag" field.
func PlanTagContains(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContains(FieldPlanTag, v))
}

// PlanTagHasPrefix applies the HasPrefix predicate on the "plan_tag" field.
func PlanTagHasPrefix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasPrefix(FieldPlanTag, v))
}

// PlanTagHasSuffix applies the HasSuffix predicate on the "plan_tag" field.
func PlanTagHasSuffix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasSuffix(FieldPlanTag, v))
}

// PlanTagEqualFold applies the EqualFold predicate on the "plan_tag" field.
func PlanTagEqualFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldPlanTag, v))
}

// PlanTagContainsFold applies the ContainsFold predicate on the "plan_tag" field.
func PlanTagContainsFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldPlanTag, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldIsActive, v))
}

// RevealedEQ applies the EQ predicate on the "revealed" field.
func RevealedEQ(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldRevealed, v))
}

// RevealedNEQ applies the NEQ predicate on the "revealed" field.
func RevealedNEQ(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldRevealed, v))
}

// RevealCountEQ applies the EQ predicate on the "reveal_count" field.
func RevealCountEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldRevealCount, v))
}

// RevealCountNEQ applies the NEQ predicate on the "reveal_count" field.
func RevealCountNEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldRevealCount, v))
}

// RevealCountIn applies the In predicate on the "reveal_count" field.
func RevealCountIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldRevealCount, vs...))
}

// RevealCountNotIn applies the NotIn predicate on the "reveal_count" field.
func RevealCountNotIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldRevealCount, vs...))
}

// RevealCountGT applies the GT predicate on the "reveal_count" field.
func RevealCountGT(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldRevealCount, v))
}

// RevealCountGTE applies the GTE predicate on the "reveal_count" field.
func RevealCountGTE(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldRevealCount, v))
}

// RevealCountLT applies the LT predicate on the "reveal_count" field.
func RevealCountLT(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldRevealCount, v))
}

// RevealCountLTE applies the LTE predicate on the "reveal_count" field.
func RevealCountLTE(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldRevealCount, v))
}

// RevealedAtEQ applies the EQ predicate on the "revealed_at" field.
func RevealedAtEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldRevealedAt, v))
}

// RevealedAtNEQ applies the NEQ predicate on the "revealed_at" field.
func RevealedAtNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldRevealedAt, v))
}

// RevealedAtIn applies the In predicate on the "revealed_at" field.
func RevealedAtIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldRevealedAt, vs...))
}

// RevealedAtNotIn applies the NotIn predicate on the "revealed_at" field.
func RevealedAtNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldRevealedAt, vs...))
}

// RevealedAtGT applies the GT predicate on the "revealed_at" field.
func RevealedAtGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldRevealedAt, v))
}

// RevealedAtGTE applies the GTE predicate on the "revealed_at" field.
func RevealedAtGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldRevealedAt, v))
}

// RevealedAtLT applies the LT predicate on the "revealed_at" field.
func RevealedAtLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldRevealedAt, v))
}

// RevealedAtLTE applies the LTE predicate on the "revealed_at" field.
func RevealedAtLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldRevealedAt, v))
}

// RevealedAtIsNil applies the IsNil predicate on the "revealed_at" field.
func RevealedAtIsNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldIsNull(FieldRevealedAt))
}

// RevealedAtNotNil applies the NotNil predicate on the "revealed_at" field.
func RevealedAtNotNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldNotNull(FieldRevealedAt))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldLastUsedAt, v))
}

// LastUsedAtIsNil applies the IsNil predicate on the "last_used_at" field.
func LastUsedAtIsNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldIsNull(FieldLastUsedAt))
}

// LastUsedAtNotNil applies the NotNil predicate on the "last_used_at" field.
func LastUsedAtNotNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldNotNull(FieldLastUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.APIKey {
	return predicate.APIKey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.APIKey {
	return predicate.APIKey(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.APIKey) predicate.APIKey {
	return predicate.APIKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.APIKey) predicate.APIKey {
	return predicate.APIKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.APIKey) predicate.APIKey {
	return predicate.APIKey(sql.NotPredicates(p))
}
