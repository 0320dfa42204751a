// Code generated by ent, DO NOT EDIT.

package planfeature

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldPlanID, v))
}

// Feature applies equality check predicate on the "feature" field. It's identical to FeatureEQ.
func Feature(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldFeature, v))
}

// FeatureOrder applies equality check predicate on the "feature_order" field. It's identical to FeatureOrderEQ.
func FeatureOrder(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldFeatureOrder, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNotIn(FieldPlanID, vs...))
}

// FeatureEQ applies the EQ predicate on the "feature" field.
func FeatureEQ(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldFeature, v))
}

// FeatureNEQ applies the NEQ predicate on the "feature" field.
func FeatureNEQ(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNEQ(FieldFeature, v))
}

// FeatureIn applies the In predicate on the "feature" field.
func FeatureIn(vs ...string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldIn(FieldFeature, vs...))
}

// FeatureNotIn applies the NotIn predicate on the "feature" field.
func FeatureNotIn(vs ...string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNotIn(FieldFeature, vs...))
}

// FeatureGT applies the GT predicate on the "feature" field.
func FeatureGT(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldGT(FieldFeature, v))
}

// FeatureGTE applies the GTE predicate on the "feature" field.
func FeatureGTE(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldGTE(FieldFeature, v))
}

// FeatureLT applies the LT predicate on the "feature" field.
func FeatureLT(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldLT(FieldFeature, v))
}

// FeatureLTE applies the LTE predicate on the "feature" field.
func FeatureLTE(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldLTE(FieldFeature, v))
}

// FeatureContains applies the Contains predicate on the "feature" field.
func FeatureContains(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldContains(FieldFeature, v))
}

// FeatureHasPrefix applies the HasPrefix predicate on the "feature" field.
func FeatureHasPrefix(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldHasPrefix(FieldFeature, v))
}

// FeatureHasSuffix applies the HasSuffix predicate on the "feature" field.
func FeatureHasSuffix(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldHasSuffix(FieldFeature, v))
}

// FeatureEqualFold applies the EqualFold predicate on the "feature" field.
func FeatureEqualFold(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEqualFold(FieldFeature, v))
}

// FeatureContainsFold applies the ContainsFold predicate on the "feature" field.
func FeatureContainsFold(v string) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldContainsFold(FieldFeature, v))
}

// FeatureOrderEQ applies the EQ predicate on the "feature_order" field.
func FeatureOrderEQ(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldEQ(FieldFeatureOrder, v))
}

// FeatureOrderNEQ applies the NEQ predicate on the "feature_order" field.
func FeatureOrderNEQ(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNEQ(FieldFeatureOrder, v))
}

// FeatureOrderIn applies the In predicate on the "feature_order" field.
func FeatureOrderIn(vs ...int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldIn(FieldFeatureOrder, vs...))
}

// FeatureOrderNotIn applies the NotIn predicate on the "feature_order" field.
func FeatureOrderNotIn(vs ...int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldNotIn(FieldFeatureOrder, vs...))
}

// FeatureOrderGT applies the GT predicate on the "feature_order" field.
func FeatureOrderGT(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldGT(FieldFeatureOrder, v))
}

// FeatureOrderGTE applies the GTE predicate on the "feature_order" field.
func FeatureOrderGTE(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldGTE(FieldFeatureOrder, v))
}

// FeatureOrderLT applies the LT predicate on the "feature_order" field.
func FeatureOrderLT(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldLT(FieldFeatureOrder, v))
}

// FeatureOrderLTE applies the LTE predicate on the "feature_order" field.
func FeatureOrderLTE(v int) predicate.PlanFeature {
	return predicate.PlanFeature(sql.FieldLTE(FieldFeatureOrder, v))
}

// HasPlan applies the HasEdge predicate on the "plan" edge.
func HasPlan() predicate.PlanFeature {
	return predicate.PlanFeature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanWith applies the HasEdge predicate on the "plan" edge with a given conditions (other predicates).
func HasPlanWith(preds ...predicate.Plan) predicate.PlanFeature {
	return predicate.PlanFeature(func(s *sql.Selector) {
		step := newPlanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanFeature) predicate.PlanFeature {
	return predicate.PlanFeature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanFeature) predicate.PlanFeature {
	return predicate.PlanFeature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanFeature) predicate.PlanFeature {
	return predicate.PlanFeature(sql.NotPredicates(p))
}
