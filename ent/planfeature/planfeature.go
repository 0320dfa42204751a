// Code generated by ent, DO NOT EDIT.

package planfeature

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the planfeature type in the database.
	Label = "plan_feature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldFeature holds the string denoting the feature field in the database.
	FieldFeature = "feature"
	// FieldFeatureOrder holds the string denoting the feature_order field in the database.
	FieldFeatureOrder = "feature_order"
	// EdgePlan holds the string denoting the plan edge name in mutations.
	EdgePlan = "plan"
	// Table holds the table name of the planfeature in the database.
	Table = "plan_features"
	// PlanTable is the table that holds the plan relation/edge.
	PlanTable = "plan_features"
	// PlanInverseTable is the table name for the Plan entity.
	// It exists in this package in order to avoid circular dependency with the "plan" package.
	PlanInverseTable = "plans"
	// PlanColumn is the table column denoting the plan relation/edge.
	PlanColumn = "plan_id"
)

// Columns holds all SQL columns for planfeature fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldFeature,
	FieldFeatureOrder,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(int) error
	// FeatureValidator is a validator for the "feature" field. It is called by the builders before save.
	FeatureValidator func(string) error
	// DefaultFeatureOrder holds the default value on creation for the "feature_order" field.
	DefaultFeatureOrder int
)

// OrderOption defines the ordering options for the PlanFeature queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByFeature orders the results by the feature field.
func ByFeature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeature, opts...).ToFunc()
}

// ByFeatureOrder orders the results by the feature_order field.
func ByFeatureOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureOrder, opts...).ToFunc()
}

// ByPlanField orders the results by plan field.
func ByPlanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanStep(), sql.OrderByField(field, opts...))
	}
}
func newPlanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
	)
}
