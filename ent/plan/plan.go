// Code generated by ent, DO NOT EDIT.

package plan

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldBillingPeriod holds the string denoting the billing_period field in the database.
	FieldBillingPeriod = "billing_period"
	// FieldStripePriceID holds the string denoting the stripe_price_id field in the database.
	FieldStripePriceID = "stripe_price_id"
	// FieldAPIKeyLimit holds the string denoting the api_key_limit field in the database.
	FieldAPIKeyLimit = "api_key_limit"
	// FieldRequestLimit holds the string denoting the request_limit field in the database.
	FieldRequestLimit = "request_limit"
	// FieldIsRecommended holds the string denoting the is_recommended field in the database.
	FieldIsRecommended = "is_recommended"
	// FieldColorFrom holds the string denoting the color_from field in the database.
	FieldColorFrom = "color_from"
	// FieldColorTo holds the string denoting the color_to field in the database.
	FieldColorTo = "color_to"
	// EdgeFeatures holds the string denoting the features edge name in mutations.
	EdgeFeatures = "features"
	// Table holds the table name of the plan in the database.
	Table = "plans"
	// FeaturesTable is the table that holds the features relation/edge.
	FeaturesTable = "plan_features"
	// FeaturesInverseTable is the table name for the PlanFeature entity.
	// It exists in this package in order to avoid circular dependency with the "planfeature" package.
	FeaturesInverseTable = "plan_features"
	// FeaturesColumn is the table column denoting the features relation/edge.
	FeaturesColumn = "plan_id"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldName,
	FieldPrice,
	FieldBillingPeriod,
	FieldStripePriceID,
	FieldAPIKeyLimit,
	FieldRequestLimit,
	FieldIsRecommended,
	FieldColorFrom,
	FieldColorTo,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(int) error
	// DefaultBillingPeriod holds the default value on creation for the "billing_period" field.
	DefaultBillingPeriod string
	// APIKeyLimitValidator is a validator for the "api_key_limit" field. It is called by the builders before save.
	APIKeyLimitValidator func(int) error
	// RequestLimitValidator is a validator for the "request_limit" field. It is called by the builders before save.
	RequestLimitValidator func(int) error
	// DefaultIsRecommended holds the default value on creation for the "is_recommended" field.
	DefaultIsRecommended bool
)

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByBillingPeriod orders the results by the billing_period field.
func ByBillingPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillingPeriod, opts...).ToFunc()
}

// ByStripePriceID orders the results by the stripe_price_id field.
func ByStripePriceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripePriceID, opts...).ToFunc()
}

// ByAPIKeyLimit orders the results by the api_key_limit field.
func ByAPIKeyLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyLimit, opts...).ToFunc()
}

// ByRequestLimit orders the results by the request_limit field.
func ByRequestLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestLimit, opts...).ToFunc()
}

// ByIsRecommended orders the results by the is_recommended field.
func ByIsRecommended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRecommended, opts...).ToFunc()
}

// ByColorFrom orders the results by the color_from field.
func ByColorFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorFrom, opts...).ToFunc()
}

// ByColorTo orders the results by the color_to field.
func ByColorTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorTo, opts...).ToFunc()
}

// ByFeaturesCount orders the results by features count.
func ByFeaturesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeaturesStep(), opts...)
	}
}

// ByFeatures orders the results by features terms.
func ByFeatures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeaturesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFeaturesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeaturesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeaturesTable, FeaturesColumn),
	)
}
