// Code generated by ent, DO NOT EDIT.

package apikey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the apikey type in the database.
	Label = "api_key"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldSecretCiphertext holds the string denoting the secret_ciphertext field in the database.
	FieldSecretCiphertext = "secret_ciphertext"
	// FieldIv holds the string denoting the iv field in the database.
	FieldIv = "iv"
	// FieldAuthTag holds the string denoting the auth_tag field in the database.
	FieldAuthTag = "auth_tag"
	// FieldPlanTag holds the string denoting the plan_tag field in the database.
	FieldPlanTag = "plan_tag"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldRevealed holds the string denoting the revealed field in the database.
	FieldRevealed = "revealed"
	// FieldRevealCount holds the string denoting the reveal_count field in the database.
	FieldRevealCount = "reveal_count"
	// FieldRevealedAt holds the string denoting the revealed_at field in the database.
	FieldRevealedAt = "revealed_at"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the apikey in the database.
	Table = "api_keys"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "api_keys"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_id"
)

// Columns holds all SQL columns for apikey fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldSecretCiphertext,
	FieldIv,
	FieldAuthTag,
	FieldPlanTag,
	FieldIsActive,
	FieldRevealed,
	FieldRevealCount,
	FieldRevealedAt,
	FieldLastUsedAt,
	FieldCreatedAt,
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
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(int) error
	// SecretCiphertextValidator is a validator for the "secret_ciphertext" field. It is called by the builders before save.
	SecretCiphertextValidator func(string) error
	// IvValidator is a validator for the "iv" field. It is called by the builders before save.
	IvValidator func(string) error
	// AuthTagValidator is a validator for the "auth_tag" field. It is called by the builders before save.
	AuthTagValidator func(string) error
	// PlanTagValidator is a validator for the "plan_tag" field. It is called by the builders before save.
	PlanTagValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultRevealed holds the default value on creation for the "revealed" field.
	DefaultRevealed bool
	// DefaultRevealCount holds the default value on creation for the "reveal_count" field.
	DefaultRevealCount int
	// RevealCountValidator is a validator for the "reveal_count" field. It is called by the builders before save.
	RevealCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the APIKey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// BySecretCiphertext orders the results by the secret_ciphertext field.
func BySecretCiphertext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecretCiphertext, opts...).ToFunc()
}

// ByIv orders the results by the iv field.
func ByIv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIv, opts...).ToFunc()
}

// ByAuthTag orders the results by the auth_tag field.
func ByAuthTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthTag, opts...).ToFunc()
}

// ByPlanTag orders the results by the plan_tag field.
func ByPlanTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanTag, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByRevealed orders the results by the revealed field.
func ByRevealed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealed, opts...).ToFunc()
}

// ByRevealCount orders the results by the reveal_count field.
func ByRevealCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealCount, opts...).ToFunc()
}

// ByRevealedAt orders the results by the revealed_at field.
func ByRevealedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealedAt, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
