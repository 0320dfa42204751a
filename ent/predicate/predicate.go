// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// HealthLog is the predicate function for healthlog builders.
type HealthLog func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// PlanFeature is the predicate function for planfeature builders.
type PlanFeature func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
