// Code generated by ent, DO NOT EDIT.

package healthlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the healthlog type in the database.
	Label = "health_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLogDate holds the string denoting the log_date field in the database.
	FieldLogDate = "log_date"
	// FieldTotalSeconds holds the string denoting the total_seconds field in the database.
	FieldTotalSeconds = "total_seconds"
	// FieldTotalUptimeSeconds holds the string denoting the total_uptime_seconds field in the database.
	FieldTotalUptimeSeconds = "total_uptime_seconds"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the healthlog in the database.
	Table = "health_logs"
)

// Columns holds all SQL columns for healthlog fields.
var Columns = []string{
	FieldID,
	FieldLogDate,
	FieldTotalSeconds,
	FieldTotalUptimeSeconds,
	FieldStatus,
	FieldUpdatedAt,
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
	// DefaultTotalSeconds holds the default value on creation for the "total_seconds" field.
	DefaultTotalSeconds int
	// TotalSecondsValidator is a validator for the "total_seconds" field. It is called by the builders before save.
	TotalSecondsValidator func(int) error
	// DefaultTotalUptimeSeconds holds the default value on creation for the "total_uptime_seconds" field.
	DefaultTotalUptimeSeconds int
	// TotalUptimeSecondsValidator is a validator for the "total_uptime_seconds" field. It is called by the builders before save.
	TotalUptimeSecondsValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusHealthy is the default value of the Status enum.
const DefaultStatus = StatusHealthy

// Status values.
const (
	StatusHealthy  Status = "healthy"
	StatusDegraded Status = "degraded"
	StatusError    Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusHealthy, StatusDegraded, StatusError:
		return nil
	default:
		return fmt.Errorf("healthlog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the HealthLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLogDate orders the results by the log_date field.
func ByLogDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogDate, opts...).ToFunc()
}

// ByTotalSeconds orders the results by the total_seconds field.
func ByTotalSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSeconds, opts...).ToFunc()
}

// ByTotalUptimeSeconds orders the results by the total_uptime_seconds field.
func ByTotalUptimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUptimeSeconds, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
