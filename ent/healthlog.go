// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/snapjobs/snapjobs-back/ent/healthlog"
)

// HealthLog is the model entity for the HealthLog schema.
type HealthLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Day this row aggregates (midnight UTC)
	LogDate time.Time `json:"log_date,omitempty"`
	// Seconds observed during the day
	TotalSeconds int `json:"total_seconds,omitempty"`
	// Seconds the upstream API was healthy
	TotalUptimeSeconds int `json:"total_uptime_seconds,omitempty"`
	// Latest observed status
	Status healthlog.Status `json:"status,omitempty"`
	// Last poll timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthlog.FieldID, healthlog.FieldTotalSeconds, healthlog.FieldTotalUptimeSeconds:
			values[i] = new(sql.NullInt64)
		case healthlog.FieldStatus:
			values[i] = new(sql.NullString)
		case healthlog.FieldLogDate, healthlog.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthLog fields.
func (_m *HealthLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case healthlog.FieldLogDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field log_date", values[i])
			} else if value.Valid {
				_m.LogDate = value.Time
			}
		case healthlog.FieldTotalSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_seconds", values[i])
			} else if value.Valid {
				_m.TotalSeconds = int(value.Int64)
			}
		case healthlog.FieldTotalUptimeSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_uptime_seconds", values[i])
			} else if value.Valid {
				_m.TotalUptimeSeconds = int(value.Int64)
			}
		case healthlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = healthlog.Status(value.String)
			}
		case healthlog.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HealthLog.
// This includes values selected through modifiers, order, etc.
func (_m *HealthLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HealthLog.
// Note that you need to call HealthLog.Unwrap() before calling this method if this HealthLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthLog) Update() *HealthLogUpdateOne {
	return NewHealthLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthLog) Unwrap() *HealthLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HealthLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthLog) String() string {
	var builder strings.Builder
	builder.WriteString("HealthLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("log_date=")
	builder.WriteString(_m.LogDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSeconds))
	builder.WriteString(", ")
	builder.WriteString("total_uptime_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUptimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HealthLogs is a parsable slice of HealthLog.
type HealthLogs []*HealthLog
