// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/snapjobs/snapjobs-back/ent/plan"
	"github.com/snapjobs/snapjobs-back/ent/planfeature"
)

// PlanFeature is the model entity for the PlanFeature schema.
type PlanFeature struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Plan foreign key
	PlanID int `json:"plan_id,omitempty"`
	// Feature bullet text
	Feature string `json:"feature,omitempty"`
	// Display order within the plan
	FeatureOrder int `json:"feature_order,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanFeatureQuery when eager-loading is set.
	Edges        PlanFeatureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanFeatureEdges holds the relations/edges for other nodes in the graph.
type PlanFeatureEdges struct {
	// Plan holds the value of the plan edge.
	Plan *Plan `json:"plan,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlanFeatureEdges) PlanOrErr() (*Plan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: plan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanFeature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case planfeature.FieldID, planfeature.FieldPlanID, planfeature.FieldFeatureOrder:
			values[i] = new(sql.NullInt64)
		case planfeature.FieldFeature:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanFeature fields.
func (_m *PlanFeature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case planfeature.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case planfeature.FieldPlanID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = int(value.Int64)
			}
		case planfeature.FieldFeature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature", values[i])
			} else if value.Valid {
				_m.Feature = value.String
			}
		case planfeature.FieldFeatureOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field feature_order", values[i])
			} else if value.Valid {
				_m.FeatureOrder = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanFeature.
// This includes values selected through modifiers, order, etc.
func (_m *PlanFeature) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the PlanFeature entity.
func (_m *PlanFeature) QueryPlan() *PlanQuery {
	return NewPlanFeatureClient(_m.config).QueryPlan(_m)
}

// Update returns a builder for updating this PlanFeature.
// Note that you need to call PlanFeature.Unwrap() before calling this method if this PlanFeature
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanFeature) Update() *PlanFeatureUpdateOne {
	return NewPlanFeatureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanFeature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanFeature) Unwrap() *PlanFeature {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanFeature is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanFeature) String() string {
	var builder strings.Builder
	builder.WriteString("PlanFeature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanID))
	builder.WriteString(", ")
	builder.WriteString("feature=")
	builder.WriteString(_m.Feature)
	builder.WriteString(", ")
	builder.WriteString("feature_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeatureOrder))
	builder.WriteByte(')')
	return builder.String()
}

// PlanFeatures is a parsable slice of PlanFeature.
type PlanFeatures []*PlanFeature
