// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/snapjobs/snapjobs-back/ent/plan"
)

// Plan is the model entity for the Plan schema.
type Plan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Plan tier code (free/pro/enterprise)
	Code string `json:"code,omitempty"`
	// Display name
	Name string `json:"name,omitempty"`
	// Monthly price in USD
	Price int `json:"price,omitempty"`
	// Billing period label
	BillingPeriod string `json:"billing_period,omitempty"`
	// Stripe price ID for checkout
	StripePriceID string `json:"stripe_price_id,omitempty"`
	// Active API keys allowed on this plan
	APIKeyLimit int `json:"api_key_limit,omitempty"`
	// Monthly API requests allowed on this plan
	RequestLimit int `json:"request_limit,omitempty"`
	// Highlighted on the pricing page
	IsRecommended bool `json:"is_recommended,omitempty"`
	// Gradient start color class
	ColorFrom string `json:"color_from,omitempty"`
	// Gradient end color class
	ColorTo string `json:"color_to,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanQuery when eager-loading is set.
	Edges        PlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanEdges holds the relations/edges for other nodes in the graph.
type PlanEdges struct {
	// Features holds the value of the features edge.
	Features []*PlanFeature `json:"features,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FeaturesOrErr returns the Features value or an error if the edge
// was not loaded in eager-loading.
func (e PlanEdges) FeaturesOrErr() ([]*PlanFeature, error) {
	if e.loadedTypes[0] {
		return e.Features, nil
	}
	return nil, &NotLoadedError{edge: "features"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Plan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plan.FieldIsRecommended:
			values[i] = new(sql.NullBool)
		case plan.FieldID, plan.FieldPrice, plan.FieldAPIKeyLimit, plan.FieldRequestLimit:
			values[i] = new(sql.NullInt64)
		case plan.FieldCode, plan.FieldName, plan.FieldBillingPeriod, plan.FieldStripePriceID, plan.FieldColorFrom, plan.FieldColorTo:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Plan fields.
func (_m *Plan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case plan.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case plan.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case plan.FieldPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = int(value.Int64)
			}
		case plan.FieldBillingPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field billing_period", values[i])
			} else if value.Valid {
				_m.BillingPeriod = value.String
			}
		case plan.FieldStripePriceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_price_id", values[i])
			} else if value.Valid {
				_m.StripePriceID = value.String
			}
		case plan.FieldAPIKeyLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_limit", values[i])
			} else if value.Valid {
				_m.APIKeyLimit = int(value.Int64)
			}
		case plan.FieldRequestLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_limit", values[i])
			} else if value.Valid {
				_m.RequestLimit = int(value.Int64)
			}
		case plan.FieldIsRecommended:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_recommended", values[i])
			} else if value.Valid {
				_m.IsRecommended = value.Bool
			}
		case plan.FieldColorFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_from", values[i])
			} else if value.Valid {
				_m.ColorFrom = value.String
			}
		case plan.FieldColorTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_to", values[i])
			} else if value.Valid {
				_m.ColorTo = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Plan.
// This includes values selected through modifiers, order, etc.
func (_m *Plan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFeatures queries the "features" edge of the Plan entity.
func (_m *Plan) QueryFeatures() *PlanFeatureQuery {
	return NewPlanClient(_m.config).QueryFeatures(_m)
}

// Update returns a builder for updating this Plan.
// Note that you need to call Plan.Unwrap() before calling this method if this Plan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Plan) Update() *PlanUpdateOne {
	return NewPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Plan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Plan) Unwrap() *Plan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Plan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Plan) String() string {
	var builder strings.Builder
	builder.WriteString("Plan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("billing_period=")
	builder.WriteString(_m.BillingPeriod)
	builder.WriteString(", ")
	builder.WriteString("stripe_price_id=")
	builder.WriteString(_m.StripePriceID)
	builder.WriteString(", ")
	builder.WriteString("api_key_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.APIKeyLimit))
	builder.WriteString(", ")
	builder.WriteString("request_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestLimit))
	builder.WriteString(", ")
	builder.WriteString("is_recommended=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRecommended))
	builder.WriteString(", ")
	builder.WriteString("color_from=")
	builder.WriteString(_m.ColorFrom)
	builder.WriteString(", ")
	builder.WriteString("color_to=")
	builder.WriteString(_m.ColorTo)
	builder.WriteByte(')')
	return builder.String()
}

// Plans is a parsable slice of Plan.
type Plans []*Plan
