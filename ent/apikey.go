// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/snapjobs/snapjobs-back/ent/apikey"
	"github.com/snapjobs/snapjobs-back/ent/user"
)

// APIKey is the model entity for the APIKey schema.
type APIKey struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owner user ID foreign key
	OwnerID int `json:"owner_id,omitempty"`
	// Hex-encoded AES-256-GCM ciphertext of the key
	SecretCiphertext string `json:"-"`
	// Hex-encoded GCM nonce
	Iv string `json:"-"`
	// Hex-encoded GCM authentication tag
	AuthTag string `json:"-"`
	// Plan short code frozen at issuance (fr/pr/ent)
	PlanTag string `json:"plan_tag,omitempty"`
	// Whether the key is accepted by downstream consumers
	IsActive bool `json:"is_active,omitempty"`
	// Whether the plaintext was ever revealed (monotonic)
	Revealed bool `json:"revealed,omitempty"`
	// Number of reveals; must never exceed 1
	RevealCount int `json:"reveal_count,omitempty"`
	// Reveal timestamp
	RevealedAt *time.Time `json:"revealed_at,omitempty"`
	// Last usage timestamp reported by the upstream API
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the APIKeyQuery when eager-loading is set.
	Edges        APIKeyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// APIKeyEdges holds the relations/edges for other nodes in the graph.
type APIKeyEdges struct {
	// API key owner
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e APIKeyEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*APIKey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apikey.FieldIsActive, apikey.FieldRevealed:
			values[i] = new(sql.NullBool)
		case apikey.FieldID, apikey.FieldOwnerID, apikey.FieldRevealCount:
			values[i] = new(sql.NullInt64)
		case apikey.FieldSecretCiphertext, apikey.FieldIv, apikey.FieldAuthTag, apikey.FieldPlanTag:
			values[i] = new(sql.NullString)
		case apikey.FieldRevealedAt, apikey.FieldLastUsedAt, apikey.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the APIKey fields.
func (_m *APIKey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apikey.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case apikey.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = int(value.Int64)
			}
		case apikey.FieldSecretCiphertext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret_ciphertext", values[i])
			} else if value.Valid {
				_m.SecretCiphertext = value.String
			}
		case apikey.FieldIv:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field iv", values[i])
			} else if value.Valid {
				_m.Iv = value.String
			}
		case apikey.FieldAuthTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_tag", values[i])
			} else if value.Valid {
				_m.AuthTag = value.String
			}
		case apikey.FieldPlanTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_tag", values[i])
			} else if value.Valid {
				_m.PlanTag = value.String
			}
		case apikey.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case apikey.FieldRevealed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field revealed", values[i])
			} else if value.Valid {
				_m.Revealed = value.Bool
			}
		case apikey.FieldRevealCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reveal_count", values[i])
			} else if value.Valid {
				_m.RevealCount = int(value.Int64)
			}
		case apikey.FieldRevealedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revealed_at", values[i])
			} else if value.Valid {
				_m.RevealedAt = new(time.Time)
				*_m.RevealedAt = value.Time
			}
		case apikey.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		case apikey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the APIKey.
// This includes values selected through modifiers, order, etc.
func (_m *APIKey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the APIKey entity.
func (_m *APIKey) QueryOwner() *UserQuery {
	return NewAPIKeyClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this APIKey.
// Note that you need to call APIKey.Unwrap() before calling this method if this APIKey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *APIKey) Update() *APIKeyUpdateOne {
	return NewAPIKeyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the APIKey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *APIKey) Unwrap() *APIKey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: APIKey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *APIKey) String() string {
	var builder strings.Builder
	builder.WriteString("APIKey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("secret_ciphertext=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("iv=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("auth_tag=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("plan_tag=")
	builder.WriteString(_m.PlanTag)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("revealed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revealed))
	builder.WriteString(", ")
	builder.WriteString("reveal_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevealCount))
	builder.WriteString(", ")
	if v := _m.RevealedAt; v != nil {
		builder.WriteString("revealed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// APIKeys is a parsable slice of APIKey.
type APIKeys []*APIKey
