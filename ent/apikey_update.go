// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/snapjobs/snapjobs-back/ent/apikey"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
	"github.com/snapjobs/snapjobs-back/ent/user"
)

// APIKeyUpdate is the builder for updating APIKey entities.
type APIKeyUpdate struct {
	config
	hooks    []Hook
	mutation *APIKeyMutation
}

// Where appends a list predicates to the APIKeyUpdate builder.
func (_u *APIKeyUpdate) Where(ps ...predicate.APIKey) *APIKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *APIKeyUpdate) SetOwnerID(v int) *APIKeyUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableOwnerID(v *int) *APIKeyUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetSecretCiphertext sets the "secret_ciphertext" field.
func (_u *APIKeyUpdate) SetSecretCiphertext(v string) *APIKeyUpdate {
	_u.mutation.SetSecretCiphertext(v)
	return _u
}

// SetNillableSecretCiphertext sets the "secret_ciphertext" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableSecretCiphertext(v *string) *APIKeyUpdate {
	if v != nil {
		_u.SetSecretCiphertext(*v)
	}
	return _u
}

// SetIv sets the "iv" field.
func (_u *APIKeyUpdate) SetIv(v string) *APIKeyUpdate {
	_u.mutation.SetIv(v)
	return _u
}

// SetNillableIv sets the "iv" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableIv(v *string) *APIKeyUpdate {
	if v != nil {
		_u.SetIv(*v)
	}
	return _u
}

// SetAuthTag sets the "auth_tag" field.
func (_u *APIKeyUpdate) SetAuthTag(v string) *APIKeyUpdate {
	_u.mutation.SetAuthTag(v)
	return _u
}

// SetNillableAuthTag sets the "auth_tag" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableAuthTag(v *string) *APIKeyUpdate {
	if v != nil {
		_u.SetAuthTag(*v)
	}
	return _u
}

// SetPlanTag sets the "plan_tag" field.
func (_u *APIKeyUpdate) SetPlanTag(v string) *APIKeyUpdate {
	_u.mutation.SetPlanTag(v)
	return _u
}

// SetNillablePlanTag sets the "plan_tag" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillablePlanTag(v *string) *APIKeyUpdate {
	if v != nil {
		_u.SetPlanTag(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *APIKeyUpdate) SetIsActive(v bool) *APIKeyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableIsActive(v *bool) *APIKeyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRevealed sets the "revealed" field.
func (_u *APIKeyUpdate) SetRevealed(v bool) *APIKeyUpdate {
	_u.mutation.SetRevealed(v)
	return _u
}

// SetNillableRevealed sets the "revealed" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableRevealed(v *bool) *APIKeyUpdate {
	if v != nil {
		_u.SetRevealed(*v)
	}
	return _u
}

// SetRevealCount sets the "reveal_count" field.
func (_u *APIKeyUpdate) SetRevealCount(v int) *APIKeyUpdate {
	_u.mutation.ResetRevealCount()
	_u.mutation.SetRevealCount(v)
	return _u
}

// SetNillableRevealCount sets the "reveal_count" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableRevealCount(v *int) *APIKeyUpdate {
	if v != nil {
		_u.SetRevealCount(*v)
	}
	return _u
}

// AddRevealCount adds value to the "reveal_count" field.
func (_u *APIKeyUpdate) AddRevealCount(v int) *APIKeyUpdate {
	_u.mutation.AddRevealCount(v)
	return _u
}

// SetRevealedAt sets the "revealed_at" field.
func (_u *APIKeyUpdate) SetRevealedAt(v time.Time) *APIKeyUpdate {
	_u.mutation.SetRevealedAt(v)
	return _u
}

// SetNillableRevealedAt sets the "revealed_at" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableRevealedAt(v *time.Time) *APIKeyUpdate {
	if v != nil {
		_u.SetRevealedAt(*v)
	}
	return _u
}

// ClearRevealedAt clears the value of the "revealed_at" field.
func (_u *APIKeyUpdate) ClearRevealedAt() *APIKeyUpdate {
	_u.mutation.ClearRevealedAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *APIKeyUpdate) SetLastUsedAt(v time.Time) *APIKeyUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *APIKeyUpdate) SetNillableLastUsedAt(v *time.Time) *APIKeyUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *APIKeyUpdate) ClearLastUsedAt() *APIKeyUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *APIKeyUpdate) SetOwner(v *User) *APIKeyUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the APIKeyMutation object of the builder.
func (_u *APIKeyUpdate) Mutation() *APIKeyMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *APIKeyUpdate) ClearOwner() *APIKeyUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *APIKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *APIKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APIKeyUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := apikey.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "APIKey.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecretCiphertext(); ok {
		if err := apikey.SecretCiphertextValidator(v); err != nil {
			return &ValidationError{Name: "secret_ciphertext", err: fmt.Errorf(`ent: validator failed for field "APIKey.secret_ciphertext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Iv(); ok {
		if err := apikey.IvValidator(v); err != nil {
			return &ValidationError{Name: "iv", err: fmt.Errorf(`ent: validator failed for field "APIKey.iv": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthTag(); ok {
		if err := apikey.AuthTagValidator(v); err != nil {
			return &ValidationError{Name: "auth_tag", err: fmt.Errorf(`ent: validator failed for field "APIKey.auth_tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanTag(); ok {
		if err := apikey.PlanTagValidator(v); err != nil {
			return &ValidationError{Name: "plan_tag", err: fmt.Errorf(`ent: validator failed for field "APIKey.plan_tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RevealCount(); ok {
		if err := apikey.RevealCountValidator(v); err != nil {
			return &ValidationError{Name: "reveal_count", err: fmt.Errorf(`ent: validator failed for field "APIKey.reveal_count": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APIKey.owner"`)
	}
	return nil
}

func (_u *APIKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SecretCiphertext(); ok {
		_spec.SetField(apikey.FieldSecretCiphertext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iv(); ok {
		_spec.SetField(apikey.FieldIv, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthTag(); ok {
		_spec.SetField(apikey.FieldAuthTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanTag(); ok {
		_spec.SetField(apikey.FieldPlanTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(apikey.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Revealed(); ok {
		_spec.SetField(apikey.FieldRevealed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RevealCount(); ok {
		_spec.SetField(apikey.FieldRevealCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevealCount(); ok {
		_spec.AddField(apikey.FieldRevealCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevealedAt(); ok {
		_spec.SetField(apikey.FieldRevealedAt, field.TypeTime, value)
	}
	if _u.mutation.RevealedAtCleared() {
		_spec.ClearField(apikey.FieldRevealedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(apikey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(apikey.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apikey.OwnerTable,
			Columns: []string{apikey.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apikey.OwnerTable,
			Columns: []string{apikey.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// APIKeyUpdateOne is the builder for updating a single APIKey entity.
type APIKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APIKeyMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *APIKeyUpdateOne) SetOwnerID(v int) *APIKeyUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableOwnerID(v *int) *APIKeyUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetSecretCiphertext sets the "secret_ciphertext" field.
func (_u *APIKeyUpdateOne) SetSecretCiphertext(v string) *APIKeyUpdateOne {
	_u.mutation.SetSecretCiphertext(v)
	return _u
}

// SetNillableSecretCiphertext sets the "secret_ciphertext" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableSecretCiphertext(v *string) *APIKeyUpdateOne {
	if v != nil {
		_u.SetSecretCiphertext(*v)
	}
	return _u
}

// SetIv sets the "iv" field.
func (_u *APIKeyUpdateOne) SetIv(v string) *APIKeyUpdateOne {
	_u.mutation.SetIv(v)
	return _u
}

// SetNillableIv sets the "iv" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableIv(v *string) *APIKeyUpdateOne {
	if v != nil {
		_u.SetIv(*v)
	}
	return _u
}

// SetAuthTag sets the "auth_tag" field.
func (_u *APIKeyUpdateOne) SetAuthTag(v string) *APIKeyUpdateOne {
	_u.mutation.SetAuthTag(v)
	return _u
}

// SetNillableAuthTag sets the "auth_tag" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableAuthTag(v *string) *APIKeyUpdateOne {
	if v != nil {
		_u.SetAuthTag(*v)
	}
	return _u
}

// SetPlanTag sets the "plan_tag" field.
func (_u *APIKeyUpdateOne) SetPlanTag(v string) *APIKeyUpdateOne {
	_u.mutation.SetPlanTag(v)
	return _u
}

// SetNillablePlanTag sets the "plan_tag" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillablePlanTag(v *string) *APIKeyUpdateOne {
	if v != nil {
		_u.SetPlanTag(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *APIKeyUpdateOne) SetIsActive(v bool) *APIKeyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableIsActive(v *bool) *APIKeyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetRevealed sets the "revealed" field.
func (_u *APIKeyUpdateOne) SetRevealed(v bool) *APIKeyUpdateOne {
	_u.mutation.SetRevealed(v)
	return _u
}

// SetNillableRevealed sets the "revealed" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableRevealed(v *bool) *APIKeyUpdateOne {
	if v != nil {
		_u.SetRevealed(*v)
	}
	return _u
}

// SetRevealCount sets the "reveal_count" field.
func (_u *APIKeyUpdateOne) SetRevealCount(v int) *APIKeyUpdateOne {
	_u.mutation.ResetRevealCount()
	_u.mutation.SetRevealCount(v)
	return _u
}

// SetNillableRevealCount sets the "reveal_count" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableRevealCount(v *int) *APIKeyUpdateOne {
	if v != nil {
		_u.SetRevealCount(*v)
	}
	return _u
}

// AddRevealCount adds value to the "reveal_count" field.
func (_u *APIKeyUpdateOne) AddRevealCount(v int) *APIKeyUpdateOne {
	_u.mutation.AddRevealCount(v)
	return _u
}

// SetRevealedAt sets the "revealed_at" field.
func (_u *APIKeyUpdateOne) SetRevealedAt(v time.Time) *APIKeyUpdateOne {
	_u.mutation.SetRevealedAt(v)
	return _u
}

// SetNillableRevealedAt sets the "revealed_at" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableRevealedAt(v *time.Time) *APIKeyUpdateOne {
	if v != nil {
		_u.SetRevealedAt(*v)
	}
	return _u
}

// ClearRevealedAt clears the value of the "revealed_at" field.
func (_u *APIKeyUpdateOne) ClearRevealedAt() *APIKeyUpdateOne {
	_u.mutation.ClearRevealedAt()
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *APIKeyUpdateOne) SetLastUsedAt(v time.Time) *APIKeyUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *APIKeyUpdateOne) SetNillableLastUsedAt(v *time.Time) *APIKeyUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *APIKeyUpdateOne) ClearLastUsedAt() *APIKeyUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *APIKeyUpdateOne) SetOwner(v *User) *APIKeyUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the APIKeyMutation object of the builder.
func (_u *APIKeyUpdateOne) Mutation() *APIKeyMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *APIKeyUpdateOne) ClearOwner() *APIKeyUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the APIKeyUpdate builder.
func (_u *APIKeyUpdateOne) Where(ps ...predicate.APIKey) *APIKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *APIKeyUpdateOne) Select(field string, fields ...string) *APIKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated APIKey entity.
func (_u *APIKeyUpdateOne) Save(ctx context.Context) (*APIKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIKeyUpdateOne) SaveX(ctx context.Context) *APIKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *APIKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APIKeyUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := apikey.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "APIKey.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecretCiphertext(); ok {
		if err := apikey.SecretCiphertextValidator(v); err != nil {
			return &ValidationError{Name: "secret_ciphertext", err: fmt.Errorf(`ent: validator failed for field "APIKey.secret_ciphertext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Iv(); ok {
		if err := apikey.IvValidator(v); err != nil {
			return &ValidationError{Name: "iv", err: fmt.Errorf(`ent: validator failed for field "APIKey.iv": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthTag(); ok {
		if err := apikey.AuthTagValidator(v); err != nil {
			return &ValidationError{Name: "auth_tag", err: fmt.Errorf(`ent: validator failed for field "APIKey.auth_tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanTag(); ok {
		if err := apikey.PlanTagValidator(v); err != nil {
			return &ValidationError{Name: "plan_tag", err: fmt.Errorf(`ent: validator failed for field "APIKey.plan_tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RevealCount(); ok {
		if err := apikey.RevealCountValidator(v); err != nil {
			return &ValidationError{Name: "reveal_count", err: fmt.Errorf(`ent: validator failed for field "APIKey.reveal_count": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APIKey.owner"`)
	}
	return nil
}

func (_u *APIKeyUpdateOne) sqlSave(ctx context.Context) (_node *APIKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APIKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apikey.FieldID)
		for _, f := range fields {
			if !apikey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apikey.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SecretCiphertext(); ok {
		_spec.SetField(apikey.FieldSecretCiphertext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Iv(); ok {
		_spec.SetField(apikey.FieldIv, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthTag(); ok {
		_spec.SetField(apikey.FieldAuthTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanTag(); ok {
		_spec.SetField(apikey.FieldPlanTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(apikey.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Revealed(); ok {
		_spec.SetField(apikey.FieldRevealed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RevealCount(); ok {
		_spec.SetField(apikey.FieldRevealCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevealCount(); ok {
		_spec.AddField(apikey.FieldRevealCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevealedAt(); ok {
		_spec.SetField(apikey.FieldRevealedAt, field.TypeTime, value)
	}
	if _u.mutation.RevealedAtCleared() {
		_spec.ClearField(apikey.FieldRevealedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(apikey.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(apikey.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apikey.OwnerTable,
			Columns: []string{apikey.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apikey.OwnerTable,
			Columns: []string{apikey.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &APIKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
