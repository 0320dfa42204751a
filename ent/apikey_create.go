// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/snapjobs/snapjobs-back/ent/apikey"
	"github.com/snapjobs/snapjobs-back/ent/user"
)

// APIKeyCreate is the builder for creating a APIKey entity.
type APIKeyCreate struct {
	config
	mutation *APIKeyMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *APIKeyCreate) SetOwnerID(v int) *APIKeyCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetSecretCiphertext sets the "secret_ciphertext" field.
func (_c *APIKeyCreate) SetSecretCiphertext(v string) *APIKeyCreate {
	_c.mutation.SetSecretCiphertext(v)
	return _c
}

// SetIv sets the "iv" field.
func (_c *APIKeyCreate) SetIv(v string) *APIKeyCreate {
	_c.mutation.SetIv(v)
	return _c
}

// SetAuthTag sets the "auth_tag" field.
func (_c *APIKeyCreate) SetAuthTag(v string) *APIKeyCreate {
	_c.mutation.SetAuthTag(v)
	return _c
}

// SetPlanTag sets the "plan_tag" field.
func (_c *APIKeyCreate) SetPlanTag(v string) *APIKeyCreate {
	_c.mutation.SetPlanTag(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *APIKeyCreate) SetIsActive(v bool) *APIKeyCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *APIKeyCreate) SetNillableIsActive(v *bool) *APIKeyCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetRevealed sets the "revealed" field.
func (_c *APIKeyCreate) SetRevealed(v bool) *APIKeyCreate {
	_c.mutation.SetRevealed(v)
	return _c
}

// SetNillableRevealed sets the "revealed" field if the given value is not nil.
func (_c *APIKeyCreate) SetNillableRevealed(v *bool) *APIKeyCreate {
	if v != nil {
		_c.SetRevealed(*v)
	}
	return _c
}

// SetRevealCount sets the "reveal_count" field.
func (_c *APIKeyCreate) SetRevealCount(v int) *APIKeyCreate {
	_c.mutation.SetRevealCount(v)
	return _c
}

// SetNillableRevealCount sets the "reveal_count" field if the given value is not nil.
func (_c *APIKeyCreate) SetNillableRevealCount(v *int) *APIKeyCreate {
	if v != nil {
		_c.SetRevealCount(*v)
	}
	return _c
}

// SetRevealedAt sets the "revealed_at" field.
func (_c *APIKeyCreate) SetRevealedAt(v time.Time) *APIKeyCreate {
	_c.mutation.SetRevealedAt(v)
	return _c
}

// SetNillableRevealedAt sets the "revealed_at" field if the given value is not nil.
func (_c *APIKeyCreate) SetNillableRevealedAt(v *time.Time) *APIKeyCreate {
	if v != nil {
		_c.SetRevealedAt(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *APIKeyCreate) SetLastUsedAt(v time.Time) *APIKeyCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *APIKeyCreate) SetNillableLastUsedAt(v *time.Time) *APIKeyCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *APIKeyCreate) SetCreatedAt(v time.Time) *APIKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *APIKeyCreate) SetNillableCreatedAt(v *time.Time) *APIKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *APIKeyCreate) SetOwner(v *User) *APIKeyCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the APIKeyMutation object of the builder.
func (_c *APIKeyCreate) Mutation() *APIKeyMutation {
	return _c.mutation
}

// Save creates the APIKey in the database.
func (_c *APIKeyCreate) Save(ctx context.Context) (*APIKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *APIKeyCreate) SaveX(ctx context.Context) *APIKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *APIKeyCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := apikey.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.Revealed(); !ok {
		v := apikey.DefaultRevealed
		_c.mutation.SetRevealed(v)
	}
	if _, ok := _c.mutation.RevealCount(); !ok {
		v := apikey.DefaultRevealCount
		_c.mutation.SetRevealCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apikey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *APIKeyCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "APIKey.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := apikey.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "APIKey.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SecretCiphertext(); !ok {
		return &ValidationError{Name: "secret_ciphertext", err: errors.New(`ent: missing required field "APIKey.secret_ciphertext"`)}
	}
	if v, ok := _c.mutation.SecretCiphertext(); ok {
		if err := apikey.SecretCiphertextValidator(v); err != nil {
			return &ValidationError{Name: "secret_ciphertext", err: fmt.Errorf(`ent: validator failed for field "APIKey.secret_ciphertext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Iv(); !ok {
		return &ValidationError{Name: "iv", err: errors.New(`ent: missing required field "APIKey.iv"`)}
	}
	if v, ok := _c.mutation.Iv(); ok {
		if err := apikey.IvValidator(v); err != nil {
			return &ValidationError{Name: "iv", err: fmt.Errorf(`ent: validator failed for field "APIKey.iv": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthTag(); !ok {
		return &ValidationError{Name: "auth_tag", err: errors.New(`ent: missing required field "APIKey.auth_tag"`)}
	}
	if v, ok := _c.mutation.AuthTag(); ok {
		if err := apikey.AuthTagValidator(v); err != nil {
			return &ValidationError{Name: "auth_tag", err: fmt.Errorf(`ent: validator failed for field "APIKey.auth_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanTag(); !ok {
		return &ValidationError{Name: "plan_tag", err: errors.New(`ent: missing required field "APIKey.plan_tag"`)}
	}
	if v, ok := _c.mutation.PlanTag(); ok {
		if err := apikey.PlanTagValidator(v); err != nil {
			return &ValidationError{Name: "plan_tag", err: fmt.Errorf(`ent: validator failed for field "APIKey.plan_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "APIKey.is_active"`)}
	}
	if _, ok := _c.mutation.Revealed(); !ok {
		return &ValidationError{Name: "revealed", err: errors.New(`ent: missing required field "APIKey.revealed"`)}
	}
	if _, ok := _c.mutation.RevealCount(); !ok {
		return &ValidationError{Name: "reveal_count", err: errors.New(`ent: missing required field "APIKey.reveal_count"`)}
	}
	if v, ok := _c.mutation.RevealCount(); ok {
		if err := apikey.RevealCountValidator(v); err != nil {
			return &ValidationError{Name: "reveal_count", err: fmt.Errorf(`ent: validator failed for field "APIKey.reveal_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "APIKey.created_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "APIKey.owner"`)}
	}
	return nil
}

func (_c *APIKeyCreate) sqlSave(ctx context.Context) (*APIKey, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *APIKeyCreate) createSpec() (*APIKey, *sqlgraph.CreateSpec) {
	var (
		_node = &APIKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apikey.Table, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SecretCiphertext(); ok {
		_spec.SetField(apikey.FieldSecretCiphertext, field.TypeString, value)
		_node.SecretCiphertext = value
	}
	if value, ok := _c.mutation.Iv(); ok {
		_spec.SetField(apikey.FieldIv, field.TypeString, value)
		_node.Iv = value
	}
	if value, ok := _c.mutation.AuthTag(); ok {
		_spec.SetField(apikey.FieldAuthTag, field.TypeString, value)
		_node.AuthTag = value
	}
	if value, ok := _c.mutation.PlanTag(); ok {
		_spec.SetField(apikey.FieldPlanTag, field.TypeString, value)
		_node.PlanTag = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(apikey.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Revealed(); ok {
		_spec.SetField(apikey.FieldRevealed, field.TypeBool, value)
		_node.Revealed = value
	}
	if value, ok := _c.mutation.RevealCount(); ok {
		_spec.SetField(apikey.FieldRevealCount, field.TypeInt, value)
		_node.RevealCount = value
	}
	if value, ok := _c.mutation.RevealedAt(); ok {
		_spec.SetField(apikey.FieldRevealedAt, field.TypeTime, value)
		_node.RevealedAt = &value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(apikey.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apikey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// APIKeyCreateBulk is the builder for creating many APIKey entities in bulk.
type APIKeyCreateBulk struct {
	config
	err      error
	builders []*APIKeyCreate
}

// Save creates the APIKey entities in the database.
func (_c *APIKeyCreateBulk) Save(ctx context.Context) ([]*APIKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*APIKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APIKeyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *APIKeyCreateBulk) SaveX(ctx context.Context) []*APIKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
