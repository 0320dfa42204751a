// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/snapjobs/snapjobs-back/ent/plan"
	"github.com/snapjobs/snapjobs-back/ent/planfeature"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *PlanCreate) SetCode(v string) *PlanCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PlanCreate) SetName(v string) *PlanCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *PlanCreate) SetPrice(v int) *PlanCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetBillingPeriod sets the "billing_period" field.
func (_c *PlanCreate) SetBillingPeriod(v string) *PlanCreate {
	_c.mutation.SetBillingPeriod(v)
	return _c
}

// SetNillableBillingPeriod sets the "billing_period" field if the given value is not nil.
func (_c *PlanCreate) SetNillableBillingPeriod(v *string) *PlanCreate {
	if v != nil {
		_c.SetBillingPeriod(*v)
	}
	return _c
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_c *PlanCreate) SetStripePriceID(v string) *PlanCreate {
	_c.mutation.SetStripePriceID(v)
	return _c
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStripePriceID(v *string) *PlanCreate {
	if v != nil {
		_c.SetStripePriceID(*v)
	}
	return _c
}

// SetAPIKeyLimit sets the "api_key_limit" field.
func (_c *PlanCreate) SetAPIKeyLimit(v int) *PlanCreate {
	_c.mutation.SetAPIKeyLimit(v)
	return _c
}

// SetRequestLimit sets the "request_limit" field.
func (_c *PlanCreate) SetRequestLimit(v int) *PlanCreate {
	_c.mutation.SetRequestLimit(v)
	return _c
}

// SetIsRecommended sets the "is_recommended" field.
func (_c *PlanCreate) SetIsRecommended(v bool) *PlanCreate {
	_c.mutation.SetIsRecommended(v)
	return _c
}

// SetNillableIsRecommended sets the "is_recommended" field if the given value is not nil.
func (_c *PlanCreate) SetNillableIsRecommended(v *bool) *PlanCreate {
	if v != nil {
		_c.SetIsRecommended(*v)
	}
	return _c
}

// SetColorFrom sets the "color_from" field.
func (_c *PlanCreate) SetColorFrom(v string) *PlanCreate {
	_c.mutation.SetColorFrom(v)
	return _c
}

// SetNillableColorFrom sets the "color_from" field if the given value is not nil.
func (_c *PlanCreate) SetNillableColorFrom(v *string) *PlanCreate {
	if v != nil {
		_c.SetColorFrom(*v)
	}
	return _c
}

// SetColorTo sets the "color_to" field.
func (_c *PlanCreate) SetColorTo(v string) *PlanCreate {
	_c.mutation.SetColorTo(v)
	return _c
}

// SetNillableColorTo sets the "color_to" field if the given value is not nil.
func (_c *PlanCreate) SetNillableColorTo(v *string) *PlanCreate {
	if v != nil {
		_c.SetColorTo(*v)
	}
	return _c
}

// AddFeatureIDs adds the "features" edge to the PlanFeature entity by IDs.
func (_c *PlanCreate) AddFeatureIDs(ids ...int) *PlanCreate {
	_c.mutation.AddFeatureIDs(ids...)
	return _c
}

// AddFeatures adds the "features" edges to the PlanFeature entity.
func (_c *PlanCreate) AddFeatures(v ...*PlanFeature) *PlanCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeatureIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.BillingPeriod(); !ok {
		v := plan.DefaultBillingPeriod
		_c.mutation.SetBillingPeriod(v)
	}
	if _, ok := _c.mutation.IsRecommended(); !ok {
		v := plan.DefaultIsRecommended
		_c.mutation.SetIsRecommended(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Plan.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := plan.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Plan.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Plan.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Plan.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := plan.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Plan.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BillingPeriod(); !ok {
		return &ValidationError{Name: "billing_period", err: errors.New(`ent: missing required field "Plan.billing_period"`)}
	}
	if _, ok := _c.mutation.APIKeyLimit(); !ok {
		return &ValidationError{Name: "api_key_limit", err: errors.New(`ent: missing required field "Plan.api_key_limit"`)}
	}
	if v, ok := _c.mutation.APIKeyLimit(); ok {
		if err := plan.APIKeyLimitValidator(v); err != nil {
			return &ValidationError{Name: "api_key_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.api_key_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestLimit(); !ok {
		return &ValidationError{Name: "request_limit", err: errors.New(`ent: missing required field "Plan.request_limit"`)}
	}
	if v, ok := _c.mutation.RequestLimit(); ok {
		if err := plan.RequestLimitValidator(v); err != nil {
			return &ValidationError{Name: "request_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.request_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRecommended(); !ok {
		return &ValidationError{Name: "is_recommended", err: errors.New(`ent: missing required field "Plan.is_recommended"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
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

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(plan.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeInt, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.BillingPeriod(); ok {
		_spec.SetField(plan.FieldBillingPeriod, field.TypeString, value)
		_node.BillingPeriod = value
	}
	if value, ok := _c.mutation.StripePriceID(); ok {
		_spec.SetField(plan.FieldStripePriceID, field.TypeString, value)
		_node.StripePriceID = value
	}
	if value, ok := _c.mutation.APIKeyLimit(); ok {
		_spec.SetField(plan.FieldAPIKeyLimit, field.TypeInt, value)
		_node.APIKeyLimit = value
	}
	if value, ok := _c.mutation.RequestLimit(); ok {
		_spec.SetField(plan.FieldRequestLimit, field.TypeInt, value)
		_node.RequestLimit = value
	}
	if value, ok := _c.mutation.IsRecommended(); ok {
		_spec.SetField(plan.FieldIsRecommended, field.TypeBool, value)
		_node.IsRecommended = value
	}
	if value, ok := _c.mutation.ColorFrom(); ok {
		_spec.SetField(plan.FieldColorFrom, field.TypeString, value)
		_node.ColorFrom = value
	}
	if value, ok := _c.mutation.ColorTo(); ok {
		_spec.SetField(plan.FieldColorTo, field.TypeString, value)
		_node.ColorTo = value
	}
	if nodes := _c.mutation.FeaturesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plan.FeaturesTable,
			Columns: []string{plan.FeaturesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planfeature.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
