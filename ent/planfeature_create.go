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

// PlanFeatureCreate is the builder for creating a PlanFeature entity.
type PlanFeatureCreate struct {
	config
	mutation *PlanFeatureMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanFeatureCreate) SetPlanID(v int) *PlanFeatureCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetFeature sets the "feature" field.
func (_c *PlanFeatureCreate) SetFeature(v string) *PlanFeatureCreate {
	_c.mutation.SetFeature(v)
	return _c
}

// SetFeatureOrder sets the "feature_order" field.
func (_c *PlanFeatureCreate) SetFeatureOrder(v int) *PlanFeatureCreate {
	_c.mutation.SetFeatureOrder(v)
	return _c
}

// SetNillableFeatureOrder sets the "feature_order" field if the given value is not nil.
func (_c *PlanFeatureCreate) SetNillableFeatureOrder(v *int) *PlanFeatureCreate {
	if v != nil {
		_c.SetFeatureOrder(*v)
	}
	return _c
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_c *PlanFeatureCreate) SetPlan(v *Plan) *PlanFeatureCreate {
	return _c.SetPlanID(v.ID)
}

// Mutation returns the PlanFeatureMutation object of the builder.
func (_c *PlanFeatureCreate) Mutation() *PlanFeatureMutation {
	return _c.mutation
}

// Save creates the PlanFeature in the database.
func (_c *PlanFeatureCreate) Save(ctx context.Context) (*PlanFeature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanFeatureCreate) SaveX(ctx context.Context) *PlanFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanFeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanFeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanFeatureCreate) defaults() {
	if _, ok := _c.mutation.FeatureOrder(); !ok {
		v := planfeature.DefaultFeatureOrder
		_c.mutation.SetFeatureOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanFeatureCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanFeature.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := planfeature.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanFeature.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Feature(); !ok {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required field "PlanFeature.feature"`)}
	}
	if v, ok := _c.mutation.Feature(); ok {
		if err := planfeature.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "PlanFeature.feature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureOrder(); !ok {
		return &ValidationError{Name: "feature_order", err: errors.New(`ent: missing required field "PlanFeature.feature_order"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "PlanFeature.plan"`)}
	}
	return nil
}

func (_c *PlanFeatureCreate) sqlSave(ctx context.Context) (*PlanFeature, error) {
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

func (_c *PlanFeatureCreate) createSpec() (*PlanFeature, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanFeature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planfeature.Table, sqlgraph.NewFieldSpec(planfeature.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Feature(); ok {
		_spec.SetField(planfeature.FieldFeature, field.TypeString, value)
		_node.Feature = value
	}
	if value, ok := _c.mutation.FeatureOrder(); ok {
		_spec.SetField(planfeature.FieldFeatureOrder, field.TypeInt, value)
		_node.FeatureOrder = value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   planfeature.PlanTable,
			Columns: []string{planfeature.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PlanFeatureCreateBulk is the builder for creating many PlanFeature entities in bulk.
type PlanFeatureCreateBulk struct {
	config
	err      error
	builders []*PlanFeatureCreate
}

// Save creates the PlanFeature entities in the database.
func (_c *PlanFeatureCreateBulk) Save(ctx context.Context) ([]*PlanFeature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanFeature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanFeatureMutation)
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
func (_c *PlanFeatureCreateBulk) SaveX(ctx context.Context) []*PlanFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanFeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanFeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
