// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/snapjobs/snapjobs-back/ent/plan"
	"github.com/snapjobs/snapjobs-back/ent/planfeature"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
)

// PlanFeatureUpdate is the builder for updating PlanFeature entities.
type PlanFeatureUpdate struct {
	config
	hooks    []Hook
	mutation *PlanFeatureMutation
}

// Where appends a list predicates to the PlanFeatureUpdate builder.
func (_u *PlanFeatureUpdate) Where(ps ...predicate.PlanFeature) *PlanFeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanFeatureUpdate) SetPlanID(v int) *PlanFeatureUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanFeatureUpdate) SetNillablePlanID(v *int) *PlanFeatureUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *PlanFeatureUpdate) SetFeature(v string) *PlanFeatureUpdate {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *PlanFeatureUpdate) SetNillableFeature(v *string) *PlanFeatureUpdate {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetFeatureOrder sets the "feature_order" field.
func (_u *PlanFeatureUpdate) SetFeatureOrder(v int) *PlanFeatureUpdate {
	_u.mutation.ResetFeatureOrder()
	_u.mutation.SetFeatureOrder(v)
	return _u
}

// SetNillableFeatureOrder sets the "feature_order" field if the given value is not nil.
func (_u *PlanFeatureUpdate) SetNillableFeatureOrder(v *int) *PlanFeatureUpdate {
	if v != nil {
		_u.SetFeatureOrder(*v)
	}
	return _u
}

// AddFeatureOrder adds value to the "feature_order" field.
func (_u *PlanFeatureUpdate) AddFeatureOrder(v int) *PlanFeatureUpdate {
	_u.mutation.AddFeatureOrder(v)
	return _u
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_u *PlanFeatureUpdate) SetPlan(v *Plan) *PlanFeatureUpdate {
	return _u.SetPlanID(v.ID)
}

// Mutation returns the PlanFeatureMutation object of the builder.
func (_u *PlanFeatureUpdate) Mutation() *PlanFeatureMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (_u *PlanFeatureUpdate) ClearPlan() *PlanFeatureUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanFeatureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanFeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanFeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanFeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanFeatureUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planfeature.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanFeature.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Feature(); ok {
		if err := planfeature.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "PlanFeature.feature": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanFeature.plan"`)
	}
	return nil
}

func (_u *PlanFeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planfeature.Table, planfeature.Columns, sqlgraph.NewFieldSpec(planfeature.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(planfeature.FieldFeature, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureOrder(); ok {
		_spec.SetField(planfeature.FieldFeatureOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeatureOrder(); ok {
		_spec.AddField(planfeature.FieldFeatureOrder, field.TypeInt, value)
	}
	if _u.mutation.PlanCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planfeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanFeatureUpdateOne is the builder for updating a single PlanFeature entity.
type PlanFeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanFeatureMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanFeatureUpdateOne) SetPlanID(v int) *PlanFeatureUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanFeatureUpdateOne) SetNillablePlanID(v *int) *PlanFeatureUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *PlanFeatureUpdateOne) SetFeature(v string) *PlanFeatureUpdateOne {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *PlanFeatureUpdateOne) SetNillableFeature(v *string) *PlanFeatureUpdateOne {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetFeatureOrder sets the "feature_order" field.
func (_u *PlanFeatureUpdateOne) SetFeatureOrder(v int) *PlanFeatureUpdateOne {
	_u.mutation.ResetFeatureOrder()
	_u.mutation.SetFeatureOrder(v)
	return _u
}

// SetNillableFeatureOrder sets the "feature_order" field if the given value is not nil.
func (_u *PlanFeatureUpdateOne) SetNillableFeatureOrder(v *int) *PlanFeatureUpdateOne {
	if v != nil {
		_u.SetFeatureOrder(*v)
	}
	return _u
}

// AddFeatureOrder adds value to the "feature_order" field.
func (_u *PlanFeatureUpdateOne) AddFeatureOrder(v int) *PlanFeatureUpdateOne {
	_u.mutation.AddFeatureOrder(v)
	return _u
}

// SetPlan sets the "plan" edge to the Plan entity.
func (_u *PlanFeatureUpdateOne) SetPlan(v *Plan) *PlanFeatureUpdateOne {
	return _u.SetPlanID(v.ID)
}

// Mutation returns the PlanFeatureMutation object of the builder.
func (_u *PlanFeatureUpdateOne) Mutation() *PlanFeatureMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the Plan entity.
func (_u *PlanFeatureUpdateOne) ClearPlan() *PlanFeatureUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// Where appends a list predicates to the PlanFeatureUpdate builder.
func (_u *PlanFeatureUpdateOne) Where(ps ...predicate.PlanFeature) *PlanFeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanFeatureUpdateOne) Select(field string, fields ...string) *PlanFeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanFeature entity.
func (_u *PlanFeatureUpdateOne) Save(ctx context.Context) (*PlanFeature, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanFeatureUpdateOne) SaveX(ctx context.Context) *PlanFeature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanFeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanFeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanFeatureUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planfeature.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanFeature.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Feature(); ok {
		if err := planfeature.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "PlanFeature.feature": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanFeature.plan"`)
	}
	return nil
}

func (_u *PlanFeatureUpdateOne) sqlSave(ctx context.Context) (_node *PlanFeature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planfeature.Table, planfeature.Columns, sqlgraph.NewFieldSpec(planfeature.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanFeature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planfeature.FieldID)
		for _, f := range fields {
			if !planfeature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planfeature.FieldID {
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
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(planfeature.FieldFeature, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeatureOrder(); ok {
		_spec.SetField(planfeature.FieldFeatureOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeatureOrder(); ok {
		_spec.AddField(planfeature.FieldFeatureOrder, field.TypeInt, value)
	}
	if _u.mutation.PlanCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PlanFeature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planfeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
