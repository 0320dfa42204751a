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

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *PlanUpdate) SetCode(v string) *PlanUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCode(v *string) *PlanUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdate) SetName(v string) *PlanUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PlanUpdate) SetPrice(v int) *PlanUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PlanUpdate) SetNillablePrice(v *int) *PlanUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PlanUpdate) AddPrice(v int) *PlanUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetBillingPeriod sets the "billing_period" field.
func (_u *PlanUpdate) SetBillingPeriod(v string) *PlanUpdate {
	_u.mutation.SetBillingPeriod(v)
	return _u
}

// SetNillableBillingPeriod sets the "billing_period" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableBillingPeriod(v *string) *PlanUpdate {
	if v != nil {
		_u.SetBillingPeriod(*v)
	}
	return _u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_u *PlanUpdate) SetStripePriceID(v string) *PlanUpdate {
	_u.mutation.SetStripePriceID(v)
	return _u
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStripePriceID(v *string) *PlanUpdate {
	if v != nil {
		_u.SetStripePriceID(*v)
	}
	return _u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (_u *PlanUpdate) ClearStripePriceID() *PlanUpdate {
	_u.mutation.ClearStripePriceID()
	return _u
}

// SetAPIKeyLimit sets the "api_key_limit" field.
func (_u *PlanUpdate) SetAPIKeyLimit(v int) *PlanUpdate {
	_u.mutation.ResetAPIKeyLimit()
	_u.mutation.SetAPIKeyLimit(v)
	return _u
}

// SetNillableAPIKeyLimit sets the "api_key_limit" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableAPIKeyLimit(v *int) *PlanUpdate {
	if v != nil {
		_u.SetAPIKeyLimit(*v)
	}
	return _u
}

// AddAPIKeyLimit adds value to the "api_key_limit" field.
func (_u *PlanUpdate) AddAPIKeyLimit(v int) *PlanUpdate {
	_u.mutation.AddAPIKeyLimit(v)
	return _u
}

// SetRequestLimit sets the "request_limit" field.
func (_u *PlanUpdate) SetRequestLimit(v int) *PlanUpdate {
	_u.mutation.ResetRequestLimit()
	_u.mutation.SetRequestLimit(v)
	return _u
}

// SetNillableRequestLimit sets the "request_limit" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableRequestLimit(v *int) *PlanUpdate {
	if v != nil {
		_u.SetRequestLimit(*v)
	}
	return _u
}

// AddRequestLimit adds value to the "request_limit" field.
func (_u *PlanUpdate) AddRequestLimit(v int) *PlanUpdate {
	_u.mutation.AddRequestLimit(v)
	return _u
}

// SetIsRecommended sets the "is_recommended" field.
func (_u *PlanUpdate) SetIsRecommended(v bool) *PlanUpdate {
	_u.mutation.SetIsRecommended(v)
	return _u
}

// SetNillableIsRecommended sets the "is_recommended" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableIsRecommended(v *bool) *PlanUpdate {
	if v != nil {
		_u.SetIsRecommended(*v)
	}
	return _u
}

// SetColorFrom sets the "color_from" field.
func (_u *PlanUpdate) SetColorFrom(v string) *PlanUpdate {
	_u.mutation.SetColorFrom(v)
	return _u
}

// SetNillableColorFrom sets the "color_from" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableColorFrom(v *string) *PlanUpdate {
	if v != nil {
		_u.SetColorFrom(*v)
	}
	return _u
}

// ClearColorFrom clears the value of the "color_from" field.
func (_u *PlanUpdate) ClearColorFrom() *PlanUpdate {
	_u.mutation.ClearColorFrom()
	return _u
}

// SetColorTo sets the "color_to" field.
func (_u *PlanUpdate) SetColorTo(v string) *PlanUpdate {
	_u.mutation.SetColorTo(v)
	return _u
}

// SetNillableColorTo sets the "color_to" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableColorTo(v *string) *PlanUpdate {
	if v != nil {
		_u.SetColorTo(*v)
	}
	return _u
}

// ClearColorTo clears the value of the "color_to" field.
func (_u *PlanUpdate) ClearColorTo() *PlanUpdate {
	_u.mutation.ClearColorTo()
	return _u
}

// AddFeatureIDs adds the "features" edge to the PlanFeature entity by IDs.
func (_u *PlanUpdate) AddFeatureIDs(ids ...int) *PlanUpdate {
	_u.mutation.AddFeatureIDs(ids...)
	return _u
}

// AddFeatures adds the "features" edges to the PlanFeature entity.
func (_u *PlanUpdate) AddFeatures(v ...*PlanFeature) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeatureIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearFeatures clears all "features" edges to the PlanFeature entity.
func (_u *PlanUpdate) ClearFeatures() *PlanUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// RemoveFeatureIDs removes the "features" edge to PlanFeature entities by IDs.
func (_u *PlanUpdate) RemoveFeatureIDs(ids ...int) *PlanUpdate {
	_u.mutation.RemoveFeatureIDs(ids...)
	return _u
}

// RemoveFeatures removes "features" edges to PlanFeature entities.
func (_u *PlanUpdate) RemoveFeatures(v ...*PlanFeature) *PlanUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeatureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := plan.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Plan.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := plan.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Plan.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APIKeyLimit(); ok {
		if err := plan.APIKeyLimitValidator(v); err != nil {
			return &ValidationError{Name: "api_key_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.api_key_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestLimit(); ok {
		if err := plan.RequestLimitValidator(v); err != nil {
			return &ValidationError{Name: "request_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.request_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(plan.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(plan.FieldPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BillingPeriod(); ok {
		_spec.SetField(plan.FieldBillingPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StripePriceID(); ok {
		_spec.SetField(plan.FieldStripePriceID, field.TypeString, value)
	}
	if _u.mutation.StripePriceIDCleared() {
		_spec.ClearField(plan.FieldStripePriceID, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyLimit(); ok {
		_spec.SetField(plan.FieldAPIKeyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPIKeyLimit(); ok {
		_spec.AddField(plan.FieldAPIKeyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestLimit(); ok {
		_spec.SetField(plan.FieldRequestLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestLimit(); ok {
		_spec.AddField(plan.FieldRequestLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRecommended(); ok {
		_spec.SetField(plan.FieldIsRecommended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ColorFrom(); ok {
		_spec.SetField(plan.FieldColorFrom, field.TypeString, value)
	}
	if _u.mutation.ColorFromCleared() {
		_spec.ClearField(plan.FieldColorFrom, field.TypeString)
	}
	if value, ok := _u.mutation.ColorTo(); ok {
		_spec.SetField(plan.FieldColorTo, field.TypeString, value)
	}
	if _u.mutation.ColorToCleared() {
		_spec.ClearField(plan.FieldColorTo, field.TypeString)
	}
	if _u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeaturesIDs(); len(nodes) > 0 && !_u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeaturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetCode sets the "code" field.
func (_u *PlanUpdateOne) SetCode(v string) *PlanUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCode(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdateOne) SetName(v string) *PlanUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PlanUpdateOne) SetPrice(v int) *PlanUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillablePrice(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PlanUpdateOne) AddPrice(v int) *PlanUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetBillingPeriod sets the "billing_period" field.
func (_u *PlanUpdateOne) SetBillingPeriod(v string) *PlanUpdateOne {
	_u.mutation.SetBillingPeriod(v)
	return _u
}

// SetNillableBillingPeriod sets the "billing_period" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableBillingPeriod(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetBillingPeriod(*v)
	}
	return _u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_u *PlanUpdateOne) SetStripePriceID(v string) *PlanUpdateOne {
	_u.mutation.SetStripePriceID(v)
	return _u
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStripePriceID(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetStripePriceID(*v)
	}
	return _u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (_u *PlanUpdateOne) ClearStripePriceID() *PlanUpdateOne {
	_u.mutation.ClearStripePriceID()
	return _u
}

// SetAPIKeyLimit sets the "api_key_limit" field.
func (_u *PlanUpdateOne) SetAPIKeyLimit(v int) *PlanUpdateOne {
	_u.mutation.ResetAPIKeyLimit()
	_u.mutation.SetAPIKeyLimit(v)
	return _u
}

// SetNillableAPIKeyLimit sets the "api_key_limit" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableAPIKeyLimit(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetAPIKeyLimit(*v)
	}
	return _u
}

// AddAPIKeyLimit adds value to the "api_key_limit" field.
func (_u *PlanUpdateOne) AddAPIKeyLimit(v int) *PlanUpdateOne {
	_u.mutation.AddAPIKeyLimit(v)
	return _u
}

// SetRequestLimit sets the "request_limit" field.
func (_u *PlanUpdateOne) SetRequestLimit(v int) *PlanUpdateOne {
	_u.mutation.ResetRequestLimit()
	_u.mutation.SetRequestLimit(v)
	return _u
}

// SetNillableRequestLimit sets the "request_limit" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableRequestLimit(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetRequestLimit(*v)
	}
	return _u
}

// AddRequestLimit adds value to the "request_limit" field.
func (_u *PlanUpdateOne) AddRequestLimit(v int) *PlanUpdateOne {
	_u.mutation.AddRequestLimit(v)
	return _u
}

// SetIsRecommended sets the "is_recommended" field.
func (_u *PlanUpdateOne) SetIsRecommended(v bool) *PlanUpdateOne {
	_u.mutation.SetIsRecommended(v)
	return _u
}

// SetNillableIsRecommended sets the "is_recommended" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableIsRecommended(v *bool) *PlanUpdateOne {
	if v != nil {
		_u.SetIsRecommended(*v)
	}
	return _u
}

// SetColorFrom sets the "color_from" field.
func (_u *PlanUpdateOne) SetColorFrom(v string) *PlanUpdateOne {
	_u.mutation.SetColorFrom(v)
	return _u
}

// SetNillableColorFrom sets the "color_from" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableColorFrom(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetColorFrom(*v)
	}
	return _u
}

// ClearColorFrom clears the value of the "color_from" field.
func (_u *PlanUpdateOne) ClearColorFrom() *PlanUpdateOne {
	_u.mutation.ClearColorFrom()
	return _u
}

// SetColorTo sets the "color_to" field.
func (_u *PlanUpdateOne) SetColorTo(v string) *PlanUpdateOne {
	_u.mutation.SetColorTo(v)
	return _u
}

// SetNillableColorTo sets the "color_to" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableColorTo(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetColorTo(*v)
	}
	return _u
}

// ClearColorTo clears the value of the "color_to" field.
func (_u *PlanUpdateOne) ClearColorTo() *PlanUpdateOne {
	_u.mutation.ClearColorTo()
	return _u
}

// AddFeatureIDs adds the "features" edge to the PlanFeature entity by IDs.
func (_u *PlanUpdateOne) AddFeatureIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.AddFeatureIDs(ids...)
	return _u
}

// AddFeatures adds the "features" edges to the PlanFeature entity.
func (_u *PlanUpdateOne) AddFeatures(v ...*PlanFeature) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeatureIDs(ids...)
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// ClearFeatures clears all "features" edges to the PlanFeature entity.
func (_u *PlanUpdateOne) ClearFeatures() *PlanUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// RemoveFeatureIDs removes the "features" edge to PlanFeature entities by IDs.
func (_u *PlanUpdateOne) RemoveFeatureIDs(ids ...int) *PlanUpdateOne {
	_u.mutation.RemoveFeatureIDs(ids...)
	return _u
}

// RemoveFeatures removes "features" edges to PlanFeature entities.
func (_u *PlanUpdateOne) RemoveFeatures(v ...*PlanFeature) *PlanUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeatureIDs(ids...)
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := plan.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Plan.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := plan.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Plan.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APIKeyLimit(); ok {
		if err := plan.APIKeyLimitValidator(v); err != nil {
			return &ValidationError{Name: "api_key_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.api_key_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestLimit(); ok {
		if err := plan.RequestLimitValidator(v); err != nil {
			return &ValidationError{Name: "request_limit", err: fmt.Errorf(`ent: validator failed for field "Plan.request_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(plan.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(plan.FieldPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BillingPeriod(); ok {
		_spec.SetField(plan.FieldBillingPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StripePriceID(); ok {
		_spec.SetField(plan.FieldStripePriceID, field.TypeString, value)
	}
	if _u.mutation.StripePriceIDCleared() {
		_spec.ClearField(plan.FieldStripePriceID, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyLimit(); ok {
		_spec.SetField(plan.FieldAPIKeyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPIKeyLimit(); ok {
		_spec.AddField(plan.FieldAPIKeyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestLimit(); ok {
		_spec.SetField(plan.FieldRequestLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestLimit(); ok {
		_spec.AddField(plan.FieldRequestLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRecommended(); ok {
		_spec.SetField(plan.FieldIsRecommended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ColorFrom(); ok {
		_spec.SetField(plan.FieldColorFrom, field.TypeString, value)
	}
	if _u.mutation.ColorFromCleared() {
		_spec.ClearField(plan.FieldColorFrom, field.TypeString)
	}
	if value, ok := _u.mutation.ColorTo(); ok {
		_spec.SetField(plan.FieldColorTo, field.TypeString, value)
	}
	if _u.mutation.ColorToCleared() {
		_spec.ClearField(plan.FieldColorTo, field.TypeString)
	}
	if _u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeaturesIDs(); len(nodes) > 0 && !_u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeaturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
