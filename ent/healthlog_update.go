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
	"github.com/snapjobs/snapjobs-back/ent/healthlog"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
)

// HealthLogUpdate is the builder for updating HealthLog entities.
type HealthLogUpdate struct {
	config
	hooks    []Hook
	mutation *HealthLogMutation
}

// Where appends a list predicates to the HealthLogUpdate builder.
func (_u *HealthLogUpdate) Where(ps ...predicate.HealthLog) *HealthLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLogDate sets the "log_date" field.
func (_u *HealthLogUpdate) SetLogDate(v time.Time) *HealthLogUpdate {
	_u.mutation.SetLogDate(v)
	return _u
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableLogDate(v *time.Time) *HealthLogUpdate {
	if v != nil {
		_u.SetLogDate(*v)
	}
	return _u
}

// SetTotalSeconds sets the "total_seconds" field.
func (_u *HealthLogUpdate) SetTotalSeconds(v int) *HealthLogUpdate {
	_u.mutation.ResetTotalSeconds()
	_u.mutation.SetTotalSeconds(v)
	return _u
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableTotalSeconds(v *int) *HealthLogUpdate {
	if v != nil {
		_u.SetTotalSeconds(*v)
	}
	return _u
}

// AddTotalSeconds adds value to the "total_seconds" field.
func (_u *HealthLogUpdate) AddTotalSeconds(v int) *HealthLogUpdate {
	_u.mutation.AddTotalSeconds(v)
	return _u
}

// SetTotalUptimeSeconds sets the "total_uptime_seconds" field.
func (_u *HealthLogUpdate) SetTotalUptimeSeconds(v int) *HealthLogUpdate {
	_u.mutation.ResetTotalUptimeSeconds()
	_u.mutation.SetTotalUptimeSeconds(v)
	return _u
}

// SetNillableTotalUptimeSeconds sets the "total_uptime_seconds" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableTotalUptimeSeconds(v *int) *HealthLogUpdate {
	if v != nil {
		_u.SetTotalUptimeSeconds(*v)
	}
	return _u
}

// AddTotalUptimeSeconds adds value to the "total_uptime_seconds" field.
func (_u *HealthLogUpdate) AddTotalUptimeSeconds(v int) *HealthLogUpdate {
	_u.mutation.AddTotalUptimeSeconds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *HealthLogUpdate) SetStatus(v healthlog.Status) *HealthLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HealthLogUpdate) SetNillableStatus(v *healthlog.Status) *HealthLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthLogUpdate) SetUpdatedAt(v time.Time) *HealthLogUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the HealthLogMutation object of the builder.
func (_u *HealthLogUpdate) Mutation() *HealthLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthLogUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthLogUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthlog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthLogUpdate) check() error {
	if v, ok := _u.mutation.TotalSeconds(); ok {
		if err := healthlog.TotalSecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_seconds", err: fmt.Errorf(`ent: validator failed for field "HealthLog.total_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalUptimeSeconds(); ok {
		if err := healthlog.TotalUptimeSecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_uptime_seconds", err: fmt.Errorf(`ent: validator failed for field "HealthLog.total_uptime_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := healthlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HealthLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *HealthLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthlog.Table, healthlog.Columns, sqlgraph.NewFieldSpec(healthlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LogDate(); ok {
		_spec.SetField(healthlog.FieldLogDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalSeconds(); ok {
		_spec.SetField(healthlog.FieldTotalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSeconds(); ok {
		_spec.AddField(healthlog.FieldTotalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalUptimeSeconds(); ok {
		_spec.SetField(healthlog.FieldTotalUptimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUptimeSeconds(); ok {
		_spec.AddField(healthlog.FieldTotalUptimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(healthlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthLogUpdateOne is the builder for updating a single HealthLog entity.
type HealthLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthLogMutation
}

// SetLogDate sets the "log_date" field.
func (_u *HealthLogUpdateOne) SetLogDate(v time.Time) *HealthLogUpdateOne {
	_u.mutation.SetLogDate(v)
	return _u
}

// SetNillableLogDate sets the "log_date" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableLogDate(v *time.Time) *HealthLogUpdateOne {
	if v != nil {
		_u.SetLogDate(*v)
	}
	return _u
}

// SetTotalSeconds sets the "total_seconds" field.
func (_u *HealthLogUpdateOne) SetTotalSeconds(v int) *HealthLogUpdateOne {
	_u.mutation.ResetTotalSeconds()
	_u.mutation.SetTotalSeconds(v)
	return _u
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableTotalSeconds(v *int) *HealthLogUpdateOne {
	if v != nil {
		_u.SetTotalSeconds(*v)
	}
	return _u
}

// AddTotalSeconds adds value to the "total_seconds" field.
func (_u *HealthLogUpdateOne) AddTotalSeconds(v int) *HealthLogUpdateOne {
	_u.mutation.AddTotalSeconds(v)
	return _u
}

// SetTotalUptimeSeconds sets the "total_uptime_seconds" field.
func (_u *HealthLogUpdateOne) SetTotalUptimeSeconds(v int) *HealthLogUpdateOne {
	_u.mutation.ResetTotalUptimeSeconds()
	_u.mutation.SetTotalUptimeSeconds(v)
	return _u
}

// SetNillableTotalUptimeSeconds sets the "total_uptime_seconds" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableTotalUptimeSeconds(v *int) *HealthLogUpdateOne {
	if v != nil {
		_u.SetTotalUptimeSeconds(*v)
	}
	return _u
}

// AddTotalUptimeSeconds adds value to the "total_uptime_seconds" field.
func (_u *HealthLogUpdateOne) AddTotalUptimeSeconds(v int) *HealthLogUpdateOne {
	_u.mutation.AddTotalUptimeSeconds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *HealthLogUpdateOne) SetStatus(v healthlog.Status) *HealthLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HealthLogUpdateOne) SetNillableStatus(v *healthlog.Status) *HealthLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthLogUpdateOne) SetUpdatedAt(v time.Time) *HealthLogUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the HealthLogMutation object of the builder.
func (_u *HealthLogUpdateOne) Mutation() *HealthLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the HealthLogUpdate builder.
func (_u *HealthLogUpdateOne) Where(ps ...predicate.HealthLog) *HealthLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthLogUpdateOne) Select(field string, fields ...string) *HealthLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthLog entity.
func (_u *HealthLogUpdateOne) Save(ctx context.Context) (*HealthLog, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthLogUpdateOne) SaveX(ctx context.Context) *HealthLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthLogUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthlog.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthLogUpdateOne) check() error {
	if v, ok := _u.mutation.TotalSeconds(); ok {
		if err := healthlog.TotalSecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_seconds", err: fmt.Errorf(`ent: validator failed for field "HealthLog.total_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalUptimeSeconds(); ok {
		if err := healthlog.TotalUptimeSecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_uptime_seconds", err: fmt.Errorf(`ent: validator failed for field "HealthLog.total_uptime_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := healthlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HealthLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *HealthLogUpdateOne) sqlSave(ctx context.Context) (_node *HealthLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthlog.Table, healthlog.Columns, sqlgraph.NewFieldSpec(healthlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HealthLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthlog.FieldID)
		for _, f := range fields {
			if !healthlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != healthlog.FieldID {
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
	if value, ok := _u.mutation.LogDate(); ok {
		_spec.SetField(healthlog.FieldLogDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalSeconds(); ok {
		_spec.SetField(healthlog.FieldTotalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSeconds(); ok {
		_spec.AddField(healthlog.FieldTotalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalUptimeSeconds(); ok {
		_spec.SetField(healthlog.FieldTotalUptimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUptimeSeconds(); ok {
		_spec.AddField(healthlog.FieldTotalUptimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(healthlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthlog.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &HealthLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
