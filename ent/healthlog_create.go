// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/snapjobs/snapjobs-back/ent/healthlog"
)

// HealthLogCreate is the builder for creating a HealthLog entity.
type HealthLogCreate struct {
	config
	mutation *HealthLogMutation
	hooks    []Hook
}

// SetLogDate sets the "log_date" field.
func (_c *HealthLogCreate) SetLogDate(v time.Time) *HealthLogCreate {
	_c.mutation.SetLogDate(v)
	return _c
}

// SetTotalSeconds sets the "total_seconds" field.
func (_c *HealthLogCreate) SetTotalSeconds(v int) *HealthLogCreate {
	_c.mutation.SetTotalSeconds(v)
	return _c
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableTotalSeconds(v *int) *HealthLogCreate {
	if v != nil {
		_c.SetTotalSeconds(*v)
	}
	return _c
}

// SetTotalUptimeSeconds sets the "total_uptime_seconds" field.
func (_c *HealthLogCreate) SetTotalUptimeSeconds(v int) *HealthLogCreate {
	_c.mutation.SetTotalUptimeSeconds(v)
	return _c
}

// SetNillableTotalUptimeSeconds sets the "total_uptime_seconds" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableTotalUptimeSeconds(v *int) *HealthLogCreate {
	if v != nil {
		_c.SetTotalUptimeSeconds(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *HealthLogCreate) SetStatus(v healthlog.Status) *HealthLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableStatus(v *healthlog.Status) *HealthLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HealthLogCreate) SetUpdatedAt(v time.Time) *HealthLogCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HealthLogCreate) SetNillableUpdatedAt(v *time.Time) *HealthLogCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the HealthLogMutation object of the builder.
func (_c *HealthLogCreate) Mutation() *HealthLogMutation {
	return _c.mutation
}

// Save creates the HealthLog in the database.
func (_c *HealthLogCreate) Save(ctx context.Context) (*HealthLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthLogCreate) SaveX(ctx context.Context) *HealthLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthLogCreate) defaults() {
	if _, ok := _c.mutation.TotalSeconds(); !ok {
		v := healthlog.DefaultTotalSeconds
		_c.mutation.SetTotalSeconds(v)
	}
	if _, ok := _c.mutation.TotalUptimeSeconds(); !ok {
		v := healthlog.DefaultTotalUptimeSeconds
		_c.mutation.SetTotalUptimeSeconds(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := healthlog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := healthlog.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthLogCreate) check() error {
	if _, ok := _c.mutation.LogDate(); !ok {
		return &ValidationError{Name: "log_date", err: errors.New(`ent: missing required field "HealthLog.log_date"`)}
	}
	if _, ok := _c.mutation.TotalSeconds(); !ok {
		return &ValidationError{Name: "total_seconds", err: errors.New(`ent: missing required field "HealthLog.total_seconds"`)}
	}
	if v, ok := _c.mutation.TotalSeconds(); ok {
		if err := healthlog.TotalSecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_seconds", err: fmt.Errorf(`ent: validator failed for field "HealthLog.total_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalUptimeSeconds(); !ok {
		return &ValidationError{Name: "total_uptime_seconds", err: errors.New(`ent: missing required field "HealthLog.total_uptime_seconds"`)}
	}
	if v, ok := _c.mutation.TotalUptimeSeconds(); ok {
		if err := healthlog.TotalUptimeSecondsValidator(v); err != nil {
			return &ValidationError{Name: "total_uptime_seconds", err: fmt.Errorf(`ent: validator failed for field "HealthLog.total_uptime_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "HealthLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := healthlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HealthLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HealthLog.updated_at"`)}
	}
	return nil
}

func (_c *HealthLogCreate) sqlSave(ctx context.Context) (*HealthLog, error) {
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

func (_c *HealthLogCreate) createSpec() (*HealthLog, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthlog.Table, sqlgraph.NewFieldSpec(healthlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LogDate(); ok {
		_spec.SetField(healthlog.FieldLogDate, field.TypeTime, value)
		_node.LogDate = value
	}
	if value, ok := _c.mutation.TotalSeconds(); ok {
		_spec.SetField(healthlog.FieldTotalSeconds, field.TypeInt, value)
		_node.TotalSeconds = value
	}
	if value, ok := _c.mutation.TotalUptimeSeconds(); ok {
		_spec.SetField(healthlog.FieldTotalUptimeSeconds, field.TypeInt, value)
		_node.TotalUptimeSeconds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(healthlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(healthlog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// HealthLogCreateBulk is the builder for creating many HealthLog entities in bulk.
type HealthLogCreateBulk struct {
	config
	err      error
	builders []*HealthLogCreate
}

// Save creates the HealthLog entities in the database.
func (_c *HealthLogCreateBulk) Save(ctx context.Context) ([]*HealthLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthLogMutation)
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
func (_c *HealthLogCreateBulk) SaveX(ctx context.Context) []*HealthLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
