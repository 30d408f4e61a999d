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
	"github.com/bidkiller/dce-analyzer/gen/ent/predicate"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotausage"
	"github.com/google/uuid"
)

// QuotaUsageUpdate is the builder for updating QuotaUsage entities.
type QuotaUsageUpdate struct {
	config
	hooks    []Hook
	mutation *QuotaUsageMutation
}

// Where appends a list predicates to the QuotaUsageUpdate builder.
func (_u *QuotaUsageUpdate) Where(ps ...predicate.QuotaUsage) *QuotaUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *QuotaUsageUpdate) SetAccountID(v uuid.UUID) *QuotaUsageUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableAccountID(v *uuid.UUID) *QuotaUsageUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *QuotaUsageUpdate) SetPeriodStart(v time.Time) *QuotaUsageUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillablePeriodStart(v *time.Time) *QuotaUsageUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetTotalUnits sets the "total_units" field.
func (_u *QuotaUsageUpdate) SetTotalUnits(v int) *QuotaUsageUpdate {
	_u.mutation.ResetTotalUnits()
	_u.mutation.SetTotalUnits(v)
	return _u
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableTotalUnits(v *int) *QuotaUsageUpdate {
	if v != nil {
		_u.SetTotalUnits(*v)
	}
	return _u
}

// AddTotalUnits adds value to the "total_units" field.
func (_u *QuotaUsageUpdate) AddTotalUnits(v int) *QuotaUsageUpdate {
	_u.mutation.AddTotalUnits(v)
	return _u
}

// SetCommittedUnits sets the "committed_units" field.
func (_u *QuotaUsageUpdate) SetCommittedUnits(v int) *QuotaUsageUpdate {
	_u.mutation.ResetCommittedUnits()
	_u.mutation.SetCommittedUnits(v)
	return _u
}

// SetNillableCommittedUnits sets the "committed_units" field if the given value is not nil.
func (_u *QuotaUsageUpdate) SetNillableCommittedUnits(v *int) *QuotaUsageUpdate {
	if v != nil {
		_u.SetCommittedUnits(*v)
	}
	return _u
}

// AddCommittedUnits adds value to the "committed_units" field.
func (_u *QuotaUsageUpdate) AddCommittedUnits(v int) *QuotaUsageUpdate {
	_u.mutation.AddCommittedUnits(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaUsageUpdate) SetUpdatedAt(v time.Time) *QuotaUsageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaUsageMutation object of the builder.
func (_u *QuotaUsageUpdate) Mutation() *QuotaUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaUsageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaUsageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotausage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaUsageUpdate) check() error {
	if v, ok := _u.mutation.TotalUnits(); ok {
		if err := quotausage.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.total_units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommittedUnits(); ok {
		if err := quotausage.CommittedUnitsValidator(v); err != nil {
			return &ValidationError{Name: "committed_units", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.committed_units": %w`, err)}
		}
	}
	return nil
}

func (_u *QuotaUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotausage.Table, quotausage.Columns, sqlgraph.NewFieldSpec(quotausage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(quotausage.FieldAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(quotausage.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalUnits(); ok {
		_spec.SetField(quotausage.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUnits(); ok {
		_spec.AddField(quotausage.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommittedUnits(); ok {
		_spec.SetField(quotausage.FieldCommittedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommittedUnits(); ok {
		_spec.AddField(quotausage.FieldCommittedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotausage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotausage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaUsageUpdateOne is the builder for updating a single QuotaUsage entity.
type QuotaUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuotaUsageMutation
}

// SetAccountID sets the "account_id" field.
func (_u *QuotaUsageUpdateOne) SetAccountID(v uuid.UUID) *QuotaUsageUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableAccountID(v *uuid.UUID) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *QuotaUsageUpdateOne) SetPeriodStart(v time.Time) *QuotaUsageUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillablePeriodStart(v *time.Time) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetTotalUnits sets the "total_units" field.
func (_u *QuotaUsageUpdateOne) SetTotalUnits(v int) *QuotaUsageUpdateOne {
	_u.mutation.ResetTotalUnits()
	_u.mutation.SetTotalUnits(v)
	return _u
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableTotalUnits(v *int) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetTotalUnits(*v)
	}
	return _u
}

// AddTotalUnits adds value to the "total_units" field.
func (_u *QuotaUsageUpdateOne) AddTotalUnits(v int) *QuotaUsageUpdateOne {
	_u.mutation.AddTotalUnits(v)
	return _u
}

// SetCommittedUnits sets the "committed_units" field.
func (_u *QuotaUsageUpdateOne) SetCommittedUnits(v int) *QuotaUsageUpdateOne {
	_u.mutation.ResetCommittedUnits()
	_u.mutation.SetCommittedUnits(v)
	return _u
}

// SetNillableCommittedUnits sets the "committed_units" field if the given value is not nil.
func (_u *QuotaUsageUpdateOne) SetNillableCommittedUnits(v *int) *QuotaUsageUpdateOne {
	if v != nil {
		_u.SetCommittedUnits(*v)
	}
	return _u
}

// AddCommittedUnits adds value to the "committed_units" field.
func (_u *QuotaUsageUpdateOne) AddCommittedUnits(v int) *QuotaUsageUpdateOne {
	_u.mutation.AddCommittedUnits(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaUsageUpdateOne) SetUpdatedAt(v time.Time) *QuotaUsageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuotaUsageMutation object of the builder.
func (_u *QuotaUsageUpdateOne) Mutation() *QuotaUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaUsageUpdate builder.
func (_u *QuotaUsageUpdateOne) Where(ps ...predicate.QuotaUsage) *QuotaUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaUsageUpdateOne) Select(field string, fields ...string) *QuotaUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaUsage entity.
func (_u *QuotaUsageUpdateOne) Save(ctx context.Context) (*QuotaUsage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaUsageUpdateOne) SaveX(ctx context.Context) *QuotaUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaUsageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotausage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaUsageUpdateOne) check() error {
	if v, ok := _u.mutation.TotalUnits(); ok {
		if err := quotausage.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.total_units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommittedUnits(); ok {
		if err := quotausage.CommittedUnitsValidator(v); err != nil {
			return &ValidationError{Name: "committed_units", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.committed_units": %w`, err)}
		}
	}
	return nil
}

func (_u *QuotaUsageUpdateOne) sqlSave(ctx context.Context) (_node *QuotaUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotausage.Table, quotausage.Columns, sqlgraph.NewFieldSpec(quotausage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotausage.FieldID)
		for _, f := range fields {
			if !quotausage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotausage.FieldID {
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
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(quotausage.FieldAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(quotausage.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalUnits(); ok {
		_spec.SetField(quotausage.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUnits(); ok {
		_spec.AddField(quotausage.FieldTotalUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommittedUnits(); ok {
		_spec.SetField(quotausage.FieldCommittedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommittedUnits(); ok {
		_spec.AddField(quotausage.FieldCommittedUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotausage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QuotaUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotausage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
