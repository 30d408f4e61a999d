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
	"github.com/bidkiller/dce-analyzer/gen/ent/account"
	"github.com/bidkiller/dce-analyzer/gen/ent/predicate"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotareservation"
	"github.com/google/uuid"
)

// QuotaReservationUpdate is the builder for updating QuotaReservation entities.
type QuotaReservationUpdate struct {
	config
	hooks    []Hook
	mutation *QuotaReservationMutation
}

// Where appends a list predicates to the QuotaReservationUpdate builder.
func (_u *QuotaReservationUpdate) Where(ps ...predicate.QuotaReservation) *QuotaReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *QuotaReservationUpdate) SetAccountID(v uuid.UUID) *QuotaReservationUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *QuotaReservationUpdate) SetNillableAccountID(v *uuid.UUID) *QuotaReservationUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *QuotaReservationUpdate) SetUnits(v int) *QuotaReservationUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *QuotaReservationUpdate) SetNillableUnits(v *int) *QuotaReservationUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *QuotaReservationUpdate) AddUnits(v int) *QuotaReservationUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// SetState sets the "state" field.
func (_u *QuotaReservationUpdate) SetState(v string) *QuotaReservationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *QuotaReservationUpdate) SetNillableState(v *string) *QuotaReservationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *QuotaReservationUpdate) SetPeriodStart(v time.Time) *QuotaReservationUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *QuotaReservationUpdate) SetNillablePeriodStart(v *time.Time) *QuotaReservationUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuotaReservationUpdate) SetCreatedAt(v time.Time) *QuotaReservationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuotaReservationUpdate) SetNillableCreatedAt(v *time.Time) *QuotaReservationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaReservationUpdate) SetUpdatedAt(v time.Time) *QuotaReservationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *QuotaReservationUpdate) SetAccount(v *Account) *QuotaReservationUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the QuotaReservationMutation object of the builder.
func (_u *QuotaReservationUpdate) Mutation() *QuotaReservationMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *QuotaReservationUpdate) ClearAccount() *QuotaReservationUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaReservationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaReservationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotareservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaReservationUpdate) check() error {
	if v, ok := _u.mutation.Units(); ok {
		if err := quotareservation.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "QuotaReservation.units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := quotareservation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QuotaReservation.state": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuotaReservation.account"`)
	}
	return nil
}

func (_u *QuotaReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotareservation.Table, quotareservation.Columns, sqlgraph.NewFieldSpec(quotareservation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(quotareservation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(quotareservation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(quotareservation.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(quotareservation.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quotareservation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotareservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotareservation.AccountTable,
			Columns: []string{quotareservation.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotareservation.AccountTable,
			Columns: []string{quotareservation.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotareservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaReservationUpdateOne is the builder for updating a single QuotaReservation entity.
type QuotaReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuotaReservationMutation
}

// SetAccountID sets the "account_id" field.
func (_u *QuotaReservationUpdateOne) SetAccountID(v uuid.UUID) *QuotaReservationUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *QuotaReservationUpdateOne) SetNillableAccountID(v *uuid.UUID) *QuotaReservationUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *QuotaReservationUpdateOne) SetUnits(v int) *QuotaReservationUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *QuotaReservationUpdateOne) SetNillableUnits(v *int) *QuotaReservationUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *QuotaReservationUpdateOne) AddUnits(v int) *QuotaReservationUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// SetState sets the "state" field.
func (_u *QuotaReservationUpdateOne) SetState(v string) *QuotaReservationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *QuotaReservationUpdateOne) SetNillableState(v *string) *QuotaReservationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *QuotaReservationUpdateOne) SetPeriodStart(v time.Time) *QuotaReservationUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *QuotaReservationUpdateOne) SetNillablePeriodStart(v *time.Time) *QuotaReservationUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuotaReservationUpdateOne) SetCreatedAt(v time.Time) *QuotaReservationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuotaReservationUpdateOne) SetNillableCreatedAt(v *time.Time) *QuotaReservationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuotaReservationUpdateOne) SetUpdatedAt(v time.Time) *QuotaReservationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *QuotaReservationUpdateOne) SetAccount(v *Account) *QuotaReservationUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the QuotaReservationMutation object of the builder.
func (_u *QuotaReservationUpdateOne) Mutation() *QuotaReservationMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *QuotaReservationUpdateOne) ClearAccount() *QuotaReservationUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the QuotaReservationUpdate builder.
func (_u *QuotaReservationUpdateOne) Where(ps ...predicate.QuotaReservation) *QuotaReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaReservationUpdateOne) Select(field string, fields ...string) *QuotaReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaReservation entity.
func (_u *QuotaReservationUpdateOne) Save(ctx context.Context) (*QuotaReservation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaReservationUpdateOne) SaveX(ctx context.Context) *QuotaReservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuotaReservationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quotareservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuotaReservationUpdateOne) check() error {
	if v, ok := _u.mutation.Units(); ok {
		if err := quotareservation.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "QuotaReservation.units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := quotareservation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QuotaReservation.state": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuotaReservation.account"`)
	}
	return nil
}

func (_u *QuotaReservationUpdateOne) sqlSave(ctx context.Context) (_node *QuotaReservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotareservation.Table, quotareservation.Columns, sqlgraph.NewFieldSpec(quotareservation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaReservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotareservation.FieldID)
		for _, f := range fields {
			if !quotareservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotareservation.FieldID {
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
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(quotareservation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(quotareservation.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(quotareservation.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(quotareservation.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(quotareservation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quotareservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotareservation.AccountTable,
			Columns: []string{quotareservation.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotareservation.AccountTable,
			Columns: []string{quotareservation.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuotaReservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotareservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
