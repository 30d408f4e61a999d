// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/bidkiller/dce-analyzer/gen/ent/account"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotareservation"
	"github.com/google/uuid"
)

// QuotaReservationCreate is the builder for creating a QuotaReservation entity.
type QuotaReservationCreate struct {
	config
	mutation *QuotaReservationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *QuotaReservationCreate) SetAccountID(v uuid.UUID) *QuotaReservationCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetUnits sets the "units" field.
func (_c *QuotaReservationCreate) SetUnits(v int) *QuotaReservationCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetState sets the "state" field.
func (_c *QuotaReservationCreate) SetState(v string) *QuotaReservationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *QuotaReservationCreate) SetNillableState(v *string) *QuotaReservationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *QuotaReservationCreate) SetPeriodStart(v time.Time) *QuotaReservationCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuotaReservationCreate) SetCreatedAt(v time.Time) *QuotaReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuotaReservationCreate) SetNillableCreatedAt(v *time.Time) *QuotaReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuotaReservationCreate) SetUpdatedAt(v time.Time) *QuotaReservationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuotaReservationCreate) SetNillableUpdatedAt(v *time.Time) *QuotaReservationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuotaReservationCreate) SetID(v uuid.UUID) *QuotaReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuotaReservationCreate) SetNillableID(v *uuid.UUID) *QuotaReservationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *QuotaReservationCreate) SetAccount(v *Account) *QuotaReservationCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the QuotaReservationMutation object of the builder.
func (_c *QuotaReservationCreate) Mutation() *QuotaReservationMutation {
	return _c.mutation
}

// Save creates the QuotaReservation in the database.
func (_c *QuotaReservationCreate) Save(ctx context.Context) (*QuotaReservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaReservationCreate) SaveX(ctx context.Context) *QuotaReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaReservationCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := quotareservation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quotareservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quotareservation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quotareservation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaReservationCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "QuotaReservation.account_id"`)}
	}
	if _, ok := _c.mutation.Units(); !ok {
		return &ValidationError{Name: "units", err: errors.New(`ent: missing required field "QuotaReservation.units"`)}
	}
	if v, ok := _c.mutation.Units(); ok {
		if err := quotareservation.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "QuotaReservation.units": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "QuotaReservation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := quotareservation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "QuotaReservation.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "QuotaReservation.period_start"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuotaReservation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuotaReservation.updated_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "QuotaReservation.account"`)}
	}
	return nil
}

func (_c *QuotaReservationCreate) sqlSave(ctx context.Context) (*QuotaReservation, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuotaReservationCreate) createSpec() (*QuotaReservation, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaReservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotareservation.Table, sqlgraph.NewFieldSpec(quotareservation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(quotareservation.FieldUnits, field.TypeInt, value)
		_node.Units = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(quotareservation.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(quotareservation.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quotareservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quotareservation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaReservation.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaReservationUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaReservationCreate) OnConflict(opts ...sql.ConflictOption) *QuotaReservationUpsertOne {
	_c.conflict = opts
	return &QuotaReservationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaReservation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaReservationCreate) OnConflictColumns(columns ...string) *QuotaReservationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaReservationUpsertOne{
		create: _c,
	}
}

type (
	// QuotaReservationUpsertOne is the builder for "upsert"-ing
	//  one QuotaReservation node.
	QuotaReservationUpsertOne struct {
		create *QuotaReservationCreate
	}

	// QuotaReservationUpsert is the "OnConflict" setter.
	QuotaReservationUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *QuotaReservationUpsert) SetAccountID(v uuid.UUID) *QuotaReservationUpsert {
	u.Set(quotareservation.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *QuotaReservationUpsert) UpdateAccountID() *QuotaReservationUpsert {
	u.SetExcluded(quotareservation.FieldAccountID)
	return u
}

// SetUnits sets the "units" field.
func (u *QuotaReservationUpsert) SetUnits(v int) *QuotaReservationUpsert {
	u.Set(quotareservation.FieldUnits, v)
	return u
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *QuotaReservationUpsert) UpdateUnits() *QuotaReservationUpsert {
	u.SetExcluded(quotareservation.FieldUnits)
	return u
}

// AddUnits adds v to the "units" field.
func (u *QuotaReservationUpsert) AddUnits(v int) *QuotaReservationUpsert {
	u.Add(quotareservation.FieldUnits, v)
	return u
}

// SetState sets the "state" field.
func (u *QuotaReservationUpsert) SetState(v string) *QuotaReservationUpsert {
	u.Set(quotareservation.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *QuotaReservationUpsert) UpdateState() *QuotaReservationUpsert {
	u.SetExcluded(quotareservation.FieldState)
	return u
}

// SetPeriodStart sets the "period_start" field.
func (u *QuotaReservationUpsert) SetPeriodStart(v time.Time) *QuotaReservationUpsert {
	u.Set(quotareservation.FieldPeriodStart, v)
	return u
}

// UpdatePeriodStart sets the "period_start" field to the value that was provided on create.
func (u *QuotaReservationUpsert) UpdatePeriodStart() *QuotaReservationUpsert {
	u.SetExcluded(quotareservation.FieldPeriodStart)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *QuotaReservationUpsert) SetCreatedAt(v time.Time) *QuotaReservationUpsert {
	u.Set(quotareservation.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *QuotaReservationUpsert) UpdateCreatedAt() *QuotaReservationUpsert {
	u.SetExcluded(quotareservation.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaReservationUpsert) SetUpdatedAt(v time.Time) *QuotaReservationUpsert {
	u.Set(quotareservation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaReservationUpsert) UpdateUpdatedAt() *QuotaReservationUpsert {
	u.SetExcluded(quotareservation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuotaReservation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotareservation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaReservationUpsertOne) UpdateNewValues() *QuotaReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(quotareservation.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaReservation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuotaReservationUpsertOne) Ignore() *QuotaReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaReservationUpsertOne) DoNothing() *QuotaReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaReservationCreate.OnConflict
// documentation for more info.
func (u *QuotaReservationUpsertOne) Update(set func(*QuotaReservationUpsert)) *QuotaReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaReservationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *QuotaReservationUpsertOne) SetAccountID(v uuid.UUID) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *QuotaReservationUpsertOne) UpdateAccountID() *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateAccountID()
	})
}

// SetUnits sets the "units" field.
func (u *QuotaReservationUpsertOne) SetUnits(v int) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetUnits(v)
	})
}

// AddUnits adds v to the "units" field.
func (u *QuotaReservationUpsertOne) AddUnits(v int) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.AddUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *QuotaReservationUpsertOne) UpdateUnits() *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateUnits()
	})
}

// SetState sets the "state" field.
func (u *QuotaReservationUpsertOne) SetState(v string) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *QuotaReservationUpsertOne) UpdateState() *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateState()
	})
}

// SetPeriodStart sets the "period_start" field.
func (u *QuotaReservationUpsertOne) SetPeriodStart(v time.Time) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetPeriodStart(v)
	})
}

// UpdatePeriodStart sets the "period_start" field to the value that was provided on create.
func (u *QuotaReservationUpsertOne) UpdatePeriodStart() *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdatePeriodStart()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *QuotaReservationUpsertOne) SetCreatedAt(v time.Time) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *QuotaReservationUpsertOne) UpdateCreatedAt() *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaReservationUpsertOne) SetUpdatedAt(v time.Time) *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaReservationUpsertOne) UpdateUpdatedAt() *QuotaReservationUpsertOne {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaReservationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaReservationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaReservationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuotaReservationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuotaReservationUpsertOne.ID is not supported by MySQL driver. Use QuotaReservationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuotaReservationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuotaReservationCreateBulk is the builder for creating many QuotaReservation entities in bulk.
type QuotaReservationCreateBulk struct {
	config
	err      error
	builders []*QuotaReservationCreate
	conflict []sql.ConflictOption
}

// Save creates the QuotaReservation entities in the database.
func (_c *QuotaReservationCreateBulk) Save(ctx context.Context) ([]*QuotaReservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaReservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaReservationMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *QuotaReservationCreateBulk) SaveX(ctx context.Context) []*QuotaReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaReservation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaReservationUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaReservationCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuotaReservationUpsertBulk {
	_c.conflict = opts
	return &QuotaReservationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaReservation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaReservationCreateBulk) OnConflictColumns(columns ...string) *QuotaReservationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaReservationUpsertBulk{
		create: _c,
	}
}

// QuotaReservationUpsertBulk is the builder for "upsert"-ing
// a bulk of QuotaReservation nodes.
type QuotaReservationUpsertBulk struct {
	create *QuotaReservationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuotaReservation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotareservation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaReservationUpsertBulk) UpdateNewValues() *QuotaReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(quotareservation.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaReservation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuotaReservationUpsertBulk) Ignore() *QuotaReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaReservationUpsertBulk) DoNothing() *QuotaReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaReservationCreateBulk.OnConflict
// documentation for more info.
func (u *QuotaReservationUpsertBulk) Update(set func(*QuotaReservationUpsert)) *QuotaReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaReservationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *QuotaReservationUpsertBulk) SetAccountID(v uuid.UUID) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *QuotaReservationUpsertBulk) UpdateAccountID() *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateAccountID()
	})
}

// SetUnits sets the "units" field.
func (u *QuotaReservationUpsertBulk) SetUnits(v int) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetUnits(v)
	})
}

// AddUnits adds v to the "units" field.
func (u *QuotaReservationUpsertBulk) AddUnits(v int) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.AddUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *QuotaReservationUpsertBulk) UpdateUnits() *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateUnits()
	})
}

// SetState sets the "state" field.
func (u *QuotaReservationUpsertBulk) SetState(v string) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *QuotaReservationUpsertBulk) UpdateState() *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateState()
	})
}

// SetPeriodStart sets the "period_start" field.
func (u *QuotaReservationUpsertBulk) SetPeriodStart(v time.Time) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetPeriodStart(v)
	})
}

// UpdatePeriodStart sets the "period_start" field to the value that was provided on create.
func (u *QuotaReservationUpsertBulk) UpdatePeriodStart() *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdatePeriodStart()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *QuotaReservationUpsertBulk) SetCreatedAt(v time.Time) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *QuotaReservationUpsertBulk) UpdateCreatedAt() *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaReservationUpsertBulk) SetUpdatedAt(v time.Time) *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaReservationUpsertBulk) UpdateUpdatedAt() *QuotaReservationUpsertBulk {
	return u.Update(func(s *QuotaReservationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaReservationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuotaReservationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaReservationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaReservationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
