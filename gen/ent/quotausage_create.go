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
	"github.com/bidkiller/dce-analyzer/gen/ent/quotausage"
	"github.com/google/uuid"
)

// QuotaUsageCreate is the builder for creating a QuotaUsage entity.
type QuotaUsageCreate struct {
	config
	mutation *QuotaUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *QuotaUsageCreate) SetAccountID(v uuid.UUID) *QuotaUsageCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *QuotaUsageCreate) SetPeriodStart(v time.Time) *QuotaUsageCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetTotalUnits sets the "total_units" field.
func (_c *QuotaUsageCreate) SetTotalUnits(v int) *QuotaUsageCreate {
	_c.mutation.SetTotalUnits(v)
	return _c
}

// SetNillableTotalUnits sets the "total_units" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableTotalUnits(v *int) *QuotaUsageCreate {
	if v != nil {
		_c.SetTotalUnits(*v)
	}
	return _c
}

// SetCommittedUnits sets the "committed_units" field.
func (_c *QuotaUsageCreate) SetCommittedUnits(v int) *QuotaUsageCreate {
	_c.mutation.SetCommittedUnits(v)
	return _c
}

// SetNillableCommittedUnits sets the "committed_units" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableCommittedUnits(v *int) *QuotaUsageCreate {
	if v != nil {
		_c.SetCommittedUnits(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuotaUsageCreate) SetUpdatedAt(v time.Time) *QuotaUsageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableUpdatedAt(v *time.Time) *QuotaUsageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuotaUsageCreate) SetID(v uuid.UUID) *QuotaUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuotaUsageCreate) SetNillableID(v *uuid.UUID) *QuotaUsageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the QuotaUsageMutation object of the builder.
func (_c *QuotaUsageCreate) Mutation() *QuotaUsageMutation {
	return _c.mutation
}

// Save creates the QuotaUsage in the database.
func (_c *QuotaUsageCreate) Save(ctx context.Context) (*QuotaUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaUsageCreate) SaveX(ctx context.Context) *QuotaUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaUsageCreate) defaults() {
	if _, ok := _c.mutation.TotalUnits(); !ok {
		v := quotausage.DefaultTotalUnits
		_c.mutation.SetTotalUnits(v)
	}
	if _, ok := _c.mutation.CommittedUnits(); !ok {
		v := quotausage.DefaultCommittedUnits
		_c.mutation.SetCommittedUnits(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quotausage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quotausage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaUsageCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "QuotaUsage.account_id"`)}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "QuotaUsage.period_start"`)}
	}
	if _, ok := _c.mutation.TotalUnits(); !ok {
		return &ValidationError{Name: "total_units", err: errors.New(`ent: missing required field "QuotaUsage.total_units"`)}
	}
	if v, ok := _c.mutation.TotalUnits(); ok {
		if err := quotausage.TotalUnitsValidator(v); err != nil {
			return &ValidationError{Name: "total_units", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.total_units": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommittedUnits(); !ok {
		return &ValidationError{Name: "committed_units", err: errors.New(`ent: missing required field "QuotaUsage.committed_units"`)}
	}
	if v, ok := _c.mutation.CommittedUnits(); ok {
		if err := quotausage.CommittedUnitsValidator(v); err != nil {
			return &ValidationError{Name: "committed_units", err: fmt.Errorf(`ent: validator failed for field "QuotaUsage.committed_units": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuotaUsage.updated_at"`)}
	}
	return nil
}

func (_c *QuotaUsageCreate) sqlSave(ctx context.Context) (*QuotaUsage, error) {
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

func (_c *QuotaUsageCreate) createSpec() (*QuotaUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotausage.Table, sqlgraph.NewFieldSpec(quotausage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(quotausage.FieldAccountID, field.TypeUUID, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(quotausage.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.TotalUnits(); ok {
		_spec.SetField(quotausage.FieldTotalUnits, field.TypeInt, value)
		_node.TotalUnits = value
	}
	if value, ok := _c.mutation.CommittedUnits(); ok {
		_spec.SetField(quotausage.FieldCommittedUnits, field.TypeInt, value)
		_node.CommittedUnits = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quotausage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaUsage.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaUsageUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaUsageCreate) OnConflict(opts ...sql.ConflictOption) *QuotaUsageUpsertOne {
	_c.conflict = opts
	return &QuotaUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaUsageCreate) OnConflictColumns(columns ...string) *QuotaUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaUsageUpsertOne{
		create: _c,
	}
}

type (
	// QuotaUsageUpsertOne is the builder for "upsert"-ing
	//  one QuotaUsage node.
	QuotaUsageUpsertOne struct {
		create *QuotaUsageCreate
	}

	// QuotaUsageUpsert is the "OnConflict" setter.
	QuotaUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *QuotaUsageUpsert) SetAccountID(v uuid.UUID) *QuotaUsageUpsert {
	u.Set(quotausage.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateAccountID() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldAccountID)
	return u
}

// SetPeriodStart sets the "period_start" field.
func (u *QuotaUsageUpsert) SetPeriodStart(v time.Time) *QuotaUsageUpsert {
	u.Set(quotausage.FieldPeriodStart, v)
	return u
}

// UpdatePeriodStart sets the "period_start" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdatePeriodStart() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldPeriodStart)
	return u
}

// SetTotalUnits sets the "total_units" field.
func (u *QuotaUsageUpsert) SetTotalUnits(v int) *QuotaUsageUpsert {
	u.Set(quotausage.FieldTotalUnits, v)
	return u
}

// UpdateTotalUnits sets the "total_units" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateTotalUnits() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldTotalUnits)
	return u
}

// AddTotalUnits adds v to the "total_units" field.
func (u *QuotaUsageUpsert) AddTotalUnits(v int) *QuotaUsageUpsert {
	u.Add(quotausage.FieldTotalUnits, v)
	return u
}

// SetCommittedUnits sets the "committed_units" field.
func (u *QuotaUsageUpsert) SetCommittedUnits(v int) *QuotaUsageUpsert {
	u.Set(quotausage.FieldCommittedUnits, v)
	return u
}

// UpdateCommittedUnits sets the "committed_units" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateCommittedUnits() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldCommittedUnits)
	return u
}

// AddCommittedUnits adds v to the "committed_units" field.
func (u *QuotaUsageUpsert) AddCommittedUnits(v int) *QuotaUsageUpsert {
	u.Add(quotausage.FieldCommittedUnits, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaUsageUpsert) SetUpdatedAt(v time.Time) *QuotaUsageUpsert {
	u.Set(quotausage.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaUsageUpsert) UpdateUpdatedAt() *QuotaUsageUpsert {
	u.SetExcluded(quotausage.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotausage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaUsageUpsertOne) UpdateNewValues() *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(quotausage.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuotaUsageUpsertOne) Ignore() *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaUsageUpsertOne) DoNothing() *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaUsageCreate.OnConflict
// documentation for more info.
func (u *QuotaUsageUpsertOne) Update(set func(*QuotaUsageUpsert)) *QuotaUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *QuotaUsageUpsertOne) SetAccountID(v uuid.UUID) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateAccountID() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateAccountID()
	})
}

// SetPeriodStart sets the "period_start" field.
func (u *QuotaUsageUpsertOne) SetPeriodStart(v time.Time) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetPeriodStart(v)
	})
}

// UpdatePeriodStart sets the "period_start" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdatePeriodStart() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdatePeriodStart()
	})
}

// SetTotalUnits sets the "total_units" field.
func (u *QuotaUsageUpsertOne) SetTotalUnits(v int) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetTotalUnits(v)
	})
}

// AddTotalUnits adds v to the "total_units" field.
func (u *QuotaUsageUpsertOne) AddTotalUnits(v int) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddTotalUnits(v)
	})
}

// UpdateTotalUnits sets the "total_units" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateTotalUnits() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateTotalUnits()
	})
}

// SetCommittedUnits sets the "committed_units" field.
func (u *QuotaUsageUpsertOne) SetCommittedUnits(v int) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetCommittedUnits(v)
	})
}

// AddCommittedUnits adds v to the "committed_units" field.
func (u *QuotaUsageUpsertOne) AddCommittedUnits(v int) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddCommittedUnits(v)
	})
}

// UpdateCommittedUnits sets the "committed_units" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateCommittedUnits() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateCommittedUnits()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaUsageUpsertOne) SetUpdatedAt(v time.Time) *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaUsageUpsertOne) UpdateUpdatedAt() *QuotaUsageUpsertOne {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuotaUsageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QuotaUsageUpsertOne.ID is not supported by MySQL driver. Use QuotaUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuotaUsageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuotaUsageCreateBulk is the builder for creating many QuotaUsage entities in bulk.
type QuotaUsageCreateBulk struct {
	config
	err      error
	builders []*QuotaUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the QuotaUsage entities in the database.
func (_c *QuotaUsageCreateBulk) Save(ctx context.Context) ([]*QuotaUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaUsageMutation)
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
func (_c *QuotaUsageCreateBulk) SaveX(ctx context.Context) []*QuotaUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuotaUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuotaUsageUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuotaUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuotaUsageUpsertBulk {
	_c.conflict = opts
	return &QuotaUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuotaUsageCreateBulk) OnConflictColumns(columns ...string) *QuotaUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuotaUsageUpsertBulk{
		create: _c,
	}
}

// QuotaUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of QuotaUsage nodes.
type QuotaUsageUpsertBulk struct {
	create *QuotaUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(quotausage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuotaUsageUpsertBulk) UpdateNewValues() *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(quotausage.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuotaUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuotaUsageUpsertBulk) Ignore() *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuotaUsageUpsertBulk) DoNothing() *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuotaUsageCreateBulk.OnConflict
// documentation for more info.
func (u *QuotaUsageUpsertBulk) Update(set func(*QuotaUsageUpsert)) *QuotaUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuotaUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *QuotaUsageUpsertBulk) SetAccountID(v uuid.UUID) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateAccountID() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateAccountID()
	})
}

// SetPeriodStart sets the "period_start" field.
func (u *QuotaUsageUpsertBulk) SetPeriodStart(v time.Time) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetPeriodStart(v)
	})
}

// UpdatePeriodStart sets the "period_start" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdatePeriodStart() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdatePeriodStart()
	})
}

// SetTotalUnits sets the "total_units" field.
func (u *QuotaUsageUpsertBulk) SetTotalUnits(v int) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetTotalUnits(v)
	})
}

// AddTotalUnits adds v to the "total_units" field.
func (u *QuotaUsageUpsertBulk) AddTotalUnits(v int) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddTotalUnits(v)
	})
}

// UpdateTotalUnits sets the "total_units" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateTotalUnits() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateTotalUnits()
	})
}

// SetCommittedUnits sets the "committed_units" field.
func (u *QuotaUsageUpsertBulk) SetCommittedUnits(v int) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetCommittedUnits(v)
	})
}

// AddCommittedUnits adds v to the "committed_units" field.
func (u *QuotaUsageUpsertBulk) AddCommittedUnits(v int) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.AddCommittedUnits(v)
	})
}

// UpdateCommittedUnits sets the "committed_units" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateCommittedUnits() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateCommittedUnits()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuotaUsageUpsertBulk) SetUpdatedAt(v time.Time) *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuotaUsageUpsertBulk) UpdateUpdatedAt() *QuotaUsageUpsertBulk {
	return u.Update(func(s *QuotaUsageUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuotaUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuotaUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuotaUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuotaUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
