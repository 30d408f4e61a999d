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
	"github.com/bidkiller/dce-analyzer/gen/ent/analysisresult"
	"github.com/bidkiller/dce-analyzer/gen/ent/document"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotareservation"
	"github.com/google/uuid"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmail sets the "email" field.
func (_c *AccountCreate) SetEmail(v string) *AccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *AccountCreate) SetCompanyName(v string) *AccountCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCompanyName(v *string) *AccountCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (_c *AccountCreate) SetSubscriptionTier(v string) *AccountCreate {
	_c.mutation.SetSubscriptionTier(v)
	return _c
}

// SetNillableSubscriptionTier sets the "subscription_tier" field if the given value is not nil.
func (_c *AccountCreate) SetNillableSubscriptionTier(v *string) *AccountCreate {
	if v != nil {
		_c.SetSubscriptionTier(*v)
	}
	return _c
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (_c *AccountCreate) SetSubscriptionStatus(v string) *AccountCreate {
	_c.mutation.SetSubscriptionStatus(v)
	return _c
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (_c *AccountCreate) SetNillableSubscriptionStatus(v *string) *AccountCreate {
	if v != nil {
		_c.SetSubscriptionStatus(*v)
	}
	return _c
}

// SetAnalysesAllowance sets the "analyses_allowance" field.
func (_c *AccountCreate) SetAnalysesAllowance(v int) *AccountCreate {
	_c.mutation.SetAnalysesAllowance(v)
	return _c
}

// SetNillableAnalysesAllowance sets the "analyses_allowance" field if the given value is not nil.
func (_c *AccountCreate) SetNillableAnalysesAllowance(v *int) *AccountCreate {
	if v != nil {
		_c.SetAnalysesAllowance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountCreate) SetCreatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCreatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountCreate) SetUpdatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableUpdatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccountCreate) SetID(v uuid.UUID) *AccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AccountCreate) SetNillableID(v *uuid.UUID) *AccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *AccountCreate) AddDocumentIDs(ids ...uuid.UUID) *AccountCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *AccountCreate) AddDocuments(v ...*Document) *AccountCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AnalysisResult entity by IDs.
func (_c *AccountCreate) AddAnalysisIDs(ids ...uuid.UUID) *AccountCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the AnalysisResult entity.
func (_c *AccountCreate) AddAnalyses(v ...*AnalysisResult) *AccountCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the QuotaReservation entity by IDs.
func (_c *AccountCreate) AddReservationIDs(ids ...uuid.UUID) *AccountCreate {
	_c.mutation.AddReservationIDs(ids...)
	return _c
}

// AddReservations adds the "reservations" edges to the QuotaReservation entity.
func (_c *AccountCreate) AddReservations(v ...*QuotaReservation) *AccountCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReservationIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.SubscriptionTier(); !ok {
		v := account.DefaultSubscriptionTier
		_c.mutation.SetSubscriptionTier(v)
	}
	if _, ok := _c.mutation.SubscriptionStatus(); !ok {
		v := account.DefaultSubscriptionStatus
		_c.mutation.SetSubscriptionStatus(v)
	}
	if _, ok := _c.mutation.AnalysesAllowance(); !ok {
		v := account.DefaultAnalysesAllowance
		_c.mutation.SetAnalysesAllowance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := account.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := account.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Account.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubscriptionTier(); !ok {
		return &ValidationError{Name: "subscription_tier", err: errors.New(`ent: missing required field "Account.subscription_tier"`)}
	}
	if _, ok := _c.mutation.SubscriptionStatus(); !ok {
		return &ValidationError{Name: "subscription_status", err: errors.New(`ent: missing required field "Account.subscription_status"`)}
	}
	if _, ok := _c.mutation.AnalysesAllowance(); !ok {
		return &ValidationError{Name: "analyses_allowance", err: errors.New(`ent: missing required field "Account.analyses_allowance"`)}
	}
	if v, ok := _c.mutation.AnalysesAllowance(); ok {
		if err := account.AnalysesAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "analyses_allowance", err: fmt.Errorf(`ent: validator failed for field "Account.analyses_allowance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Account.updated_at"`)}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
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

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(account.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = &value
	}
	if value, ok := _c.mutation.SubscriptionTier(); ok {
		_spec.SetField(account.FieldSubscriptionTier, field.TypeString, value)
		_node.SubscriptionTier = value
	}
	if value, ok := _c.mutation.SubscriptionStatus(); ok {
		_spec.SetField(account.FieldSubscriptionStatus, field.TypeString, value)
		_node.SubscriptionStatus = value
	}
	if value, ok := _c.mutation.AnalysesAllowance(); ok {
		_spec.SetField(account.FieldAnalysesAllowance, field.TypeInt, value)
		_node.AnalysesAllowance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.DocumentsTable,
			Columns: []string{account.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ReservationsTable,
			Columns: []string{account.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotareservation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.Create().
//		SetEmail(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetEmail(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCreate) OnConflict(opts ...sql.ConflictOption) *AccountUpsertOne {
	_c.conflict = opts
	return &AccountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCreate) OnConflictColumns(columns ...string) *AccountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertOne{
		create: _c,
	}
}

type (
	// AccountUpsertOne is the builder for "upsert"-ing
	//  one Account node.
	AccountUpsertOne struct {
		create *AccountCreate
	}

	// AccountUpsert is the "OnConflict" setter.
	AccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmail sets the "email" field.
func (u *AccountUpsert) SetEmail(v string) *AccountUpsert {
	u.Set(account.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsert) UpdateEmail() *AccountUpsert {
	u.SetExcluded(account.FieldEmail)
	return u
}

// SetCompanyName sets the "company_name" field.
func (u *AccountUpsert) SetCompanyName(v string) *AccountUpsert {
	u.Set(account.FieldCompanyName, v)
	return u
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *AccountUpsert) UpdateCompanyName() *AccountUpsert {
	u.SetExcluded(account.FieldCompanyName)
	return u
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *AccountUpsert) ClearCompanyName() *AccountUpsert {
	u.SetNull(account.FieldCompanyName)
	return u
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (u *AccountUpsert) SetSubscriptionTier(v string) *AccountUpsert {
	u.Set(account.FieldSubscriptionTier, v)
	return u
}

// UpdateSubscriptionTier sets the "subscription_tier" field to the value that was provided on create.
func (u *AccountUpsert) UpdateSubscriptionTier() *AccountUpsert {
	u.SetExcluded(account.FieldSubscriptionTier)
	return u
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (u *AccountUpsert) SetSubscriptionStatus(v string) *AccountUpsert {
	u.Set(account.FieldSubscriptionStatus, v)
	return u
}

// UpdateSubscriptionStatus sets the "subscription_status" field to the value that was provided on create.
func (u *AccountUpsert) UpdateSubscriptionStatus() *AccountUpsert {
	u.SetExcluded(account.FieldSubscriptionStatus)
	return u
}

// SetAnalysesAllowance sets the "analyses_allowance" field.
func (u *AccountUpsert) SetAnalysesAllowance(v int) *AccountUpsert {
	u.Set(account.FieldAnalysesAllowance, v)
	return u
}

// UpdateAnalysesAllowance sets the "analyses_allowance" field to the value that was provided on create.
func (u *AccountUpsert) UpdateAnalysesAllowance() *AccountUpsert {
	u.SetExcluded(account.FieldAnalysesAllowance)
	return u
}

// AddAnalysesAllowance adds v to the "analyses_allowance" field.
func (u *AccountUpsert) AddAnalysesAllowance(v int) *AccountUpsert {
	u.Add(account.FieldAnalysesAllowance, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AccountUpsert) SetCreatedAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateCreatedAt() *AccountUpsert {
	u.SetExcluded(account.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsert) SetUpdatedAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateUpdatedAt() *AccountUpsert {
	u.SetExcluded(account.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(account.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountUpsertOne) UpdateNewValues() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(account.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AccountUpsertOne) Ignore() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertOne) DoNothing() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreate.OnConflict
// documentation for more info.
func (u *AccountUpsertOne) Update(set func(*AccountUpsert)) *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *AccountUpsertOne) SetEmail(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateEmail() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateEmail()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *AccountUpsertOne) SetCompanyName(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateCompanyName() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *AccountUpsertOne) ClearCompanyName() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearCompanyName()
	})
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (u *AccountUpsertOne) SetSubscriptionTier(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetSubscriptionTier(v)
	})
}

// UpdateSubscriptionTier sets the "subscription_tier" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateSubscriptionTier() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateSubscriptionTier()
	})
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (u *AccountUpsertOne) SetSubscriptionStatus(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetSubscriptionStatus(v)
	})
}

// UpdateSubscriptionStatus sets the "subscription_status" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateSubscriptionStatus() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateSubscriptionStatus()
	})
}

// SetAnalysesAllowance sets the "analyses_allowance" field.
func (u *AccountUpsertOne) SetAnalysesAllowance(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetAnalysesAllowance(v)
	})
}

// AddAnalysesAllowance adds v to the "analyses_allowance" field.
func (u *AccountUpsertOne) AddAnalysesAllowance(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.AddAnalysesAllowance(v)
	})
}

// UpdateAnalysesAllowance sets the "analyses_allowance" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateAnalysesAllowance() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateAnalysesAllowance()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AccountUpsertOne) SetCreatedAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateCreatedAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsertOne) SetUpdatedAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateUpdatedAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AccountUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AccountUpsertOne.ID is not supported by MySQL driver. Use AccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AccountUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
	conflict []sql.ConflictOption
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
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
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetEmail(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *AccountUpsertBulk {
	_c.conflict = opts
	return &AccountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCreateBulk) OnConflictColumns(columns ...string) *AccountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertBulk{
		create: _c,
	}
}

// AccountUpsertBulk is the builder for "upsert"-ing
// a bulk of Account nodes.
type AccountUpsertBulk struct {
	create *AccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(account.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountUpsertBulk) UpdateNewValues() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(account.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AccountUpsertBulk) Ignore() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertBulk) DoNothing() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreateBulk.OnConflict
// documentation for more info.
func (u *AccountUpsertBulk) Update(set func(*AccountUpsert)) *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *AccountUpsertBulk) SetEmail(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateEmail() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateEmail()
	})
}

// SetCompanyName sets the "company_name" field.
func (u *AccountUpsertBulk) SetCompanyName(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetCompanyName(v)
	})
}

// UpdateCompanyName sets the "company_name" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateCompanyName() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateCompanyName()
	})
}

// ClearCompanyName clears the value of the "company_name" field.
func (u *AccountUpsertBulk) ClearCompanyName() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearCompanyName()
	})
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (u *AccountUpsertBulk) SetSubscriptionTier(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetSubscriptionTier(v)
	})
}

// UpdateSubscriptionTier sets the "subscription_tier" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateSubscriptionTier() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateSubscriptionTier()
	})
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (u *AccountUpsertBulk) SetSubscriptionStatus(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetSubscriptionStatus(v)
	})
}

// UpdateSubscriptionStatus sets the "subscription_status" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateSubscriptionStatus() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateSubscriptionStatus()
	})
}

// SetAnalysesAllowance sets the "analyses_allowance" field.
func (u *AccountUpsertBulk) SetAnalysesAllowance(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetAnalysesAllowance(v)
	})
}

// AddAnalysesAllowance adds v to the "analyses_allowance" field.
func (u *AccountUpsertBulk) AddAnalysesAllowance(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.AddAnalysesAllowance(v)
	})
}

// UpdateAnalysesAllowance sets the "analyses_allowance" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateAnalysesAllowance() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateAnalysesAllowance()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AccountUpsertBulk) SetCreatedAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateCreatedAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsertBulk) SetUpdatedAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateUpdatedAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
