// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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
	"github.com/google/uuid"
)

// AnalysisResultCreate is the builder for creating a AnalysisResult entity.
type AnalysisResultCreate struct {
	config
	mutation *AnalysisResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *AnalysisResultCreate) SetAccountID(v uuid.UUID) *AnalysisResultCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *AnalysisResultCreate) SetDocumentID(v uuid.UUID) *AnalysisResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetReservationID sets the "reservation_id" field.
func (_c *AnalysisResultCreate) SetReservationID(v uuid.UUID) *AnalysisResultCreate {
	_c.mutation.SetReservationID(v)
	return _c
}

// SetNillableReservationID sets the "reservation_id" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableReservationID(v *uuid.UUID) *AnalysisResultCreate {
	if v != nil {
		_c.SetReservationID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisResultCreate) SetStatus(v string) *AnalysisResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetFindings sets the "findings" field.
func (_c *AnalysisResultCreate) SetFindings(v json.RawMessage) *AnalysisResultCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AnalysisResultCreate) SetSummary(v string) *AnalysisResultCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableSummary(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *AnalysisResultCreate) SetProjectName(v string) *AnalysisResultCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableProjectName(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetProjectName(*v)
	}
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *AnalysisResultCreate) SetClientName(v string) *AnalysisResultCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableClientName(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetClientName(*v)
	}
	return _c
}

// SetBudgetHt sets the "budget_ht" field.
func (_c *AnalysisResultCreate) SetBudgetHt(v float64) *AnalysisResultCreate {
	_c.mutation.SetBudgetHt(v)
	return _c
}

// SetNillableBudgetHt sets the "budget_ht" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableBudgetHt(v *float64) *AnalysisResultCreate {
	if v != nil {
		_c.SetBudgetHt(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *AnalysisResultCreate) SetDeadline(v time.Time) *AnalysisResultCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableDeadline(v *time.Time) *AnalysisResultCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetUnanalyzed sets the "unanalyzed" field.
func (_c *AnalysisResultCreate) SetUnanalyzed(v []string) *AnalysisResultCreate {
	_c.mutation.SetUnanalyzed(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *AnalysisResultCreate) SetProgress(v int) *AnalysisResultCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableProgress(v *int) *AnalysisResultCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *AnalysisResultCreate) SetCurrentStep(v string) *AnalysisResultCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableCurrentStep(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisResultCreate) SetErrorMessage(v string) *AnalysisResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableErrorMessage(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisResultCreate) SetCreatedAt(v time.Time) *AnalysisResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableCreatedAt(v *time.Time) *AnalysisResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalysisResultCreate) SetUpdatedAt(v time.Time) *AnalysisResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableUpdatedAt(v *time.Time) *AnalysisResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisResultCreate) SetCompletedAt(v time.Time) *AnalysisResultCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableCompletedAt(v *time.Time) *AnalysisResultCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisResultCreate) SetID(v uuid.UUID) *AnalysisResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableID(v *uuid.UUID) *AnalysisResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *AnalysisResultCreate) SetAccount(v *Account) *AnalysisResultCreate {
	return _c.SetAccountID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *AnalysisResultCreate) SetDocument(v *Document) *AnalysisResultCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_c *AnalysisResultCreate) Mutation() *AnalysisResultMutation {
	return _c.mutation
}

// Save creates the AnalysisResult in the database.
func (_c *AnalysisResultCreate) Save(ctx context.Context) (*AnalysisResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisResultCreate) SaveX(ctx context.Context) *AnalysisResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisResultCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := analysisresult.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analysisresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisResultCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "AnalysisResult.account_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "AnalysisResult.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "AnalysisResult.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := analysisresult.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AnalysisResult.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnalysisResult.updated_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "AnalysisResult.account"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "AnalysisResult.document"`)}
	}
	return nil
}

func (_c *AnalysisResultCreate) sqlSave(ctx context.Context) (*AnalysisResult, error) {
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

func (_c *AnalysisResultCreate) createSpec() (*AnalysisResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisresult.Table, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReservationID(); ok {
		_spec.SetField(analysisresult.FieldReservationID, field.TypeUUID, value)
		_node.ReservationID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(analysisresult.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(analysisresult.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(analysisresult.FieldProjectName, field.TypeString, value)
		_node.ProjectName = &value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(analysisresult.FieldClientName, field.TypeString, value)
		_node.ClientName = &value
	}
	if value, ok := _c.mutation.BudgetHt(); ok {
		_spec.SetField(analysisresult.FieldBudgetHt, field.TypeFloat64, value)
		_node.BudgetHt = &value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(analysisresult.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.Unanalyzed(); ok {
		_spec.SetField(analysisresult.FieldUnanalyzed, field.TypeJSON, value)
		_node.Unanalyzed = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(analysisresult.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(analysisresult.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisresult.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisresult.AccountTable,
			Columns: []string{analysisresult.AccountColumn},
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
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisresult.DocumentTable,
			Columns: []string{analysisresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalysisResult.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisResultUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisResultCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisResultUpsertOne {
	_c.conflict = opts
	return &AnalysisResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalysisResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisResultCreate) OnConflictColumns(columns ...string) *AnalysisResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisResultUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisResultUpsertOne is the builder for "upsert"-ing
	//  one AnalysisResult node.
	AnalysisResultUpsertOne struct {
		create *AnalysisResultCreate
	}

	// AnalysisResultUpsert is the "OnConflict" setter.
	AnalysisResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *AnalysisResultUpsert) SetAccountID(v uuid.UUID) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateAccountID() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldAccountID)
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *AnalysisResultUpsert) SetDocumentID(v uuid.UUID) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateDocumentID() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldDocumentID)
	return u
}

// SetReservationID sets the "reservation_id" field.
func (u *AnalysisResultUpsert) SetReservationID(v uuid.UUID) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldReservationID, v)
	return u
}

// UpdateReservationID sets the "reservation_id" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateReservationID() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldReservationID)
	return u
}

// ClearReservationID clears the value of the "reservation_id" field.
func (u *AnalysisResultUpsert) ClearReservationID() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldReservationID)
	return u
}

// SetStatus sets the "status" field.
func (u *AnalysisResultUpsert) SetStatus(v string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateStatus() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldStatus)
	return u
}

// SetFindings sets the "findings" field.
func (u *AnalysisResultUpsert) SetFindings(v json.RawMessage) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldFindings, v)
	return u
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateFindings() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldFindings)
	return u
}

// ClearFindings clears the value of the "findings" field.
func (u *AnalysisResultUpsert) ClearFindings() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldFindings)
	return u
}

// SetSummary sets the "summary" field.
func (u *AnalysisResultUpsert) SetSummary(v string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateSummary() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *AnalysisResultUpsert) ClearSummary() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldSummary)
	return u
}

// SetProjectName sets the "project_name" field.
func (u *AnalysisResultUpsert) SetProjectName(v string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldProjectName, v)
	return u
}

// UpdateProjectName sets the "project_name" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateProjectName() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldProjectName)
	return u
}

// ClearProjectName clears the value of the "project_name" field.
func (u *AnalysisResultUpsert) ClearProjectName() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldProjectName)
	return u
}

// SetClientName sets the "client_name" field.
func (u *AnalysisResultUpsert) SetClientName(v string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldClientName, v)
	return u
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateClientName() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldClientName)
	return u
}

// ClearClientName clears the value of the "client_name" field.
func (u *AnalysisResultUpsert) ClearClientName() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldClientName)
	return u
}

// SetBudgetHt sets the "budget_ht" field.
func (u *AnalysisResultUpsert) SetBudgetHt(v float64) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldBudgetHt, v)
	return u
}

// UpdateBudgetHt sets the "budget_ht" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateBudgetHt() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldBudgetHt)
	return u
}

// AddBudgetHt adds v to the "budget_ht" field.
func (u *AnalysisResultUpsert) AddBudgetHt(v float64) *AnalysisResultUpsert {
	u.Add(analysisresult.FieldBudgetHt, v)
	return u
}

// ClearBudgetHt clears the value of the "budget_ht" field.
func (u *AnalysisResultUpsert) ClearBudgetHt() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldBudgetHt)
	return u
}

// SetDeadline sets the "deadline" field.
func (u *AnalysisResultUpsert) SetDeadline(v time.Time) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldDeadline, v)
	return u
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateDeadline() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldDeadline)
	return u
}

// ClearDeadline clears the value of the "deadline" field.
func (u *AnalysisResultUpsert) ClearDeadline() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldDeadline)
	return u
}

// SetUnanalyzed sets the "unanalyzed" field.
func (u *AnalysisResultUpsert) SetUnanalyzed(v []string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldUnanalyzed, v)
	return u
}

// UpdateUnanalyzed sets the "unanalyzed" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateUnanalyzed() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldUnanalyzed)
	return u
}

// ClearUnanalyzed clears the value of the "unanalyzed" field.
func (u *AnalysisResultUpsert) ClearUnanalyzed() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldUnanalyzed)
	return u
}

// SetProgress sets the "progress" field.
func (u *AnalysisResultUpsert) SetProgress(v int) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateProgress() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *AnalysisResultUpsert) AddProgress(v int) *AnalysisResultUpsert {
	u.Add(analysisresult.FieldProgress, v)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *AnalysisResultUpsert) SetCurrentStep(v string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateCurrentStep() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldCurrentStep)
	return u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *AnalysisResultUpsert) ClearCurrentStep() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldCurrentStep)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AnalysisResultUpsert) SetErrorMessage(v string) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateErrorMessage() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AnalysisResultUpsert) ClearErrorMessage() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AnalysisResultUpsert) SetCreatedAt(v time.Time) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateCreatedAt() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnalysisResultUpsert) SetUpdatedAt(v time.Time) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateUpdatedAt() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AnalysisResultUpsert) SetCompletedAt(v time.Time) *AnalysisResultUpsert {
	u.Set(analysisresult.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AnalysisResultUpsert) UpdateCompletedAt() *AnalysisResultUpsert {
	u.SetExcluded(analysisresult.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AnalysisResultUpsert) ClearCompletedAt() *AnalysisResultUpsert {
	u.SetNull(analysisresult.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AnalysisResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysisresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisResultUpsertOne) UpdateNewValues() *AnalysisResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(analysisresult.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalysisResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisResultUpsertOne) Ignore() *AnalysisResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisResultUpsertOne) DoNothing() *AnalysisResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisResultCreate.OnConflict
// documentation for more info.
func (u *AnalysisResultUpsertOne) Update(set func(*AnalysisResultUpsert)) *AnalysisResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *AnalysisResultUpsertOne) SetAccountID(v uuid.UUID) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateAccountID() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateAccountID()
	})
}

// SetDocumentID sets the "document_id" field.
func (u *AnalysisResultUpsertOne) SetDocumentID(v uuid.UUID) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateDocumentID() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateDocumentID()
	})
}

// SetReservationID sets the "reservation_id" field.
func (u *AnalysisResultUpsertOne) SetReservationID(v uuid.UUID) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetReservationID(v)
	})
}

// UpdateReservationID sets the "reservation_id" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateReservationID() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateReservationID()
	})
}

// ClearReservationID clears the value of the "reservation_id" field.
func (u *AnalysisResultUpsertOne) ClearReservationID() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearReservationID()
	})
}

// SetStatus sets the "status" field.
func (u *AnalysisResultUpsertOne) SetStatus(v string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateStatus() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateStatus()
	})
}

// SetFindings sets the "findings" field.
func (u *AnalysisResultUpsertOne) SetFindings(v json.RawMessage) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateFindings() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *AnalysisResultUpsertOne) ClearFindings() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearFindings()
	})
}

// SetSummary sets the "summary" field.
func (u *AnalysisResultUpsertOne) SetSummary(v string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateSummary() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *AnalysisResultUpsertOne) ClearSummary() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearSummary()
	})
}

// SetProjectName sets the "project_name" field.
func (u *AnalysisResultUpsertOne) SetProjectName(v string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetProjectName(v)
	})
}

// UpdateProjectName sets the "project_name" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateProjectName() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateProjectName()
	})
}

// ClearProjectName clears the value of the "project_name" field.
func (u *AnalysisResultUpsertOne) ClearProjectName() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearProjectName()
	})
}

// SetClientName sets the "client_name" field.
func (u *AnalysisResultUpsertOne) SetClientName(v string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetClientName(v)
	})
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateClientName() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateClientName()
	})
}

// ClearClientName clears the value of the "client_name" field.
func (u *AnalysisResultUpsertOne) ClearClientName() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearClientName()
	})
}

// SetBudgetHt sets the "budget_ht" field.
func (u *AnalysisResultUpsertOne) SetBudgetHt(v float64) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetBudgetHt(v)
	})
}

// AddBudgetHt adds v to the "budget_ht" field.
func (u *AnalysisResultUpsertOne) AddBudgetHt(v float64) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.AddBudgetHt(v)
	})
}

// UpdateBudgetHt sets the "budget_ht" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateBudgetHt() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateBudgetHt()
	})
}

// ClearBudgetHt clears the value of the "budget_ht" field.
func (u *AnalysisResultUpsertOne) ClearBudgetHt() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearBudgetHt()
	})
}

// SetDeadline sets the "deadline" field.
func (u *AnalysisResultUpsertOne) SetDeadline(v time.Time) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateDeadline() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *AnalysisResultUpsertOne) ClearDeadline() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearDeadline()
	})
}

// SetUnanalyzed sets the "unanalyzed" field.
func (u *AnalysisResultUpsertOne) SetUnanalyzed(v []string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetUnanalyzed(v)
	})
}

// UpdateUnanalyzed sets the "unanalyzed" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateUnanalyzed() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateUnanalyzed()
	})
}

// ClearUnanalyzed clears the value of the "unanalyzed" field.
func (u *AnalysisResultUpsertOne) ClearUnanalyzed() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearUnanalyzed()
	})
}

// SetProgress sets the "progress" field.
func (u *AnalysisResultUpsertOne) SetProgress(v int) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *AnalysisResultUpsertOne) AddProgress(v int) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateProgress() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *AnalysisResultUpsertOne) SetCurrentStep(v string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateCurrentStep() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *AnalysisResultUpsertOne) ClearCurrentStep() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearCurrentStep()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AnalysisResultUpsertOne) SetErrorMessage(v string) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateErrorMessage() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AnalysisResultUpsertOne) ClearErrorMessage() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AnalysisResultUpsertOne) SetCreatedAt(v time.Time) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateCreatedAt() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnalysisResultUpsertOne) SetUpdatedAt(v time.Time) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateUpdatedAt() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AnalysisResultUpsertOne) SetCompletedAt(v time.Time) *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AnalysisResultUpsertOne) UpdateCompletedAt() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AnalysisResultUpsertOne) ClearCompletedAt() *AnalysisResultUpsertOne {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AnalysisResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisResultUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnalysisResultUpsertOne.ID is not supported by MySQL driver. Use AnalysisResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisResultUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisResultCreateBulk is the builder for creating many AnalysisResult entities in bulk.
type AnalysisResultCreateBulk struct {
	config
	err      error
	builders []*AnalysisResultCreate
	conflict []sql.ConflictOption
}

// Save creates the AnalysisResult entities in the database.
func (_c *AnalysisResultCreateBulk) Save(ctx context.Context) ([]*AnalysisResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisResultMutation)
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
func (_c *AnalysisResultCreateBulk) SaveX(ctx context.Context) []*AnalysisResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalysisResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisResultUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisResultUpsertBulk {
	_c.conflict = opts
	return &AnalysisResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalysisResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisResultCreateBulk) OnConflictColumns(columns ...string) *AnalysisResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisResultUpsertBulk{
		create: _c,
	}
}

// AnalysisResultUpsertBulk is the builder for "upsert"-ing
// a bulk of AnalysisResult nodes.
type AnalysisResultUpsertBulk struct {
	create *AnalysisResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnalysisResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysisresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisResultUpsertBulk) UpdateNewValues() *AnalysisResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(analysisresult.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalysisResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisResultUpsertBulk) Ignore() *AnalysisResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisResultUpsertBulk) DoNothing() *AnalysisResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisResultCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisResultUpsertBulk) Update(set func(*AnalysisResultUpsert)) *AnalysisResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *AnalysisResultUpsertBulk) SetAccountID(v uuid.UUID) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateAccountID() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateAccountID()
	})
}

// SetDocumentID sets the "document_id" field.
func (u *AnalysisResultUpsertBulk) SetDocumentID(v uuid.UUID) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateDocumentID() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateDocumentID()
	})
}

// SetReservationID sets the "reservation_id" field.
func (u *AnalysisResultUpsertBulk) SetReservationID(v uuid.UUID) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetReservationID(v)
	})
}

// UpdateReservationID sets the "reservation_id" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateReservationID() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateReservationID()
	})
}

// ClearReservationID clears the value of the "reservation_id" field.
func (u *AnalysisResultUpsertBulk) ClearReservationID() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearReservationID()
	})
}

// SetStatus sets the "status" field.
func (u *AnalysisResultUpsertBulk) SetStatus(v string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateStatus() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateStatus()
	})
}

// SetFindings sets the "findings" field.
func (u *AnalysisResultUpsertBulk) SetFindings(v json.RawMessage) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetFindings(v)
	})
}

// UpdateFindings sets the "findings" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateFindings() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateFindings()
	})
}

// ClearFindings clears the value of the "findings" field.
func (u *AnalysisResultUpsertBulk) ClearFindings() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearFindings()
	})
}

// SetSummary sets the "summary" field.
func (u *AnalysisResultUpsertBulk) SetSummary(v string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateSummary() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *AnalysisResultUpsertBulk) ClearSummary() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearSummary()
	})
}

// SetProjectName sets the "project_name" field.
func (u *AnalysisResultUpsertBulk) SetProjectName(v string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetProjectName(v)
	})
}

// UpdateProjectName sets the "project_name" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateProjectName() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateProjectName()
	})
}

// ClearProjectName clears the value of the "project_name" field.
func (u *AnalysisResultUpsertBulk) ClearProjectName() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearProjectName()
	})
}

// SetClientName sets the "client_name" field.
func (u *AnalysisResultUpsertBulk) SetClientName(v string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetClientName(v)
	})
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateClientName() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateClientName()
	})
}

// ClearClientName clears the value of the "client_name" field.
func (u *AnalysisResultUpsertBulk) ClearClientName() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearClientName()
	})
}

// SetBudgetHt sets the "budget_ht" field.
func (u *AnalysisResultUpsertBulk) SetBudgetHt(v float64) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetBudgetHt(v)
	})
}

// AddBudgetHt adds v to the "budget_ht" field.
func (u *AnalysisResultUpsertBulk) AddBudgetHt(v float64) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.AddBudgetHt(v)
	})
}

// UpdateBudgetHt sets the "budget_ht" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateBudgetHt() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateBudgetHt()
	})
}

// ClearBudgetHt clears the value of the "budget_ht" field.
func (u *AnalysisResultUpsertBulk) ClearBudgetHt() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearBudgetHt()
	})
}

// SetDeadline sets the "deadline" field.
func (u *AnalysisResultUpsertBulk) SetDeadline(v time.Time) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateDeadline() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *AnalysisResultUpsertBulk) ClearDeadline() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearDeadline()
	})
}

// SetUnanalyzed sets the "unanalyzed" field.
func (u *AnalysisResultUpsertBulk) SetUnanalyzed(v []string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetUnanalyzed(v)
	})
}

// UpdateUnanalyzed sets the "unanalyzed" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateUnanalyzed() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateUnanalyzed()
	})
}

// ClearUnanalyzed clears the value of the "unanalyzed" field.
func (u *AnalysisResultUpsertBulk) ClearUnanalyzed() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearUnanalyzed()
	})
}

// SetProgress sets the "progress" field.
func (u *AnalysisResultUpsertBulk) SetProgress(v int) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *AnalysisResultUpsertBulk) AddProgress(v int) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateProgress() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *AnalysisResultUpsertBulk) SetCurrentStep(v string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateCurrentStep() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *AnalysisResultUpsertBulk) ClearCurrentStep() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearCurrentStep()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AnalysisResultUpsertBulk) SetErrorMessage(v string) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateErrorMessage() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AnalysisResultUpsertBulk) ClearErrorMessage() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AnalysisResultUpsertBulk) SetCreatedAt(v time.Time) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateCreatedAt() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AnalysisResultUpsertBulk) SetUpdatedAt(v time.Time) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateUpdatedAt() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AnalysisResultUpsertBulk) SetCompletedAt(v time.Time) *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AnalysisResultUpsertBulk) UpdateCompletedAt() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AnalysisResultUpsertBulk) ClearCompletedAt() *AnalysisResultUpsertBulk {
	return u.Update(func(s *AnalysisResultUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AnalysisResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalysisResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
