// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/bidkiller/dce-analyzer/gen/ent/account"
	"github.com/bidkiller/dce-analyzer/gen/ent/analysisresult"
	"github.com/bidkiller/dce-analyzer/gen/ent/document"
	"github.com/bidkiller/dce-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// AnalysisResultUpdate is the builder for updating AnalysisResult entities.
type AnalysisResultUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisResultMutation
}

// Where appends a list predicates to the AnalysisResultUpdate builder.
func (_u *AnalysisResultUpdate) Where(ps ...predicate.AnalysisResult) *AnalysisResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *AnalysisResultUpdate) SetAccountID(v uuid.UUID) *AnalysisResultUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableAccountID(v *uuid.UUID) *AnalysisResultUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AnalysisResultUpdate) SetDocumentID(v uuid.UUID) *AnalysisResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableDocumentID(v *uuid.UUID) *AnalysisResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetReservationID sets the "reservation_id" field.
func (_u *AnalysisResultUpdate) SetReservationID(v uuid.UUID) *AnalysisResultUpdate {
	_u.mutation.SetReservationID(v)
	return _u
}

// SetNillableReservationID sets the "reservation_id" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableReservationID(v *uuid.UUID) *AnalysisResultUpdate {
	if v != nil {
		_u.SetReservationID(*v)
	}
	return _u
}

// ClearReservationID clears the value of the "reservation_id" field.
func (_u *AnalysisResultUpdate) ClearReservationID() *AnalysisResultUpdate {
	_u.mutation.ClearReservationID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisResultUpdate) SetStatus(v string) *AnalysisResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableStatus(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFindings sets the "findings" field.
func (_u *AnalysisResultUpdate) SetFindings(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *AnalysisResultUpdate) AppendFindings(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *AnalysisResultUpdate) ClearFindings() *AnalysisResultUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisResultUpdate) SetSummary(v string) *AnalysisResultUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableSummary(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisResultUpdate) ClearSummary() *AnalysisResultUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *AnalysisResultUpdate) SetProjectName(v string) *AnalysisResultUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableProjectName(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// ClearProjectName clears the value of the "project_name" field.
func (_u *AnalysisResultUpdate) ClearProjectName() *AnalysisResultUpdate {
	_u.mutation.ClearProjectName()
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *AnalysisResultUpdate) SetClientName(v string) *AnalysisResultUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableClientName(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *AnalysisResultUpdate) ClearClientName() *AnalysisResultUpdate {
	_u.mutation.ClearClientName()
	return _u
}

// SetBudgetHt sets the "budget_ht" field.
func (_u *AnalysisResultUpdate) SetBudgetHt(v float64) *AnalysisResultUpdate {
	_u.mutation.ResetBudgetHt()
	_u.mutation.SetBudgetHt(v)
	return _u
}

// SetNillableBudgetHt sets the "budget_ht" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableBudgetHt(v *float64) *AnalysisResultUpdate {
	if v != nil {
		_u.SetBudgetHt(*v)
	}
	return _u
}

// AddBudgetHt adds value to the "budget_ht" field.
func (_u *AnalysisResultUpdate) AddBudgetHt(v float64) *AnalysisResultUpdate {
	_u.mutation.AddBudgetHt(v)
	return _u
}

// ClearBudgetHt clears the value of the "budget_ht" field.
func (_u *AnalysisResultUpdate) ClearBudgetHt() *AnalysisResultUpdate {
	_u.mutation.ClearBudgetHt()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *AnalysisResultUpdate) SetDeadline(v time.Time) *AnalysisResultUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableDeadline(v *time.Time) *AnalysisResultUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *AnalysisResultUpdate) ClearDeadline() *AnalysisResultUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetUnanalyzed sets the "unanalyzed" field.
func (_u *AnalysisResultUpdate) SetUnanalyzed(v []string) *AnalysisResultUpdate {
	_u.mutation.SetUnanalyzed(v)
	return _u
}

// AppendUnanalyzed appends value to the "unanalyzed" field.
func (_u *AnalysisResultUpdate) AppendUnanalyzed(v []string) *AnalysisResultUpdate {
	_u.mutation.AppendUnanalyzed(v)
	return _u
}

// ClearUnanalyzed clears the value of the "unanalyzed" field.
func (_u *AnalysisResultUpdate) ClearUnanalyzed() *AnalysisResultUpdate {
	_u.mutation.ClearUnanalyzed()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AnalysisResultUpdate) SetProgress(v int) *AnalysisResultUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableProgress(v *int) *AnalysisResultUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AnalysisResultUpdate) AddProgress(v int) *AnalysisResultUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AnalysisResultUpdate) SetCurrentStep(v string) *AnalysisResultUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableCurrentStep(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AnalysisResultUpdate) ClearCurrentStep() *AnalysisResultUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisResultUpdate) SetErrorMessage(v string) *AnalysisResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableErrorMessage(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisResultUpdate) ClearErrorMessage() *AnalysisResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisResultUpdate) SetCreatedAt(v time.Time) *AnalysisResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisResultUpdate) SetUpdatedAt(v time.Time) *AnalysisResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisResultUpdate) SetCompletedAt(v time.Time) *AnalysisResultUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisResultUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisResultUpdate) ClearCompletedAt() *AnalysisResultUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *AnalysisResultUpdate) SetAccount(v *Account) *AnalysisResultUpdate {
	return _u.SetAccountID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *AnalysisResultUpdate) SetDocument(v *Document) *AnalysisResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_u *AnalysisResultUpdate) Mutation() *AnalysisResultMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *AnalysisResultUpdate) ClearAccount() *AnalysisResultUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *AnalysisResultUpdate) ClearDocument() *AnalysisResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysisresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisResult.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := analysisresult.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AnalysisResult.progress": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisResult.account"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisResult.document"`)
	}
	return nil
}

func (_u *AnalysisResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisresult.Table, analysisresult.Columns, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReservationID(); ok {
		_spec.SetField(analysisresult.FieldReservationID, field.TypeUUID, value)
	}
	if _u.mutation.ReservationIDCleared() {
		_spec.ClearField(analysisresult.FieldReservationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(analysisresult.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(analysisresult.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysisresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysisresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(analysisresult.FieldProjectName, field.TypeString, value)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(analysisresult.FieldProjectName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(analysisresult.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(analysisresult.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.BudgetHt(); ok {
		_spec.SetField(analysisresult.FieldBudgetHt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetHt(); ok {
		_spec.AddField(analysisresult.FieldBudgetHt, field.TypeFloat64, value)
	}
	if _u.mutation.BudgetHtCleared() {
		_spec.ClearField(analysisresult.FieldBudgetHt, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(analysisresult.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(analysisresult.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Unanalyzed(); ok {
		_spec.SetField(analysisresult.FieldUnanalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnanalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldUnanalyzed, value)
		})
	}
	if _u.mutation.UnanalyzedCleared() {
		_spec.ClearField(analysisresult.FieldUnanalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(analysisresult.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(analysisresult.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(analysisresult.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(analysisresult.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisresult.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisResultUpdateOne is the builder for updating a single AnalysisResult entity.
type AnalysisResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisResultMutation
}

// SetAccountID sets the "account_id" field.
func (_u *AnalysisResultUpdateOne) SetAccountID(v uuid.UUID) *AnalysisResultUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableAccountID(v *uuid.UUID) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *AnalysisResultUpdateOne) SetDocumentID(v uuid.UUID) *AnalysisResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetReservationID sets the "reservation_id" field.
func (_u *AnalysisResultUpdateOne) SetReservationID(v uuid.UUID) *AnalysisResultUpdateOne {
	_u.mutation.SetReservationID(v)
	return _u
}

// SetNillableReservationID sets the "reservation_id" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableReservationID(v *uuid.UUID) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetReservationID(*v)
	}
	return _u
}

// ClearReservationID clears the value of the "reservation_id" field.
func (_u *AnalysisResultUpdateOne) ClearReservationID() *AnalysisResultUpdateOne {
	_u.mutation.ClearReservationID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisResultUpdateOne) SetStatus(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableStatus(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFindings sets the "findings" field.
func (_u *AnalysisResultUpdateOne) SetFindings(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *AnalysisResultUpdateOne) AppendFindings(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *AnalysisResultUpdateOne) ClearFindings() *AnalysisResultUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AnalysisResultUpdateOne) SetSummary(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableSummary(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AnalysisResultUpdateOne) ClearSummary() *AnalysisResultUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *AnalysisResultUpdateOne) SetProjectName(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableProjectName(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// ClearProjectName clears the value of the "project_name" field.
func (_u *AnalysisResultUpdateOne) ClearProjectName() *AnalysisResultUpdateOne {
	_u.mutation.ClearProjectName()
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *AnalysisResultUpdateOne) SetClientName(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableClientName(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *AnalysisResultUpdateOne) ClearClientName() *AnalysisResultUpdateOne {
	_u.mutation.ClearClientName()
	return _u
}

// SetBudgetHt sets the "budget_ht" field.
func (_u *AnalysisResultUpdateOne) SetBudgetHt(v float64) *AnalysisResultUpdateOne {
	_u.mutation.ResetBudgetHt()
	_u.mutation.SetBudgetHt(v)
	return _u
}

// SetNillableBudgetHt sets the "budget_ht" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableBudgetHt(v *float64) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetBudgetHt(*v)
	}
	return _u
}

// AddBudgetHt adds value to the "budget_ht" field.
func (_u *AnalysisResultUpdateOne) AddBudgetHt(v float64) *AnalysisResultUpdateOne {
	_u.mutation.AddBudgetHt(v)
	return _u
}

// ClearBudgetHt clears the value of the "budget_ht" field.
func (_u *AnalysisResultUpdateOne) ClearBudgetHt() *AnalysisResultUpdateOne {
	_u.mutation.ClearBudgetHt()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *AnalysisResultUpdateOne) SetDeadline(v time.Time) *AnalysisResultUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableDeadline(v *time.Time) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *AnalysisResultUpdateOne) ClearDeadline() *AnalysisResultUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetUnanalyzed sets the "unanalyzed" field.
func (_u *AnalysisResultUpdateOne) SetUnanalyzed(v []string) *AnalysisResultUpdateOne {
	_u.mutation.SetUnanalyzed(v)
	return _u
}

// AppendUnanalyzed appends value to the "unanalyzed" field.
func (_u *AnalysisResultUpdateOne) AppendUnanalyzed(v []string) *AnalysisResultUpdateOne {
	_u.mutation.AppendUnanalyzed(v)
	return _u
}

// ClearUnanalyzed clears the value of the "unanalyzed" field.
func (_u *AnalysisResultUpdateOne) ClearUnanalyzed() *AnalysisResultUpdateOne {
	_u.mutation.ClearUnanalyzed()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AnalysisResultUpdateOne) SetProgress(v int) *AnalysisResultUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableProgress(v *int) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AnalysisResultUpdateOne) AddProgress(v int) *AnalysisResultUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AnalysisResultUpdateOne) SetCurrentStep(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableCurrentStep(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AnalysisResultUpdateOne) ClearCurrentStep() *AnalysisResultUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisResultUpdateOne) SetErrorMessage(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableErrorMessage(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisResultUpdateOne) ClearErrorMessage() *AnalysisResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisResultUpdateOne) SetCreatedAt(v time.Time) *AnalysisResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisResultUpdateOne) SetUpdatedAt(v time.Time) *AnalysisResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisResultUpdateOne) SetCompletedAt(v time.Time) *AnalysisResultUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisResultUpdateOne) ClearCompletedAt() *AnalysisResultUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *AnalysisResultUpdateOne) SetAccount(v *Account) *AnalysisResultUpdateOne {
	return _u.SetAccountID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *AnalysisResultUpdateOne) SetDocument(v *Document) *AnalysisResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_u *AnalysisResultUpdateOne) Mutation() *AnalysisResultMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *AnalysisResultUpdateOne) ClearAccount() *AnalysisResultUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *AnalysisResultUpdateOne) ClearDocument() *AnalysisResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the AnalysisResultUpdate builder.
func (_u *AnalysisResultUpdateOne) Where(ps ...predicate.AnalysisResult) *AnalysisResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisResultUpdateOne) Select(field string, fields ...string) *AnalysisResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisResult entity.
func (_u *AnalysisResultUpdateOne) Save(ctx context.Context) (*AnalysisResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisResultUpdateOne) SaveX(ctx context.Context) *AnalysisResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysisresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisResult.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := analysisresult.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AnalysisResult.progress": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisResult.account"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisResult.document"`)
	}
	return nil
}

func (_u *AnalysisResultUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisresult.Table, analysisresult.Columns, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisresult.FieldID)
		for _, f := range fields {
			if !analysisresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisresult.FieldID {
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
	if value, ok := _u.mutation.ReservationID(); ok {
		_spec.SetField(analysisresult.FieldReservationID, field.TypeUUID, value)
	}
	if _u.mutation.ReservationIDCleared() {
		_spec.ClearField(analysisresult.FieldReservationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(analysisresult.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(analysisresult.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(analysisresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(analysisresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(analysisresult.FieldProjectName, field.TypeString, value)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(analysisresult.FieldProjectName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(analysisresult.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(analysisresult.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.BudgetHt(); ok {
		_spec.SetField(analysisresult.FieldBudgetHt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetHt(); ok {
		_spec.AddField(analysisresult.FieldBudgetHt, field.TypeFloat64, value)
	}
	if _u.mutation.BudgetHtCleared() {
		_spec.ClearField(analysisresult.FieldBudgetHt, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(analysisresult.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(analysisresult.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Unanalyzed(); ok {
		_spec.SetField(analysisresult.FieldUnanalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnanalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldUnanalyzed, value)
		})
	}
	if _u.mutation.UnanalyzedCleared() {
		_spec.ClearField(analysisresult.FieldUnanalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(analysisresult.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(analysisresult.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(analysisresult.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(analysisresult.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisresult.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisresult.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
