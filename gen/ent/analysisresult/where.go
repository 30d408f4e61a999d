// Code generated by ent, DO NOT EDIT.

package analysisresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bidkiller/dce-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldAccountID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldDocumentID, v))
}

// ReservationID applies equality check predicate on the "reservation_id" field. It's identical to ReservationIDEQ.
func ReservationID(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldReservationID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldStatus, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldSummary, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldProjectName, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldClientName, v))
}

// BudgetHt applies equality check predicate on the "budget_ht" field. It's identical to BudgetHtEQ.
func BudgetHt(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldBudgetHt, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldDeadline, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldProgress, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCurrentStep, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCompletedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldAccountID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// ReservationIDEQ applies the EQ predicate on the "reservation_id" field.
func ReservationIDEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldReservationID, v))
}

// ReservationIDNEQ applies the NEQ predicate on the "reservation_id" field.
func ReservationIDNEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldReservationID, v))
}

// ReservationIDIn applies the In predicate on the "reservation_id" field.
func ReservationIDIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldReservationID, vs...))
}

// ReservationIDNotIn applies the NotIn predicate on the "reservation_id" field.
func ReservationIDNotIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldReservationID, vs...))
}

// ReservationIDGT applies the GT predicate on the "reservation_id" field.
func ReservationIDGT(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldReservationID, v))
}

// ReservationIDGTE applies the GTE predicate on the "reservation_id" field.
func ReservationIDGTE(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldReservationID, v))
}

// ReservationIDLT applies the LT predicate on the "reservation_id" field.
func ReservationIDLT(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldReservationID, v))
}

// ReservationIDLTE applies the LTE predicate on the "reservation_id" field.
func ReservationIDLTE(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldReservationID, v))
}

// ReservationIDIsNil applies the IsNil predicate on the "reservation_id" field.
func ReservationIDIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldReservationID))
}

// ReservationIDNotNil applies the NotNil predicate on the "reservation_id" field.
func ReservationIDNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldReservationID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldStatus, v))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldFindings))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldSummary, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameIsNil applies the IsNil predicate on the "project_name" field.
func ProjectNameIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldProjectName))
}

// ProjectNameNotNil applies the NotNil predicate on the "project_name" field.
func ProjectNameNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldProjectName))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldProjectName, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameIsNil applies the IsNil predicate on the "client_name" field.
func ClientNameIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldClientName))
}

// ClientNameNotNil applies the NotNil predicate on the "client_name" field.
func ClientNameNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldClientName))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldClientName, v))
}

// BudgetHtEQ applies the EQ predicate on the "budget_ht" field.
func BudgetHtEQ(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldBudgetHt, v))
}

// BudgetHtNEQ applies the NEQ predicate on the "budget_ht" field.
func BudgetHtNEQ(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldBudgetHt, v))
}

// BudgetHtIn applies the In predicate on the "budget_ht" field.
func BudgetHtIn(vs ...float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldBudgetHt, vs...))
}

// BudgetHtNotIn applies the NotIn predicate on the "budget_ht" field.
func BudgetHtNotIn(vs ...float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldBudgetHt, vs...))
}

// BudgetHtGT applies the GT predicate on the "budget_ht" field.
func BudgetHtGT(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldBudgetHt, v))
}

// BudgetHtGTE applies the GTE predicate on the "budget_ht" field.
func BudgetHtGTE(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldBudgetHt, v))
}

// BudgetHtLT applies the LT predicate on the "budget_ht" field.
func BudgetHtLT(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldBudgetHt, v))
}

// BudgetHtLTE applies the LTE predicate on the "budget_ht" field.
func BudgetHtLTE(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldBudgetHt, v))
}

// BudgetHtIsNil applies the IsNil predicate on the "budget_ht" field.
func BudgetHtIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldBudgetHt))
}

// BudgetHtNotNil applies the NotNil predicate on the "budget_ht" field.
func BudgetHtNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldBudgetHt))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldDeadline))
}

// UnanalyzedIsNil applies the IsNil predicate on the "unanalyzed" field.
func UnanalyzedIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldUnanalyzed))
}

// UnanalyzedNotNil applies the NotNil predicate on the "unanalyzed" field.
func UnanalyzedNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldUnanalyzed))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldProgress, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldCurrentStep, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldCompletedAt))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.AnalysisResult {
	return predicate.AnalysisResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.AnalysisResult {
	return predicate.AnalysisResult(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.AnalysisResult {
	return predicate.AnalysisResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.AnalysisResult {
	return predicate.AnalysisResult(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.NotPredicates(p))
}
