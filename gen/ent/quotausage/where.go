// Code generated by ent, DO NOT EDIT.

package quotausage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bidkiller/dce-analyzer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldAccountID, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldPeriodStart, v))
}

// TotalUnits applies equality check predicate on the "total_units" field. It's identical to TotalUnitsEQ.
func TotalUnits(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldTotalUnits, v))
}

// CommittedUnits applies equality check predicate on the "committed_units" field. It's identical to CommittedUnitsEQ.
func CommittedUnits(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldCommittedUnits, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v uuid.UUID) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldAccountID, v))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldPeriodStart, v))
}

// TotalUnitsEQ applies the EQ predicate on the "total_units" field.
func TotalUnitsEQ(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldTotalUnits, v))
}

// TotalUnitsNEQ applies the NEQ predicate on the "total_units" field.
func TotalUnitsNEQ(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldTotalUnits, v))
}

// TotalUnitsIn applies the In predicate on the "total_units" field.
func TotalUnitsIn(vs ...int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldTotalUnits, vs...))
}

// TotalUnitsNotIn applies the NotIn predicate on the "total_units" field.
func TotalUnitsNotIn(vs ...int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldTotalUnits, vs...))
}

// TotalUnitsGT applies the GT predicate on the "total_units" field.
func TotalUnitsGT(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldTotalUnits, v))
}

// TotalUnitsGTE applies the GTE predicate on the "total_units" field.
func TotalUnitsGTE(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldTotalUnits, v))
}

// TotalUnitsLT applies the LT predicate on the "total_units" field.
func TotalUnitsLT(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldTotalUnits, v))
}

// TotalUnitsLTE applies the LTE predicate on the "total_units" field.
func TotalUnitsLTE(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldTotalUnits, v))
}

// CommittedUnitsEQ applies the EQ predicate on the "committed_units" field.
func CommittedUnitsEQ(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldCommittedUnits, v))
}

// CommittedUnitsNEQ applies the NEQ predicate on the "committed_units" field.
func CommittedUnitsNEQ(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldCommittedUnits, v))
}

// CommittedUnitsIn applies the In predicate on the "committed_units" field.
func CommittedUnitsIn(vs ...int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldCommittedUnits, vs...))
}

// CommittedUnitsNotIn applies the NotIn predicate on the "committed_units" field.
func CommittedUnitsNotIn(vs ...int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldCommittedUnits, vs...))
}

// CommittedUnitsGT applies the GT predicate on the "committed_units" field.
func CommittedUnitsGT(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldCommittedUnits, v))
}

// CommittedUnitsGTE applies the GTE predicate on the "committed_units" field.
func CommittedUnitsGTE(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldCommittedUnits, v))
}

// CommittedUnitsLT applies the LT predicate on the "committed_units" field.
func CommittedUnitsLT(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldCommittedUnits, v))
}

// CommittedUnitsLTE applies the LTE predicate on the "committed_units" field.
func CommittedUnitsLTE(v int) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldCommittedUnits, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaUsage) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaUsage) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaUsage) predicate.QuotaUsage {
	return predicate.QuotaUsage(sql.NotPredicates(p))
}
