// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotausage"
	"github.com/google/uuid"
)

// QuotaUsage is the model entity for the QuotaUsage schema.
type QuotaUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID uuid.UUID `json:"account_id,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart time.Time `json:"period_start,omitempty"`
	// TotalUnits holds the value of the "total_units" field.
	TotalUnits int `json:"total_units,omitempty"`
	// CommittedUnits holds the value of the "committed_units" field.
	CommittedUnits int `json:"committed_units,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotausage.FieldTotalUnits, quotausage.FieldCommittedUnits:
			values[i] = new(sql.NullInt64)
		case quotausage.FieldPeriodStart, quotausage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case quotausage.FieldID, quotausage.FieldAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaUsage fields.
func (_m *QuotaUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotausage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quotausage.FieldAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value != nil {
				_m.AccountID = *value
			}
		case quotausage.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = value.Time
			}
		case quotausage.FieldTotalUnits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_units", values[i])
			} else if value.Valid {
				_m.TotalUnits = int(value.Int64)
			}
		case quotausage.FieldCommittedUnits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field committed_units", values[i])
			} else if value.Valid {
				_m.CommittedUnits = int(value.Int64)
			}
		case quotausage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaUsage.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaUsage.
// Note that you need to call QuotaUsage.Unwrap() before calling this method if this QuotaUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaUsage) Update() *QuotaUsageUpdateOne {
	return NewQuotaUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaUsage) Unwrap() *QuotaUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaUsage) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(_m.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_units=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUnits))
	builder.WriteString(", ")
	builder.WriteString("committed_units=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommittedUnits))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaUsages is a parsable slice of QuotaUsage.
type QuotaUsages []*QuotaUsage
