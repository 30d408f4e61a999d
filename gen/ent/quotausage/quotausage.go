// Code generated by ent, DO NOT EDIT.

package quotausage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the quotausage type in the database.
	Label = "quota_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldTotalUnits holds the string denoting the total_units field in the database.
	FieldTotalUnits = "total_units"
	// FieldCommittedUnits holds the string denoting the committed_units field in the database.
	FieldCommittedUnits = "committed_units"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the quotausage in the database.
	Table = "quota_usage"
)

// Columns holds all SQL columns for quotausage fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldPeriodStart,
	FieldTotalUnits,
	FieldCommittedUnits,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalUnits holds the default value on creation for the "total_units" field.
	DefaultTotalUnits int
	// TotalUnitsValidator is a validator for the "total_units" field. It is called by the builders before save.
	TotalUnitsValidator func(int) error
	// DefaultCommittedUnits holds the default value on creation for the "committed_units" field.
	DefaultCommittedUnits int
	// CommittedUnitsValidator is a validator for the "committed_units" field. It is called by the builders before save.
	CommittedUnitsValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QuotaUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByTotalUnits orders the results by the total_units field.
func ByTotalUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUnits, opts...).ToFunc()
}

// ByCommittedUnits orders the results by the committed_units field.
func ByCommittedUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommittedUnits, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
