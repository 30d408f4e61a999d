// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// AnalysisResult is the predicate function for analysisresult builders.
type AnalysisResult func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// QuotaReservation is the predicate function for quotareservation builders.
type QuotaReservation func(*sql.Selector)

// QuotaUsage is the predicate function for quotausage builders.
type QuotaUsage func(*sql.Selector)
