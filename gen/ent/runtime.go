// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bidkiller/dce-analyzer/db/ent/schema"
	"github.com/bidkiller/dce-analyzer/gen/ent/account"
	"github.com/bidkiller/dce-analyzer/gen/ent/analysisresult"
	"github.com/bidkiller/dce-analyzer/gen/ent/auditlog"
	"github.com/bidkiller/dce-analyzer/gen/ent/document"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotareservation"
	"github.com/bidkiller/dce-analyzer/gen/ent/quotausage"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[1].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescSubscriptionTier is the schema descriptor for subscription_tier field.
	accountDescSubscriptionTier := accountFields[3].Descriptor()
	// account.DefaultSubscriptionTier holds the default value on creation for the subscription_tier field.
	account.DefaultSubscriptionTier = accountDescSubscriptionTier.Default.(string)
	// accountDescSubscriptionStatus is the schema descriptor for subscription_status field.
	accountDescSubscriptionStatus := accountFields[4].Descriptor()
	// account.DefaultSubscriptionStatus holds the default value on creation for the subscription_status field.
	account.DefaultSubscriptionStatus = accountDescSubscriptionStatus.Default.(string)
	// accountDescAnalysesAllowance is the schema descriptor for analyses_allowance field.
	accountDescAnalysesAllowance := accountFields[5].Descriptor()
	// account.DefaultAnalysesAllowance holds the default value on creation for the analyses_allowance field.
	account.DefaultAnalysesAllowance = accountDescAnalysesAllowance.Default.(int)
	// account.AnalysesAllowanceValidator is a validator for the "analyses_allowance" field. It is called by the builders before save.
	account.AnalysesAllowanceValidator = accountDescAnalysesAllowance.Validators[0].(func(int) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[6].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[7].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountFields[0].Descriptor()
	// account.DefaultID holds the default value on creation for the id field.
	account.DefaultID = accountDescID.Default.(func() uuid.UUID)
	analysisresultFields := schema.AnalysisResult{}.Fields()
	_ = analysisresultFields
	// analysisresultDescStatus is the schema descriptor for status field.
	analysisresultDescStatus := analysisresultFields[4].Descriptor()
	// analysisresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisresult.StatusValidator = func() func(string) error {
		validators := analysisresultDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisresultDescProgress is the schema descriptor for progress field.
	analysisresultDescProgress := analysisresultFields[12].Descriptor()
	// analysisresult.DefaultProgress holds the default value on creation for the progress field.
	analysisresult.DefaultProgress = analysisresultDescProgress.Default.(int)
	// analysisresult.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	analysisresult.ProgressValidator = func() func(int) error {
		validators := analysisresultDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisresultDescCreatedAt is the schema descriptor for created_at field.
	analysisresultDescCreatedAt := analysisresultFields[15].Descriptor()
	// analysisresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisresult.DefaultCreatedAt = analysisresultDescCreatedAt.Default.(func() time.Time)
	// analysisresultDescUpdatedAt is the schema descriptor for updated_at field.
	analysisresultDescUpdatedAt := analysisresultFields[16].Descriptor()
	// analysisresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analysisresult.DefaultUpdatedAt = analysisresultDescUpdatedAt.Default.(func() time.Time)
	// analysisresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analysisresult.UpdateDefaultUpdatedAt = analysisresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// analysisresultDescID is the schema descriptor for id field.
	analysisresultDescID := analysisresultFields[0].Descriptor()
	// analysisresult.DefaultID holds the default value on creation for the id field.
	analysisresult.DefaultID = analysisresultDescID.Default.(func() uuid.UUID)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[3].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescSizeBytes is the schema descriptor for size_bytes field.
	documentDescSizeBytes := documentFields[4].Descriptor()
	// document.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	document.SizeBytesValidator = documentDescSizeBytes.Validators[0].(func(int64) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[5].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	quotareservationFields := schema.QuotaReservation{}.Fields()
	_ = quotareservationFields
	// quotareservationDescUnits is the schema descriptor for units field.
	quotareservationDescUnits := quotareservationFields[2].Descriptor()
	// quotareservation.UnitsValidator is a validator for the "units" field. It is called by the builders before save.
	quotareservation.UnitsValidator = quotareservationDescUnits.Validators[0].(func(int) error)
	// quotareservationDescState is the schema descriptor for state field.
	quotareservationDescState := quotareservationFields[3].Descriptor()
	// quotareservation.DefaultState holds the default value on creation for the state field.
	quotareservation.DefaultState = quotareservationDescState.Default.(string)
	// quotareservation.StateValidator is a validator for the "state" field. It is called by the builders before save.
	quotareservation.StateValidator = quotareservationDescState.Validators[0].(func(string) error)
	// quotareservationDescCreatedAt is the schema descriptor for created_at field.
	quotareservationDescCreatedAt := quotareservationFields[5].Descriptor()
	// quotareservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	quotareservation.DefaultCreatedAt = quotareservationDescCreatedAt.Default.(func() time.Time)
	// quotareservationDescUpdatedAt is the schema descriptor for updated_at field.
	quotareservationDescUpdatedAt := quotareservationFields[6].Descriptor()
	// quotareservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quotareservation.DefaultUpdatedAt = quotareservationDescUpdatedAt.Default.(func() time.Time)
	// quotareservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quotareservation.UpdateDefaultUpdatedAt = quotareservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quotareservationDescID is the schema descriptor for id field.
	quotareservationDescID := quotareservationFields[0].Descriptor()
	// quotareservation.DefaultID holds the default value on creation for the id field.
	quotareservation.DefaultID = quotareservationDescID.Default.(func() uuid.UUID)
	quotausageFields := schema.QuotaUsage{}.Fields()
	_ = quotausageFields
	// quotausageDescTotalUnits is the schema descriptor for total_units field.
	quotausageDescTotalUnits := quotausageFields[3].Descriptor()
	// quotausage.DefaultTotalUnits holds the default value on creation for the total_units field.
	quotausage.DefaultTotalUnits = quotausageDescTotalUnits.Default.(int)
	// quotausage.TotalUnitsValidator is a validator for the "total_units" field. It is called by the builders before save.
	quotausage.TotalUnitsValidator = quotausageDescTotalUnits.Validators[0].(func(int) error)
	// quotausageDescCommittedUnits is the schema descriptor for committed_units field.
	quotausageDescCommittedUnits := quotausageFields[4].Descriptor()
	// quotausage.DefaultCommittedUnits holds the default value on creation for the committed_units field.
	quotausage.DefaultCommittedUnits = quotausageDescCommittedUnits.Default.(int)
	// quotausage.CommittedUnitsValidator is a validator for the "committed_units" field. It is called by the builders before save.
	quotausage.CommittedUnitsValidator = quotausageDescCommittedUnits.Validators[0].(func(int) error)
	// quotausageDescUpdatedAt is the schema descriptor for updated_at field.
	quotausageDescUpdatedAt := quotausageFields[5].Descriptor()
	// quotausage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quotausage.DefaultUpdatedAt = quotausageDescUpdatedAt.Default.(func() time.Time)
	// quotausage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quotausage.UpdateDefaultUpdatedAt = quotausageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quotausageDescID is the schema descriptor for id field.
	quotausageDescID := quotausageFields[0].Descriptor()
	// quotausage.DefaultID holds the default value on creation for the id field.
	quotausage.DefaultID = quotausageDescID.Default.(func() uuid.UUID)
}
