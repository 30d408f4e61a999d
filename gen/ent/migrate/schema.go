// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "subscription_tier", Type: field.TypeString, Default: "free"},
		{Name: "subscription_status", Type: field.TypeString, Default: "inactive"},
		{Name: "analyses_allowance", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// DceAnalysesColumns holds the columns for the "dce_analyses" table.
	DceAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reservation_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "project_name", Type: field.TypeString, Nullable: true},
		{Name: "client_name", Type: field.TypeString, Nullable: true},
		{Name: "budget_ht", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "unanalyzed", Type: field.TypeJSON, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DceAnalysesTable holds the schema information for the "dce_analyses" table.
	DceAnalysesTable = &schema.Table{
		Name:       "dce_analyses",
		Columns:    DceAnalysesColumns,
		PrimaryKey: []*schema.Column{DceAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dce_analyses_accounts_analyses",
				Columns:    []*schema.Column{DceAnalysesColumns[16]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "dce_analyses_documents_analyses",
				Columns:    []*schema.Column{DceAnalysesColumns[17]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisresult_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DceAnalysesColumns[16], DceAnalysesColumns[13]},
			},
			{
				Name:    "analysisresult_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DceAnalysesColumns[2], DceAnalysesColumns[13]},
			},
			{
				Name:    "analysisresult_document_id",
				Unique:  false,
				Columns: []*schema.Column{DceAnalysesColumns[17]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeUUID, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[6]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_accounts_documents",
				Columns:    []*schema.Column{DocumentsColumns[5]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_account_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5], DocumentsColumns[4]},
			},
		},
	}
	// QuotaReservationsColumns holds the columns for the "quota_reservations" table.
	QuotaReservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "units", Type: field.TypeInt},
		{Name: "state", Type: field.TypeString, Default: "RESERVED"},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
	}
	// QuotaReservationsTable holds the schema information for the "quota_reservations" table.
	QuotaReservationsTable = &schema.Table{
		Name:       "quota_reservations",
		Columns:    QuotaReservationsColumns,
		PrimaryKey: []*schema.Column{QuotaReservationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quota_reservations_accounts_reservations",
				Columns:    []*schema.Column{QuotaReservationsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quotareservation_account_id_state",
				Unique:  false,
				Columns: []*schema.Column{QuotaReservationsColumns[6], QuotaReservationsColumns[2]},
			},
		},
	}
	// QuotaUsageColumns holds the columns for the "quota_usage" table.
	QuotaUsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "total_units", Type: field.TypeInt, Default: 0},
		{Name: "committed_units", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuotaUsageTable holds the schema information for the "quota_usage" table.
	QuotaUsageTable = &schema.Table{
		Name:       "quota_usage",
		Columns:    QuotaUsageColumns,
		PrimaryKey: []*schema.Column{QuotaUsageColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotausage_account_id_period_start",
				Unique:  true,
				Columns: []*schema.Column{QuotaUsageColumns[1], QuotaUsageColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		DceAnalysesTable,
		AuditLogsTable,
		DocumentsTable,
		QuotaReservationsTable,
		QuotaUsageTable,
	}
)

func init() {
	AccountsTable.Annotation = &entsql.Annotation{
		Table: "accounts",
	}
	DceAnalysesTable.ForeignKeys[0].RefTable = AccountsTable
	DceAnalysesTable.ForeignKeys[1].RefTable = DocumentsTable
	DceAnalysesTable.Annotation = &entsql.Annotation{
		Table: "dce_analyses",
	}
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	DocumentsTable.ForeignKeys[0].RefTable = AccountsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	QuotaReservationsTable.ForeignKeys[0].RefTable = AccountsTable
	QuotaReservationsTable.Annotation = &entsql.Annotation{
		Table: "quota_reservations",
	}
	QuotaUsageTable.Annotation = &entsql.Annotation{
		Table: "quota_usage",
	}
}
