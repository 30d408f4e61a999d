package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/db/ent/schema/utils"
)

// QuotaUsage holds the per-account, per-billing-period usage counters.
// "total_units" counts reserved plus committed debits, so the allowance
// ceiling is enforced with one conditional increment on a single column
// and concurrent reservations cannot lose updates. A release decrements
// total_units; a commit moves units into committed_units.
type QuotaUsage struct{ ent.Schema }

func (QuotaUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quota_usage"},
	}
}

func (QuotaUsage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("account_id", uuid.UUID{}),
		field.Time("period_start"),
		field.Int("total_units").Default(0).NonNegative(),
		field.Int("committed_units").Default(0).NonNegative(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (QuotaUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "period_start").Unique(),
	}
}

// QuotaReservation is one provisional debit. State transitions:
// RESERVED -> COMMITTED | RELEASED, each exactly once.
type QuotaReservation struct{ ent.Schema }

func (QuotaReservation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quota_reservations"},
	}
}

func (QuotaReservation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("account_id", uuid.UUID{}),
		field.Int("units").Positive(),
		field.String("state").Default("RESERVED").
			Validate(utils.EnumValidator("RESERVED", "COMMITTED", "RELEASED")),
		field.Time("period_start"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (QuotaReservation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("reservations").
			Field("account_id").
			Required().
			Unique(),
	}
}

func (QuotaReservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "state"),
	}
}
