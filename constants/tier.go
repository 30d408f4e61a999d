package constants

// Tier is a subscription tier mirrored from the billing provider.
type Tier string

const (
	TierFree       Tier = "free"
	TierStarter    Tier = "starter"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// UnlimitedAllowance is the per-period allowance used for unmetered tiers.
const UnlimitedAllowance = 999999

// DefaultAllowances maps each tier to its analyses-per-period allowance.
// The Quota Gate treats these as read-only configuration; the authoritative
// values live on the account row, synced from billing webhooks.
var DefaultAllowances = map[Tier]int{
	TierFree:       0,
	TierStarter:    20,
	TierPro:        100,
	TierEnterprise: UnlimitedAllowance,
}

// AllowanceFor returns the per-period allowance for a tier, falling back to
// the free tier for unknown labels.
func AllowanceFor(t Tier) int {
	if n, ok := DefaultAllowances[t]; ok {
		return n
	}
	return DefaultAllowances[TierFree]
}
