package ticket

// #region tier

// Tier classifies the customer's subscription level.
type Tier string

const (
	TierFree       Tier = "free"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// Tiers returns all tiers in ascending value order.
func Tiers() []Tier {
	return []Tier{TierFree, TierPremium, TierEnterprise}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPremium, TierEnterprise:
		return true
	}
	return false
}

// #endregion tier

// #region record

// Record is one incoming support ticket. Immutable once created;
// instances are supplied by the ingestion or test-case collaborator.
type Record struct {
	ID              string  `json:"ticket_id"`
	Subject         string  `json:"subject"`
	Message         string  `json:"message"`
	CustomerTier    Tier    `json:"customer_tier"`
	PreviousTickets int     `json:"previous_tickets"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	AccountAgeDays  int     `json:"account_age_days"`
}

// Text returns the subject and message joined for vocabulary matching.
func (r Record) Text() string {
	return r.Subject + " " + r.Message
}

// #endregion record
