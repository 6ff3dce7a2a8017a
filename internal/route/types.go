package route

// #region team

// Team identifies the support team a ticket is routed to.
type Team string

const (
	TeamTier1     Team = "Tier1"
	TeamTier2     Team = "Tier2"
	TeamSecurity  Team = "Security"
	TeamBilling   Team = "Billing"
	TeamRetention Team = "Retention"
)

// Teams returns every routable team in a fixed order, for enum-keyed
// counting tables.
func Teams() []Team {
	return []Team{TeamTier1, TeamTier2, TeamSecurity, TeamBilling, TeamRetention}
}

// #endregion team

// #region verdict

// Verdict is the routing decision for one ticket.
type Verdict struct {
	Team     Team `json:"route_to"`
	Escalate bool `json:"escalate"`
}

// #endregion verdict

// #region config

// Config holds the routing vocabularies and decision thresholds.
type Config struct {
	BillingKeywords   []string `yaml:"billing_keywords"`
	SecurityKeywords  []string `yaml:"security_keywords"`
	RetentionKeywords []string `yaml:"retention_keywords"`

	// HighValueThreshold routes to Tier2 when the importance score meets
	// it, and is one leg of the escalation conjunction.
	HighValueThreshold float64 `yaml:"high_value_threshold"`

	// EscalationIntensityMax is the strongly-negative intensity ceiling.
	// Escalation requires intensity <= EscalationIntensityMax AND
	// importance >= HighValueThreshold; one alone never escalates, which
	// keeps escalation a rare, high-signal event.
	EscalationIntensityMax float64 `yaml:"escalation_intensity_max"`
}

// DefaultConfig returns the built-in routing rules.
func DefaultConfig() Config {
	return Config{
		BillingKeywords: []string{
			"billing", "charge", "charged", "invoice", "payment",
			"refund", "subscription", "overcharge", "price",
		},
		SecurityKeywords: []string{
			"hack", "hacked", "unauthorized", "breach", "phishing",
			"compromised", "suspicious login", "malware", "security",
		},
		RetentionKeywords: []string{
			"cancel my", "close my account", "downgrade",
			"unsubscribe", "switching to", "competitor",
		},
		HighValueThreshold:     0.8,
		EscalationIntensityMax: -0.6,
	}
}

// #endregion config
