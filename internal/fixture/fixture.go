package fixture

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
)

// #endregion

// #region fixture-types

// Batch is the top-level JSON structure for a ticket batch file.
type Batch struct {
	Description string          `json:"description"`
	Tickets     []ticket.Record `json:"tickets"`
}

// #endregion fixture-types

// #region load

// Load reads a ticket batch from a JSON file.
func Load(path string) (Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("read fixture: %w", err)
	}
	var b Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return Batch{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(b.Tickets) == 0 {
		return Batch{}, fmt.Errorf("fixture %s contains no tickets", path)
	}
	return b, nil
}

// #endregion load

// #region sample

// Sample returns the built-in demo batch used when no fixture file is
// given.
func Sample() Batch {
	return Batch{
		Description: "built-in demo tickets",
		Tickets: []ticket.Record{
			{
				ID:              "TICKET-001",
				Subject:         "I was double charged!",
				Message:         "Please fix this billing issue. I need a refund ASAP.",
				CustomerTier:    ticket.TierPremium,
				PreviousTickets: 2,
				MonthlyRevenue:  500.0,
				AccountAgeDays:  365,
			},
			{
				ID:              "TICKET-002",
				Subject:         "System hacked",
				Message:         "unauthorized login attempts",
				CustomerTier:    ticket.TierEnterprise,
				PreviousTickets: 1,
				MonthlyRevenue:  3000.0,
				AccountAgeDays:  800,
			},
			{
				ID:              "TICKET-003",
				Subject:         "Feedback on product",
				Message:         "Loving the new updates. Keep it up!",
				CustomerTier:    ticket.TierFree,
				PreviousTickets: 0,
				MonthlyRevenue:  0.0,
				AccountAgeDays:  30,
			},
			{
				ID:              "TICKET-004",
				Subject:         "Everything is broken and I am furious",
				Message:         "This is unacceptable, the worst experience. Our whole team is blocked, fix it immediately.",
				CustomerTier:    ticket.TierEnterprise,
				PreviousTickets: 3,
				MonthlyRevenue:  8000.0,
				AccountAgeDays:  900,
			},
			{
				ID:              "TICKET-005",
				Subject:         "Thinking about leaving",
				Message:         "A competitor offered us a better deal, we may close my account next month.",
				CustomerTier:    ticket.TierPremium,
				PreviousTickets: 7,
				MonthlyRevenue:  1200.0,
				AccountAgeDays:  600,
			},
			{
				ID:              "TICKET-006",
				Subject:         "Question about the API",
				Message:         "How do I paginate results on the v2 endpoint?",
				CustomerTier:    ticket.TierFree,
				PreviousTickets: 1,
				MonthlyRevenue:  0.0,
				AccountAgeDays:  120,
			},
		},
	}
}

// #endregion sample
