package pipeline

// #region imports
import (
	"fmt"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/route"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/tone"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/value"
)

// #endregion

// #region aggregated-verdict

// AggregatedVerdict unions one ticket's identifying fields with its three
// stage verdicts. Created once per ticket, read-only thereafter. The
// customer tier is deliberately not copied in; the metrics aggregator
// recovers it by positional correlation with the originating tickets.
type AggregatedVerdict struct {
	TicketID string        `json:"ticket_id"`
	Subject  string        `json:"subject"`
	Tone     tone.Verdict  `json:"sentiment"`
	Value    value.Verdict `json:"priority"`
	Routing  route.Verdict `json:"routing"`
}

// #endregion aggregated-verdict

// #region pipeline

// Pipeline sequences the three scoring stages for one ticket. The routing
// stage consumes the first two outputs, so the order is fixed: tone, then
// value, then routing. Performs no I/O; no state is shared between tickets.
type Pipeline struct {
	tone    *tone.Assessor
	value   *value.Assessor
	decider *route.Decider
}

// New creates a fully wired pipeline.
func New(toneA *tone.Assessor, valueA *value.Assessor, decider *route.Decider) *Pipeline {
	return &Pipeline{tone: toneA, value: valueA, decider: decider}
}

// #endregion pipeline

// #region process

// Process scores one ticket. An InvalidInput condition from the value
// stage is propagated unchanged; the caller decides whether to skip or
// abort.
func (p *Pipeline) Process(t ticket.Record) (AggregatedVerdict, error) {
	toneV := p.tone.Assess(t.Subject, t.Message)

	valueV, err := p.value.Assess(t.CustomerTier, t.PreviousTickets, t.MonthlyRevenue, t.AccountAgeDays)
	if err != nil {
		return AggregatedVerdict{}, fmt.Errorf("ticket %s: %w", t.ID, err)
	}

	routeV := p.decider.Decide(toneV, valueV, t.Text())

	return AggregatedVerdict{
		TicketID: t.ID,
		Subject:  t.Subject,
		Tone:     toneV,
		Value:    valueV,
		Routing:  routeV,
	}, nil
}

// #endregion process
