package pipeline

// #region imports
import (
	"log"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
)

// #endregion

// #region batch-types

// Failure records one ticket the pipeline could not score.
type Failure struct {
	TicketID string
	Err      error
}

// BatchResult pairs the ordered verdicts with their originating tickets
// (same length, same order — the metrics aggregator correlates them
// positionally) and every individual failure. Failed tickets are counted
// separately so metrics are never silently computed over an unflagged
// partial batch.
type BatchResult struct {
	Verdicts []AggregatedVerdict
	Tickets  []ticket.Record
	Failures []Failure
}

// #endregion batch-types

// #region process-batch

// ProcessBatch scores each ticket in input order. Tickets that fail with
// an InvalidInput condition are skipped and reported, and the batch
// continues; output order matches input order for the tickets that
// succeed.
func (p *Pipeline) ProcessBatch(tickets []ticket.Record) BatchResult {
	result := BatchResult{}
	for _, t := range tickets {
		v, err := p.Process(t)
		if err != nil {
			log.Printf("[PIPE] skipping %s: %v", t.ID, err)
			result.Failures = append(result.Failures, Failure{TicketID: t.ID, Err: err})
			continue
		}
		log.Printf("[PIPE] %s: intensity=%.2f urgency=%s importance=%.2f team=%s escalate=%v",
			t.ID, v.Tone.IntensityScore, v.Tone.Urgency,
			v.Value.ImportanceScore, v.Routing.Team, v.Routing.Escalate)
		result.Verdicts = append(result.Verdicts, v)
		result.Tickets = append(result.Tickets, t)
	}
	return result
}

// #endregion process-batch
