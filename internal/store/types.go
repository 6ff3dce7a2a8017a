package store

import "time"

// #region batch-summary
// BatchSummary is one stored batch run row.
type BatchSummary struct {
	BatchID      string
	TicketCount  int
	FailureCount int
	MetricsJSON  string
	CreatedAt    time.Time
}

// #endregion batch-summary

// #region stored-verdict
// StoredVerdict is one verdict row read back from disk, flattened to the
// stable field names of the serialized contract.
type StoredVerdict struct {
	Position            int
	TicketID            string
	Subject             string
	IntensityScore      float64
	Urgency             string
	ImportanceScore     float64
	ResponseTargetHours int
	Team                string
	Escalate            bool
}

// #endregion stored-verdict
