package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/metrics"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/pipeline"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/route"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/ticket"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/tone"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/value"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleBatch() (metrics.BatchMetrics, []pipeline.AggregatedVerdict) {
	verdicts := []pipeline.AggregatedVerdict{
		{
			TicketID: "T-1",
			Subject:  "double charged",
			Tone:     tone.Verdict{IntensityScore: -0.5, Urgency: tone.UrgencyHigh},
			Value:    value.Verdict{ImportanceScore: 0.55, ResponseTargetHours: 24},
			Routing:  route.Verdict{Team: route.TeamBilling, Escalate: false},
		},
		{
			TicketID: "T-2",
			Subject:  "all good",
			Tone:     tone.Verdict{IntensityScore: 0.4, Urgency: tone.UrgencyLow},
			Value:    value.Verdict{ImportanceScore: 0.2, ResponseTargetHours: 48},
			Routing:  route.Verdict{Team: route.TeamTier1, Escalate: false},
		},
	}
	m := metrics.BatchMetrics{
		MeanIntensity:   -0.05,
		EscalationCount: 0,
		AverageSLAHours: 36,
		TeamDistribution: map[route.Team]int{
			route.TeamBilling: 1,
			route.TeamTier1:   1,
		},
		HighPriorityByTier: map[ticket.Tier]int{},
	}
	return m, verdicts
}

func TestSaveAndListBatch(t *testing.T) {
	s := tempDB(t)
	m, verdicts := sampleBatch()

	batchID, err := s.SaveBatch(m, verdicts, 1)
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if batchID == "" {
		t.Fatal("expected non-empty batch ID")
	}

	batches, err := s.ListBatches()
	if err != nil {
		t.Fatalf("ListBatches: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	b := batches[0]
	if b.BatchID != batchID {
		t.Errorf("batch ID: got %s, want %s", b.BatchID, batchID)
	}
	if b.TicketCount != 2 || b.FailureCount != 1 {
		t.Errorf("counts: got tickets=%d failures=%d", b.TicketCount, b.FailureCount)
	}
	if b.CreatedAt.IsZero() {
		t.Error("expected parsed created_at")
	}
	if !strings.Contains(b.MetricsJSON, `"escalation_count":0`) {
		t.Errorf("metrics JSON missing field: %s", b.MetricsJSON)
	}
}

func TestBatchVerdictsRoundTrip(t *testing.T) {
	s := tempDB(t)
	m, verdicts := sampleBatch()

	batchID, err := s.SaveBatch(m, verdicts, 0)
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}

	stored, err := s.BatchVerdicts(batchID)
	if err != nil {
		t.Fatalf("BatchVerdicts: %v", err)
	}
	if len(stored) != len(verdicts) {
		t.Fatalf("expected %d verdicts, got %d", len(verdicts), len(stored))
	}
	for i, sv := range stored {
		if sv.Position != i {
			t.Errorf("row %d: position %d", i, sv.Position)
		}
		want := verdicts[i]
		if sv.TicketID != want.TicketID || sv.Subject != want.Subject {
			t.Errorf("row %d identity mismatch: %+v", i, sv)
		}
		if sv.IntensityScore != want.Tone.IntensityScore || sv.Urgency != string(want.Tone.Urgency) {
			t.Errorf("row %d tone mismatch: %+v", i, sv)
		}
		if sv.ImportanceScore != want.Value.ImportanceScore || sv.ResponseTargetHours != want.Value.ResponseTargetHours {
			t.Errorf("row %d value mismatch: %+v", i, sv)
		}
		if sv.Team != string(want.Routing.Team) || sv.Escalate != want.Routing.Escalate {
			t.Errorf("row %d routing mismatch: %+v", i, sv)
		}
	}
}

func TestBatchVerdictsUnknownBatch(t *testing.T) {
	s := tempDB(t)
	stored, err := s.BatchVerdicts("no-such-batch")
	if err != nil {
		t.Fatalf("BatchVerdicts: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no rows, got %d", len(stored))
	}
}

func TestListBatchesEmpty(t *testing.T) {
	s := tempDB(t)
	batches, err := s.ListBatches()
	if err != nil {
		t.Fatalf("ListBatches: %v", err)
	}
	if len(batches) != 0 {
		t.Fatalf("expected no batches, got %d", len(batches))
	}
}
