package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/config"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/fixture"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/metrics"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/pipeline"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/route"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/store"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/tone"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/value"
)

// #endregion

// #region main

func main() {
	configPath := flag.String("config", envOr("TRIAGE_CONFIG", ""), "path to config YAML (optional)")
	ticketsPath := flag.String("tickets", "", "path to ticket batch JSON (default: built-in demo batch)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	batch := fixture.Sample()
	if *ticketsPath != "" {
		batch, err = fixture.Load(*ticketsPath)
		if err != nil {
			log.Fatalf("load tickets: %v", err)
		}
	}

	if err := run(cfg, batch); err != nil {
		log.Fatalf("%v", err)
	}
}

// #endregion main

// #region run

func run(cfg *config.Config, batch fixture.Batch) error {
	p := pipeline.New(
		tone.NewAssessor(cfg.Tone, nil),
		value.NewAssessor(cfg.Value),
		route.NewDecider(cfg.Route),
	)

	log.Printf("[TRIAGE] processing %d tickets (%s)", len(batch.Tickets), batch.Description)
	result := p.ProcessBatch(batch.Tickets)

	for _, v := range result.Verdicts {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal verdict: %w", err)
		}
		fmt.Printf("=== Ticket %s ===\n%s\n", v.TicketID, out)
	}
	for _, f := range result.Failures {
		fmt.Printf("=== Ticket %s SKIPPED: %v\n", f.TicketID, f.Err)
	}

	if len(result.Verdicts) == 0 {
		return fmt.Errorf("no tickets scored (%d failed)", len(result.Failures))
	}

	agg := metrics.NewAggregator(cfg.Metrics)
	m, err := agg.Summarize(result.Verdicts, result.Tickets)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	fmt.Printf("=== Batch metrics (%d scored, %d skipped) ===\n%s\n",
		len(result.Verdicts), len(result.Failures), out)

	if cfg.Store.Path != "" {
		st, err := store.NewStore(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		batchID, err := st.SaveBatch(m, result.Verdicts, len(result.Failures))
		if err != nil {
			return fmt.Errorf("save batch: %w", err)
		}
		log.Printf("[TRIAGE] saved batch %s to %s", batchID, cfg.Store.Path)
	}
	return nil
}

// #endregion run

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
