package main

// #region imports
import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/store"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to triage results db")
	batchID := flag.String("batch", "", "show verdicts for one batch")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/triage.db [--batch id]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *batchID != "" {
		err = runVerdictMode(st, *batchID)
	} else {
		err = runListMode(st)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(st *store.Store) error {
	batches, err := st.ListBatches()
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		fmt.Println("no batch runs stored")
		return nil
	}
	for _, b := range batches {
		fmt.Printf("%s  %s  tickets=%d failures=%d\n",
			b.BatchID, b.CreatedAt.Format(time.RFC3339), b.TicketCount, b.FailureCount)
		fmt.Printf("  metrics: %s\n", b.MetricsJSON)
	}
	return nil
}

// #endregion list-mode

// #region verdict-mode

func runVerdictMode(st *store.Store, batchID string) error {
	verdicts, err := st.BatchVerdicts(batchID)
	if err != nil {
		return err
	}
	if len(verdicts) == 0 {
		return fmt.Errorf("no verdicts for batch %s", batchID)
	}
	for _, v := range verdicts {
		fmt.Printf("%3d  %-12s  intensity=%+.2f urgency=%-6s importance=%.2f sla=%dh team=%-9s escalate=%v\n",
			v.Position, v.TicketID, v.IntensityScore, v.Urgency,
			v.ImportanceScore, v.ResponseTargetHours, v.Team, v.Escalate)
		fmt.Printf("     %s\n", v.Subject)
	}
	return nil
}

// #endregion verdict-mode
