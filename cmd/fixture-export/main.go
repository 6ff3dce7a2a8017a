package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/fixture"
)

// #endregion

// #region main

func main() {
	outPath := flag.String("out", "", "output ticket batch JSON path")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/tickets.json")
		os.Exit(2)
	}

	if err := run(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run writes the built-in demo batch as a starting point for custom
// fixtures.
func run(outPath string) error {
	batch := fixture.Sample()
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("wrote %d tickets to %s\n", len(batch.Tickets), outPath)
	return nil
}

// #endregion export
