package store

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/metrics"
	"github.com/NisargaKumar/Customer-Ticket-Analyzer/internal/pipeline"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS batch_runs (
	batch_id      TEXT PRIMARY KEY,
	ticket_count  INTEGER NOT NULL,
	failure_count INTEGER NOT NULL,
	metrics_json  TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS verdicts (
	id                    INTEGER PRIMARY KEY AUTOINCREMENT,
	batch_id              TEXT NOT NULL,
	position              INTEGER NOT NULL,
	ticket_id             TEXT NOT NULL,
	subject               TEXT NOT NULL,
	intensity_score       REAL NOT NULL,
	urgency_level         TEXT NOT NULL,
	importance_score      REAL NOT NULL,
	response_target_hours INTEGER NOT NULL,
	team                  TEXT NOT NULL,
	escalate              INTEGER NOT NULL,
	FOREIGN KEY (batch_id) REFERENCES batch_runs(batch_id)
);
`

// #endregion schema

// #region store-struct

// Store persists batch runs and their verdicts in SQLite. This is the
// disk half of the output boundary; the scoring pipeline itself performs
// no I/O.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region save-batch

// SaveBatch writes one completed batch run: the summary row plus one
// verdict row per ticket, in processing order. Returns the new batch ID.
func (s *Store) SaveBatch(m metrics.BatchMetrics, verdicts []pipeline.AggregatedVerdict, failureCount int) (string, error) {
	batchID := uuid.New().String()
	now := time.Now().UTC()

	metricsJSON, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO batch_runs (batch_id, ticket_count, failure_count, metrics_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		batchID, len(verdicts), failureCount, string(metricsJSON), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert batch run: %w", err)
	}

	for i, v := range verdicts {
		_, err = tx.Exec(
			`INSERT INTO verdicts (batch_id, position, ticket_id, subject, intensity_score,
			                       urgency_level, importance_score, response_target_hours, team, escalate)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			batchID, i, v.TicketID, v.Subject,
			v.Tone.IntensityScore, string(v.Tone.Urgency),
			v.Value.ImportanceScore, v.Value.ResponseTargetHours,
			string(v.Routing.Team), boolToInt(v.Routing.Escalate),
		)
		if err != nil {
			return "", fmt.Errorf("insert verdict %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return batchID, nil
}

// #endregion save-batch

// #region list-batches

// ListBatches returns summaries of all stored runs, newest first.
func (s *Store) ListBatches() ([]BatchSummary, error) {
	rows, err := s.db.Query(
		`SELECT batch_id, ticket_count, failure_count, metrics_json, created_at
		 FROM batch_runs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var out []BatchSummary
	for rows.Next() {
		var b BatchSummary
		var createdAt string
		if err := rows.Scan(&b.BatchID, &b.TicketCount, &b.FailureCount, &b.MetricsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// #endregion list-batches

// #region batch-verdicts

// BatchVerdicts returns the stored verdicts for one run in processing
// order.
func (s *Store) BatchVerdicts(batchID string) ([]StoredVerdict, error) {
	rows, err := s.db.Query(
		`SELECT position, ticket_id, subject, intensity_score, urgency_level,
		        importance_score, response_target_hours, team, escalate
		 FROM verdicts WHERE batch_id = ? ORDER BY position ASC`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("query verdicts: %w", err)
	}
	defer rows.Close()

	var out []StoredVerdict
	for rows.Next() {
		var v StoredVerdict
		var escalate int
		if err := rows.Scan(&v.Position, &v.TicketID, &v.Subject, &v.IntensityScore, &v.Urgency,
			&v.ImportanceScore, &v.ResponseTargetHours, &v.Team, &escalate); err != nil {
			return nil, fmt.Errorf("scan verdict: %w", err)
		}
		v.Escalate = escalate != 0
		out = append(out, v)
	}
	return out, rows.Err()
}

// #endregion batch-verdicts

// #region helpers

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
