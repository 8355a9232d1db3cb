package db

import (
	"time"

	"isofar-companion/internal/graph"
	"isofar-companion/internal/logger"
)

// SaveGraph persists the whole graph document, replacing any previous one.
// Persistence is atomic at document granularity; there are no partial writes.
func (d *DB) SaveGraph(g *graph.Graph) error {
	data, err := g.Encode()
	if err != nil {
		return err
	}
	_, err = d.sql.Exec(
		`INSERT INTO graph_store (id, document, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		string(data), time.Now().Format(time.RFC3339),
	)
	return err
}

// LoadGraph returns the persisted graph, or the built-in default when nothing
// was saved yet or the stored document fails validation. A bad document is
// discarded in its entirety, never partially adopted.
func (d *DB) LoadGraph() *graph.Graph {
	var doc string
	if err := d.sql.QueryRow("SELECT document FROM graph_store WHERE id = 1").Scan(&doc); err != nil {
		return graph.Default()
	}
	g, err := graph.Decode([]byte(doc))
	if err != nil {
		logger.Warn("DB", "Stored graph failed validation, using default: "+err.Error())
		return graph.Default()
	}
	return g
}

// ResetGraph drops the persisted graph so the next load returns the default.
func (d *DB) ResetGraph() error {
	_, err := d.sql.Exec("DELETE FROM graph_store WHERE id = 1")
	return err
}
