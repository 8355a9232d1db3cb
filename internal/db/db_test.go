package db

import (
	"database/sql"
	"testing"

	"isofar-companion/internal/engine"
	"isofar-companion/internal/graph"

	_ "modernc.org/sqlite"
)

// openTestDB opens an in-memory SQLite DB and runs migrations (for testing only).
func openTestDB(t *testing.T) *DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		t.Fatalf("migrate: %v", err)
	}
	return d
}

func TestDB_GraphRoundTrip(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	g := graph.New()
	if err := g.AddNode("camp", 100, 200, graph.Node{Name: "Camp"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode("ford", 300, 200, graph.Node{}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.ToggleEdge("camp", "ford"); err != nil {
		t.Fatalf("ToggleEdge: %v", err)
	}
	if err := d.SaveGraph(g); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}

	loaded := d.LoadGraph()
	if loaded.NodeCount() != 2 || loaded.EdgeCount() != 1 {
		t.Errorf("loaded %d nodes / %d edges, want 2 / 1", loaded.NodeCount(), loaded.EdgeCount())
	}
	n, ok := loaded.Node("camp")
	if !ok || n.Name != "Camp" {
		t.Errorf("node camp = %+v, want name Camp", n)
	}
}

func TestDB_LoadGraph_EmptyReturnsDefault(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	g := d.LoadGraph()
	if !g.Has("fort_istra") {
		t.Error("expected the default graph when nothing was saved")
	}
}

func TestDB_LoadGraph_CorruptFallsBackToDefault(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	// A document with no edges array must be rejected wholesale.
	_, err := d.sql.Exec(
		"INSERT INTO graph_store (id, document, updated_at) VALUES (1, ?, '')",
		`{"nodes": {"camp": {"x": 1, "y": 2}}}`,
	)
	if err != nil {
		t.Fatalf("seed corrupt document: %v", err)
	}

	g := d.LoadGraph()
	if g.Has("camp") {
		t.Error("corrupt document was partially adopted")
	}
	if !g.Has("fort_istra") {
		t.Error("expected fallback to the default graph")
	}
}

func TestDB_ResetGraph(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	g := graph.New()
	if err := g.AddNode("camp", 1, 2, graph.Node{}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := d.SaveGraph(g); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}
	if err := d.ResetGraph(); err != nil {
		t.Fatalf("ResetGraph: %v", err)
	}
	if d.LoadGraph().Has("camp") {
		t.Error("reset graph still has saved node")
	}
}

func TestDB_ConfigRoundTrip(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	cfg := d.LoadConfig()
	if cfg.StartNode != "fort_istra" || cfg.Stage != "1" {
		t.Errorf("defaults = %+v, want fort_istra / stage 1", cfg)
	}

	cfg.StartNode = "mir"
	cfg.Stage = "3"
	cfg.HistoryLimit = 10
	if err := d.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded := d.LoadConfig()
	if loaded.StartNode != "mir" || loaded.Stage != "3" || loaded.HistoryLimit != 10 {
		t.Errorf("loaded = %+v, want mir / 3 / 10", loaded)
	}
}

func TestDB_RouteHistoryRoundTrip(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	route := &engine.Route{
		Start:         "fort_istra",
		Stops:         []engine.RouteStop{{NodeID: "7", Materials: []string{"Iron"}, DistFromPrev: 3}},
		TotalDistance: 3,
		FullPath:      []string{"fort_istra", "6", "7"},
	}
	id := d.InsertRoute("Iron Sword", "1", route)
	if id <= 0 {
		t.Fatal("InsertRoute returned 0")
	}

	records := d.GetRoutes(5)
	if len(records) != 1 {
		t.Fatalf("GetRoutes(5) len = %d, want 1", len(records))
	}
	r := records[0]
	if r.Item != "Iron Sword" || r.Stage != "1" || r.StartNode != "fort_istra" {
		t.Errorf("record = %+v, want Iron Sword / 1 / fort_istra", r)
	}
	if r.StopCount != 1 || r.TotalDistance != 3 {
		t.Errorf("stops/distance = %d/%d, want 1/3", r.StopCount, r.TotalDistance)
	}

	if err := d.DeleteRoute(id); err != nil {
		t.Fatalf("DeleteRoute: %v", err)
	}
	if got := d.GetRoutes(5); len(got) != 0 {
		t.Errorf("after delete, %d records remain", len(got))
	}
}

func TestDB_ClearRoutes(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	route := &engine.Route{Start: "mir"}
	d.InsertRoute("Iron Sword", "1", route)
	d.InsertRoute("Steel Sword", "2", route)

	count, err := d.ClearRoutes()
	if err != nil {
		t.Fatalf("ClearRoutes: %v", err)
	}
	if count != 2 {
		t.Errorf("cleared %d, want 2", count)
	}
}
