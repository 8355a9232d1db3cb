package db

import (
	"encoding/json"
	"time"

	"isofar-companion/internal/engine"
)

// RouteRecord is one computed-route history entry.
type RouteRecord struct {
	ID            int64           `json:"id"`
	Timestamp     string          `json:"timestamp"`
	Item          string          `json:"item"`
	StartNode     string          `json:"startNode"`
	Stage         string          `json:"stage"`
	StopCount     int             `json:"stopCount"`
	TotalDistance int             `json:"totalDistance"`
	Route         json.RawMessage `json:"route"`
}

// InsertRoute records a computed route and returns its ID.
func (d *DB) InsertRoute(item, stage string, route *engine.Route) int64 {
	routeJSON, _ := json.Marshal(route)
	result, err := d.sql.Exec(
		`INSERT INTO route_history (timestamp, item, start_node, stage, stop_count, total_distance, route_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339), item, route.Start, stage,
		len(route.Stops), route.TotalDistance, string(routeJSON),
	)
	if err != nil {
		return 0
	}
	id, _ := result.LastInsertId()
	return id
}

// GetRoutes returns the last N route history records (newest first).
func (d *DB) GetRoutes(limit int) []RouteRecord {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.Query(
		`SELECT id, timestamp, item, start_node, stage, stop_count, total_distance, route_json
		 FROM route_history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return []RouteRecord{}
	}
	defer rows.Close()

	var records []RouteRecord
	for rows.Next() {
		var r RouteRecord
		var routeStr string
		rows.Scan(&r.ID, &r.Timestamp, &r.Item, &r.StartNode, &r.Stage, &r.StopCount, &r.TotalDistance, &routeStr)
		r.Route = json.RawMessage(routeStr)
		records = append(records, r)
	}
	if records == nil {
		return []RouteRecord{}
	}
	return records
}

// DeleteRoute deletes one route history record.
func (d *DB) DeleteRoute(id int64) error {
	_, err := d.sql.Exec("DELETE FROM route_history WHERE id = ?", id)
	return err
}

// ClearRoutes deletes all route history records, returning how many went.
func (d *DB) ClearRoutes() (int64, error) {
	result, err := d.sql.Exec("DELETE FROM route_history")
	if err != nil {
		return 0, err
	}
	count, _ := result.RowsAffected()
	return count, nil
}
