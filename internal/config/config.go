package config

// Config holds planner settings (in-memory representation).
// Persistence is handled by internal/db package.
type Config struct {
	// StartNode is the node id the player usually plans routes from.
	StartNode string `json:"start_node"`
	// Stage is the current game-progression chapter ("1".."4").
	Stage string `json:"stage"`
	// HistoryLimit caps how many computed routes are kept in the history table.
	HistoryLimit int `json:"history_limit"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		StartNode:    "fort_istra",
		Stage:        "1",
		HistoryLimit: 50,
	}
}
