package db

import (
	"strconv"

	"isofar-companion/internal/config"
)

// LoadConfig reads config from SQLite. Missing keys keep their defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}

	if v, ok := m["start_node"]; ok {
		cfg.StartNode = v
	}
	if v, ok := m["stage"]; ok {
		cfg.Stage = v
	}
	if v, ok := m["history_limit"]; ok {
		cfg.HistoryLimit, _ = strconv.Atoi(v)
	}
	return cfg
}

// SaveConfig writes all config values to SQLite.
func (d *DB) SaveConfig(cfg *config.Config) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	set := func(k, v string) {
		tx.Exec(
			`INSERT INTO config (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			k, v,
		)
	}
	set("start_node", cfg.StartNode)
	set("stage", cfg.Stage)
	set("history_limit", strconv.Itoa(cfg.HistoryLimit))
	return tx.Commit()
}
