package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.StartNode != "fort_istra" {
		t.Errorf("StartNode = %q, want fort_istra", cfg.StartNode)
	}
	if cfg.Stage != "1" {
		t.Errorf("Stage = %q, want 1", cfg.Stage)
	}
	if cfg.HistoryLimit <= 0 {
		t.Errorf("HistoryLimit = %d, want > 0", cfg.HistoryLimit)
	}
}
