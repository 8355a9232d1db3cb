package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture redirects stdout around fn and returns what was printed.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestLevels_IncludeTagAndMessage(t *testing.T) {
	out := capture(t, func() {
		Info("Catalog", "loading")
		Success("DB", "opened")
		Warn("Graph", "bad document")
		Error("Server", "bind failed")
	})

	for _, want := range []string{
		"INFO", "[Catalog]", "loading",
		"OK", "[DB]", "opened",
		"WARN", "[Graph]", "bad document",
		"ERROR", "[Server]", "bind failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestBanner(t *testing.T) {
	out := capture(t, func() {
		Banner("v1.2.3")
	})
	if !strings.Contains(out, "Isofarian Guard Companion") {
		t.Error("banner missing product name")
	}
	if !strings.Contains(out, "v1.2.3") {
		t.Error("banner missing version")
	}

	// Empty version is allowed for dev builds.
	out = capture(t, func() {
		Banner("")
	})
	if !strings.Contains(out, "Isofarian Guard Companion") {
		t.Error("dev banner missing product name")
	}
}

func TestSectionStatsServer(t *testing.T) {
	out := capture(t, func() {
		Section("Catalogs")
		Stats("enemies", 42)
		Server("127.0.0.1:13370")
	})
	if !strings.Contains(out, "Catalogs") {
		t.Error("output missing section name")
	}
	if !strings.Contains(out, "enemies") || !strings.Contains(out, "42") {
		t.Error("output missing stats pair")
	}
	if !strings.Contains(out, "http://127.0.0.1:13370") {
		t.Error("output missing server address")
	}
}
