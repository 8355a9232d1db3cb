package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"isofar-companion/internal/api"
	"isofar-companion/internal/catalog"
	"isofar-companion/internal/db"
	"isofar-companion/internal/logger"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13370, "HTTP server port")
	flag.Parse()

	logger.Banner(version)

	wd, _ := os.Getwd()
	dataDir := filepath.Join(wd, "data")
	os.MkdirAll(dataDir, 0755)

	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	cfg := database.LoadConfig()

	data, err := catalog.Load(dataDir)
	if err != nil {
		logger.Error("Catalog", fmt.Sprintf("Load failed: %v", err))
		os.Exit(1)
	}

	// Saved graph, or the built-in default when none (or a bad one) is stored.
	g := database.LoadGraph()

	logger.Section("Loaded data")
	logger.Stats("enemies", len(data.Enemies))
	logger.Stats("craftable items", len(data.Equipment)+len(data.Accessories)+len(data.Buildings))
	logger.Stats("market entries", len(data.Market))
	logger.Stats("map nodes", g.NodeCount())
	logger.Stats("map edges", g.EdgeCount())

	srv := api.NewServer(cfg, data, g, database)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}
