package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"isofar-companion/internal/catalog"
	"isofar-companion/internal/config"
	"isofar-companion/internal/db"
	"isofar-companion/internal/engine"
	"isofar-companion/internal/graph"
)

// Server is the HTTP API server that connects the catalogs, the planner, and
// the database. The graph is the only mutable shared state: editor handlers
// take the write lock, route and read handlers the read lock.
type Server struct {
	cfg  *config.Config
	data *catalog.Data
	db   *db.DB

	mu      sync.RWMutex
	graph   *graph.Graph
	planner *engine.Planner
}

// NewServer creates a Server over the given catalogs, graph, and database.
// database may be nil; then config and history are in-memory only.
func NewServer(cfg *config.Config, data *catalog.Data, g *graph.Graph, database *db.DB) *Server {
	return &Server{
		cfg:     cfg,
		data:    data,
		db:      database,
		graph:   g,
		planner: engine.NewPlanner(data, g),
	}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)
	mux.HandleFunc("GET /api/items", s.handleItems)
	mux.HandleFunc("GET /api/materials", s.handleMaterials)
	mux.HandleFunc("GET /api/materials/sources", s.handleMaterialSources)
	mux.HandleFunc("POST /api/route", s.handleRoute)
	mux.HandleFunc("GET /api/route/history", s.handleRouteHistory)
	mux.HandleFunc("DELETE /api/route/history/{id}", s.handleDeleteRouteHistory)
	mux.HandleFunc("POST /api/route/history/clear", s.handleClearRouteHistory)
	mux.HandleFunc("GET /api/graph", s.handleGetGraph)
	mux.HandleFunc("POST /api/graph", s.handleImportGraph)
	mux.HandleFunc("GET /api/graph/export", s.handleExportGraph)
	mux.HandleFunc("POST /api/graph/reset", s.handleResetGraph)
	mux.HandleFunc("POST /api/graph/node", s.handleAddNode)
	mux.HandleFunc("PUT /api/graph/node/{id}", s.handleMoveNode)
	mux.HandleFunc("DELETE /api/graph/node/{id}", s.handleDeleteNode)
	mux.HandleFunc("POST /api/graph/edge", s.handleToggleEdge)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	nodes := s.graph.NodeCount()
	edges := s.graph.EdgeCount()
	s.mu.RUnlock()

	writeJSON(w, map[string]interface{}{
		"enemies":     len(s.data.Enemies),
		"equipment":   len(s.data.Equipment),
		"accessories": len(s.data.Accessories),
		"buildings":   len(s.data.Buildings),
		"market":      len(s.data.Market),
		"graph_nodes": nodes,
		"graph_edges": edges,
	})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	cfg := *s.cfg
	s.mu.RUnlock()
	writeJSON(w, cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	s.mu.Lock()
	if cfg.StartNode != "" {
		s.cfg.StartNode = cfg.StartNode
	}
	if cfg.Stage != "" {
		s.cfg.Stage = cfg.Stage
	}
	if cfg.HistoryLimit > 0 {
		s.cfg.HistoryLimit = cfg.HistoryLimit
	}
	updated := *s.cfg
	s.mu.Unlock()
	if s.db != nil {
		s.db.SaveConfig(&updated)
	}
	writeJSON(w, updated)
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	names := s.planner.ItemNames()
	s.mu.RUnlock()
	writeJSON(w, map[string][]string{"items": names})
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string][]string{"materials": s.data.MaterialNames()})
}
