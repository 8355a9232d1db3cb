package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"isofar-companion/internal/graph"
	"isofar-companion/internal/logger"
)

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	data, err := s.graph.Encode()
	s.mu.RUnlock()
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleExportGraph emits the graph formatted for promotion into the built-in
// default map by hand.
func (s *Server) handleExportGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	data, err := s.graph.Export()
	s.mu.RUnlock()
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="map_graph.json"`)
	w.Write(data)
}

// handleImportGraph replaces the whole graph with a validated document. An
// invalid document is rejected outright; the current graph stays untouched.
func (s *Server) handleImportGraph(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "read body: "+err.Error())
		return
	}
	g, err := graph.Decode(body)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	s.mu.Lock()
	s.graph = g
	s.planner.Graph = g
	s.mu.Unlock()

	s.persistGraph()
	logger.Success("Graph", "Imported graph")
	s.writeGraphSummary(w)
}

func (s *Server) handleResetGraph(w http.ResponseWriter, r *http.Request) {
	g := graph.Default()

	s.mu.Lock()
	s.graph = g
	s.planner.Graph = g
	s.mu.Unlock()

	if s.db != nil {
		s.db.ResetGraph()
	}
	logger.Info("Graph", "Reset to default map")
	s.writeGraphSummary(w)
}

type nodeRequest struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	graph.Node
}

func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	s.mu.Lock()
	err := s.graph.AddNode(req.ID, req.X, req.Y, req.Node)
	s.mu.Unlock()
	if err != nil {
		writeEditError(w, err)
		return
	}

	s.persistGraph()
	s.writeGraphSummary(w)
}

func (s *Server) handleMoveNode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	s.mu.Lock()
	err := s.graph.MoveNode(r.PathValue("id"), req.X, req.Y)
	s.mu.Unlock()
	if err != nil {
		writeEditError(w, err)
		return
	}

	s.persistGraph()
	s.writeGraphSummary(w)
}

func (s *Server) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.graph.DeleteNode(r.PathValue("id"))
	s.mu.Unlock()
	if err != nil {
		writeEditError(w, err)
		return
	}

	s.persistGraph()
	s.writeGraphSummary(w)
}

func (s *Server) handleToggleEdge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		A string `json:"a"`
		B string `json:"b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	s.mu.Lock()
	err := s.graph.ToggleEdge(req.A, req.B)
	s.mu.Unlock()
	if err != nil {
		writeEditError(w, err)
		return
	}

	s.persistGraph()
	s.writeGraphSummary(w)
}

func writeEditError(w http.ResponseWriter, err error) {
	var ee *graph.EditError
	if errors.As(err, &ee) {
		writeError(w, 400, ee.Error())
		return
	}
	writeError(w, 500, err.Error())
}

// persistGraph saves the current graph best-effort; a failed save never rolls
// back the in-memory edit.
func (s *Server) persistGraph() {
	if s.db == nil {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.db.SaveGraph(s.graph); err != nil {
		logger.Warn("Graph", "Persist failed: "+err.Error())
	}
}

func (s *Server) writeGraphSummary(w http.ResponseWriter) {
	s.mu.RLock()
	nodes := s.graph.NodeCount()
	edges := s.graph.EdgeCount()
	s.mu.RUnlock()
	writeJSON(w, map[string]int{"nodes": nodes, "edges": edges})
}
