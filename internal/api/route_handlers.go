package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"isofar-companion/internal/engine"
	"isofar-companion/internal/logger"
)

type routeRequest struct {
	Item  string `json:"item"`
	Start string `json:"start"`
	Stage string `json:"stage"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if req.Item == "" {
		writeError(w, 400, "item is required")
		return
	}
	s.mu.RLock()
	if req.Start == "" {
		req.Start = s.cfg.StartNode
	}
	if req.Stage == "" {
		req.Stage = s.cfg.Stage
	}
	if !s.graph.Has(req.Start) {
		s.mu.RUnlock()
		writeError(w, 400, "unknown start node "+req.Start)
		return
	}
	route, err := s.planner.ComputeRoute(req.Item, req.Start, req.Stage)
	s.mu.RUnlock()

	if err != nil {
		var le *engine.LookupError
		var ue *engine.UnreachableError
		var pe *engine.PathError
		switch {
		case errors.As(err, &le):
			writeError(w, 404, le.Error())
		case errors.As(err, &ue), errors.As(err, &pe), errors.Is(err, engine.ErrNoMaterials):
			writeError(w, 422, err.Error())
		default:
			writeError(w, 500, err.Error())
		}
		return
	}

	if s.db != nil {
		s.db.InsertRoute(req.Item, req.Stage, route)
	}
	logger.Info("Route", req.Item+" from "+req.Start+": "+
		strconv.Itoa(len(route.Stops))+" stops, "+strconv.Itoa(route.TotalDistance)+" hops")
	writeJSON(w, route)
}

func (s *Server) handleMaterialSources(w http.ResponseWriter, r *http.Request) {
	material := r.URL.Query().Get("material")
	if material == "" {
		writeError(w, 400, "material is required")
		return
	}
	stage := r.URL.Query().Get("stage")

	s.mu.RLock()
	if stage == "" {
		stage = s.cfg.Stage
	}
	sources := s.planner.ResolveSources(material, stage)
	s.mu.RUnlock()

	if sources == nil {
		sources = []string{}
	}
	writeJSON(w, map[string]interface{}{
		"material": material,
		"stage":    stage,
		"sources":  sources,
	})
}

func (s *Server) handleRouteHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, []struct{}{})
		return
	}
	s.mu.RLock()
	limit := s.cfg.HistoryLimit
	s.mu.RUnlock()
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	writeJSON(w, s.db.GetRoutes(limit))
}

func (s *Server) handleDeleteRouteHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, 503, "no database")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, 400, "invalid id")
		return
	}
	if err := s.db.DeleteRoute(id); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleClearRouteHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, 503, "no database")
		return
	}
	count, err := s.db.ClearRoutes()
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, map[string]int64{"cleared": count})
}
