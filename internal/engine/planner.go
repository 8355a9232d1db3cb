package engine

import (
	"isofar-companion/internal/catalog"
	"isofar-companion/internal/graph"
)

// Planner computes collection routes over the current map graph. It reads
// the catalogs but never mutates them; the graph is owned by the caller and
// may be edited between route computations.
type Planner struct {
	Catalog *catalog.Data
	Graph   *graph.Graph
}

func NewPlanner(data *catalog.Data, g *graph.Graph) *Planner {
	return &Planner{Catalog: data, Graph: g}
}

// ComputeRoute plans a collection route for every material of the named item,
// starting at startNode, at the given progression stage. It fails with
// UnreachableError when a material has no source at that stage, and with
// PathError when a source exists but cannot be walked to.
func (p *Planner) ComputeRoute(itemName, startNode, stage string) (*Route, error) {
	reqs, err := p.Requirements(itemName)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, ErrNoMaterials
	}

	sources := make(map[string][]string, len(reqs))
	var unreachable []string
	for _, req := range reqs {
		set := p.ResolveSources(req.Name, stage)
		if len(set) == 0 {
			unreachable = append(unreachable, req.Name)
			continue
		}
		sources[req.Name] = set
	}
	if len(unreachable) > 0 {
		return nil, &UnreachableError{Materials: unreachable}
	}

	stops, err := p.greedyStops(reqs, sources, startNode)
	if err != nil {
		return nil, err
	}
	p.twoOpt(startNode, stops)
	return p.finalize(startNode, reqs, stops), nil
}

// greedyStops builds the initial stop sequence by repeatedly walking to the
// globally nearest source of any uncollected material. Ties keep the first
// candidate found, scanning materials in requirement order and each source
// set in resolver order. Arriving at a node collects every uncollected
// material obtainable there, not just the one that chose the node.
func (p *Planner) greedyStops(reqs []MaterialRequirement, sources map[string][]string, startNode string) ([]RouteStop, error) {
	current := startNode
	collected := make(map[string]bool, len(reqs))
	var stops []RouteStop

	for len(collected) < len(reqs) {
		bestNode := ""
		bestDist := graph.Unreachable
		for _, req := range reqs {
			if collected[req.Name] {
				continue
			}
			for _, nid := range sources[req.Name] {
				d := p.Graph.Distance(current, nid)
				if d == graph.Unreachable {
					continue
				}
				if bestDist == graph.Unreachable || d < bestDist {
					bestDist = d
					bestNode = nid
				}
			}
		}
		if bestNode == "" {
			return nil, &PathError{From: current}
		}

		var bundle []string
		for _, req := range reqs {
			if collected[req.Name] {
				continue
			}
			for _, nid := range sources[req.Name] {
				if nid == bestNode {
					bundle = append(bundle, req.Name)
					break
				}
			}
		}
		for _, name := range bundle {
			collected[name] = true
		}
		stops = append(stops, RouteStop{NodeID: bestNode, Materials: bundle, DistFromPrev: bestDist})
		current = bestNode
	}
	return stops, nil
}

// twoOpt reverses stop sub-sequences while doing so strictly shortens the
// route, restarting the scan after each accepted reversal. Each reversal
// lowers a non-negative integer total, so this terminates.
func (p *Planner) twoOpt(startNode string, stops []RouteStop) {
	for improved := true; improved; {
		improved = false
	scan:
		for i := 0; i < len(stops)-1; i++ {
			for j := i + 1; j < len(stops); j++ {
				if p.tryReverse(startNode, stops, i, j) {
					improved = true
					break scan
				}
			}
		}
	}
}

// tryReverse compares the travel cost of stops[i..j] against its reversal,
// including the hops from the predecessor and to the successor, and applies
// the reversal when it is strictly cheaper.
func (p *Planner) tryReverse(startNode string, stops []RouteStop, i, j int) bool {
	before := startNode
	if i > 0 {
		before = stops[i-1].NodeID
	}

	oldCost, ok := p.segmentCost(before, stops, i, j, false)
	if !ok {
		return false
	}
	newCost, ok := p.segmentCost(before, stops, i, j, true)
	if !ok {
		return false
	}
	if j+1 < len(stops) {
		after := stops[j+1].NodeID
		d1 := p.Graph.Distance(stops[j].NodeID, after)
		d2 := p.Graph.Distance(stops[i].NodeID, after)
		if d1 == graph.Unreachable || d2 == graph.Unreachable {
			return false
		}
		oldCost += d1
		newCost += d2
	}
	if newCost >= oldCost {
		return false
	}
	for a, b := i, j; a < b; a, b = a+1, b-1 {
		stops[a], stops[b] = stops[b], stops[a]
	}
	return true
}

func (p *Planner) segmentCost(before string, stops []RouteStop, i, j int, reversed bool) (int, bool) {
	order := make([]string, 0, j-i+1)
	if reversed {
		for k := j; k >= i; k-- {
			order = append(order, stops[k].NodeID)
		}
	} else {
		for k := i; k <= j; k++ {
			order = append(order, stops[k].NodeID)
		}
	}
	total := 0
	prev := before
	for _, nid := range order {
		d := p.Graph.Distance(prev, nid)
		if d == graph.Unreachable {
			return 0, false
		}
		total += d
		prev = nid
	}
	return total, true
}

// finalize recomputes per-stop distances after 2-opt, sums the total, and
// expands the walked path by concatenating the shortest paths between
// consecutive stops, dropping the duplicated junction node at each boundary.
func (p *Planner) finalize(startNode string, reqs []MaterialRequirement, stops []RouteStop) *Route {
	total := 0
	prev := startNode
	for i := range stops {
		stops[i].DistFromPrev = p.Graph.Distance(prev, stops[i].NodeID)
		total += stops[i].DistFromPrev
		prev = stops[i].NodeID
	}

	var fullPath []string
	prev = startNode
	for _, s := range stops {
		seg, ok := p.Graph.PathBetween(prev, s.NodeID)
		if ok {
			if len(fullPath) > 0 {
				seg = seg[1:]
			}
			fullPath = append(fullPath, seg...)
		}
		prev = s.NodeID
	}

	return &Route{
		Start:         startNode,
		Stops:         stops,
		TotalDistance: total,
		FullPath:      fullPath,
		Requirements:  reqs,
	}
}
