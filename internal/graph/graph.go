package graph

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Map bounds in map pixels (the traced map-of-isofar image).
const (
	MapWidth  = 3000
	MapHeight = 4511
)

// Node kinds. A node with an empty kind is a plain numbered waypoint.
const (
	KindTown    = "town"
	KindSpecial = "special"
)

// Node is a point on the world map: a town, a named special area, or a
// numbered waypoint. Stages/Enemies/Resources are derived metadata describing
// what can be found there.
type Node struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Name      string   `json:"name,omitempty"`
	Kind      string   `json:"kind,omitempty"`
	Stages    []string `json:"stages,omitempty"`
	Enemies   []string `json:"enemies,omitempty"`
	Resources []string `json:"resources,omitempty"`
}

// Graph is the owning aggregate of all map nodes and edges. Edges are
// undirected and simple; Edges holds them in declaration order, which drives
// the deterministic adjacency iteration order of the distance engine.
type Graph struct {
	nodes map[string]*Node
	edges [][2]string

	dist *distCache
}

// EditError is an invalid mutation request: duplicate id, bad characters,
// out-of-bounds position, missing endpoint, or a self-loop edge. The graph is
// left unchanged.
type EditError struct {
	Op  string
	Msg string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// ValidationError is a malformed persisted/imported graph document. The
// document is rejected wholesale, never partially adopted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid graph: " + e.Msg
}

var nodeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_ \-]+$`)

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		dist:  newDistCache(),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Has reports whether a node with the given id exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns the node store. Callers must not mutate it; all structural
// changes go through the editor operations so the distance cache stays honest.
func (g *Graph) Nodes() map[string]*Node { return g.nodes }

// Edges returns the edge list in declaration order.
func (g *Graph) Edges() [][2]string { return g.edges }

// AddNode creates a node at (x, y). The id must be new, contain only letters,
// digits, spaces, hyphens and underscores, and the position must fall within
// the map bounds. An id or display name matching a known town or special area
// is normalized to its canonical id, name and kind. Remaining metadata fields
// from meta are copied onto the new node.
func (g *Graph) AddNode(id string, x, y float64, meta Node) error {
	if id == "" || !nodeIDPattern.MatchString(id) {
		return &EditError{Op: "add node", Msg: fmt.Sprintf("id %q may only contain letters, digits, spaces, hyphens and underscores", id)}
	}
	if cid, name, kind, ok := canonicalPlace(id); ok {
		id = cid
		if meta.Name == "" {
			meta.Name = name
		}
		if meta.Kind == "" {
			meta.Kind = kind
		}
	}
	if _, exists := g.nodes[id]; exists {
		return &EditError{Op: "add node", Msg: fmt.Sprintf("node %q already exists", id)}
	}
	if !inBounds(x, y) {
		return &EditError{Op: "add node", Msg: fmt.Sprintf("position (%g, %g) is outside the map", x, y)}
	}
	n := &Node{
		X:         x,
		Y:         y,
		Name:      meta.Name,
		Kind:      meta.Kind,
		Stages:    meta.Stages,
		Enemies:   meta.Enemies,
		Resources: meta.Resources,
	}
	g.nodes[id] = n
	g.dist.invalidate()
	return nil
}

// MoveNode updates a node's position only.
func (g *Graph) MoveNode(id string, x, y float64) error {
	n, ok := g.nodes[id]
	if !ok {
		return &EditError{Op: "move node", Msg: fmt.Sprintf("no node %q", id)}
	}
	if !inBounds(x, y) {
		return &EditError{Op: "move node", Msg: fmt.Sprintf("position (%g, %g) is outside the map", x, y)}
	}
	n.X, n.Y = x, y
	g.dist.invalidate()
	return nil
}

// DeleteNode removes a node and every edge incident to it.
func (g *Graph) DeleteNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return &EditError{Op: "delete node", Msg: fmt.Sprintf("no node %q", id)}
	}
	delete(g.nodes, id)
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e[0] != id && e[1] != id {
			kept = append(kept, e)
		}
	}
	g.edges = kept
	g.dist.invalidate()
	return nil
}

// ToggleEdge removes the edge between a and b if one exists in either
// orientation, otherwise adds it. Applying it twice restores the edge set.
func (g *Graph) ToggleEdge(a, b string) error {
	if a == b {
		return &EditError{Op: "toggle edge", Msg: fmt.Sprintf("self-loop on %q", a)}
	}
	if _, ok := g.nodes[a]; !ok {
		return &EditError{Op: "toggle edge", Msg: fmt.Sprintf("no node %q", a)}
	}
	if _, ok := g.nodes[b]; !ok {
		return &EditError{Op: "toggle edge", Msg: fmt.Sprintf("no node %q", b)}
	}
	for i, e := range g.edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			g.dist.invalidate()
			return nil
		}
	}
	g.edges = append(g.edges, [2]string{a, b})
	g.dist.invalidate()
	return nil
}

func inBounds(x, y float64) bool {
	return x >= 0 && x <= MapWidth && y >= 0 && y <= MapHeight
}

// document is the persistence/export shape of a graph.
type document struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges [][]string       `json:"edges"`
}

// nodeDoc shadows Node for validation: pointers distinguish a missing
// coordinate from a zero one.
type nodeDoc struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Name      *string  `json:"name"`
	Kind      string   `json:"kind"`
	Stages    []string `json:"stages"`
	Enemies   []string `json:"enemies"`
	Resources []string `json:"resources"`
}

// Decode parses and validates a persisted graph document. A malformed
// document yields a ValidationError and no graph; the caller is expected to
// fall back to the built-in default.
func Decode(data []byte) (*Graph, error) {
	var doc struct {
		Nodes map[string]*nodeDoc `json:"nodes"`
		Edges [][]string          `json:"edges"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}
	if doc.Nodes == nil {
		return nil, &ValidationError{Msg: "missing nodes object"}
	}
	if doc.Edges == nil {
		return nil, &ValidationError{Msg: "missing edges array"}
	}
	g := New()
	for id, n := range doc.Nodes {
		if n == nil || n.X == nil || n.Y == nil {
			return nil, &ValidationError{Msg: fmt.Sprintf("node %q lacks numeric x/y", id)}
		}
		node := &Node{X: *n.X, Y: *n.Y, Kind: n.Kind, Stages: n.Stages, Enemies: n.Enemies, Resources: n.Resources}
		if n.Name != nil {
			node.Name = *n.Name
		}
		g.nodes[id] = node
	}
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, &ValidationError{Msg: fmt.Sprintf("edge %d has %d endpoints, want 2", i, len(e))}
		}
		g.edges = append(g.edges, [2]string{e[0], e[1]})
	}
	return g, nil
}

// Encode serializes the graph into its persistence document.
func (g *Graph) Encode() ([]byte, error) {
	return json.Marshal(g.doc())
}

// Export serializes the graph as formatted JSON for manual promotion into the
// built-in default.
func (g *Graph) Export() ([]byte, error) {
	return json.MarshalIndent(g.doc(), "", "  ")
}

func (g *Graph) doc() document {
	doc := document{Nodes: g.nodes, Edges: make([][]string, 0, len(g.edges))}
	for _, e := range g.edges {
		doc.Edges = append(doc.Edges, []string{e[0], e[1]})
	}
	return doc
}
