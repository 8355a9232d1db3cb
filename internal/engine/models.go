package engine

// MaterialRequirement is one flattened recipe line: a material and how many
// of it the target item needs.
type MaterialRequirement struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// RouteStop is one visited node together with everything picked up there.
type RouteStop struct {
	NodeID       string   `json:"nodeId"`
	Materials    []string `json:"materials"`
	DistFromPrev int      `json:"distFromPrev"` // hops from the previous stop
}

// Route is a complete collection plan for one item. FullPath includes the
// intermediate nodes walked between stops, suitable for drawing on the map.
type Route struct {
	Start         string                `json:"start"`
	Stops         []RouteStop           `json:"stops"`
	TotalDistance int                   `json:"totalDistance"`
	FullPath      []string              `json:"fullPath"`
	Requirements  []MaterialRequirement `json:"requirements"`
}
