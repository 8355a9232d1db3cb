package engine

import (
	"sort"
	"strconv"
	"strings"
)

// specialAreaID maps the special-area names used in enemy location strings to
// graph node ids. "IC - Abandoned Quartes" is a typo carried by the source
// spreadsheet; both spellings must stay resolvable because either can appear
// in an enemy record.
var specialAreaID = map[string]string{
	"FW - Ice Fields":         "fw_ice_fields",
	"FW - Mount Nebesa":       "fw_mount_nebesa",
	"FW - Reka Glacier":       "fw_reka_glacier",
	"FW - Room of Columns":    "fw_room_of_columns",
	"FW - Skryvat Temple":     "fw_skryvat_temple",
	"FW - The Broken Lands":   "fw_broken_lands",
	"FW - Uchitel Span":       "fw_uchitel_span",
	"FW - Urok Span":          "fw_urok_span",
	"FW - Vniz Path":          "fw_vniz_path",
	"IC - Abandoned Quarters": "ic_abandoned_quarters",
	"IC - Abandoned Quartes":  "ic_abandoned_quarters",
	"IC - Frozen Lake":        "ic_frozen_lake",
	"IC - Glacial Worm Bones": "ic_glacial_worm_bones",
	"IC - Hall of Ice":        "ic_hall_of_ice",
	"IC - Old Armory":         "ic_old_armory",
	"IC - Ossuary":            "ic_ossuary",
}

// townAliases maps settlement display names to node ids by substring match.
// Longer names first so "Fort Istra Apothecary" is tried before "Fort Istra".
var townAliases = []struct {
	Name string
	ID   string
}{
	{"Fort Istra Apothecary", "fort_istra"},
	{"Fort Istra", "fort_istra"},
	{"Mir", "mir"},
	{"Razdor", "razdor"},
	{"Ryba", "ryba"},
	{"Silny", "silny"},
	{"Strofa", "strofa"},
	{"Vouno", "vouno"},
}

func townNodeID(display string) string {
	for _, t := range townAliases {
		if strings.Contains(display, t.Name) {
			return t.ID
		}
	}
	return ""
}

// ResolveSources returns every graph node where material can be obtained at
// the given stage: enemy drops registered for exactly that stage, settlements
// with a buy price, and harvest locations. The result is deduplicated and in
// a deterministic order; empty means the material is unobtainable.
func (p *Planner) ResolveSources(material, stage string) []string {
	var sources []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !seen[id] && p.Graph.Has(id) {
			seen[id] = true
			sources = append(sources, id)
		}
	}

	// Enemy drops: only the location string for the requested stage counts.
	// Spawns do not carry over between stages.
	for _, enemy := range p.Catalog.EnemiesByMaterial[material] {
		locStr, ok := enemy.Locations[stage]
		if !ok {
			continue
		}
		for _, token := range strings.Split(locStr, ",") {
			token = strings.TrimSuffix(strings.TrimSpace(token), ".")
			if _, err := strconv.Atoi(token); err == nil {
				add(token)
				continue
			}
			add(specialAreaID[token])
		}
	}

	// Market: any settlement quoting a buy price.
	if entry, ok := p.Catalog.MarketByName[material]; ok {
		towns := make([]string, 0, len(entry.Prices))
		for town := range entry.Prices {
			towns = append(towns, town)
		}
		sort.Strings(towns)
		for _, town := range towns {
			if entry.Prices[town].Buy > 0 {
				add(townNodeID(town))
			}
		}
	}

	// Harvest nodes.
	if locStr, ok := p.Catalog.Harvest[material]; ok {
		for _, token := range strings.Split(locStr, ",") {
			token = strings.TrimSpace(token)
			if _, err := strconv.Atoi(token); err == nil {
				add(token)
			}
		}
	}

	return sources
}
