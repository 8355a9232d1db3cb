package graph

import "strings"

// knownPlaces are the canonical town and special-area registrations. Node
// creation normalizes a matching id or display name to the canonical id so
// resolver lookups (town prices, enemy spawn areas) find the node.
var knownPlaces = []struct {
	id   string
	name string
	kind string
}{
	{"mir", "Mir", KindTown},
	{"vouno", "Vouno", KindTown},
	{"razdor", "Razdor", KindTown},
	{"ryba", "Ryba", KindTown},
	{"silny", "Silny", KindTown},
	{"strofa", "Strofa", KindTown},
	{"fort_istra", "Fort Istra", KindTown},

	{"fw_ice_fields", "FW - Ice Fields", KindSpecial},
	{"fw_mount_nebesa", "FW - Mount Nebesa", KindSpecial},
	{"fw_reka_glacier", "FW - Reka Glacier", KindSpecial},
	{"fw_room_of_columns", "FW - Room of Columns", KindSpecial},
	{"fw_skryvat_temple", "FW - Skryvat Temple", KindSpecial},
	{"fw_broken_lands", "FW - The Broken Lands", KindSpecial},
	{"fw_uchitel_span", "FW - Uchitel Span", KindSpecial},
	{"fw_urok_span", "FW - Urok Span", KindSpecial},
	{"fw_vniz_path", "FW - Vniz Path", KindSpecial},
	{"ic_abandoned_quarters", "IC - Abandoned Quarters", KindSpecial},
	{"ic_frozen_lake", "IC - Frozen Lake", KindSpecial},
	{"ic_glacial_worm_bones", "IC - Glacial Worm Bones", KindSpecial},
	{"ic_hall_of_ice", "IC - Hall of Ice", KindSpecial},
	{"ic_old_armory", "IC - Old Armory", KindSpecial},
	{"ic_ossuary", "IC - Ossuary", KindSpecial},
}

// canonicalPlace matches input against the registry by exact id, by the id
// with spaces and hyphens collapsed to underscores, or by display name
// (case-insensitive).
func canonicalPlace(input string) (id, name, kind string, ok bool) {
	collapsed := strings.ToLower(input)
	collapsed = strings.NewReplacer(" ", "_", "-", "_").Replace(collapsed)
	for len(collapsed) > 0 && strings.Contains(collapsed, "__") {
		collapsed = strings.ReplaceAll(collapsed, "__", "_")
	}
	for _, p := range knownPlaces {
		if p.id == input || p.id == collapsed || strings.EqualFold(p.name, input) {
			return p.id, p.name, p.kind, true
		}
	}
	return "", "", "", false
}
