package graph

// The built-in default map. Positions are traces from the map-of-isofar image;
// refine them through the editor and promote an Export back into this table.

type defaultNode struct {
	id   string
	x, y float64
	name string
	kind string
}

var defaultNodes = []defaultNode{
	// Towns.
	{"mir", 920, 980, "Mir", KindTown},
	{"vouno", 2080, 720, "Vouno", KindTown},
	{"razdor", 2440, 1790, "Razdor", KindTown},
	{"fort_istra", 1510, 2280, "Fort Istra", KindTown},
	{"ryba", 730, 2930, "Ryba", KindTown},
	{"silny", 1820, 3310, "Silny", KindTown},
	{"strofa", 2390, 3920, "Strofa", KindTown},

	// Numbered waypoints.
	{"1", 1180, 760, "", ""},
	{"2", 1540, 620, "", ""},
	{"3", 1860, 980, "", ""},
	{"4", 2330, 1210, "", ""},
	{"5", 1060, 1370, "", ""},
	{"6", 1480, 1490, "", ""},
	{"7", 1940, 1620, "", ""},
	{"8", 2620, 2240, "", ""},
	{"9", 820, 1890, "", ""},
	{"10", 1230, 2040, "", ""},
	{"11", 1890, 2150, "", ""},
	{"12", 640, 2420, "", ""},
	{"13", 1120, 2620, "", ""},
	{"14", 1700, 2740, "", ""},
	{"15", 2240, 2680, "", ""},
	{"16", 1010, 3260, "", ""},
	{"17", 1440, 3540, "", ""},
	{"18", 2120, 3620, "", ""},
	{"19", 1760, 4050, "", ""},
	{"20", 2650, 3380, "", ""},

	// Frozen Wastes.
	{"fw_vniz_path", 1330, 310, "FW - Vniz Path", KindSpecial},
	{"fw_ice_fields", 1680, 220, "FW - Ice Fields", KindSpecial},
	{"fw_uchitel_span", 1060, 220, "FW - Uchitel Span", KindSpecial},
	{"fw_urok_span", 2010, 340, "FW - Urok Span", KindSpecial},
	{"fw_mount_nebesa", 1450, 120, "FW - Mount Nebesa", KindSpecial},
	{"fw_reka_glacier", 830, 390, "FW - Reka Glacier", KindSpecial},
	{"fw_broken_lands", 2330, 260, "FW - The Broken Lands", KindSpecial},
	{"fw_room_of_columns", 1820, 120, "FW - Room of Columns", KindSpecial},
	{"fw_skryvat_temple", 1230, 90, "FW - Skryvat Temple", KindSpecial},

	// Ice Caverns.
	{"ic_hall_of_ice", 420, 640, "IC - Hall of Ice", KindSpecial},
	{"ic_frozen_lake", 300, 880, "IC - Frozen Lake", KindSpecial},
	{"ic_abandoned_quarters", 520, 1120, "IC - Abandoned Quarters", KindSpecial},
	{"ic_old_armory", 260, 1340, "IC - Old Armory", KindSpecial},
	{"ic_ossuary", 480, 1580, "IC - Ossuary", KindSpecial},
	{"ic_glacial_worm_bones", 210, 1110, "IC - Glacial Worm Bones", KindSpecial},
}

var defaultEdges = [][2]string{
	// Northern reaches.
	{"fw_skryvat_temple", "fw_mount_nebesa"},
	{"fw_mount_nebesa", "fw_room_of_columns"},
	{"fw_room_of_columns", "fw_ice_fields"},
	{"fw_ice_fields", "fw_urok_span"},
	{"fw_urok_span", "fw_broken_lands"},
	{"fw_uchitel_span", "fw_vniz_path"},
	{"fw_vniz_path", "fw_ice_fields"},
	{"fw_vniz_path", "1"},
	{"fw_reka_glacier", "fw_uchitel_span"},
	{"fw_reka_glacier", "ic_hall_of_ice"},
	{"fw_urok_span", "vouno"},
	{"fw_broken_lands", "vouno"},

	// Ice Caverns loop.
	{"ic_hall_of_ice", "ic_frozen_lake"},
	{"ic_frozen_lake", "ic_abandoned_quarters"},
	{"ic_frozen_lake", "ic_glacial_worm_bones"},
	{"ic_abandoned_quarters", "ic_old_armory"},
	{"ic_old_armory", "ic_ossuary"},
	{"ic_abandoned_quarters", "mir"},

	// Upper valley.
	{"mir", "1"},
	{"1", "2"},
	{"2", "fw_ice_fields"},
	{"2", "3"},
	{"3", "vouno"},
	{"3", "6"},
	{"vouno", "4"},
	{"4", "razdor"},
	{"4", "7"},
	{"mir", "5"},
	{"5", "6"},
	{"6", "7"},
	{"7", "razdor"},
	{"5", "9"},

	// Midlands around Fort Istra.
	{"9", "10"},
	{"10", "6"},
	{"10", "fort_istra"},
	{"fort_istra", "11"},
	{"11", "7"},
	{"11", "15"},
	{"razdor", "8"},
	{"8", "15"},
	{"9", "12"},
	{"12", "ryba"},
	{"12", "13"},
	{"13", "10"},
	{"13", "fort_istra"},
	{"fort_istra", "14"},
	{"14", "11"},
	{"14", "17"},
	{"15", "20"},

	// Southern reaches.
	{"ryba", "16"},
	{"16", "13"},
	{"16", "17"},
	{"17", "silny"},
	{"silny", "14"},
	{"silny", "18"},
	{"18", "15"},
	{"18", "strofa"},
	{"strofa", "20"},
	{"17", "19"},
	{"19", "strofa"},
}

// Default builds the built-in map graph.
func Default() *Graph {
	g := New()
	for _, d := range defaultNodes {
		g.nodes[d.id] = &Node{X: d.x, Y: d.y, Name: d.name, Kind: d.kind}
	}
	g.edges = append(g.edges, defaultEdges...)
	return g
}
