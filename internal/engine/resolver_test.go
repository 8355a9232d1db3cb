package engine

import (
	"testing"

	"isofar-companion/internal/catalog"
	"isofar-companion/internal/graph"
)

// buildGraph adds the given nodes in order and connects them as a chain.
func buildGraph(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i, id := range ids {
		if err := g.AddNode(id, float64(10*i+10), 100, graph.Node{}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
		if i > 0 {
			if err := g.ToggleEdge(ids[i-1], id); err != nil {
				t.Fatalf("ToggleEdge(%s, %s): %v", ids[i-1], id, err)
			}
		}
	}
	return g
}

func resolverCatalog() *catalog.Data {
	d := &catalog.Data{
		Enemies: []*catalog.Enemy{
			{
				Name: "Pit Wolf",
				Locations: map[string]string{
					"1": "2, 4.",
					"2": "IC - Abandoned Quartes, 99",
				},
				MaterialDrops: []string{"Wolf Pelt"},
			},
		},
		Market: []*catalog.MarketEntry{
			{
				Name: "Rope",
				Prices: map[string]catalog.Price{
					"Fort Istra Apothecary": {Buy: 5},
					"Mir":                   {Sell: 3}, // sell only, not a source
				},
			},
		},
		Harvest: map[string]string{
			"Pine": "3, 5",
		},
	}
	d.Reindex()
	return d
}

func resolverPlanner(t *testing.T) *Planner {
	t.Helper()
	g := buildGraph(t, "1", "2", "3", "4", "5", "fort_istra", "mir", "ic_abandoned_quarters")
	return NewPlanner(resolverCatalog(), g)
}

func TestResolveSources_EnemyDrops_ExactStageOnly(t *testing.T) {
	p := resolverPlanner(t)

	got := p.ResolveSources("Wolf Pelt", "1")
	want := []string{"2", "4"}
	if len(got) != len(want) {
		t.Fatalf("sources = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sources[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Stage 3 has no registered spawns; stage 1 locations must not leak in.
	if got := p.ResolveSources("Wolf Pelt", "3"); len(got) != 0 {
		t.Errorf("stage 3 sources = %v, want none", got)
	}
}

func TestResolveSources_MisspelledSpecialArea(t *testing.T) {
	p := resolverPlanner(t)

	got := p.ResolveSources("Wolf Pelt", "2")
	// "99" is not a graph node and must be dropped; the misspelled area
	// resolves to its canonical node.
	if len(got) != 1 || got[0] != "ic_abandoned_quarters" {
		t.Errorf("sources = %v, want [ic_abandoned_quarters]", got)
	}
}

func TestResolveSources_MarketBuyPriceOnly(t *testing.T) {
	p := resolverPlanner(t)

	got := p.ResolveSources("Rope", "1")
	// The Apothecary maps to fort_istra by substring; Mir has no buy price.
	if len(got) != 1 || got[0] != "fort_istra" {
		t.Errorf("sources = %v, want [fort_istra]", got)
	}
}

func TestResolveSources_Harvest(t *testing.T) {
	p := resolverPlanner(t)

	got := p.ResolveSources("Pine", "4")
	if len(got) != 2 || got[0] != "3" || got[1] != "5" {
		t.Errorf("sources = %v, want [3 5]", got)
	}
}

func TestResolveSources_Completeness(t *testing.T) {
	p := resolverPlanner(t)

	cases := []struct {
		material string
		empty    bool
	}{
		{"Wolf Pelt", false}, // enemy only
		{"Rope", false},      // market only
		{"Pine", false},      // harvest only
		{"Moon Dust", true},  // nowhere
	}
	for _, c := range cases {
		got := p.ResolveSources(c.material, "1")
		if c.empty && len(got) != 0 {
			t.Errorf("%s: sources = %v, want none", c.material, got)
		}
		if !c.empty && len(got) == 0 {
			t.Errorf("%s: no sources, want at least one", c.material)
		}
	}
}

func TestResolveSources_Deduplicates(t *testing.T) {
	d := resolverCatalog()
	// Pine also sold in Fort Istra and dropped at node 3 by an enemy.
	d.Market = append(d.Market, &catalog.MarketEntry{
		Name:   "Pine",
		Prices: map[string]catalog.Price{"Fort Istra": {Buy: 2}},
	})
	d.Enemies = append(d.Enemies, &catalog.Enemy{
		Name:          "Sap Beetle",
		Locations:     map[string]string{"1": "3"},
		MaterialDrops: []string{"Pine"},
	})
	d.Reindex()
	g := buildGraph(t, "1", "2", "3", "4", "5", "fort_istra")
	p := NewPlanner(d, g)

	got := p.ResolveSources("Pine", "1")
	seen := make(map[string]bool)
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate source %q in %v", id, got)
		}
		seen[id] = true
	}
	if !seen["3"] || !seen["5"] || !seen["fort_istra"] {
		t.Errorf("sources = %v, want 3, 5 and fort_istra", got)
	}
}

func TestTownNodeID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Mir", "mir"},
		{"Fort Istra Apothecary", "fort_istra"},
		{"Fort Istra", "fort_istra"},
		{"Vouno Market", "vouno"},
		{"Nowhere", ""},
	}
	for _, c := range cases {
		if got := townNodeID(c.in); got != c.want {
			t.Errorf("townNodeID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
