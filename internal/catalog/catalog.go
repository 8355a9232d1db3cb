package catalog

import (
	"sort"
	"strings"
)

// Data holds all parsed game catalogs plus the cross-indices derived from
// them. Everything here is read-only after Load; the planner never mutates it.
type Data struct {
	Enemies     []*Enemy
	Equipment   []*CraftItem // Armor-Weapon guide
	Accessories []*CraftItem // Accessory-Item guide
	Buildings   []*Building  // Ft. Istra buildings
	Market      []*MarketEntry
	Harvest     map[string]string // resource -> comma-separated node ids

	// Cross-indices built at load time.
	EnemiesByMaterial map[string][]*Enemy     // material -> enemies dropping it
	MarketByName      map[string]*MarketEntry // material -> market entry
	CraftsByMaterial  map[string][]string     // material -> item names using it
}

// Enemy is one bestiary entry. Stats come from the spreadsheet as display
// strings; Locations is keyed by progression stage ("1".."4") and holds the
// comma-separated location string for that stage only.
type Enemy struct {
	Name              string            `json:"name"`
	Rating            string            `json:"rating"`
	Attack            string            `json:"attack"`
	Defense           string            `json:"defense"`
	AP                string            `json:"ap"`
	HP                string            `json:"hp"`
	Locations         map[string]string `json:"locations"`
	Lux               string            `json:"lux,omitempty"`
	Silver            string            `json:"silver,omitempty"`
	ItemDrop          string            `json:"itemDrop,omitempty"`
	SpeakingStoneDrop string            `json:"speakingStoneDrop,omitempty"`
	MaterialDrops     []string          `json:"materialDrops"`
}

// Quantity is a crafting requirement amount, with the optional reduced amount
// unlocked at 2 reputation.
type Quantity struct {
	Qty  int `json:"qty"`
	Rep2 int `json:"rep2,omitempty"`
}

// CraftItem is one craftable equipment or accessory entry. Materials, Wood
// and Ores are the three requirement groups of the recipe.
type CraftItem struct {
	Name         string              `json:"name"`
	City         string              `json:"city,omitempty"`
	LimitedTo    string              `json:"limitedTo,omitempty"`
	Rating       string              `json:"rating,omitempty"`
	Type         string              `json:"type,omitempty"`
	StatIncrease string              `json:"statIncrease,omitempty"`
	Effect       string              `json:"effect,omitempty"`
	CraftCost    string              `json:"craftCost,omitempty"`
	SellPrice    string              `json:"sellPrice,omitempty"`
	Prerequisite string              `json:"prerequisite,omitempty"`
	ItemRequired string              `json:"itemRequired,omitempty"`
	Materials    map[string]Quantity `json:"materials,omitempty"`
	Wood         map[string]Quantity `json:"wood,omitempty"`
	Ores         map[string]Quantity `json:"ores,omitempty"`
}

// Building is one Ft. Istra building project; it only consumes wood and ore.
type Building struct {
	Name         string         `json:"name"`
	ItemRequired string         `json:"itemRequired,omitempty"`
	Wood         map[string]int `json:"wood,omitempty"`
	Ores         map[string]int `json:"ores,omitempty"`
}

// Price is a per-town market quote. Zero means not traded.
type Price struct {
	Buy     int `json:"buy,omitempty"`
	Buy2Rep int `json:"buy2rep,omitempty"`
	Sell    int `json:"sell,omitempty"`
}

// MarketEntry is one market guide row with its per-settlement prices.
type MarketEntry struct {
	Name   string           `json:"name"`
	Effect string           `json:"effect,omitempty"`
	Prices map[string]Price `json:"prices"`
}

// BaseMaterial strips a location qualifier like "Claw (FW only)" down to the
// material name.
func BaseMaterial(drop string) string {
	if i := strings.Index(drop, "("); i >= 0 {
		return strings.TrimSpace(drop[:i])
	}
	return strings.TrimSpace(drop)
}

// Reindex rebuilds the cross-indices from the catalog slices. Load calls it
// once; call it again after replacing any of the catalogs by hand.
func (d *Data) Reindex() {
	d.EnemiesByMaterial = make(map[string][]*Enemy)
	for _, e := range d.Enemies {
		for _, drop := range e.MaterialDrops {
			mat := BaseMaterial(drop)
			d.EnemiesByMaterial[mat] = append(d.EnemiesByMaterial[mat], e)
		}
	}

	d.MarketByName = make(map[string]*MarketEntry, len(d.Market))
	for _, m := range d.Market {
		d.MarketByName[m.Name] = m
	}

	d.CraftsByMaterial = make(map[string][]string)
	addCraft := func(name string, groups ...map[string]Quantity) {
		for _, group := range groups {
			for mat := range group {
				d.CraftsByMaterial[mat] = append(d.CraftsByMaterial[mat], name)
			}
		}
	}
	for _, it := range d.Equipment {
		addCraft(it.Name, it.Materials, it.Wood, it.Ores)
	}
	for _, it := range d.Accessories {
		addCraft(it.Name, it.Materials, it.Wood, it.Ores)
	}
	for _, b := range d.Buildings {
		for mat := range b.Wood {
			d.CraftsByMaterial[mat] = append(d.CraftsByMaterial[mat], b.Name)
		}
		for mat := range b.Ores {
			d.CraftsByMaterial[mat] = append(d.CraftsByMaterial[mat], b.Name)
		}
	}
	for mat := range d.CraftsByMaterial {
		sort.Strings(d.CraftsByMaterial[mat])
	}
}

// MaterialNames returns every material that appears as an enemy drop or in a
// recipe group, sorted.
func (d *Data) MaterialNames() []string {
	set := make(map[string]bool)
	for mat := range d.EnemiesByMaterial {
		set[mat] = true
	}
	for mat := range d.CraftsByMaterial {
		set[mat] = true
	}
	names := make([]string, 0, len(set))
	for mat := range set {
		names = append(names, mat)
	}
	sort.Strings(names)
	return names
}
