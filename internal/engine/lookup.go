package engine

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"isofar-companion/internal/catalog"
)

// Requirements flattens the recipe of the named item into one requirement
// list. Catalogs are searched in a fixed priority order: equipment first,
// then accessories, then buildings; the first name match wins. A miss returns
// a LookupError carrying the closest known item name, if any is close enough.
func (p *Planner) Requirements(itemName string) ([]MaterialRequirement, error) {
	for _, it := range p.Catalog.Equipment {
		if it.Name == itemName {
			return flattenCraft(it), nil
		}
	}
	for _, it := range p.Catalog.Accessories {
		if it.Name == itemName {
			return flattenCraft(it), nil
		}
	}
	for _, b := range p.Catalog.Buildings {
		if b.Name == itemName {
			return flattenBuilding(b), nil
		}
	}
	return nil, &LookupError{Name: itemName, Suggestion: p.closestItemName(itemName)}
}

// flattenCraft merges the three requirement groups of a recipe, each group
// sorted by material name so the requirement order is reproducible.
func flattenCraft(it *catalog.CraftItem) []MaterialRequirement {
	var reqs []MaterialRequirement
	for _, group := range []map[string]catalog.Quantity{it.Materials, it.Wood, it.Ores} {
		reqs = append(reqs, sortedGroup(group)...)
	}
	return reqs
}

func flattenBuilding(b *catalog.Building) []MaterialRequirement {
	var reqs []MaterialRequirement
	for _, group := range []map[string]int{b.Wood, b.Ores} {
		names := make([]string, 0, len(group))
		for name := range group {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			reqs = append(reqs, MaterialRequirement{Name: name, Qty: group[name]})
		}
	}
	return reqs
}

func sortedGroup(group map[string]catalog.Quantity) []MaterialRequirement {
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	reqs := make([]MaterialRequirement, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, MaterialRequirement{Name: name, Qty: group[name].Qty})
	}
	return reqs
}

// ItemNames returns every craftable item name across the three catalogs, in
// lookup priority order.
func (p *Planner) ItemNames() []string {
	var names []string
	for _, it := range p.Catalog.Equipment {
		names = append(names, it.Name)
	}
	for _, it := range p.Catalog.Accessories {
		names = append(names, it.Name)
	}
	for _, b := range p.Catalog.Buildings {
		names = append(names, b.Name)
	}
	return names
}

func (p *Planner) closestItemName(query string) string {
	q := strings.ToLower(query)
	best := ""
	bestDist := -1
	for _, name := range p.ItemNames() {
		d := levenshtein.ComputeDistance(q, strings.ToLower(name))
		if d > editLimit(len(name)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = name
		}
	}
	return best
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
