package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"isofar-companion/internal/logger"
)

//go:embed data/catalog.json
var embeddedCatalog []byte

// catalogFile is the on-disk override name, for players maintaining their own
// spreadsheet export.
const catalogFile = "catalog.json"

// Load parses the game catalogs. A catalog.json in dataDir overrides the
// embedded default; pass an empty dataDir to force the embedded data.
func Load(dataDir string) (*Data, error) {
	raw := embeddedCatalog
	source := "embedded"
	if dataDir != "" {
		path := filepath.Join(dataDir, catalogFile)
		if b, err := os.ReadFile(path); err == nil {
			raw = b
			source = path
		}
	}

	var file struct {
		Enemies     []*Enemy          `json:"enemies"`
		Equipment   []*CraftItem      `json:"armorWeapons"`
		Accessories []*CraftItem      `json:"accessories"`
		Buildings   []*Building       `json:"buildings"`
		Market      []*MarketEntry    `json:"market"`
		Harvest     map[string]string `json:"harvestLocations"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog (%s): %w", source, err)
	}

	d := &Data{
		Enemies:     file.Enemies,
		Equipment:   file.Equipment,
		Accessories: file.Accessories,
		Buildings:   file.Buildings,
		Market:      file.Market,
		Harvest:     file.Harvest,
	}
	if d.Harvest == nil {
		d.Harvest = make(map[string]string)
	}
	d.Reindex()

	logger.Info("Catalog", fmt.Sprintf("Loaded %s catalog", source))
	logger.Stats("enemies", len(d.Enemies))
	logger.Stats("equipment", len(d.Equipment))
	logger.Stats("accessories", len(d.Accessories))
	logger.Stats("buildings", len(d.Buildings))
	logger.Stats("market entries", len(d.Market))
	logger.Stats("harvest resources", len(d.Harvest))
	return d, nil
}
