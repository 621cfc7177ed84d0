// Package seed holds the resort's default catalogue: arcade games, the restaurant menu,
// rooms and per-service tax settings.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"jamjam-resort-api/models"
	"jamjam-resort-api/store"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults is the decoded fixture file.
type Defaults struct {
	Games       []models.Document `yaml:"games"`
	MenuItems   []models.Document `yaml:"menuItems"`
	Rooms       []models.Document `yaml:"rooms"`
	TaxSettings []models.Document `yaml:"taxSettings"`
}

// Load decodes the embedded defaults. Each call returns fresh records.
func Load() (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(defaultsYAML, &d); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	for _, set := range [][]models.Document{d.Games, d.MenuItems, d.Rooms, d.TaxSettings} {
		for _, doc := range set {
			for k, v := range doc {
				doc[k] = normalize(v)
			}
		}
	}
	return &d, nil
}

// For returns the defaults belonging to c, if it has any.
func (d *Defaults) For(c store.Collection) []models.Document {
	switch c.Name {
	case store.Games.Name:
		return d.Games
	case store.MenuItems.Name:
		return d.MenuItems
	case store.Rooms.Name:
		return d.Rooms
	case store.TaxSettings.Name:
		return d.TaxSettings
	}
	return nil
}

// normalize gives YAML values the shapes JSON decoding produces: float64 numbers and
// string-keyed maps.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case []interface{}:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case map[string]interface{}:
		for k := range t {
			t[k] = normalize(t[k])
		}
		return t
	}
	return v
}
