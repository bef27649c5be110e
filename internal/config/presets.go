package config

import "github.com/san-kum/orbital/internal/celestial"

var Presets = map[string]map[string]*Config{
	"solar": {
		"year": {
			Catalog: "solar", Dt: 6 * 3600, Duration: celestial.Year,
			RecordEvery: 1, Batch: 10, Fps: 30,
		},
		"decade": {
			Catalog: "solar", Dt: 6 * 3600, Duration: 10 * celestial.Year,
			RecordEvery: 10, Batch: 20, Fps: 30,
		},
		"moons": {
			// Fine enough to resolve Io's 1.77 day orbit.
			Catalog: "solar", Dt: 600, Duration: 30 * celestial.Day,
			RecordEvery: 5, Batch: 60, Fps: 30,
		},
	},
	"inner": {
		"year": {
			Catalog: "inner", Dt: 3 * 3600, Duration: celestial.Year,
			RecordEvery: 1, Batch: 10, Fps: 30,
		},
		"century": {
			Catalog: "inner", Dt: 6 * 3600, Duration: 100 * celestial.Year,
			RecordEvery: 50, Batch: 40, Fps: 30,
		},
	},
	"twobody": {
		"year": {
			Catalog: "twobody", Dt: 6 * 3600, Duration: celestial.Year,
			RecordEvery: 1, Batch: 10, Fps: 30,
		},
	},
}

func GetPreset(catalog, preset string) *Config {
	catalogPresets, ok := Presets[catalog]
	if !ok {
		return nil
	}
	cfg, ok := catalogPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(catalog string) []string {
	catalogPresets, ok := Presets[catalog]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(catalogPresets))
	for name := range catalogPresets {
		names = append(names, name)
	}
	return names
}
