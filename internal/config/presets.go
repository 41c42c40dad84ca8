package config

import "sort"

// Environment is a named set of water conditions used to fill formula
// parameters by role.
type Environment struct {
	Description  string  `yaml:"description" toml:"description" json:"description"`
	TemperatureC float64 `yaml:"temperature_c" toml:"temperature_c" json:"temperature_c"`
	SalinityPpt  float64 `yaml:"salinity_ppt" toml:"salinity_ppt" json:"salinity_ppt"`
	DepthM       float64 `yaml:"depth_m" toml:"depth_m" json:"depth_m"`
	LatitudeDeg  float64 `yaml:"latitude_deg" toml:"latitude_deg" json:"latitude_deg"`
	PH           float64 `yaml:"ph" toml:"ph" json:"ph"`
}

// Roles maps the environment onto formula parameter roles.
func (e Environment) Roles() map[string]float64 {
	return map[string]float64{
		"temperature": e.TemperatureC,
		"salinity":    e.SalinityPpt,
		"depth":       e.DepthM,
		"latitude":    e.LatitudeDeg,
		"acidity":     e.PH,
	}
}

var Presets = map[string]Environment{
	"standard": {
		Description:  "open ocean reference, 10 °C, 35 ppt, surface",
		TemperatureC: 10,
		SalinityPpt:  35,
		DepthM:       0,
		LatitudeDeg:  45,
		PH:           8,
	},
	"tropical-surface": {
		Description:  "warm mixed layer",
		TemperatureC: 28,
		SalinityPpt:  35,
		DepthM:       10,
		LatitudeDeg:  10,
		PH:           8.1,
	},
	"arctic": {
		Description:  "cold, fresher polar surface water",
		TemperatureC: -1.5,
		SalinityPpt:  32,
		DepthM:       0,
		LatitudeDeg:  75,
		PH:           8,
	},
	"mediterranean-deep": {
		Description:  "warm, saline deep basin",
		TemperatureC: 13,
		SalinityPpt:  38.5,
		DepthM:       2000,
		LatitudeDeg:  38,
		PH:           8.1,
	},
	"baltic": {
		Description:  "brackish shallow sea",
		TemperatureC: 8,
		SalinityPpt:  7,
		DepthM:       20,
		LatitudeDeg:  58,
		PH:           7.8,
	},
	"abyssal": {
		Description:  "deep Atlantic water",
		TemperatureC: 1.5,
		SalinityPpt:  34.7,
		DepthM:       4000,
		LatitudeDeg:  0,
		PH:           7.9,
	},
}

// Preset returns a builtin or config-defined environment. Config entries
// shadow builtins of the same name.
func (c *Config) Preset(name string) (Environment, bool) {
	if c != nil {
		if e, ok := c.Presets[name]; ok {
			return e, true
		}
	}
	e, ok := Presets[name]
	return e, ok
}

// GetPreset returns a builtin environment or nil.
func GetPreset(name string) *Environment {
	e, ok := Presets[name]
	if !ok {
		return nil
	}
	return &e
}

// ListPresets returns builtin and config-defined names, sorted.
func (c *Config) ListPresets() []string {
	seen := make(map[string]bool, len(Presets))
	for name := range Presets {
		seen[name] = true
	}
	if c != nil {
		for name := range c.Presets {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
