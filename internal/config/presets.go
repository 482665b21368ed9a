package config

import "sort"

var Presets = map[string]*Config{
	"reference": {
		Diffusivity: 100, Length: 300, Spacing: 0.5,
		CLeft: 500, CRight: 0, Steps: 5000, Validate: true,
	},
	"coarse": {
		Diffusivity: 100, Length: 300, Spacing: 2.0,
		CLeft: 500, CRight: 0, Steps: 500, Validate: true,
	},
	"fine": {
		Diffusivity: 100, Length: 300, Spacing: 0.1,
		CLeft: 500, CRight: 0, Steps: 50000, Validate: true,
	},
	"slow": {
		Diffusivity: 1, Length: 100, Spacing: 0.5,
		CLeft: 100, CRight: 0, Steps: 2000, Validate: true,
	},
	"symmetric": {
		Diffusivity: 50, Length: 200, Spacing: 0.5,
		CLeft: 250, CRight: -250, Steps: 5000, Validate: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
