package board

import "strconv"

// Bounds holds the ranges enforced on every cell at the end of a tick.
type Bounds struct {
	ConnexMin     uint32
	ConnexMax     uint32
	StabilityMin  float32
	StabilityMax  float32
	ReactivityMin float32
	ReactivityMax float32
	EnergyMin     float32
}

// GenConfig tunes the field generator.
type GenConfig struct {
	StabilityScale  float64
	ReactivityScale float64
	EnergyScale     float64
	EnergyAmplitude float64

	DeltaDensity     float64
	DeltaExtraChance float64
	DeltaExtraTries  int
}

// Config controls board dimensions, seeding and clamping.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Workers int

	Bounds Bounds
	Gen    GenConfig
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seed:    1337,
		Workers: 0,
		Bounds: Bounds{
			ConnexMin:     0,
			ConnexMax:     MaxConnex,
			StabilityMin:  0,
			StabilityMax:  1,
			ReactivityMin: -1,
			ReactivityMax: 1,
			EnergyMin:     0,
		},
		Gen: GenConfig{
			StabilityScale:   1.0 / 64,
			ReactivityScale:  1.0 / 24,
			EnergyScale:      1.0 / 32,
			EnergyAmplitude:  100,
			DeltaDensity:     0.002,
			DeltaExtraChance: 0.01,
			DeltaExtraTries:  63,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["connex_max"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed <= MaxConnex {
			c.Bounds.ConnexMax = uint32(parsed)
		}
	}
	if v, ok := cfg["connex_min"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed <= MaxConnex {
			c.Bounds.ConnexMin = uint32(parsed)
		}
	}
	if c.Bounds.ConnexMax < c.Bounds.ConnexMin {
		c.Bounds.ConnexMax = c.Bounds.ConnexMin
	}
	if v, ok := cfg["stability_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= -1 && parsed <= 1 {
			c.Bounds.StabilityMin = float32(parsed)
		}
	}
	if v, ok := cfg["stability_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= -1 && parsed <= 1 {
			c.Bounds.StabilityMax = float32(parsed)
		}
	}
	if c.Bounds.StabilityMax < c.Bounds.StabilityMin {
		c.Bounds.StabilityMax = c.Bounds.StabilityMin
	}
	if v, ok := cfg["reactivity_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= -1 && parsed <= 1 {
			c.Bounds.ReactivityMin = float32(parsed)
		}
	}
	if v, ok := cfg["reactivity_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= -1 && parsed <= 1 {
			c.Bounds.ReactivityMax = float32(parsed)
		}
	}
	if c.Bounds.ReactivityMax < c.Bounds.ReactivityMin {
		c.Bounds.ReactivityMax = c.Bounds.ReactivityMin
	}
	if v, ok := cfg["stability_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Gen.StabilityScale = parsed
		}
	}
	if v, ok := cfg["reactivity_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Gen.ReactivityScale = parsed
		}
	}
	if v, ok := cfg["energy_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Gen.EnergyScale = parsed
		}
	}
	if v, ok := cfg["energy_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Gen.EnergyAmplitude = parsed
		}
	}
	if v, ok := cfg["delta_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Gen.DeltaDensity = parsed
		}
	}
	if v, ok := cfg["delta_extra_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Gen.DeltaExtraChance = parsed
		}
	}
	return c
}
