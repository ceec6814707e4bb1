package board

import "connex/internal/core"

// Parameters reports the board configuration and live counters.
func (b *Board) Parameters() core.ParameterSnapshot {
	bounds := b.cfg.Bounds
	gen := b.cfg.Gen
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", b.w),
				core.IntParam("h", "Height", b.h),
				core.Int64Param("seed", "Seed", b.cfg.Seed),
				core.IntParam("workers", "Workers", b.cfg.Workers),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.Int64Param("tick", "Tick", int64(b.tick)),
				core.FloatParam("total_energy", "Total energy", b.totalEnergy),
			},
		},
		{
			Name: "Bounds",
			Params: []core.Parameter{
				core.IntParam("connex_min", "Connex min", int(bounds.ConnexMin)),
				core.IntParam("connex_max", "Connex max", int(bounds.ConnexMax)),
				core.FloatParam("stability_min", "Stability min", float64(bounds.StabilityMin)),
				core.FloatParam("stability_max", "Stability max", float64(bounds.StabilityMax)),
				core.FloatParam("reactivity_min", "Reactivity min", float64(bounds.ReactivityMin)),
				core.FloatParam("reactivity_max", "Reactivity max", float64(bounds.ReactivityMax)),
			},
		},
		{
			Name: "Generator",
			Params: []core.Parameter{
				core.FloatParam("stability_scale", "Stability scale", gen.StabilityScale),
				core.FloatParam("reactivity_scale", "Reactivity scale", gen.ReactivityScale),
				core.FloatParam("energy_scale", "Energy scale", gen.EnergyScale),
				core.FloatParam("energy_amplitude", "Energy amplitude", gen.EnergyAmplitude),
				core.FloatParam("delta_density", "Delta density", gen.DeltaDensity),
				core.FloatParam("delta_extra_chance", "Delta extra chance", gen.DeltaExtraChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust at runtime.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 64, HasMax: true},
		{Key: "connex_max", Label: "Connex max", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true, Max: MaxConnex, HasMax: true},
		{Key: "stability_max", Label: "Stability max", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "reactivity_max", Label: "Reactivity max", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "energy_amplitude", Label: "Energy amplitude", Type: core.ParamTypeFloat, Step: 10, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer tunable. Bounds that would invert a
// range are rejected.
func (b *Board) SetIntParameter(key string, value int) bool {
	switch key {
	case "workers":
		if value < 0 {
			return false
		}
		b.cfg.Workers = value
	case "connex_min":
		if value < 0 || value > int(b.cfg.Bounds.ConnexMax) {
			return false
		}
		b.cfg.Bounds.ConnexMin = uint32(value)
	case "connex_max":
		if value > MaxConnex || value < int(b.cfg.Bounds.ConnexMin) {
			return false
		}
		b.cfg.Bounds.ConnexMax = uint32(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable. Generator settings take
// effect on the next Reset.
func (b *Board) SetFloatParameter(key string, value float64) bool {
	v := float32(value)
	bounds := &b.cfg.Bounds
	switch key {
	case "stability_min":
		if v < 0 || v > bounds.StabilityMax {
			return false
		}
		bounds.StabilityMin = v
	case "stability_max":
		if v > 1 || v < bounds.StabilityMin {
			return false
		}
		bounds.StabilityMax = v
	case "reactivity_min":
		if v < -1 || v > bounds.ReactivityMax {
			return false
		}
		bounds.ReactivityMin = v
	case "reactivity_max":
		if v > 1 || v < bounds.ReactivityMin {
			return false
		}
		bounds.ReactivityMax = v
	case "stability_scale":
		if value <= 0 {
			return false
		}
		b.cfg.Gen.StabilityScale = value
	case "reactivity_scale":
		if value <= 0 {
			return false
		}
		b.cfg.Gen.ReactivityScale = value
	case "energy_scale":
		if value <= 0 {
			return false
		}
		b.cfg.Gen.EnergyScale = value
	case "energy_amplitude":
		if value < 0 {
			return false
		}
		b.cfg.Gen.EnergyAmplitude = value
	case "delta_density":
		if value < 0 || value > 1 {
			return false
		}
		b.cfg.Gen.DeltaDensity = value
	default:
		return false
	}
	return true
}
