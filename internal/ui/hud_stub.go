//go:build !ebiten

package ui

import "connex/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

func (h *HUD) Update(int) {}
func (h *HUD) SetStatus(...string) {}
func (h *HUD) Draw(any, int, int) {}
