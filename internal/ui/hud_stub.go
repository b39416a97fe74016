//go:build !ebiten

package ui

import (
	"life-engine/internal/core"
	"life-engine/internal/engine"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, engine.Speed) *HUD { return nil }

// Height is zero in the headless build.
func (h *HUD) Height() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
