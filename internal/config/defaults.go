package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

// DefaultGemsConfig returns the default engine tuning.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Scoring: ScoringConfig{
			TilePoints:      10,
			BigMatchSize:    4,
			ChargeThreshold: 7,
		},
		Animation: AnimationConfig{
			SwapTicks:   8,
			ClearTicks:  10,
			FallTicks:   8,
			RefillTicks: 8,
		},
		Feedback: FeedbackConfig{
			LabelTicks: 45,
		},
		Bonus: BonusConfig{
			FiveRunBomb: false,
		},
	}
}

// Normalize replaces non-positive values with defaults so a sparse or
// hand-edited config file cannot stall the phase machine.
func (c *GemsConfig) Normalize() {
	def := DefaultGemsConfig()
	if c.Scoring.TilePoints <= 0 {
		c.Scoring.TilePoints = def.Scoring.TilePoints
	}
	if c.Scoring.BigMatchSize <= 0 {
		c.Scoring.BigMatchSize = def.Scoring.BigMatchSize
	}
	if c.Scoring.ChargeThreshold <= 0 {
		c.Scoring.ChargeThreshold = def.Scoring.ChargeThreshold
	}
	if c.Animation.SwapTicks <= 0 {
		c.Animation.SwapTicks = def.Animation.SwapTicks
	}
	if c.Animation.ClearTicks <= 0 {
		c.Animation.ClearTicks = def.Animation.ClearTicks
	}
	if c.Animation.FallTicks <= 0 {
		c.Animation.FallTicks = def.Animation.FallTicks
	}
	if c.Animation.RefillTicks <= 0 {
		c.Animation.RefillTicks = def.Animation.RefillTicks
	}
	if c.Feedback.LabelTicks <= 0 {
		c.Feedback.LabelTicks = def.Feedback.LabelTicks
	}
}
