// Package config provides YAML-based tuning for the Gemfall engine.
// Board size and kind count are deliberately not configurable: the engine
// invariants assume a fixed 8x8 board with five ordinary kinds.
package config

// GemsConfig contains all tunable parameters for the match engine.
type GemsConfig struct {
	Scoring   ScoringConfig   `yaml:"scoring"`
	Animation AnimationConfig `yaml:"animation"`
	Feedback  FeedbackConfig  `yaml:"feedback"`
	Bonus     BonusConfig     `yaml:"bonus"`
}

// ScoringConfig defines score and charge accounting.
type ScoringConfig struct {
	TilePoints      int `yaml:"tile_points"`      // points per matched tile before the combo multiplier
	BigMatchSize    int `yaml:"big_match_size"`   // match size that upgrades the feedback message
	ChargeThreshold int `yaml:"charge_threshold"` // matched charge tiles per earned bomb
}

// AnimationConfig defines phase durations in simulation ticks (60/s).
type AnimationConfig struct {
	SwapTicks   int `yaml:"swap_ticks"`
	ClearTicks  int `yaml:"clear_ticks"`
	FallTicks   int `yaml:"fall_ticks"`
	RefillTicks int `yaml:"refill_ticks"`
}

// FeedbackConfig defines transient floating label behavior.
type FeedbackConfig struct {
	LabelTicks int `yaml:"label_ticks"` // label lifetime before auto-removal
}

// BonusConfig gates optional scoring extensions.
type BonusConfig struct {
	// FiveRunBomb grants one extra pending bomb for any single run of
	// length >= 5, on top of the charge mechanic.
	FiveRunBomb bool `yaml:"five_run_bomb"`
}
