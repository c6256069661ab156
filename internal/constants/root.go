package constants

import "time"

const (
	AppName   = "zoneline"
	Version   = "v0.3.0"
	EnvPrefix = "ZONELINE_"

	ConfigFileName = "config.toml"
	StateFileName  = "state.db"
	LogFileName    = "zoneline.log"

	// Interval between clock ticks while the segment is visible.
	TickInterval = time.Second

	// State store keys
	StateKeySelection = "selection"
	StateKeyLoadedAt  = "loaded_at"
)
