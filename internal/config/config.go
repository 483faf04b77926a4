// Package config provides YAML-based game configuration loading for the
// tunnel platform.
package config

// TunnelConfig contains all configuration for the tunnel games.
type TunnelConfig struct {
	Pacing TunnelPacing `yaml:"pacing"`
	Demo   TunnelDemo   `yaml:"demo"`
}

// TunnelPacing defines how fast the corridor scrolls in keyboard mode.
type TunnelPacing struct {
	// StepEveryTicks is the number of simulation ticks between corridor
	// advances. At the default 60 ticks per second, 6 scrolls ten rows
	// per second.
	StepEveryTicks int `yaml:"step_every_ticks"`
}

// TunnelDemo defines the self-playing autopilot mode.
type TunnelDemo struct {
	// StepEveryTicks is the scroll cadence while the autopilot drives.
	StepEveryTicks int `yaml:"step_every_ticks"`
	// TargetScore is the number of rows the autopilot survives before the
	// run is declared complete.
	TargetScore int `yaml:"target_score"`
}
