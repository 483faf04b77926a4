package config

import (
	_ "embed"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

// DefaultTunnelConfig returns the default tunnel configuration.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Pacing: TunnelPacing{
			StepEveryTicks: 6,
		},
		Demo: TunnelDemo{
			StepEveryTicks: 6,
			TargetScore:    200,
		},
	}
}
