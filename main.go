package main

import (
	"flag"
	"math"

	"SolarQuest/internal/server"
)

func main() {
	addr := flag.String("addr", ":3000", "address to listen on (e.g., 127.0.0.1:3000)")
	worldConfigPath := flag.String("world-config", "configs/world.json", "path to world tuning JSON")
	turnRate := flag.Float64("turn-rate", math.NaN(), "override turn rate in radians per tick")
	thrustAccel := flag.Float64("thrust-accel", math.NaN(), "override thrust acceleration per tick")
	friction := flag.Float64("friction", math.NaN(), "override per-tick friction factor")
	maxSpeed := flag.Float64("max-speed", math.NaN(), "override forward speed cap")
	worldBound := flag.Float64("world-bound", math.NaN(), "override symmetric world boundary")
	landingMargin := flag.Float64("landing-margin", math.NaN(), "override landing reach beyond a body's radius")
	idleTimeout := flag.Float64("idle-timeout", math.NaN(), "override idle session timeout in seconds (0 disables)")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.WorldConfigPath = *worldConfigPath

	var overrides server.TuningOverrides

	if !math.IsNaN(*turnRate) {
		val := *turnRate
		overrides.TurnRate = &val
	}
	if !math.IsNaN(*thrustAccel) {
		val := *thrustAccel
		overrides.ThrustAccel = &val
	}
	if !math.IsNaN(*friction) {
		val := *friction
		overrides.Friction = &val
	}
	if !math.IsNaN(*maxSpeed) {
		val := *maxSpeed
		overrides.MaxSpeed = &val
	}
	if !math.IsNaN(*worldBound) {
		val := *worldBound
		overrides.WorldBound = &val
	}
	if !math.IsNaN(*landingMargin) {
		val := *landingMargin
		overrides.LandingMargin = &val
	}
	if !math.IsNaN(*idleTimeout) {
		val := *idleTimeout
		overrides.IdleTimeoutSec = &val
	}

	cfg.Overrides = overrides

	server.StartApp(*addr, cfg)
}
