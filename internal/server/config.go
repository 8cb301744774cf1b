package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"SolarQuest/internal/game"
)

type physicsConfig struct {
	TurnRate       *float64 `json:"turnRate"`
	ThrustAccel    *float64 `json:"thrustAccel"`
	Friction       *float64 `json:"friction"`
	MaxSpeed       *float64 `json:"maxSpeed"`
	WorldBound     *float64 `json:"worldBound"`
	LandingMargin  *float64 `json:"landingMargin"`
	IdleTimeoutSec *float64 `json:"idleTimeoutSec"`
}

type worldConfig struct {
	Physics *physicsConfig `json:"physics"`
}

// TuningOverrides represents optional command-line overrides for the world
// tuning file.
type TuningOverrides struct {
	TurnRate       *float64
	ThrustAccel    *float64
	Friction       *float64
	MaxSpeed       *float64
	WorldBound     *float64
	LandingMargin  *float64
	IdleTimeoutSec *float64
}

func (o TuningOverrides) apply(base game.Tuning) game.Tuning {
	if o.TurnRate != nil {
		base.TurnRate = *o.TurnRate
	}
	if o.ThrustAccel != nil {
		base.ThrustAccel = *o.ThrustAccel
	}
	if o.Friction != nil {
		base.Friction = *o.Friction
	}
	if o.MaxSpeed != nil {
		base.MaxSpeed = *o.MaxSpeed
	}
	if o.WorldBound != nil {
		base.WorldBound = *o.WorldBound
	}
	if o.LandingMargin != nil {
		base.LandingMargin = *o.LandingMargin
	}
	if o.IdleTimeoutSec != nil {
		base.IdleTimeoutSec = *o.IdleTimeoutSec
	}
	return game.SanitizeTuning(base)
}

func mergeWorldConfig(base game.Tuning, cfg *physicsConfig) game.Tuning {
	if cfg == nil {
		return base
	}
	if cfg.TurnRate != nil {
		base.TurnRate = *cfg.TurnRate
	}
	if cfg.ThrustAccel != nil {
		base.ThrustAccel = *cfg.ThrustAccel
	}
	if cfg.Friction != nil {
		base.Friction = *cfg.Friction
	}
	if cfg.MaxSpeed != nil {
		base.MaxSpeed = *cfg.MaxSpeed
	}
	if cfg.WorldBound != nil {
		base.WorldBound = *cfg.WorldBound
	}
	if cfg.LandingMargin != nil {
		base.LandingMargin = *cfg.LandingMargin
	}
	if cfg.IdleTimeoutSec != nil {
		base.IdleTimeoutSec = *cfg.IdleTimeoutSec
	}
	return game.SanitizeTuning(base)
}

func loadTuningFromFile(path string, base game.Tuning) (game.Tuning, error) {
	if path == "" {
		return game.SanitizeTuning(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return game.SanitizeTuning(base), nil
		}
		return game.SanitizeTuning(base), fmt.Errorf("read world config %q: %w", cleanPath, err)
	}
	var cfg worldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return game.SanitizeTuning(base), fmt.Errorf("parse world config %q: %w", cleanPath, err)
	}
	return mergeWorldConfig(base, cfg.Physics), nil
}
