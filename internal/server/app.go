package server

import (
	"log"
	"time"

	"SolarQuest/internal/game"
)

type AppConfig struct {
	WorldConfigPath string
	Overrides       TuningOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		WorldConfigPath: "configs/world.json",
	}
}

func resolveTuning(cfg AppConfig) game.Tuning {
	tuning := game.DefaultTuning()
	loaded, err := loadTuningFromFile(cfg.WorldConfigPath, tuning)
	if err != nil {
		log.Printf("world config: %v (using defaults)", err)
	} else {
		tuning = loaded
	}
	return cfg.Overrides.apply(tuning)
}

func StartApp(addr string, cfg AppConfig) {
	tuning := resolveTuning(cfg)
	hub := game.NewHub(tuning, nil)

	// Fixed-rate simulation driver for every live room.
	go func() {
		tickHz := float64(game.TickHz)
		ticker := time.NewTicker(time.Duration(float64(time.Second) / tickHz))
		defer ticker.Stop()
		for range ticker.C {
			hub.TickAll()
		}
	}()

	// Periodic registry sweep (every 60 seconds).
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			hub.Sweep()
		}
	}()

	log.Printf("solar quest listening on %s (max speed %.1f, landing margin %.0f, idle timeout %.0fs)",
		addr, tuning.MaxSpeed, tuning.LandingMargin, tuning.IdleTimeoutSec)
	startServer(hub, addr)
}
