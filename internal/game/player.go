package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Input is the latest control state reported by a player's client.
// Last write wins; the integrator reads it once per tick.
type Input struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Session is one player's state inside a room. It is owned by the room that
// created it and only ever mutated under that room's lock.
//
// LastSeen is the tick-refreshed liveness stamp exported in snapshots.
// LastActive only moves on player-driven actions (join, input, landing
// attempts) and is what the idle sweep judges.
type Session struct {
	ID            string
	Name          string
	Pos           Vec2
	Angle         float64
	Speed         float64
	Color         string
	SpawnPlanetID string
	Quest         Quest
	Input         Input
	LastSeen      time.Time
	LastActive    time.Time
}

var shipColors = []string{"#7dd3fc", "#a7f3d0", "#fda4af", "#fde68a", "#c4b5fd", "#fdba74"}

// NewSessionID mints a session identity independent of the transport
// connection that carries it.
func NewSessionID() string {
	return uuid.NewString()
}

// NormalizeName trims, defaults, and caps a display name.
func NormalizeName(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return "Pilot"
	}
	runes := []rune(n)
	if len(runes) > MaxNameLength {
		n = string(runes[:MaxNameLength])
	}
	return n
}

func randomColor(rng *rand.Rand) string {
	return shipColors[rng.Intn(len(shipColors))]
}

// spawnNearPlanet offsets the spawn pose from the planet's edge so a fresh
// ship never starts inside a body.
func spawnNearPlanet(planetID string) Vec2 {
	pl, ok := PlanetByID(planetID)
	if !ok {
		pl = Planets[0]
	}
	return Vec2{
		X: pl.X + pl.Radius + SpawnClearanceX,
		Y: pl.Y - (pl.Radius + SpawnClearanceY),
	}
}
