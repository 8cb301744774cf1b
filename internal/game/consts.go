package game

const (
	TickHz = 30.0 // server simulation rate

	TurnRate        = 0.09 // rad per tick
	ThrustAccel     = 0.25 // speed gained per tick while thrusting
	ReverseFactor   = 0.8  // reverse thrust relative to forward
	Friction        = 0.92 // multiplicative damping applied every tick
	ShipMaxSpeed    = 6.0  // map units per tick
	ReverseSpeedCap = 0.6  // reverse limit as a fraction of ShipMaxSpeed
	WorldBound      = 1700.0

	// LandingMargin is the landing reach beyond a body's radius. The client's
	// "can land" affordance uses the same value, so keep them in sync.
	LandingMargin = 45.0

	SpawnClearanceX = 55.0
	SpawnClearanceY = 25.0

	RoomCodeLength = 5
	MaxNameLength  = 16
)

// RoomCodeAlphabet omits 0/O/1/I so codes survive being read aloud.
const RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
