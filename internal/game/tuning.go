package game

// Tuning carries the adjustable physics and lifecycle parameters. Rooms copy
// the hub's tuning at creation, so a deployment's world.json applies uniformly.
type Tuning struct {
	TurnRate      float64
	ThrustAccel   float64
	Friction      float64
	MaxSpeed      float64
	WorldBound    float64
	LandingMargin float64

	// IdleTimeoutSec evicts sessions whose last activity is older than this
	// many seconds. Zero disables eviction; there is no built-in default, the
	// deployment decides.
	IdleTimeoutSec float64
}

func DefaultTuning() Tuning {
	// Default values sourced from consts.go to avoid drift
	return Tuning{
		TurnRate:      TurnRate,
		ThrustAccel:   ThrustAccel,
		Friction:      Friction,
		MaxSpeed:      ShipMaxSpeed,
		WorldBound:    WorldBound,
		LandingMargin: LandingMargin,
	}
}

func SanitizeTuning(t Tuning) Tuning {
	defaults := DefaultTuning()

	if !(t.TurnRate > 0) {
		t.TurnRate = defaults.TurnRate
	}
	if !(t.ThrustAccel > 0) {
		t.ThrustAccel = defaults.ThrustAccel
	}
	if !(t.Friction > 0 && t.Friction < 1) {
		t.Friction = defaults.Friction
	}
	if !(t.MaxSpeed > 0) {
		t.MaxSpeed = defaults.MaxSpeed
	}
	if !(t.WorldBound > 0) {
		t.WorldBound = defaults.WorldBound
	}
	if !(t.LandingMargin >= 0) {
		t.LandingMargin = defaults.LandingMargin
	}
	if !(t.IdleTimeoutSec >= 0) {
		t.IdleTimeoutSec = 0
	}
	return t
}
