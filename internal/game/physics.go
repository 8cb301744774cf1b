package game

import "math"

// integrate advances one session by one tick. Both turn keys may be held in
// the same tick and cancel out. Friction applies every tick regardless of
// input, so forward speed converges below MaxSpeed under constant thrust.
// Hitting the world boundary clamps position only; speed is untouched.
func integrate(s *Session, t Tuning) {
	if s.Input.Left {
		s.Angle -= t.TurnRate
	}
	if s.Input.Right {
		s.Angle += t.TurnRate
	}

	if s.Input.Up {
		s.Speed += t.ThrustAccel
	}
	if s.Input.Down {
		s.Speed -= t.ThrustAccel * ReverseFactor
	}

	s.Speed *= t.Friction
	s.Speed = Clamp(s.Speed, -t.MaxSpeed*ReverseSpeedCap, t.MaxSpeed)

	s.Pos.X += math.Cos(s.Angle) * s.Speed
	s.Pos.Y += math.Sin(s.Angle) * s.Speed

	s.Pos.X = Clamp(s.Pos.X, -t.WorldBound, t.WorldBound)
	s.Pos.Y = Clamp(s.Pos.Y, -t.WorldBound, t.WorldBound)
}
