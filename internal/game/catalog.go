package game

// Waypoint is one fixed body in the shared world catalog.
type Waypoint struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
}

func (w Waypoint) Pos() Vec2 { return Vec2{w.X, w.Y} }

// Planets is the collectible catalog. Immutable for the process lifetime;
// every quest is a permutation over exactly these nine ids.
var Planets = []Waypoint{
	{ID: "mercury", Name: "Mercury", X: -420, Y: -110, Radius: 18},
	{ID: "venus", Name: "Venus", X: -260, Y: 130, Radius: 22},
	{ID: "earth", Name: "Earth", X: -60, Y: 40, Radius: 24},
	{ID: "mars", Name: "Mars", X: 140, Y: -40, Radius: 20},
	{ID: "jupiter", Name: "Jupiter", X: 370, Y: 120, Radius: 40},
	{ID: "saturn", Name: "Saturn", X: 620, Y: -120, Radius: 36},
	{ID: "uranus", Name: "Uranus", X: 860, Y: 80, Radius: 30},
	{ID: "neptune", Name: "Neptune", X: 1100, Y: -70, Radius: 30},
	{ID: "pluto", Name: "Pluto", X: 1320, Y: 140, Radius: 14},
}

// Moon is the terminal deposit target, parked near Earth.
var Moon = Waypoint{ID: "moon", Name: "Moon", X: -10, Y: 95, Radius: 10}

func PlanetByID(id string) (Waypoint, bool) {
	for _, p := range Planets {
		if p.ID == id {
			return p, true
		}
	}
	return Waypoint{}, false
}

// WaypointByID resolves a quest target id against the full catalog.
func WaypointByID(id string) (Waypoint, bool) {
	if id == Moon.ID {
		return Moon, true
	}
	return PlanetByID(id)
}
