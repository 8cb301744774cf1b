package game

// Broadcast event names. room:state follows any state-changing action,
// room:tick follows every simulation step; both carry the same projection.
const (
	EventRoomState = "room:state"
	EventRoomTick  = "room:tick"
	EventWinner    = "game:winner"
	EventRestarted = "game:restarted"
)

// Subscriber receives a room's broadcasts. Send must be safe for concurrent
// use and must not assume the room lock is held.
type Subscriber interface {
	Send(event string, payload any)
}

// Winner records the room's single terminal deposit.
type Winner struct {
	SessionID string `json:"id"`
	Name      string `json:"name"`
	Time      int64  `json:"time"`
}

// PlayerView is the public projection of one session.
type PlayerView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Angle         float64 `json:"angle"`
	Color         string  `json:"color"`
	Speed         float64 `json:"speed"`
	SpawnPlanetID string  `json:"spawnPlanetId"`
	Quest         Quest   `json:"quest"`
	LastSeen      int64   `json:"lastSeen"`
}

// RoomSnapshot is the full public projection of a room. Consumers replace any
// prior state with it wholesale; there is no diffing contract.
type RoomSnapshot struct {
	Code    string       `json:"code"`
	Players []PlayerView `json:"players"`
	Planets []Waypoint   `json:"planets"`
	Moon    Waypoint     `json:"moon"`
	Winner  *Winner      `json:"winner"`
}

// snapshotLocked projects the room's current state. Collected is cloned so the
// projection stays stable after the lock is released.
func (r *Room) snapshotLocked() RoomSnapshot {
	players := make([]PlayerView, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		q := s.Quest
		q.Collected = append(make([]string, 0, len(q.Collected)), q.Collected...)
		players = append(players, PlayerView{
			ID:            s.ID,
			Name:          s.Name,
			X:             s.Pos.X,
			Y:             s.Pos.Y,
			Angle:         s.Angle,
			Color:         s.Color,
			Speed:         s.Speed,
			SpawnPlanetID: s.SpawnPlanetID,
			Quest:         q,
			LastSeen:      s.LastSeen.UnixMilli(),
		})
	}
	return RoomSnapshot{
		Code:    r.Code,
		Players: players,
		Planets: Planets,
		Moon:    Moon,
		Winner:  r.Winner,
	}
}
