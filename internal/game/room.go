package game

import (
	"math/rand"
	"sync"
	"time"
)

// Room is one isolated game instance. All mutation happens under Mu so the
// cross-field invariants (quest cursor vs. collected set, winner vs. frozen
// physics) update atomically.
type Room struct {
	Code      string
	HostID    string
	Sessions  map[string]*Session
	Winner    *Winner
	CreatedAt time.Time
	Tuning    Tuning
	Mu        sync.Mutex

	// closed is set under both the hub and room locks when the registry
	// destroys the room. Handlers that fetched the room before the delete
	// must not revive it.
	closed bool

	subs map[string]Subscriber
	rng  *rand.Rand
}

func newRoom(code string, tuning Tuning, rng *rand.Rand) *Room {
	return &Room{
		Code:      code,
		Sessions:  map[string]*Session{},
		CreatedAt: time.Now(),
		Tuning:    tuning,
		subs:      map[string]Subscriber{},
		rng:       rng,
	}
}

// broadcastTargetsLocked copies the subscriber set so fan-out can happen after
// the room lock is released.
func (r *Room) broadcastTargetsLocked() []Subscriber {
	targets := make([]Subscriber, 0, len(r.subs))
	for _, s := range r.subs {
		targets = append(targets, s)
	}
	return targets
}

func send(targets []Subscriber, event string, payload any) {
	for _, s := range targets {
		s.Send(event, payload)
	}
}

// abandonedLocked reports whether the room should be destroyed: no host
// reference and no player sessions left.
func (r *Room) abandonedLocked() bool {
	return r.HostID == "" && len(r.Sessions) == 0
}

// pickSpawnPlanetLocked prefers a planet no live player spawned at; once all
// nine are taken, contention is allowed.
func (r *Room) pickSpawnPlanetLocked(used map[string]bool) string {
	unused := make([]string, 0, len(Planets))
	for _, p := range Planets {
		if !used[p.ID] {
			unused = append(unused, p.ID)
		}
	}
	if len(unused) == 0 {
		return Planets[r.rng.Intn(len(Planets))].ID
	}
	return unused[r.rng.Intn(len(unused))]
}

func (r *Room) usedSpawnsLocked() map[string]bool {
	used := make(map[string]bool, len(r.Sessions))
	for _, s := range r.Sessions {
		used[s.SpawnPlanetID] = true
	}
	return used
}

// respawnLocked resets a session to a fresh spawn and quest while preserving
// its identity.
func (r *Room) respawnLocked(s *Session, used map[string]bool) {
	spawnID := r.pickSpawnPlanetLocked(used)
	used[spawnID] = true
	s.SpawnPlanetID = spawnID
	s.Pos = spawnNearPlanet(spawnID)
	s.Angle = 0
	s.Speed = 0
	s.Quest = NewQuest(r.rng)
	s.Input = Input{}
	now := time.Now()
	s.LastSeen = now
	s.LastActive = now
}

// newSessionLocked creates and registers a fresh session for a joining player.
func (r *Room) newSessionLocked(sessionID, name string) *Session {
	s := &Session{
		ID:    sessionID,
		Name:  NormalizeName(name),
		Color: randomColor(r.rng),
	}
	r.respawnLocked(s, r.usedSpawnsLocked())
	r.Sessions[sessionID] = s
	return s
}

// AttachHost reassigns host authority to hostID and subscribes the connection.
// Player sessions are untouched.
func (r *Room) AttachHost(hostID string, sub Subscriber) error {
	r.Mu.Lock()
	if r.closed {
		r.Mu.Unlock()
		return ErrRoomNotFound
	}
	r.HostID = hostID
	r.subs[hostID] = sub
	snap := r.snapshotLocked()
	r.Mu.Unlock()

	sub.Send(EventRoomState, snap)
	return nil
}

// AddPlayer creates a session for sessionID, subscribes the connection, and
// returns a private copy of the session for the join ack.
func (r *Room) AddPlayer(sessionID, name string, sub Subscriber) (*Session, error) {
	r.Mu.Lock()
	if r.closed {
		r.Mu.Unlock()
		return nil, ErrRoomNotFound
	}
	s := r.newSessionLocked(sessionID, name)
	joined := *s
	joined.Quest.Collected = append(make([]string, 0, len(s.Quest.Collected)), s.Quest.Collected...)
	snap := r.snapshotLocked()
	r.subs[sessionID] = sub
	targets := r.broadcastTargetsLocked()
	r.Mu.Unlock()

	send(targets, EventRoomState, snap)
	return &joined, nil
}

// SetInput records a session's latest control state. Last write wins; the
// next tick picks it up.
func (r *Room) SetInput(sessionID string, input Input) {
	r.Mu.Lock()
	if s, ok := r.Sessions[sessionID]; ok && !r.closed {
		s.Input = input
		now := time.Now()
		s.LastSeen = now
		s.LastActive = now
	}
	r.Mu.Unlock()
}

// Restart is host-only: it clears the winner and re-spawns every session with
// a fresh quest while preserving identity, then announces the restart.
func (r *Room) Restart(requesterID string) error {
	r.Mu.Lock()
	if r.closed {
		r.Mu.Unlock()
		return ErrRoomNotFound
	}
	if r.HostID != requesterID {
		r.Mu.Unlock()
		return ErrNotHost
	}
	r.Winner = nil
	used := map[string]bool{}
	for _, s := range r.Sessions {
		r.respawnLocked(s, used)
	}
	snap := r.snapshotLocked()
	targets := r.broadcastTargetsLocked()
	r.Mu.Unlock()

	send(targets, EventRestarted, map[string]int64{"time": time.Now().UnixMilli()})
	send(targets, EventRoomState, snap)
	return nil
}

// Tick advances one simulation step and returns the tick snapshot plus its
// fan-out targets. Rooms with a winner stay frozen but still broadcast;
// destroyed rooms do nothing.
func (r *Room) Tick() (RoomSnapshot, []Subscriber) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.closed {
		return RoomSnapshot{}, nil
	}
	if r.Winner == nil {
		now := time.Now()
		for _, s := range r.Sessions {
			integrate(s, r.Tuning)
			s.LastSeen = now
		}
	}
	return r.snapshotLocked(), r.broadcastTargetsLocked()
}
