package game

import (
	"math/rand"
	"sync"
	"time"
)

// Hub is the process-wide room registry. The hub lock guards the room table
// and the hub's random source; each room's own lock guards everything inside
// it. Lock order is always hub before room.
type Hub struct {
	Mu     sync.Mutex
	Rooms  map[string]*Room
	tuning Tuning
	rng    *rand.Rand
}

// NewHub creates an empty registry. Pass a nil rng for a time-seeded source;
// tests inject a fixed seed instead.
func NewHub(tuning Tuning, rng *rand.Rand) *Hub {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Hub{
		Rooms:  map[string]*Room{},
		tuning: SanitizeTuning(tuning),
		rng:    rng,
	}
}

func (h *Hub) generateCodeLocked() string {
	b := make([]byte, RoomCodeLength)
	for i := range b {
		b[i] = RoomCodeAlphabet[h.rng.Intn(len(RoomCodeAlphabet))]
	}
	return string(b)
}

func (h *Hub) getRoom(code string) (*Room, bool) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	r, ok := h.Rooms[code]
	return r, ok
}

// destroyRoomLocked marks the room dead and drops it from the registry.
// Callers hold both the hub lock and r.Mu. The closed mark is what stops a
// handler that fetched the room before the delete from reviving it.
func (h *Hub) destroyRoomLocked(code string, r *Room) {
	r.closed = true
	delete(h.Rooms, code)
}

// CreateRoom inserts a fresh room hosted by hostID and subscribes the host
// connection. Code collisions regenerate; creation always succeeds.
func (h *Hub) CreateRoom(hostID string, sub Subscriber) string {
	h.Mu.Lock()
	var code string
	for {
		code = h.generateCodeLocked()
		if _, taken := h.Rooms[code]; !taken {
			break
		}
	}
	r := newRoom(code, h.tuning, rand.New(rand.NewSource(h.rng.Int63())))
	r.HostID = hostID
	h.Rooms[code] = r
	h.Mu.Unlock()

	r.Mu.Lock()
	r.subs[hostID] = sub
	snap := r.snapshotLocked()
	r.Mu.Unlock()

	sub.Send(EventRoomState, snap)
	return code
}

// HostJoin reassigns host authority over an existing room to hostID and
// subscribes the connection.
func (h *Hub) HostJoin(code, hostID string, sub Subscriber) error {
	r, ok := h.getRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	return r.AttachHost(hostID, sub)
}

// PlayerJoin creates a session for sessionID in the room, subscribes the
// connection, and returns the private join view (catalog + fresh quest).
func (h *Hub) PlayerJoin(code, sessionID, name string, sub Subscriber) (*Session, error) {
	r, ok := h.getRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r.AddPlayer(sessionID, name, sub)
}

// SetInput records a session's latest control state. Fire-and-forget.
func (h *Hub) SetInput(code, sessionID string, input Input) {
	if r, ok := h.getRoom(code); ok {
		r.SetInput(sessionID, input)
	}
}

// Restart asks the room to reset. Host-only; see Room.Restart.
func (h *Hub) Restart(code, requesterID string) error {
	r, ok := h.getRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	return r.Restart(requesterID)
}

// Land evaluates a landing attempt for the session; see Room.Land.
func (h *Hub) Land(code, sessionID string) (LandResult, error) {
	r, ok := h.getRoom(code)
	if !ok {
		return LandResult{}, ErrRoomNotFound
	}
	return r.Land(sessionID)
}

// Leave removes a player session and unsubscribes the connection, destroying
// the room if it is left hostless and empty.
func (h *Hub) Leave(code, sessionID string) {
	h.Mu.Lock()
	r, ok := h.Rooms[code]
	if !ok {
		h.Mu.Unlock()
		return
	}

	r.Mu.Lock()
	delete(r.Sessions, sessionID)
	delete(r.subs, sessionID)
	if r.abandonedLocked() {
		h.destroyRoomLocked(code, r)
		r.Mu.Unlock()
		h.Mu.Unlock()
		return
	}
	snap := r.snapshotLocked()
	targets := r.broadcastTargetsLocked()
	r.Mu.Unlock()
	h.Mu.Unlock()

	send(targets, EventRoomState, snap)
}

// Disconnect detaches a session from every room it touches: host references
// are cleared, player sessions removed, abandoned rooms destroyed, and rooms
// that still have members get a fresh snapshot.
func (h *Hub) Disconnect(sessionID string) {
	type fanout struct {
		snap    RoomSnapshot
		targets []Subscriber
	}
	var outbound []fanout

	h.Mu.Lock()
	for code, r := range h.Rooms {
		r.Mu.Lock()
		changed := false
		if r.HostID == sessionID {
			r.HostID = ""
			changed = true
		}
		if _, ok := r.Sessions[sessionID]; ok {
			delete(r.Sessions, sessionID)
			changed = true
		}
		delete(r.subs, sessionID)
		if r.abandonedLocked() {
			h.destroyRoomLocked(code, r)
			r.Mu.Unlock()
			continue
		}
		if changed {
			outbound = append(outbound, fanout{r.snapshotLocked(), r.broadcastTargetsLocked()})
		}
		r.Mu.Unlock()
	}
	h.Mu.Unlock()

	for _, f := range outbound {
		send(f.targets, EventRoomState, f.snap)
	}
}

// TickAll advances every live room one step and fans out tick snapshots.
func (h *Hub) TickAll() {
	h.Mu.Lock()
	rooms := make([]*Room, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, r)
	}
	h.Mu.Unlock()

	for _, r := range rooms {
		snap, targets := r.Tick()
		send(targets, EventRoomTick, snap)
	}
}

// Sweep reapplies the destruction rule and, when an idle timeout is
// configured, evicts sessions whose last player-driven action (join, input,
// landing attempt) is too old. Tick-driven snapshot refreshes do not count
// as activity. The event-driven paths keep the registry tidy on their own;
// the sweep is a backstop for transports that cannot guarantee disconnect
// delivery.
func (h *Hub) Sweep() {
	type fanout struct {
		snap    RoomSnapshot
		targets []Subscriber
	}
	var outbound []fanout
	now := time.Now()

	h.Mu.Lock()
	for code, r := range h.Rooms {
		r.Mu.Lock()
		changed := false
		if r.Tuning.IdleTimeoutSec > 0 {
			cutoff := now.Add(-time.Duration(r.Tuning.IdleTimeoutSec * float64(time.Second)))
			for id, s := range r.Sessions {
				if s.LastActive.Before(cutoff) {
					delete(r.Sessions, id)
					delete(r.subs, id)
					changed = true
				}
			}
		}
		if r.abandonedLocked() {
			h.destroyRoomLocked(code, r)
			r.Mu.Unlock()
			continue
		}
		if changed {
			outbound = append(outbound, fanout{r.snapshotLocked(), r.broadcastTargetsLocked()})
		}
		r.Mu.Unlock()
	}
	h.Mu.Unlock()

	for _, f := range outbound {
		send(f.targets, EventRoomState, f.snap)
	}
}
