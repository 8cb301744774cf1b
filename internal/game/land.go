package game

import "time"

// LandResult reports a successful landing back to the requesting player.
type LandResult struct {
	Collected string
	Deposited bool
	Done      bool
	Next      string
	Winner    *Winner
}

// Land evaluates a landing attempt synchronously against the session's latest
// committed pose. Collect targets advance the quest cursor; the moon deposit
// requires the full collected set and crowns the room's single winner.
func (r *Room) Land(sessionID string) (LandResult, error) {
	r.Mu.Lock()
	if r.closed {
		r.Mu.Unlock()
		return LandResult{}, ErrRoomNotFound
	}
	if r.Winner != nil {
		name := r.Winner.Name
		r.Mu.Unlock()
		return LandResult{}, &GameOverError{WinnerName: name}
	}
	s, ok := r.Sessions[sessionID]
	if !ok {
		r.Mu.Unlock()
		return LandResult{}, ErrSessionNotFound
	}
	s.LastActive = time.Now()

	targetID := s.Quest.CurrentTarget()
	target, ok := WaypointByID(targetID)
	if !ok {
		r.Mu.Unlock()
		return LandResult{}, ErrBadTarget
	}

	if s.Pos.Dist(target.Pos()) > target.Radius+r.Tuning.LandingMargin {
		r.Mu.Unlock()
		return LandResult{}, ErrTooFar
	}

	if targetID != Moon.ID {
		if !s.Quest.HasCollected(targetID) {
			s.Quest.Collected = append(s.Quest.Collected, targetID)
		}
		if s.Quest.Index < len(s.Quest.Order)-1 {
			s.Quest.Index++
		}
		res := LandResult{Collected: targetID, Next: s.Quest.CurrentTarget()}
		snap := r.snapshotLocked()
		targets := r.broadcastTargetsLocked()
		r.Mu.Unlock()

		send(targets, EventRoomState, snap)
		return res, nil
	}

	// Moon deposit: the terminal step never partially succeeds.
	if !s.Quest.AllCollected() {
		r.Mu.Unlock()
		return LandResult{}, ErrIncompleteQuest
	}

	winner := &Winner{SessionID: s.ID, Name: s.Name, Time: time.Now().UnixMilli()}
	r.Winner = winner
	snap := r.snapshotLocked()
	targets := r.broadcastTargetsLocked()
	r.Mu.Unlock()

	send(targets, EventWinner, winner)
	send(targets, EventRoomState, snap)
	return LandResult{Deposited: true, Done: true, Winner: winner}, nil
}
