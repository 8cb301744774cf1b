package game

import (
	"errors"
	"fmt"
)

// Sentinel errors cross the wire verbatim as ack error strings, so they are
// written as player-facing messages.
var (
	ErrRoomNotFound    = errors.New("Room not found")
	ErrNotHost         = errors.New("Only host can restart")
	ErrSessionNotFound = errors.New("Player not found")
	ErrTooFar          = errors.New("Too far to land. Get closer.")
	ErrIncompleteQuest = errors.New("You must collect all planet items before depositing on the Moon.")

	// ErrBadTarget means the current quest target did not resolve against the
	// catalog. Unreachable while the generator holds its invariants.
	ErrBadTarget = errors.New("Bad target")
)

// GameOverError rejects actions attempted after a room already has a winner.
type GameOverError struct {
	WinnerName string
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("Game over. Winner: %s", e.WinnerName)
}
