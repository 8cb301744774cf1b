package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SolarQuest/internal/game"

	"github.com/gorilla/websocket"
)

type rawEnvelope struct {
	Type    string          `json:"type"`
	Seq     int64           `json:"seq"`
	Payload json.RawMessage `json:"payload"`
}

type testEnvelope struct {
	Type    string `json:"type"`
	Seq     int64  `json:"seq,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

func startTestServer(t *testing.T) (*game.Hub, string) {
	t.Helper()
	hub := game.NewHub(game.DefaultTuning(), rand.New(rand.NewSource(7)))
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func writeEnvelope(t *testing.T, conn *websocket.Conn, msgType string, seq int64, payload any) {
	t.Helper()
	if err := conn.WriteJSON(testEnvelope{Type: msgType, Seq: seq, Payload: payload}); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readUntil drains envelopes until pred matches, failing on timeout.
func readUntil(t *testing.T, conn *websocket.Conn, pred func(rawEnvelope) bool) rawEnvelope {
	t.Helper()
	for {
		_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		var env rawEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read: %v", err)
		}
		if pred(env) {
			return env
		}
	}
}

func readAck(t *testing.T, conn *websocket.Conn, seq int64) json.RawMessage {
	t.Helper()
	env := readUntil(t, conn, func(e rawEnvelope) bool {
		return e.Type == "ack" && e.Seq == seq
	})
	return env.Payload
}

func TestCreateJoinAndBroadcastRoundTrip(t *testing.T) {
	_, url := startTestServer(t)

	hostConn := dialWS(t, url)
	writeEnvelope(t, hostConn, "host:createRoom", 1, nil)

	var created createRoomAck
	if err := json.Unmarshal(readAck(t, hostConn, 1), &created); err != nil {
		t.Fatalf("bad create ack: %v", err)
	}
	if !created.OK || len(created.Code) != game.RoomCodeLength {
		t.Fatalf("unexpected create ack %+v", created)
	}

	playerConn := dialWS(t, url)
	writeEnvelope(t, playerConn, "player:joinRoom", 1, playerJoinRequest{Code: created.Code, Name: "Ava"})

	var joined playerJoinAck
	if err := json.Unmarshal(readAck(t, playerConn, 1), &joined); err != nil {
		t.Fatalf("bad join ack: %v", err)
	}
	if !joined.OK || joined.PlayerID == "" {
		t.Fatalf("unexpected join ack %+v", joined)
	}
	if len(joined.Planets) != 9 || joined.Moon.ID != "moon" {
		t.Fatalf("join ack catalog wrong: %d planets, moon %q", len(joined.Planets), joined.Moon.ID)
	}
	if joined.Quest.Index != 0 || len(joined.Quest.Order) != 10 {
		t.Fatalf("join ack quest wrong: %+v", joined.Quest)
	}

	// The host sees the join through an event snapshot.
	env := readUntil(t, hostConn, func(e rawEnvelope) bool {
		if e.Type != game.EventRoomState {
			return false
		}
		var snap game.RoomSnapshot
		if err := json.Unmarshal(e.Payload, &snap); err != nil {
			return false
		}
		return len(snap.Players) == 1 && snap.Players[0].Name == "Ava"
	})
	var snap game.RoomSnapshot
	if err := json.Unmarshal(env.Payload, &snap); err != nil {
		t.Fatalf("bad snapshot: %v", err)
	}
	if snap.Code != created.Code || snap.Winner != nil {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestLandFromSpawnIsTooFar(t *testing.T) {
	_, url := startTestServer(t)

	hostConn := dialWS(t, url)
	writeEnvelope(t, hostConn, "host:createRoom", 1, nil)
	var created createRoomAck
	if err := json.Unmarshal(readAck(t, hostConn, 1), &created); err != nil {
		t.Fatalf("bad create ack: %v", err)
	}

	playerConn := dialWS(t, url)
	writeEnvelope(t, playerConn, "player:joinRoom", 1, playerJoinRequest{Code: created.Code, Name: "Ava"})
	readAck(t, playerConn, 1)

	// Every spawn offset puts the ship outside its own planet's landing
	// margin, and the quest target is at best that planet.
	writeEnvelope(t, playerConn, "player:land", 2, roomRefRequest{Code: created.Code})
	var landed okAck
	if err := json.Unmarshal(readAck(t, playerConn, 2), &landed); err != nil {
		t.Fatalf("bad land ack: %v", err)
	}
	if landed.OK || landed.Error != game.ErrTooFar.Error() {
		t.Fatalf("expected TooFar ack, got %+v", landed)
	}
}

func TestInputMovesShipOnTick(t *testing.T) {
	hub, url := startTestServer(t)

	hostConn := dialWS(t, url)
	writeEnvelope(t, hostConn, "host:createRoom", 1, nil)
	var created createRoomAck
	if err := json.Unmarshal(readAck(t, hostConn, 1), &created); err != nil {
		t.Fatalf("bad create ack: %v", err)
	}

	playerConn := dialWS(t, url)
	writeEnvelope(t, playerConn, "player:joinRoom", 1, playerJoinRequest{Code: created.Code, Name: "Ava"})
	readAck(t, playerConn, 1)

	writeEnvelope(t, playerConn, "player:input", 0, playerInputRequest{
		Code:  created.Code,
		Input: game.Input{Up: true},
	})

	// The input is fire-and-forget, so drive ticks until it lands.
	moved := false
	for attempt := 0; attempt < 100 && !moved; attempt++ {
		hub.TickAll()
		env := readUntil(t, playerConn, func(e rawEnvelope) bool {
			return e.Type == game.EventRoomTick
		})
		var snap game.RoomSnapshot
		if err := json.Unmarshal(env.Payload, &snap); err != nil {
			t.Fatalf("bad tick snapshot: %v", err)
		}
		if len(snap.Players) == 1 && snap.Players[0].Speed > 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("thrust input never reached the simulation")
	}
}

func TestHostJoinUnknownRoomAck(t *testing.T) {
	_, url := startTestServer(t)

	conn := dialWS(t, url)
	writeEnvelope(t, conn, "host:joinRoom", 1, roomRefRequest{Code: "ZZZZZ"})
	var ack okAck
	if err := json.Unmarshal(readAck(t, conn, 1), &ack); err != nil {
		t.Fatalf("bad ack: %v", err)
	}
	if ack.OK || ack.Error != game.ErrRoomNotFound.Error() {
		t.Fatalf("expected Room not found ack, got %+v", ack)
	}
}

func TestLeaveBroadcastsToRemainingMembers(t *testing.T) {
	_, url := startTestServer(t)

	hostConn := dialWS(t, url)
	writeEnvelope(t, hostConn, "host:createRoom", 1, nil)
	var created createRoomAck
	if err := json.Unmarshal(readAck(t, hostConn, 1), &created); err != nil {
		t.Fatalf("bad create ack: %v", err)
	}

	playerConn := dialWS(t, url)
	writeEnvelope(t, playerConn, "player:joinRoom", 1, playerJoinRequest{Code: created.Code, Name: "Ava"})
	readAck(t, playerConn, 1)

	writeEnvelope(t, playerConn, "room:leave", 0, roomRefRequest{Code: created.Code})

	readUntil(t, hostConn, func(e rawEnvelope) bool {
		if e.Type != game.EventRoomState {
			return false
		}
		var snap game.RoomSnapshot
		if err := json.Unmarshal(e.Payload, &snap); err != nil {
			return false
		}
		return len(snap.Players) == 0
	})
}
