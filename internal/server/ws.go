package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"SolarQuest/internal/game"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// inboundMessage is the client envelope. Requests that expect an answer carry
// a seq, echoed on the ack so the client can pair them.
type inboundMessage struct {
	Type    string          `json:"type"`
	Seq     int64           `json:"seq,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Seq     int64  `json:"seq,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// wsClient wraps a connection with a write mutex so room fan-out and direct
// acks never interleave frames. It is the game.Subscriber for this connection.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) write(msg outboundMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Printf("ws write: %v", err)
	}
}

func (c *wsClient) Send(event string, payload any) {
	c.write(outboundMessage{Type: event, Payload: payload})
}

func (c *wsClient) ack(seq int64, payload any) {
	c.write(outboundMessage{Type: "ack", Seq: seq, Payload: payload})
}

func serveWS(h *game.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	client := &wsClient{conn: conn}
	sessionID := game.NewSessionID()
	defer func() {
		h.Disconnect(sessionID)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("invalid JSON message: %v", err)
			continue
		}
		dispatch(h, client, sessionID, msg)
	}
}

func dispatch(h *game.Hub, client *wsClient, sessionID string, msg inboundMessage) {
	switch msg.Type {
	case "host:createRoom":
		code := h.CreateRoom(sessionID, client)
		client.ack(msg.Seq, createRoomAck{OK: true, Code: code})

	case "host:joinRoom":
		var req roomRefRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("invalid host:joinRoom payload: %v", err)
			return
		}
		if err := h.HostJoin(req.Code, sessionID, client); err != nil {
			client.ack(msg.Seq, okAck{Error: err.Error()})
			return
		}
		client.ack(msg.Seq, okAck{OK: true})

	case "host:restartRoom":
		var req roomRefRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("invalid host:restartRoom payload: %v", err)
			return
		}
		if err := h.Restart(req.Code, sessionID); err != nil {
			client.ack(msg.Seq, okAck{Error: err.Error()})
			return
		}
		client.ack(msg.Seq, okAck{OK: true})

	case "player:joinRoom":
		var req playerJoinRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("invalid player:joinRoom payload: %v", err)
			return
		}
		s, err := h.PlayerJoin(req.Code, sessionID, req.Name, client)
		if err != nil {
			client.ack(msg.Seq, okAck{Error: err.Error()})
			return
		}
		client.ack(msg.Seq, playerJoinAck{
			OK:       true,
			Code:     req.Code,
			PlayerID: s.ID,
			Planets:  game.Planets,
			Moon:     game.Moon,
			Quest:    s.Quest,
		})

	case "player:input":
		var req playerInputRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("invalid player:input payload: %v", err)
			return
		}
		h.SetInput(req.Code, sessionID, req.Input)

	case "player:land":
		var req roomRefRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("invalid player:land payload: %v", err)
			return
		}
		res, err := h.Land(req.Code, sessionID)
		if err != nil {
			client.ack(msg.Seq, okAck{Error: err.Error()})
			return
		}
		client.ack(msg.Seq, landAck{
			OK:        true,
			Collected: res.Collected,
			Deposited: res.Deposited,
			Done:      res.Done,
			Next:      res.Next,
			Winner:    res.Winner,
		})

	case "room:leave":
		var req roomRefRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("invalid room:leave payload: %v", err)
			return
		}
		h.Leave(req.Code, sessionID)

	default:
		log.Printf("unknown message type: %s", msg.Type)
	}
}
