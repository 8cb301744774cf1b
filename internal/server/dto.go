package server

import "SolarQuest/internal/game"

type roomRefRequest struct {
	Code string `json:"code"`
}

type playerJoinRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type playerInputRequest struct {
	Code  string     `json:"code"`
	Input game.Input `json:"input"`
}

type okAck struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type createRoomAck struct {
	OK   bool   `json:"ok"`
	Code string `json:"code"`
}

type playerJoinAck struct {
	OK       bool            `json:"ok"`
	Code     string          `json:"code"`
	PlayerID string          `json:"playerId"`
	Planets  []game.Waypoint `json:"planets"`
	Moon     game.Waypoint   `json:"moon"`
	Quest    game.Quest      `json:"quest"`
}

type landAck struct {
	OK        bool         `json:"ok"`
	Collected string       `json:"collected,omitempty"`
	Deposited bool         `json:"deposited"`
	Done      bool         `json:"done"`
	Next      string       `json:"next,omitempty"`
	Winner    *game.Winner `json:"winner,omitempty"`
}
