package server

import (
	"log"
	"net/http"

	"SolarQuest/internal/game"
)

// The game client is served separately; this process only exposes the
// realtime endpoint and a liveness probe.
func startServer(h *game.Hub, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	log.Fatal(http.ListenAndServe(addr, mux))
}
