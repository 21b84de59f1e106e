package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/police-report-writer-api/models"
	"github.com/linesmerrill/police-report-writer-api/narrative"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust CORS as needed, e.g., check r.Header.Get("Origin")
	},
}

// Preview is the live re-derivation socket. The client sends its full report
// state on each edit and gets the re-derived narratives back, so the preview
// pane tracks every keystroke without a save round-trip.
type Preview struct{}

// HandlePreviewWebSocket upgrades the connection and runs the derive loop
func (p Preview) HandlePreviewWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade error", "error", err)
		return
	}
	defer conn.Close()
	zap.S().Debugw("preview connected", "sessionId", sessionID)

	// last holds the previous message's state so the arrest recompute only
	// fires on a disposition transition within the connection, never on the
	// first message.
	var last *models.Report
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			zap.S().Debugw("preview disconnected", "sessionId", sessionID)
			return
		}

		// malformed state degrades to a fresh default report, never an error
		report := narrative.DecodeReport(data, sessionID)
		narrative.NormalizeReport(report)
		narrative.Derive(report)
		if last != nil && narrative.ArrestSetChanged(last, report) {
			narrative.RecomputeArrest(report)
		}
		last = report

		if err := conn.WriteJSON(report.Narratives); err != nil {
			zap.S().Errorw("preview write error", "sessionId", sessionID, "error", err)
			return
		}
	}
}
