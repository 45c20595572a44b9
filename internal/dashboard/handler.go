package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

//go:embed static/console.html
var staticFS embed.FS

// Handler returns an http.Handler that serves the responder console routes.
// All routes are under /_calmify/.
func Handler(hub *Hub) http.Handler {
	mux := http.NewServeMux()

	// Console HTML
	mux.HandleFunc("/_calmify/", func(w http.ResponseWriter, r *http.Request) {
		data, err := staticFS.ReadFile("static/console.html")
		if err != nil {
			http.Error(w, "console not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
	})

	// WebSocket endpoint
	mux.HandleFunc("/_calmify/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true, // Allow connections from any origin
		})
		if err != nil {
			return
		}
		defer conn.CloseNow()

		hub.Register(conn)
		defer hub.Unregister(conn)

		// Keep the connection open by reading (and discarding) client messages.
		// The connection closes when the client disconnects or context is cancelled.
		ctx := conn.CloseRead(context.Background())
		<-ctx.Done()
	})

	// REST: stats snapshot
	mux.HandleFunc("/_calmify/api/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hub.StatsSnapshot())
	})

	// REST: recent events
	mux.HandleFunc("/_calmify/api/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hub.Events().All())
	})

	// REST: escalation policy
	mux.HandleFunc("/_calmify/api/policy", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hub.PolicyConfig())
	})

	// REST: alerts
	mux.HandleFunc("/_calmify/api/alerts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hub.Alerts().All())
	})

	return mux
}

// Run starts the periodic stats broadcast in background.
func Run(ctx context.Context, hub *Hub) {
	go hub.StartStatsBroadcast(ctx, 5*time.Second)
}
