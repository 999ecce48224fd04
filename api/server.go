package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Api serves the embedded player page alongside the loaded definition and a
// live state feed, so pages can replay the animation without an MQTT client.
type Api struct {
	assets     string
	definition []byte

	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
}

// NewApi creates an instance of an Api.
func NewApi(assets string, definition []byte) *Api {
	a := new(Api)
	a.assets = assets
	a.definition = definition
	a.clients = make(map[*websocket.Conn]bool)
	return a
}

// Broadcast pushes an encoded frame to every connected page.
func (a *Api) Broadcast(frame []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for conn := range a.clients {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			conn.Close()
			delete(a.clients, conn)
		}
	}
}

func (a *Api) handleDefinition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(a.definition)
}

func (a *Api) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade: %v", err)
		return
	}
	a.mu.Lock()
	a.clients[conn] = true
	a.mu.Unlock()
}

// Serve blocks serving the player assets and API endpoints.
func (a *Api) Serve(addr string) {
	if addr == "" {
		addr = ":3000"
	}
	if a.assets == "" {
		a.assets = "client/dist"
	}

	fs := http.FileServer(http.Dir(a.assets))
	http.Handle("/", fs)
	http.HandleFunc("/timeline.json", a.handleDefinition)
	http.HandleFunc("/ws", a.handleWs)

	log.Println("Listening...")
	http.ListenAndServe(addr, nil)
}
