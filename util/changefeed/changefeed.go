package changefeed

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewHub initializes a change notification hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*Client),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
		events:     make(chan Event, 64),
		subs:       make(map[int64]*subscriber),
	}
}

// Run starts the hub loop. Events fan out to in-process subscriptions and to
// websocket consumers watching the event's table.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Conn] = client
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, exists := h.clients[conn]; exists {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.events:
			h.dispatch(event)
		}
	}
}

func (h *Hub) dispatch(event Event) {
	h.mu.Lock()
	matched := make([]func(Event), 0, len(h.subs))
	for _, sub := range h.subs {
		if sub.table == TableAll || sub.table == event.Table {
			matched = append(matched, sub.fn)
		}
	}
	h.mu.Unlock()

	// Callbacks run outside the lock so they may subscribe or cancel.
	for _, fn := range matched {
		fn(event)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("error marshalling change event", err)
		return
	}
	for conn, client := range h.clients {
		if client.Table != TableAll && client.Table != event.Table {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Publish queues a change event. Mutating repos call this after a successful
// write; ordering relative to other clients' mutations is not guaranteed.
func (h *Hub) Publish(event Event) {
	h.events <- event
}

// Subscription is a cancellable handle on a table watch. Cancel must be
// called when the watcher goes away or the callback leaks for the process
// lifetime.
type Subscription struct {
	hub  *Hub
	id   int64
	once sync.Once
}

// Subscribe registers fn to run on every change to table (TableAll watches
// everything). The callback receives no row data; refetch on any change.
func (h *Hub) Subscribe(table string, fn func(Event)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.subs[h.nextID] = &subscriber{table: table, fn: fn}
	return &Subscription{hub: h, id: h.nextID}
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
	})
}

// HandleConnections upgrades HTTP requests to WebSocket consumers. The first
// message picks the table to watch; events arrive as JSON until the
// connection closes.
func (h *Hub) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn, Table: TableAll}
	h.register <- client

	defer func() {
		h.unregister <- conn
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var message subscribeMessage
		if err := json.Unmarshal(msg, &message); err != nil {
			log.Println("Invalid JSON:", err)
			continue
		}

		if message.Type == "subscribe" && message.Table != "" {
			h.mu.Lock()
			client.Table = message.Table
			h.mu.Unlock()
		}
	}
}
