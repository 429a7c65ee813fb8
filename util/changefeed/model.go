package changefeed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Actions carried by change events.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Tables watched by the feed.
const (
	TableDestinations = "destinations"
	TableGroups       = "groups"
	TableGroupMembers = "group_members"
	TableSaved        = "saved_destinations"
	TableTrips        = "trip_history"
)

// TableAll subscribes to every table.
const TableAll = "*"

// Event says that something changed; consumers refetch rather than trusting
// a delta, so the payload is deliberately minimal.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

// Client represents a connected WebSocket consumer watching one table.
type Client struct {
	Conn  *websocket.Conn
	Table string
}

type Hub struct {
	clients    map[*websocket.Conn]*Client
	register   chan *Client
	unregister chan *websocket.Conn
	events     chan Event

	mu     sync.Mutex
	subs   map[int64]*subscriber
	nextID int64
}

type subscriber struct {
	table string
	fn    func(Event)
}

// subscribeMessage is what a websocket consumer sends after connecting.
type subscribeMessage struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}
