package changefeed

import (
	"testing"
	"time"
)

func waitForEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change event")
		return Event{}
	}
}

func TestSubscribeReceivesMatchingTable(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	got := make(chan Event, 1)
	sub := hub.Subscribe(TableDestinations, func(ev Event) {
		got <- ev
	})
	defer sub.Cancel()

	hub.Publish(Event{Table: TableDestinations, Action: ActionInsert, ID: "dest-1"})

	ev := waitForEvent(t, got)
	if ev.Table != TableDestinations || ev.Action != ActionInsert || ev.ID != "dest-1" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestSubscribeIgnoresOtherTables(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	got := make(chan Event, 2)
	sub := hub.Subscribe(TableTrips, func(ev Event) {
		got <- ev
	})
	defer sub.Cancel()

	hub.Publish(Event{Table: TableGroups, Action: ActionInsert, ID: "group-1"})
	hub.Publish(Event{Table: TableTrips, Action: ActionUpdate, ID: "trip-1"})

	ev := waitForEvent(t, got)
	if ev.Table != TableTrips || ev.ID != "trip-1" {
		t.Errorf("expected only the trips event, got %+v", ev)
	}
}

func TestSubscribeAllTables(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	got := make(chan Event, 2)
	sub := hub.Subscribe(TableAll, func(ev Event) {
		got <- ev
	})
	defer sub.Cancel()

	hub.Publish(Event{Table: TableSaved, Action: ActionDelete, ID: "a"})
	hub.Publish(Event{Table: TableGroupMembers, Action: ActionInsert, ID: "b"})

	first := waitForEvent(t, got)
	second := waitForEvent(t, got)
	if first.Table != TableSaved || second.Table != TableGroupMembers {
		t.Errorf("wildcard subscriber missed events: %+v, %+v", first, second)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	got := make(chan Event, 1)
	sub := hub.Subscribe(TableDestinations, func(ev Event) {
		got <- ev
	})

	sub.Cancel()
	sub.Cancel() // safe to call again

	hub.Publish(Event{Table: TableDestinations, Action: ActionDelete, ID: "dest-2"})

	select {
	case ev := <-got:
		t.Errorf("cancelled subscription still received %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCallbackMaySubscribe(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	nested := make(chan Event, 1)
	var once bool
	sub := hub.Subscribe(TableGroups, func(ev Event) {
		if !once {
			once = true
			hub.Subscribe(TableGroups, func(inner Event) {
				nested <- inner
			})
		}
	})
	defer sub.Cancel()

	hub.Publish(Event{Table: TableGroups, Action: ActionInsert, ID: "g1"})
	hub.Publish(Event{Table: TableGroups, Action: ActionUpdate, ID: "g2"})

	ev := waitForEvent(t, nested)
	if ev.ID != "g2" {
		t.Errorf("nested subscriber got %+v; want the second event", ev)
	}
}
