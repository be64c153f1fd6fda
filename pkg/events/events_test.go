package events

import "testing"

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(e Event) { order = append(order, "first:"+e.Name()) })
	bus.Subscribe(func(e Event) { order = append(order, "second:"+e.Name()) })

	bus.Publish(GridResized{SlideID: "s1", Rows: 2, Columns: 2})

	if len(order) != 2 || order[0] != "first:grid_resized" || order[1] != "second:grid_resized" {
		t.Errorf("delivery order = %v", order)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	bus.Publish(BlockDeleted{SlideID: "s1", BlockID: "b1"})
	unsubscribe()
	bus.Publish(BlockDeleted{SlideID: "s1", BlockID: "b2"})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestPublishOnNilBus(t *testing.T) {
	var bus *Bus
	bus.Publish(BlockAdded{SlideID: "s1", BlockID: "b1", Kind: "text"}) // must not panic
}

func TestEventNames(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{BlockAssigned{}, "block_assigned"},
		{AssignRejected{}, "assign_rejected"},
		{GridResized{}, "grid_resized"},
		{SpanChanged{}, "span_changed"},
		{ColumnPromoted{}, "column_promoted"},
		{BlockAdded{}, "block_added"},
		{BlockDuplicated{}, "block_duplicated"},
		{BlockDeleted{}, "block_deleted"},
	}
	for _, tt := range tests {
		if got := tt.event.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestZeroValueBusIsUsable(t *testing.T) {
	var bus Bus
	seen := false
	bus.Subscribe(func(Event) { seen = true })
	bus.Publish(ColumnPromoted{SlideID: "s1", DraggedID: "b1"})
	if !seen {
		t.Error("zero-value bus dropped the event")
	}
}
