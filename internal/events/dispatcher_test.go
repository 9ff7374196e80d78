package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventSessionBooked, func(_ context.Context, _ Event) error {
		t.Fatal("handler for a different event type invoked")
		return nil
	})

	event := Event{ID: "e1", Type: EventUserRegistered, Timestamp: time.Now()}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("delivered = %+v, want one event e1", got)
	}
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	invoked := 0
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		invoked++
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		invoked++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if invoked != 2 {
		t.Fatalf("invoked = %d, want 2", invoked)
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventJournalCreated}); err != nil {
		t.Fatalf("Publish with no subscribers returned error: %v", err)
	}
}
