package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/mindconnect/mind-service/internal/config"
	"github.com/mindconnect/mind-service/internal/events"
)

type recordingDispatcher struct {
	subscriptions map[events.EventType][]events.EventHandler
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	for _, handler := range d.subscriptions[event.Type] {
		_ = handler(ctx, event)
	}
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {
	if d.subscriptions == nil {
		d.subscriptions = map[events.EventType][]events.EventHandler{}
	}
	d.subscriptions[eventType] = append(d.subscriptions[eventType], handler)
}

func TestNotificationHandlersCoverAllEvents(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	want := []events.EventType{
		events.EventUserRegistered,
		events.EventTherapistRegistered,
		events.EventSessionBooked,
		events.EventSessionStatusChanged,
		events.EventJournalCreated,
	}
	for _, eventType := range want {
		if len(dispatcher.subscriptions[eventType]) == 0 {
			t.Fatalf("no handler subscribed for %s", eventType)
		}
	}
	if len(dispatcher.subscriptions) != len(want) {
		t.Fatalf("subscribed to %d event types, want %d", len(dispatcher.subscriptions), len(want))
	}
}

func TestJournalCreatedHandlerRuns(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{})
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type: events.EventJournalCreated,
		Payload: events.JournalCreatedPayload{
			JournalID: "j1",
			UserID:    "u1",
		},
	})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
}
