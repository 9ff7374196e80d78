package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mindconnect/mind-service/internal/config"
	"github.com/mindconnect/mind-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleRegistration)
	n.dispatcher.Subscribe(events.EventTherapistRegistered, n.handleRegistration)
	n.dispatcher.Subscribe(events.EventSessionBooked, n.handleSessionBooked)
	n.dispatcher.Subscribe(events.EventSessionStatusChanged, n.handleSessionStatusChanged)
	n.dispatcher.Subscribe(events.EventJournalCreated, n.handleJournalCreated)
}

func (n *NotificationService) handleRegistration(ctx context.Context, event events.Event) error {
	n.logger.Info("registration", zap.String("event", string(event.Type)), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSessionBooked(ctx context.Context, event events.Event) error {
	n.logger.Info("session booked", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// handleJournalCreated only logs identifiers and mood. Journal content is
// private and never leaves the service through a notification channel.
func (n *NotificationService) handleJournalCreated(_ context.Context, event events.Event) error {
	n.logger.Info("journal created", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleSessionStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("session status changed", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
