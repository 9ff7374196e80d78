package worker

import (
	"go.uber.org/zap"

	"github.com/mindconnect/mind-service/internal/service"
)

// StartNotificationWorker hooks the notification service into the event
// stream. The dispatcher is synchronous, so there is no loop or goroutine to
// manage; registration is the whole job.
func StartNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers()
	if logger != nil {
		logger.Info("notification handlers registered")
	}
}
