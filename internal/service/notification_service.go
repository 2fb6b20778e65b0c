package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ademhatay/employee-qr-track/internal/config"
	"github.com/ademhatay/employee-qr-track/internal/events"
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
	n.dispatcher.Subscribe(events.EventAttendanceRecorded, n.handleAttendanceRecorded)
	n.dispatcher.Subscribe(events.EventShiftPublished, n.handleShiftPublished)
	n.dispatcher.Subscribe(events.EventCompanyOnboarded, n.handleCompanyOnboarded)
}

func (n *NotificationService) handleAttendanceRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("AttendanceRecorded", zap.String("company_id", event.CompanyID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleShiftPublished(ctx context.Context, event events.Event) error {
	n.logger.Info("ShiftPublished", zap.String("company_id", event.CompanyID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCompanyOnboarded(ctx context.Context, event events.Event) error {
	n.logger.Info("CompanyOnboarded", zap.String("company_id", event.CompanyID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("company_id", event.CompanyID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("company_id", event.CompanyID),
		zap.String("event_type", string(event.Type)))
}
