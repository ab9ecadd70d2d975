package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/ad-platform/internal/config"
	"github.com/spec-kit/ad-platform/internal/events"
)

// AuditService records gateway events: every event is logged and, when redis
// is available, appended to a capped list for external inspection.
type AuditService struct {
	dispatcher events.Dispatcher
	client     *redis.Client
	logger     *zap.Logger
	cfg        config.AuditConfig
}

// NewAuditService creates the service. The redis client may be nil.
func NewAuditService(dispatcher events.Dispatcher, client *redis.Client, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		client:     client,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to auditable events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.record)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.record)
	a.dispatcher.Subscribe(events.EventAccessDenied, a.record)
	a.dispatcher.Subscribe(events.EventResourceCreated, a.record)
	a.dispatcher.Subscribe(events.EventResourceUpdated, a.record)
	a.dispatcher.Subscribe(events.EventResourceDeleted, a.record)
}

func (a *AuditService) record(ctx context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
	}
	if event.Actor != nil {
		fields = append(fields, zap.Int64("actor_id", event.Actor.ID), zap.String("actor_role", string(event.Actor.Role)))
	}
	if event.Resource != "" {
		fields = append(fields, zap.String("resource", event.Resource))
	}
	a.logger.Info("audit", fields...)

	if a.client == nil {
		return nil
	}
	encoded, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pipe := a.client.Pipeline()
	pipe.LPush(ctx, a.cfg.RedisKey, encoded)
	if a.cfg.MaxEntries > 0 {
		pipe.LTrim(ctx, a.cfg.RedisKey, 0, a.cfg.MaxEntries-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		// Audit must never fail the request; degrade to log-only.
		a.logger.Warn("audit sink unavailable", zap.Error(err))
	}
	return nil
}
