package audit

import (
	"context"
	"errors"
	"fmt"

	"livelink/internal/models"
	"livelink/internal/utils"
	"livelink/pkg/logger"
	"livelink/pkg/websocket"
)

var ErrDropped = errors.New("audit event dropped")

// LogNotifier writes each event to the JSON audit log.
type LogNotifier struct {
	audit *logger.AuditLogger
}

func NewLogNotifier(audit *logger.AuditLogger) *LogNotifier {
	return &LogNotifier{audit: audit}
}

func (n *LogNotifier) Notify(_ context.Context, event Event) error {
	details := map[string]interface{}{"event_id": event.ID}
	for k, v := range event.Params {
		details["param_"+k] = v
	}
	n.audit.LogAction(event.Operator, event.Action, event.Entity, event.EntityID, event.Timestamp, details)
	return nil
}

// Broadcaster is the part of the websocket hub the notifier needs.
type Broadcaster interface {
	Broadcast(message websocket.Message) bool
	SendToOperator(operator string, message websocket.Message) bool
}

// HubNotifier pushes events to connected operators in the audit room and
// sends the acting operator a receipt on their own connections.
type HubNotifier struct {
	hub  Broadcaster
	room string
}

func NewHubNotifier(hub Broadcaster, room string) *HubNotifier {
	return &HubNotifier{hub: hub, room: room}
}

func (n *HubNotifier) Notify(_ context.Context, event Event) error {
	params := make(map[string]interface{}, len(event.Params))
	for k, v := range event.Params {
		params[k] = v
	}
	ok := n.hub.Broadcast(websocket.Message{
		Type:      utils.EventActionApplied,
		RoomID:    n.room,
		Operator:  event.Operator,
		Timestamp: event.Timestamp.Unix(),
		Data: map[string]interface{}{
			"id":        event.ID,
			"entity":    event.Entity,
			"entity_id": event.EntityID,
			"action":    event.Action,
			"params":    params,
		},
	})
	if !ok {
		return fmt.Errorf("websocket broadcast of %s: %w", event.ID, ErrDropped)
	}

	// A dropped receipt is not worth failing the event over.
	n.hub.SendToOperator(event.Operator, websocket.Message{
		Type:      utils.EventActionReceipt,
		Operator:  event.Operator,
		Timestamp: event.Timestamp.Unix(),
		Data:      map[string]interface{}{"id": event.ID},
	})
	return nil
}

// AuditLogWriter is the part of the audit log repository the notifier needs.
type AuditLogWriter interface {
	Create(ctx context.Context, auditLog *models.AuditLog) error
}

// MongoNotifier persists events as audit log documents.
type MongoNotifier struct {
	repo AuditLogWriter
}

func NewMongoNotifier(repo AuditLogWriter) *MongoNotifier {
	return &MongoNotifier{repo: repo}
}

func (n *MongoNotifier) Notify(ctx context.Context, event Event) error {
	if err := n.repo.Create(ctx, ToAuditLog(event)); err != nil {
		return fmt.Errorf("persist audit event %s: %w", event.ID, err)
	}
	return nil
}

// ToAuditLog converts an event to its stored form.
func ToAuditLog(event Event) *models.AuditLog {
	return &models.AuditLog{
		ID:         event.ID,
		Operator:   event.Operator,
		Action:     event.Action,
		Resource:   event.Entity,
		ResourceID: event.EntityID,
		Params:     event.Params,
		Status:     utils.StatusSuccess,
		CreatedAt:  event.Timestamp,
	}
}

// Publisher is the part of the Redis cache the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Increment(ctx context.Context, key string) (int64, error)
}

// RedisNotifier publishes events on a channel and counts them per entity
// and action.
type RedisNotifier struct {
	client  Publisher
	channel string
}

func NewRedisNotifier(client Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

// CounterKey is the Redis key holding the number of times action was applied
// to entity.
func (n *RedisNotifier) CounterKey(entity, action string) string {
	return fmt.Sprintf("%s:count:%s:%s", n.channel, entity, action)
}

func (n *RedisNotifier) Notify(ctx context.Context, event Event) error {
	if err := n.client.Publish(ctx, n.channel, event); err != nil {
		return fmt.Errorf("publish audit event %s: %w", event.ID, err)
	}
	if _, err := n.client.Increment(ctx, n.CounterKey(event.Entity, event.Action)); err != nil {
		return fmt.Errorf("count audit event %s: %w", event.ID, err)
	}
	return nil
}
