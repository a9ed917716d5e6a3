package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	approvalQueueKey = "approval_events"
)

// ApprovalEvent - уведомление об одобрении заявки, отправляемое внешним подписчикам
type ApprovalEvent struct {
	EventID        uuid.UUID        `json:"event_id"`
	AlertID        int              `json:"alert_id"`
	Urgency        models.Urgency   `json:"urgency"`
	IssueType      models.IssueType `json:"issue_type"`
	PeopleAffected *int             `json:"people_affected,omitempty"`
	TextLocation   *string          `json:"text_location,omitempty"`
	AdminNote      string           `json:"admin_note,omitempty"`
	ApprovedAt     time.Time        `json:"approved_at"`
}

// ApprovalPublisher - интерфейс для публикации событий одобрения
type ApprovalPublisher interface {
	Publish(ctx context.Context, event ApprovalEvent) error
}

// RedisApprovalPublisher - реализация ApprovalPublisher поверх очереди Redis
type RedisApprovalPublisher struct {
	redisClient *redis.Client
}

// NewRedisApprovalPublisher создает новый RedisApprovalPublisher
func NewRedisApprovalPublisher(client *redis.Client) *RedisApprovalPublisher {
	return &RedisApprovalPublisher{
		redisClient: client,
	}
}

// Publish помещает событие одобрения в очередь Redis
func (p *RedisApprovalPublisher) Publish(ctx context.Context, event ApprovalEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal approval event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, approvalQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish approval event to Redis: %w", err)
	}
	return nil
}
