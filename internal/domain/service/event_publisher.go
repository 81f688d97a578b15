package service

import (
	"context"
	"time"

	"naguil/internal/domain/entity"
)

// DispatchEvent carries a dispatch intent to the dispatch worker.
type DispatchEvent struct {
	RequestID        string         `json:"request_id,omitempty"` // For distributed tracing
	EventID          string         `json:"event_id"`
	NotificationType string         `json:"notification_type"`
	Title            string         `json:"title"`
	Body             string         `json:"body"`
	Data             map[string]any `json:"data,omitempty"`
	Target           string         `json:"target,omitempty"`
	UserID           string         `json:"user_id,omitempty"`
	BranchID         *int64         `json:"branch_id,omitempty"`
	BranchName       string         `json:"branch_name,omitempty"`
	PublishedAt      time.Time      `json:"published_at"`
}

// NewDispatchEvent copies the intent fields into an event.
func NewDispatchEvent(eventID, requestID string, intent *entity.DispatchIntent, now time.Time) *DispatchEvent {
	return &DispatchEvent{
		RequestID:        requestID,
		EventID:          eventID,
		NotificationType: string(intent.Type),
		Title:            intent.Title,
		Body:             intent.Body,
		Data:             intent.Data,
		Target:           string(intent.Target),
		UserID:           intent.UserID,
		BranchID:         intent.Branch.ID,
		BranchName:       intent.Branch.Name,
		PublishedAt:      now,
	}
}

// Intent rebuilds the dispatch intent carried by the event.
func (e *DispatchEvent) Intent() *entity.DispatchIntent {
	return &entity.DispatchIntent{
		Type:   entity.NotificationType(e.NotificationType),
		Title:  e.Title,
		Body:   e.Body,
		Data:   e.Data,
		Target: entity.TargetKind(e.Target),
		UserID: e.UserID,
		Branch: entity.BranchSelector{ID: e.BranchID, Name: e.BranchName},
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
