package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrActivityStorageDisabled is returned when history is requested without a database
var ErrActivityStorageDisabled = errors.New("activity storage is not configured")

// ActivityStore persists activity entries
type ActivityStore interface {
	Create(entry *models.ActivityLog) error
	List(kind string, limit, offset int) ([]*models.ActivityLog, error)
	Count(kind string) (int64, error)
}

// EventPublisher delivers activity entries to a message queue
type EventPublisher interface {
	PublishMessage(ctx context.Context, queueName string, message interface{}) error
}

// ActivityService records a summary of every batch submitted through the
// dashboard and fans it out to storage, SSE subscribers and the queue.
type ActivityService struct {
	store     ActivityStore
	sseHub    *SSEHub
	publisher EventPublisher
	queue     string
	now       func() time.Time
}

func NewActivityService(sseHub *SSEHub) *ActivityService {
	return &ActivityService{
		sseHub: sseHub,
		now:    time.Now,
	}
}

// SetStore enables persistence (injected after creation since the database is optional)
func (s *ActivityService) SetStore(store ActivityStore) {
	s.store = store
}

// SetPublisher enables queue delivery
func (s *ActivityService) SetPublisher(publisher EventPublisher, queue string) {
	s.publisher = publisher
	s.queue = queue
}

// Record fills in the entry's id, status and timestamp and fans it out.
// Failures are logged and never reach the caller.
func (s *ActivityService) Record(entry *models.ActivityLog) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if entry.Status == "" {
		entry.Status = models.ActivityStatus(entry.Succeeded, entry.Failed)
	}

	if s.store != nil {
		if err := s.store.Create(entry); err != nil {
			logrus.Errorf("Failed to save activity %s: %v", entry.ID, err)
		}
	}

	if s.sseHub != nil {
		s.sseHub.BroadcastActivity(entry)
	}

	if s.publisher != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.PublishMessage(ctx, s.queue, entry); err != nil {
			logrus.Warnf("Failed to publish activity %s: %v", entry.ID, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"kind":      entry.Kind,
		"total":     entry.Total,
		"succeeded": entry.Succeeded,
		"failed":    entry.Failed,
	}).Info(entry.Message)
}

// List returns a page of stored entries and the total count
func (s *ActivityService) List(kind string, limit, offset int) ([]*models.ActivityLog, int64, error) {
	if s.store == nil {
		return nil, 0, ErrActivityStorageDisabled
	}

	entries, err := s.store.List(kind, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.Count(kind)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// HasStore reports whether entries are persisted
func (s *ActivityService) HasStore() bool {
	return s.store != nil
}
