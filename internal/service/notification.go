package service

import (
	"errors"
	"sync"

	"citizen-services/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationStore keeps one session's notifications in insertion order.
// Records are never deleted; only the read flag changes.
type NotificationStore struct {
	mu    sync.Mutex
	items []model.Notification
}

func NewNotificationStore(seed []model.Notification) *NotificationStore {
	items := make([]model.Notification, len(seed))
	copy(items, seed)
	return &NotificationStore{items: items}
}

func (s *NotificationStore) List() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkRead is a no-op for unknown ids. It reports whether the flag changed.
func (s *NotificationStore) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			changed := !s.items[i].Read
			s.items[i].Read = true
			return changed
		}
	}
	return false
}

// MarkAllRead returns how many notifications flipped to read.
func (s *NotificationStore) MarkAllRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.items {
		if !s.items[i].Read {
			s.items[i].Read = true
			n++
		}
	}
	return n
}

// Open returns the notification for detail display and marks it read. changed
// reports whether it was unread before.
func (s *NotificationStore) Open(id string) (n model.Notification, changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			changed = !s.items[i].Read
			s.items[i].Read = true
			return s.items[i], changed, nil
		}
	}
	return model.Notification{}, false, ErrNotificationNotFound
}

// DefaultNotifications is the seed every new session starts with.
func DefaultNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:             "1",
			Title:          "notif.approved.title",
			Message:        "notif.approved.message",
			Category:       model.CategorySuccess,
			Timestamp:      "notif.approved.time",
			Details:        "notif.approved.details",
			ActionRequired: true,
		},
		{
			ID:             "2",
			Title:          "notif.docsRequired.title",
			Message:        "notif.docsRequired.message",
			Category:       model.CategoryWarning,
			Timestamp:      "notif.docsRequired.time",
			Details:        "notif.docsRequired.details",
			ActionRequired: true,
		},
		{
			ID:        "3",
			Title:     "notif.maintenance.title",
			Message:   "notif.maintenance.message",
			Category:  model.CategoryInfo,
			Timestamp: "notif.maintenance.time",
			Read:      true,
			Details:   "notif.maintenance.details",
		},
	}
}
