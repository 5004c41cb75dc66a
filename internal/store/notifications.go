package store

import (
	"ticket-marketplace-backend/internal/models"
)

func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount recounts unread notifications on every call; nothing is
// cached.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead flips one notification's read flag. Already-read
// notifications and unknown ids are no-ops.
func (s *Store) MarkNotificationRead(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if s.notifications[i].Read {
				return false, nil
			}
			s.notifications[i].Read = true
			if err := persistCollection(s, keyNotifications, s.notifications); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// MarkAllNotificationsRead flips every unread notification in one write.
func (s *Store) MarkAllNotificationsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return persistCollection(s, keyNotifications, s.notifications)
}
