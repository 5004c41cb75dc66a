package store

import (
	"ticket-marketplace-backend/internal/models"
)

// Announcements returns a copy of the announcement collection, oldest first.
func (s *Store) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

// CreateAnnouncement records an organizer broadcast to the ticket holders of
// one event. Delivery is someone else's problem; the store only keeps the
// record. An unknown event id is a no-op.
func (s *Store) CreateAnnouncement(eventID, title, message string) (models.Announcement, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(eventID)
	if i < 0 {
		return models.Announcement{}, false, nil
	}

	announcement := models.Announcement{
		ID:         newID(),
		EventID:    eventID,
		EventTitle: s.events[i].Title,
		Title:      title,
		Message:    message,
		CreatedAt:  s.now(),
	}

	s.announcements = append(s.announcements, announcement)
	if err := persistCollection(s, keyAnnouncements, s.announcements); err != nil {
		return models.Announcement{}, false, err
	}
	return announcement, true, nil
}
