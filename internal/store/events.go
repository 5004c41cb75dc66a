package store

import (
	"fmt"

	"ticket-marketplace-backend/internal/models"
)

// CreateEventInput carries everything an organizer fills in when creating an
// event. Status always starts at draft regardless of input.
type CreateEventInput struct {
	Title       string
	Artist      string
	ArtistIDs   []string
	Genre       string
	Date        string
	Time        string
	EndDate     string
	EndTime     string
	Venue       string
	City        string
	Price       string
	Image       string
	Description string
	Address     string
	Lat         *float64
	Lng         *float64
	Gallery     []string
	TicketTypes []models.TicketType
	Rules       []string
}

// EventPatch is a partial update: nil fields are left untouched, set fields
// are merged shallowly over the existing record.
type EventPatch struct {
	Title       *string
	Artist      *string
	ArtistIDs   *[]string
	Genre       *string
	Date        *string
	Time        *string
	EndDate     *string
	EndTime     *string
	Venue       *string
	City        *string
	Price       *string
	Image       *string
	Description *string
	Address     *string
	Lat         *float64
	Lng         *float64
	Gallery     *[]string
	TicketTypes *[]models.TicketType
	Rules       *[]string
}

// Events returns a copy of the event collection in insertion order.
// Filtering is the caller's concern.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, len(s.events))
	for i := range s.events {
		out[i] = copyEvent(s.events[i])
	}
	return out
}

// Event returns a copy of one event, reporting whether it exists.
func (s *Store) Event(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.eventIndex(id); i >= 0 {
		return copyEvent(s.events[i]), true
	}
	return models.Event{}, false
}

// CreateEvent appends a new draft event owned by actor and persists the
// collection. The returned value is a copy safe to hand to callers.
func (s *Store) CreateEvent(actor Actor, in CreateEventInput) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	event := models.Event{
		ID:          newID(),
		OrganizerID: actor.ID,
		Title:       in.Title,
		Artist:      in.Artist,
		ArtistIDs:   in.ArtistIDs,
		Genre:       in.Genre,
		Date:        in.Date,
		Time:        in.Time,
		EndDate:     in.EndDate,
		EndTime:     in.EndTime,
		Venue:       in.Venue,
		City:        in.City,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
		Address:     in.Address,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Gallery:     in.Gallery,
		TicketTypes: in.TicketTypes,
		Rules:       in.Rules,
		Status:      models.EventStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.events = append(s.events, event)
	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return models.Event{}, err
	}
	return copyEvent(event), nil
}

// UpdateEvent merges patch over the event. A missing id is a no-op, never an
// error. Changing an approved event's venue, date, or time sends it back to
// pending approval; the old rejection reason, if any, stays until the next
// admin decision.
func (s *Store) UpdateEvent(id string, patch EventPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return false, nil
	}
	event := &s.events[i]

	materialChange := false
	if patch.Venue != nil && *patch.Venue != event.Venue {
		materialChange = true
	}
	if patch.Date != nil && *patch.Date != event.Date {
		materialChange = true
	}
	if patch.Time != nil && *patch.Time != event.Time {
		materialChange = true
	}

	applyEventPatch(event, patch)
	if materialChange && event.Status == models.EventStatusApproved {
		event.Status = models.EventStatusPending
	}
	event.UpdatedAt = s.now()

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEvent removes the event if present; absent ids are a no-op.
func (s *Store) DeleteEvent(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return false, nil
	}
	s.events = append(s.events[:i], s.events[i+1:]...)

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return false, err
	}
	return true, nil
}

// SubmitForApproval moves a draft or rejected event into the review queue.
// From any other status the call is a no-op. Submission itself does not
// create a notification; those fire on the admin decision.
func (s *Store) SubmitForApproval(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return false, nil
	}
	event := &s.events[i]
	if event.Status != models.EventStatusDraft && event.Status != models.EventStatusRejected {
		return false, nil
	}

	event.Status = models.EventStatusPending
	event.UpdatedAt = s.now()

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return false, err
	}
	return true, nil
}

// ApproveEvent approves a pending event, clears any previous rejection
// reason, and notifies the organizer.
func (s *Store) ApproveEvent(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return false, nil
	}
	event := &s.events[i]
	if event.Status != models.EventStatusPending {
		return false, nil
	}

	event.Status = models.EventStatusApproved
	event.RejectionReason = ""
	event.UpdatedAt = s.now()

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return false, err
	}
	if err := s.notify(
		models.NotifyEventApproved,
		"Event approved",
		fmt.Sprintf("%q has been approved and is now live.", event.Title),
	); err != nil {
		return false, err
	}
	return true, nil
}

// RejectEvent rejects a pending event with an optional free-text reason and
// notifies the organizer.
func (s *Store) RejectEvent(id, reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return false, nil
	}
	event := &s.events[i]
	if event.Status != models.EventStatusPending {
		return false, nil
	}

	event.Status = models.EventStatusRejected
	event.RejectionReason = reason
	event.UpdatedAt = s.now()

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return false, err
	}
	if err := s.notify(
		models.NotifyEventRejected,
		"Event rejected",
		fmt.Sprintf("%q was rejected. Reason: %s", event.Title, reason),
	); err != nil {
		return false, err
	}
	return true, nil
}

// CancelEvent cancels an event from any state except cancelled itself.
func (s *Store) CancelEvent(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return false, nil
	}
	event := &s.events[i]
	if event.Status == models.EventStatusCancelled {
		return false, nil
	}

	event.Status = models.EventStatusCancelled
	event.UpdatedAt = s.now()

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return false, err
	}
	return true, nil
}

// CloneEvent duplicates an event under a fresh id: the clone starts as a
// draft with no dopings and reset timestamps, everything else is copied.
// The clone becomes visible in a single persisted write.
func (s *Store) CloneEvent(id string) (models.Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(id)
	if i < 0 {
		return models.Event{}, false, nil
	}

	now := s.now()
	clone := copyEvent(s.events[i])
	clone.ID = newID()
	clone.Status = models.EventStatusDraft
	clone.RejectionReason = ""
	clone.Dopings = nil
	clone.CreatedAt = now
	clone.UpdatedAt = now

	s.events = append(s.events, clone)
	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return models.Event{}, false, err
	}
	return copyEvent(clone), true, nil
}

// PurchaseDoping appends a promotional placement to the event. Existing
// placements are kept; overlapping purchases of the same type are allowed.
func (s *Store) PurchaseDoping(eventID string, doping models.Doping) (models.Doping, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(eventID)
	if i < 0 {
		return models.Doping{}, false, nil
	}

	if doping.ID == "" {
		doping.ID = newID()
	}
	if doping.Status == "" {
		doping.Status = models.DopingStatusActive
	}

	event := &s.events[i]
	event.Dopings = append(event.Dopings, doping)
	event.UpdatedAt = s.now()

	if err := persistCollection(s, keyEvents, s.events); err != nil {
		return models.Doping{}, false, err
	}
	return doping, true, nil
}

func (s *Store) eventIndex(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func applyEventPatch(event *models.Event, patch EventPatch) {
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Artist != nil {
		event.Artist = *patch.Artist
	}
	if patch.ArtistIDs != nil {
		event.ArtistIDs = append([]string(nil), (*patch.ArtistIDs)...)
	}
	if patch.Genre != nil {
		event.Genre = *patch.Genre
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Time != nil {
		event.Time = *patch.Time
	}
	if patch.EndDate != nil {
		event.EndDate = *patch.EndDate
	}
	if patch.EndTime != nil {
		event.EndTime = *patch.EndTime
	}
	if patch.Venue != nil {
		event.Venue = *patch.Venue
	}
	if patch.City != nil {
		event.City = *patch.City
	}
	if patch.Price != nil {
		event.Price = *patch.Price
	}
	if patch.Image != nil {
		event.Image = *patch.Image
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Address != nil {
		event.Address = *patch.Address
	}
	if patch.Lat != nil {
		lat := *patch.Lat
		event.Lat = &lat
	}
	if patch.Lng != nil {
		lng := *patch.Lng
		event.Lng = &lng
	}
	if patch.Gallery != nil {
		event.Gallery = append([]string(nil), (*patch.Gallery)...)
	}
	if patch.TicketTypes != nil {
		event.TicketTypes = append([]models.TicketType(nil), (*patch.TicketTypes)...)
	}
	if patch.Rules != nil {
		event.Rules = append([]string(nil), (*patch.Rules)...)
	}
}

// copyEvent returns a value copy with its own backing arrays so callers can
// never reach into store state.
func copyEvent(e models.Event) models.Event {
	out := e
	if e.Lat != nil {
		lat := *e.Lat
		out.Lat = &lat
	}
	if e.Lng != nil {
		lng := *e.Lng
		out.Lng = &lng
	}
	out.ArtistIDs = append([]string(nil), e.ArtistIDs...)
	out.Gallery = append([]string(nil), e.Gallery...)
	out.TicketTypes = append([]models.TicketType(nil), e.TicketTypes...)
	out.Rules = append([]string(nil), e.Rules...)
	out.Dopings = append([]models.Doping(nil), e.Dopings...)
	return out
}
