package store

import (
	"ticket-marketplace-backend/internal/models"
)

// CreateVenueInput carries the fields an organizer fills in for a venue.
// Venues go live immediately; unlike events there is no review queue.
type CreateVenueInput struct {
	Name     string
	City     string
	Capacity string
	Type     string
	Image    string
	Rating   float64
	Details  models.VenueDetails
}

// VenuePatch is a partial venue update; nil fields are left untouched.
type VenuePatch struct {
	Name     *string
	City     *string
	Capacity *string
	Type     *string
	Image    *string
	Rating   *float64
	Details  *models.VenueDetails
}

func (s *Store) Venues() []models.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Venue, len(s.venues))
	for i := range s.venues {
		out[i] = copyVenue(s.venues[i])
	}
	return out
}

func (s *Store) Venue(id string) (models.Venue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.venueIndex(id); i >= 0 {
		return copyVenue(s.venues[i]), true
	}
	return models.Venue{}, false
}

func (s *Store) CreateVenue(actor Actor, in CreateVenueInput) (models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	venue := models.Venue{
		ID:          newID(),
		OrganizerID: actor.ID,
		Name:        in.Name,
		City:        in.City,
		Capacity:    in.Capacity,
		Type:        in.Type,
		Image:       in.Image,
		Rating:      in.Rating,
		Details:     in.Details,
		Status:      models.VenueStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.venues = append(s.venues, venue)
	if err := persistCollection(s, keyVenues, s.venues); err != nil {
		return models.Venue{}, err
	}
	return copyVenue(venue), nil
}

func (s *Store) UpdateVenue(id string, patch VenuePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.venueIndex(id)
	if i < 0 {
		return false, nil
	}
	venue := &s.venues[i]

	if patch.Name != nil {
		venue.Name = *patch.Name
	}
	if patch.City != nil {
		venue.City = *patch.City
	}
	if patch.Capacity != nil {
		venue.Capacity = *patch.Capacity
	}
	if patch.Type != nil {
		venue.Type = *patch.Type
	}
	if patch.Image != nil {
		venue.Image = *patch.Image
	}
	if patch.Rating != nil {
		venue.Rating = *patch.Rating
	}
	if patch.Details != nil {
		venue.Details = copyVenueDetails(*patch.Details)
	}
	venue.UpdatedAt = s.now()

	if err := persistCollection(s, keyVenues, s.venues); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) DeleteVenue(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.venueIndex(id)
	if i < 0 {
		return false, nil
	}
	s.venues = append(s.venues[:i], s.venues[i+1:]...)

	if err := persistCollection(s, keyVenues, s.venues); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) venueIndex(id string) int {
	for i := range s.venues {
		if s.venues[i].ID == id {
			return i
		}
	}
	return -1
}

func copyVenue(v models.Venue) models.Venue {
	out := v
	out.Details = copyVenueDetails(v.Details)
	return out
}

func copyVenueDetails(d models.VenueDetails) models.VenueDetails {
	out := d
	if d.Lat != nil {
		lat := *d.Lat
		out.Lat = &lat
	}
	if d.Lng != nil {
		lng := *d.Lng
		out.Lng = &lng
	}
	if d.SocialLinks != nil {
		out.SocialLinks = make(map[string]string, len(d.SocialLinks))
		for k, v := range d.SocialLinks {
			out.SocialLinks[k] = v
		}
	}
	if d.OpeningHours != nil {
		out.OpeningHours = make(map[string]models.OpeningHours, len(d.OpeningHours))
		for k, v := range d.OpeningHours {
			out.OpeningHours[k] = v
		}
	}
	out.Gallery = append([]string(nil), d.Gallery...)
	return out
}
