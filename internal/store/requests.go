package store

import (
	"fmt"

	"ticket-marketplace-backend/internal/models"
)

func (s *Store) ArtistRequests() []models.ArtistRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ArtistRequest, len(s.artistRequests))
	copy(out, s.artistRequests)
	return out
}

// CreateArtistRequest records an organizer's request to book or feature an
// artist. Requests start open; resolution happens outside this system.
func (s *Store) CreateArtistRequest(artistName, genre, description string) (models.ArtistRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := models.ArtistRequest{
		ID:          newID(),
		ArtistName:  artistName,
		Genre:       genre,
		Description: description,
		Status:      models.ArtistRequestOpen,
		CreatedAt:   s.now(),
	}

	s.artistRequests = append(s.artistRequests, request)
	if err := persistCollection(s, keyArtistRequests, s.artistRequests); err != nil {
		return models.ArtistRequest{}, err
	}
	return request, nil
}

// ResolveArtistRequest closes an open request and notifies the organizer.
// Unknown ids and already-resolved requests are no-ops.
func (s *Store) ResolveArtistRequest(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artistRequests {
		if s.artistRequests[i].ID != id {
			continue
		}
		if s.artistRequests[i].Status == models.ArtistRequestResolved {
			return false, nil
		}
		s.artistRequests[i].Status = models.ArtistRequestResolved
		if err := persistCollection(s, keyArtistRequests, s.artistRequests); err != nil {
			return false, err
		}
		if err := s.notify(
			models.NotifyArtistRequestUpdate,
			"Artist request update",
			fmt.Sprintf("Your request for %s has been resolved.", s.artistRequests[i].ArtistName),
		); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
