// Package store owns every organizer/admin-visible collection of the
// marketplace back office. It is constructed once at startup and passed by
// handle to every consumer; all mutations go through it, every mutation
// re-persists the whole collection it touched, and derived values (stats,
// effective statuses, unread counts) are recomputed on read.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ticket-marketplace-backend/internal/models"
	"ticket-marketplace-backend/pkg/kv"
)

// Collection keys in the backing key-value store. Stable for the lifetime of
// stored data; renaming one discards what users already have.
const (
	keyEvents         = "marketplace:events"
	keyVenues         = "marketplace:venues"
	keyTickets        = "marketplace:tickets"
	keyValidationLogs = "marketplace:validation_logs"
	keyCoupons        = "marketplace:coupons"
	keyAnnouncements  = "marketplace:announcements"
	keyNotifications  = "marketplace:notifications"
	keyArtistRequests = "marketplace:artist_requests"
)

// Actor identifies who is performing a mutation. Supplied by the identity
// layer; the store never authenticates anyone itself.
type Actor struct {
	ID   string
	Name string
	Role string
}

// Store is the in-memory domain state, loaded once from the key-value
// backend at construction and kept resident afterward. The backend is never
// re-read, so changes written by another process are not observed; the last
// writer to a collection key wins.
type Store struct {
	mu  sync.Mutex
	kv  kv.Store
	log *logrus.Logger
	now func() time.Time

	events         []models.Event
	venues         []models.Venue
	tickets        []models.Ticket
	validationLogs []models.ValidationLog
	coupons        []models.Coupon
	announcements  []models.Announcement
	notifications  []models.Notification
	artistRequests []models.ArtistRequest
}

type Option func(*Store)

// WithClock overrides the wall clock, used by tests exercising time-derived
// state.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(log *logrus.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New loads every collection from the backend. A missing or unparseable
// value seeds the collection with the demo dataset and writes the seed back;
// parse failures never propagate. Only a failing seed write-back is returned
// as an error.
func New(backend kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:  backend,
		log: logrus.StandardLogger(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.events, err = loadCollection(s, keyEvents, seedEvents); err != nil {
		return nil, err
	}
	if s.venues, err = loadCollection(s, keyVenues, seedVenues); err != nil {
		return nil, err
	}
	if s.tickets, err = loadCollection(s, keyTickets, seedTickets); err != nil {
		return nil, err
	}
	if s.validationLogs, err = loadCollection(s, keyValidationLogs, seedValidationLogs); err != nil {
		return nil, err
	}
	if s.coupons, err = loadCollection(s, keyCoupons, seedCoupons); err != nil {
		return nil, err
	}
	if s.announcements, err = loadCollection(s, keyAnnouncements, seedAnnouncements); err != nil {
		return nil, err
	}
	if s.notifications, err = loadCollection(s, keyNotifications, seedNotifications); err != nil {
		return nil, err
	}
	if s.artistRequests, err = loadCollection(s, keyArtistRequests, seedArtistRequests); err != nil {
		return nil, err
	}

	return s, nil
}

// loadCollection reads one collection, falling back to its seed when the key
// is absent or holds something json cannot parse. Unknown fields in stored
// records are ignored, so older data survives schema additions.
func loadCollection[T any](s *Store, key string, seed func(now time.Time) []T) ([]T, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to read collection, seeding")
		ok = false
	}

	if ok {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
		s.log.WithField("key", key).Warn("stored collection is malformed, reseeding")
	}

	items := seed(s.now())
	if err := persistCollection(s, key, items); err != nil {
		return nil, err
	}
	return items, nil
}

// persistCollection re-serializes and writes a whole collection. Every
// mutation pays this O(collection) cost; collections stay demo-scale so a
// delta scheme is not worth its complexity here.
func persistCollection[T any](s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", key, err)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist collection %q: %w", key, err)
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

// notify appends a notification and persists the collection. Callers hold
// the store lock.
func (s *Store) notify(kind, title, message string) error {
	s.notifications = append(s.notifications, models.Notification{
		ID:        newID(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: s.now(),
	})
	return persistCollection(s, keyNotifications, s.notifications)
}
