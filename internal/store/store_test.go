package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace-backend/internal/models"
	"ticket-marketplace-backend/pkg/kv"
)

// testClock is a controllable wall clock for time-derived state.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T) (*Store, *kv.Memory, *testClock) {
	t.Helper()
	backend := kv.NewMemory()
	clock := &testClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	s, err := New(backend, WithClock(clock.Now))
	require.NoError(t, err)
	return s, backend, clock
}

func TestNewSeedsEmptyBackend(t *testing.T) {
	s, backend, _ := newTestStore(t)

	assert.NotEmpty(t, s.Events())
	assert.NotEmpty(t, s.Venues())
	assert.NotEmpty(t, s.Tickets())
	assert.NotEmpty(t, s.Coupons())

	// Seeds are written back immediately so a second session sees them.
	raw, ok, err := backend.Get(keyEvents)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []models.Event
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Len(t, persisted, len(s.Events()))
}

func TestCreatedEntitySurvivesReload(t *testing.T) {
	s, backend, clock := newTestStore(t)

	created, err := s.CreateEvent(Actor{ID: "org-1"}, CreateEventInput{
		Title: "Reload Fest",
		Venue: "Main Hall",
		City:  "Izmir",
		Date:  "2026-11-20",
		Time:  "20:00",
		Price: "₺500",
		TicketTypes: []models.TicketType{
			{Name: "Standard", Price: "₺500", Available: true},
		},
	})
	require.NoError(t, err)

	// Fresh session over the same backend.
	reloaded, err := New(backend, WithClock(clock.Now))
	require.NoError(t, err)

	found, ok := reloaded.Event(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestMalformedCollectionFallsBackToSeed(t *testing.T) {
	backend := kv.NewMemory()
	require.NoError(t, backend.Set(keyEvents, "{this is not json"))

	s, err := New(backend)
	require.NoError(t, err)

	events := s.Events()
	assert.NotEmpty(t, events)

	// The reseed was persisted over the broken value.
	raw, ok, err := backend.Get(keyEvents)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []models.Event
	assert.NoError(t, json.Unmarshal([]byte(raw), &persisted))
}

func TestUnknownStoredFieldsAreIgnored(t *testing.T) {
	backend := kv.NewMemory()
	stored := `[{"id":"evt-x","title":"Forward Compat","status":"draft","legacy_field":{"nested":true}}]`
	require.NoError(t, backend.Set(keyEvents, stored))

	s, err := New(backend)
	require.NoError(t, err)

	event, ok := s.Event("evt-x")
	require.True(t, ok)
	assert.Equal(t, "Forward Compat", event.Title)
	assert.Equal(t, models.EventStatusDraft, event.Status)
}

func TestUpdateDeleteMissingIDAreNoOps(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := s.Events()

	title := "Ghost"
	applied, err := s.UpdateEvent("no-such-id", EventPatch{Title: &title})
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.DeleteEvent("no-such-id")
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.UpdateVenue("no-such-id", VenuePatch{Name: &title})
	require.NoError(t, err)
	assert.False(t, applied)

	// Content and order are untouched.
	assert.Equal(t, before, s.Events())
}

func TestReadsReturnIndependentCopies(t *testing.T) {
	s, _, _ := newTestStore(t)

	events := s.Events()
	require.NotEmpty(t, events)
	require.NotEmpty(t, events[0].TicketTypes)

	events[0].Title = "mutated outside the store"
	events[0].TicketTypes[0].Price = "₺1"

	fresh, ok := s.Event(events[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated outside the store", fresh.Title)
	assert.NotEqual(t, "₺1", fresh.TicketTypes[0].Price)
}

func TestUpdatedAtAdvancesOnEveryMutation(t *testing.T) {
	s, _, clock := newTestStore(t)

	created, err := s.CreateEvent(Actor{ID: "org-1"}, CreateEventInput{Title: "Stamped"})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	title := "Stamped v2"
	applied, err := s.UpdateEvent(created.ID, EventPatch{Title: &title})
	require.NoError(t, err)
	require.True(t, applied)

	updated, ok := s.Event(created.ID)
	require.True(t, ok)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
