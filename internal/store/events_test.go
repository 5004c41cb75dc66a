package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace-backend/internal/models"
)

func createDraftEvent(t *testing.T, s *Store) models.Event {
	t.Helper()
	event, err := s.CreateEvent(Actor{ID: "org-1"}, CreateEventInput{
		Title: "Status Machine Gig",
		Venue: "Klub X",
		City:  "Istanbul",
		Date:  "2026-12-01",
		Time:  "21:00",
		Price: "₺750",
	})
	require.NoError(t, err)
	require.Equal(t, models.EventStatusDraft, event.Status)
	return event
}

func notificationsOfType(s *Store, kind string) []models.Notification {
	var out []models.Notification
	for _, n := range s.Notifications() {
		if n.Type == kind {
			out = append(out, n)
		}
	}
	return out
}

func TestSubmitForApprovalLegality(t *testing.T) {
	s, _, _ := newTestStore(t)
	event := createDraftEvent(t, s)

	// draft -> pending succeeds.
	applied, err := s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	// pending -> pending is a no-op.
	applied, err = s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	// approved is not a legal predecessor.
	_, err = s.ApproveEvent(event.ID)
	require.NoError(t, err)
	applied, err = s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	assert.False(t, applied)
	got, _ := s.Event(event.ID)
	assert.Equal(t, models.EventStatusApproved, got.Status)

	// cancelled is not either.
	_, err = s.CancelEvent(event.ID)
	require.NoError(t, err)
	applied, err = s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	// rejected is: reject a fresh event, then resubmit.
	second := createDraftEvent(t, s)
	_, err = s.SubmitForApproval(second.ID)
	require.NoError(t, err)
	_, err = s.RejectEvent(second.ID, "missing venue permit")
	require.NoError(t, err)
	applied, err = s.SubmitForApproval(second.ID)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestApprovalFlowNotifications(t *testing.T) {
	s, _, _ := newTestStore(t)
	event := createDraftEvent(t, s)

	before := len(notificationsOfType(s, models.NotifyEventApproved))

	// Submission does not notify; the decision does.
	applied, err := s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Len(t, notificationsOfType(s, models.NotifyEventApproved), before)

	applied, err = s.ApproveEvent(event.ID)
	require.NoError(t, err)
	require.True(t, applied)

	got, _ := s.Event(event.ID)
	assert.Equal(t, models.EventStatusApproved, got.Status)
	assert.Len(t, notificationsOfType(s, models.NotifyEventApproved), before+1)
}

func TestRejectionReasonClearedOnlyOnApproval(t *testing.T) {
	s, _, _ := newTestStore(t)
	event := createDraftEvent(t, s)

	_, err := s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	_, err = s.RejectEvent(event.ID, "duplicate listing")
	require.NoError(t, err)

	got, _ := s.Event(event.ID)
	assert.Equal(t, models.EventStatusRejected, got.Status)
	assert.Equal(t, "duplicate listing", got.RejectionReason)
	assert.NotEmpty(t, notificationsOfType(s, models.NotifyEventRejected))

	// Resubmitting keeps the old reason around.
	_, err = s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	got, _ = s.Event(event.ID)
	assert.Equal(t, "duplicate listing", got.RejectionReason)

	// A fresh approval clears it.
	_, err = s.ApproveEvent(event.ID)
	require.NoError(t, err)
	got, _ = s.Event(event.ID)
	assert.Empty(t, got.RejectionReason)
}

func TestApprovedEventRevertsOnMaterialChange(t *testing.T) {
	s, _, _ := newTestStore(t)

	approve := func() models.Event {
		event := createDraftEvent(t, s)
		_, err := s.SubmitForApproval(event.ID)
		require.NoError(t, err)
		_, err = s.ApproveEvent(event.ID)
		require.NoError(t, err)
		got, _ := s.Event(event.ID)
		return got
	}

	// Title and price edits keep the approval.
	event := approve()
	title, price := "Renamed Gig", "₺999"
	_, err := s.UpdateEvent(event.ID, EventPatch{Title: &title, Price: &price})
	require.NoError(t, err)
	got, _ := s.Event(event.ID)
	assert.Equal(t, models.EventStatusApproved, got.Status)

	// Venue change forces re-review.
	venue := "Another Hall"
	_, err = s.UpdateEvent(event.ID, EventPatch{Venue: &venue})
	require.NoError(t, err)
	got, _ = s.Event(event.ID)
	assert.Equal(t, models.EventStatusPending, got.Status)

	// So does a date change.
	event = approve()
	date := "2027-01-15"
	_, err = s.UpdateEvent(event.ID, EventPatch{Date: &date})
	require.NoError(t, err)
	got, _ = s.Event(event.ID)
	assert.Equal(t, models.EventStatusPending, got.Status)

	// And a time change.
	event = approve()
	at := "22:30"
	_, err = s.UpdateEvent(event.ID, EventPatch{Time: &at})
	require.NoError(t, err)
	got, _ = s.Event(event.ID)
	assert.Equal(t, models.EventStatusPending, got.Status)
}

func TestCloneEventIndependence(t *testing.T) {
	s, _, clock := newTestStore(t)
	source := createDraftEvent(t, s)

	_, err := s.SubmitForApproval(source.ID)
	require.NoError(t, err)
	_, err = s.ApproveEvent(source.ID)
	require.NoError(t, err)
	_, _, err = s.PurchaseDoping(source.ID, models.Doping{
		PackageID: "pkg-1",
		Type:      models.DopingHomepageFeatured,
		StartsAt:  clock.Now(),
		EndsAt:    clock.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	clone, ok, err := s.CloneEvent(source.ID)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotEqual(t, source.ID, clone.ID)
	assert.Equal(t, models.EventStatusDraft, clone.Status)
	assert.Empty(t, clone.Dopings)
	assert.Equal(t, source.Title, clone.Title)
	assert.Equal(t, clock.Now(), clone.CreatedAt)

	// Mutating the clone leaves the source untouched.
	title := "Clone Renamed"
	_, err = s.UpdateEvent(clone.ID, EventPatch{Title: &title})
	require.NoError(t, err)

	original, _ := s.Event(source.ID)
	assert.Equal(t, source.Title, original.Title)
	assert.Equal(t, models.EventStatusApproved, original.Status)
	assert.Len(t, original.Dopings, 1)
}

func TestCloneMissingEventIsNoOp(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, ok, err := s.CloneEvent("no-such-id")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPurchaseDopingAppendsAndAllowsOverlap(t *testing.T) {
	s, _, clock := newTestStore(t)
	event := createDraftEvent(t, s)

	first, ok, err := s.PurchaseDoping(event.ID, models.Doping{
		PackageID: "pkg-1",
		Type:      models.DopingExplorePopular,
		StartsAt:  clock.Now(),
		EndsAt:    clock.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, models.DopingStatusActive, first.Status)

	// Same type, overlapping window: permitted, existing entry kept.
	_, ok, err = s.PurchaseDoping(event.ID, models.Doping{
		PackageID: "pkg-2",
		Type:      models.DopingExplorePopular,
		StartsAt:  clock.Now(),
		EndsAt:    clock.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, _ := s.Event(event.ID)
	assert.Len(t, got.Dopings, 2)

	// Unknown event: no-op.
	_, ok, err = s.PurchaseDoping("no-such-id", models.Doping{Type: models.DopingHomepageFeatured})
	require.NoError(t, err)
	assert.False(t, ok)
}
