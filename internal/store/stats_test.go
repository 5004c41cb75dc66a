package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace-backend/internal/models"
)

func TestParseAmountStripsEverythingButDigits(t *testing.T) {
	cases := map[string]int64{
		"₺1.250":   1250,
		"1,250 TL": 1250,
		"₺1250":    1250,
		"₺2.750":   2750,
		"free":     0,
		"":         0,
		"$ 99.00":  9900, // separators are never decimals
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseAmount(in), "input %q", in)
	}
}

func TestStatsCountsAndRevenue(t *testing.T) {
	s, _, _ := newTestStore(t)

	// Start from a known state: drop the seeded tickets.
	for _, ticket := range s.Tickets() {
		_, err := s.CancelTicket(ticket.ID, staff, "reset")
		require.NoError(t, err)
	}
	base := s.Stats()
	assert.Zero(t, base.TotalTicketsSold)
	assert.Zero(t, base.TotalRevenue)

	events := s.Events()
	_, ok, err := s.CreateTicket(CreateTicketInput{
		EventID:   events[0].ID,
		BuyerName: "A",
		Quantity:  2,
		TotalPaid: "₺1.250",
	})
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = s.CreateTicket(CreateTicketInput{
		EventID:   events[0].ID,
		BuyerName: "B",
		Quantity:  3,
		TotalPaid: "1,000 TL",
	})
	require.NoError(t, err)
	require.True(t, ok)

	stats := s.Stats()
	assert.Equal(t, len(events), stats.TotalEvents)
	assert.Equal(t, 5, stats.TotalTicketsSold)
	assert.Equal(t, int64(2250), stats.TotalRevenue)

	// Cancelled tickets drop out of both sums.
	cancelled, _, err := s.CreateTicket(CreateTicketInput{
		EventID:   events[0].ID,
		BuyerName: "C",
		Quantity:  10,
		TotalPaid: "₺9.999",
	})
	require.NoError(t, err)
	_, err = s.CancelTicket(cancelled.ID, staff, "")
	require.NoError(t, err)

	stats = s.Stats()
	assert.Equal(t, 5, stats.TotalTicketsSold)
	assert.Equal(t, int64(2250), stats.TotalRevenue)
}

func TestPendingApprovalCount(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := s.Stats().PendingApproval

	event := createDraftEvent(t, s)
	assert.Equal(t, before, s.Stats().PendingApproval)

	_, err := s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, s.Stats().PendingApproval)

	_, err = s.ApproveEvent(event.ID)
	require.NoError(t, err)
	assert.Equal(t, before, s.Stats().PendingApproval)
}

func TestDopingExpiryIsLazy(t *testing.T) {
	s, _, clock := newTestStore(t)
	event := createDraftEvent(t, s)

	doping, ok, err := s.PurchaseDoping(event.ID, models.Doping{
		PackageID: "pkg-1",
		Type:      models.DopingHomepageFeatured,
		StartsAt:  clock.Now(),
		EndsAt:    clock.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.True(t, ok)

	activeBefore := s.Stats().ActiveDopings
	require.Greater(t, activeBefore, 0)

	// Walk past the end date. The stored status still reads "active"
	// but every derived computation treats the placement as expired.
	clock.Advance(72 * time.Hour)

	got, _ := s.Event(event.ID)
	var stored models.Doping
	for _, d := range got.Dopings {
		if d.ID == doping.ID {
			stored = d
		}
	}
	assert.Equal(t, models.DopingStatusActive, stored.Status)
	assert.Equal(t, models.DopingStatusExpired, EffectiveDopingStatus(stored, clock.Now()))

	for _, d := range s.ActivePromotions() {
		assert.NotEqual(t, doping.ID, d.ID)
	}
	assert.Less(t, s.Stats().ActiveDopings, activeBefore)
}

func TestUnreadCountRecomputedOnRead(t *testing.T) {
	s, _, _ := newTestStore(t)

	event := createDraftEvent(t, s)
	_, err := s.SubmitForApproval(event.ID)
	require.NoError(t, err)
	_, err = s.ApproveEvent(event.ID)
	require.NoError(t, err)

	unread := s.UnreadCount()
	require.Greater(t, unread, 0)

	notifications := s.Notifications()
	applied, err := s.MarkNotificationRead(notifications[0].ID)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, unread-1, s.UnreadCount())

	// Marking again is a no-op.
	applied, err = s.MarkNotificationRead(notifications[0].ID)
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, s.MarkAllNotificationsRead())
	assert.Zero(t, s.UnreadCount())
}
