package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-marketplace-backend/internal/models"
)

var staff = Actor{ID: "usr-staff-1", Name: "Gate Staff", Role: "staff"}

func sellTicket(t *testing.T, s *Store) models.Ticket {
	t.Helper()
	events := s.Events()
	require.NotEmpty(t, events)

	ticket, ok, err := s.CreateTicket(CreateTicketInput{
		EventID:    events[0].ID,
		BuyerName:  "Deniz Kaya",
		BuyerEmail: "deniz@example.com",
		TicketType: "General",
		Quantity:   1,
		TotalPaid:  "₺1.250",
	})
	require.NoError(t, err)
	require.True(t, ok)
	return ticket
}

func TestCreateTicketDenormalizesEventTitle(t *testing.T) {
	s, _, _ := newTestStore(t)
	events := s.Events()

	ticket := sellTicket(t, s)
	assert.Equal(t, events[0].Title, ticket.EventTitle)
	assert.Equal(t, models.TicketStatusActive, ticket.Status)
	assert.NotEmpty(t, notificationsOfType(s, models.NotifyTicketSold))

	// Selling against an unknown event is a no-op.
	_, ok, err := s.CreateTicket(CreateTicketInput{EventID: "no-such-event"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateTicketClampsQuantity(t *testing.T) {
	s, _, _ := newTestStore(t)
	events := s.Events()

	ticket, ok, err := s.CreateTicket(CreateTicketInput{
		EventID:   events[0].ID,
		BuyerName: "Zero Qty",
		Quantity:  0,
		TotalPaid: "₺100",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, ticket.Quantity)
}

func TestCheckInWritesExactlyOneLog(t *testing.T) {
	s, _, _ := newTestStore(t)
	ticket := sellTicket(t, s)
	logsBefore := len(s.ValidationLogs())

	applied, err := s.CheckInTicket(ticket.ID, staff, "gate A")
	require.NoError(t, err)
	assert.True(t, applied)

	got, _ := s.Ticket(ticket.ID)
	assert.Equal(t, models.TicketStatusUsed, got.Status)

	logs := s.ValidationLogs()
	require.Len(t, logs, logsBefore+1)
	last := logs[len(logs)-1]
	assert.Equal(t, models.LogActionApproved, last.Action)
	assert.Equal(t, ticket.EventID, last.EventID)
	assert.Equal(t, ticket.BuyerName, last.HolderName)
	assert.Equal(t, staff.ID, last.ValidatorID)
	assert.Equal(t, "gate A", last.Notes)

	// A second check-in is a no-op and writes no log.
	applied, err = s.CheckInTicket(ticket.ID, staff, "")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Len(t, s.ValidationLogs(), logsBefore+1)
}

func TestCancelTicketLogsAndNotifies(t *testing.T) {
	s, _, _ := newTestStore(t)
	ticket := sellTicket(t, s)
	before := len(notificationsOfType(s, models.NotifyTicketCancelled))

	applied, err := s.CancelTicket(ticket.ID, staff, "buyer request")
	require.NoError(t, err)
	assert.True(t, applied)

	got, _ := s.Ticket(ticket.ID)
	assert.Equal(t, models.TicketStatusCancelled, got.Status)
	assert.Len(t, notificationsOfType(s, models.NotifyTicketCancelled), before+1)

	logs := s.ValidationLogs()
	assert.Equal(t, models.LogActionCancelled, logs[len(logs)-1].Action)

	// Refunding a cancelled ticket is a no-op.
	applied, err = s.RefundTicket(ticket.ID, staff, "")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestRefundUsedTicket(t *testing.T) {
	s, _, _ := newTestStore(t)
	ticket := sellTicket(t, s)

	_, err := s.CheckInTicket(ticket.ID, staff, "")
	require.NoError(t, err)

	applied, err := s.RefundTicket(ticket.ID, staff, "event cancelled")
	require.NoError(t, err)
	assert.True(t, applied)

	got, _ := s.Ticket(ticket.ID)
	assert.Equal(t, models.TicketStatusCancelled, got.Status)
	assert.NotEmpty(t, notificationsOfType(s, models.NotifyTicketRefunded))

	logs := s.ValidationLogs()
	assert.Equal(t, models.LogActionRefunded, logs[len(logs)-1].Action)
}

func TestValidationActionsOnMissingTicketAreNoOps(t *testing.T) {
	s, _, _ := newTestStore(t)
	logsBefore := len(s.ValidationLogs())

	for _, call := range []func() (bool, error){
		func() (bool, error) { return s.CheckInTicket("no-such-id", staff, "") },
		func() (bool, error) { return s.CancelTicket("no-such-id", staff, "") },
		func() (bool, error) { return s.RefundTicket("no-such-id", staff, "") },
	} {
		applied, err := call()
		require.NoError(t, err)
		assert.False(t, applied)
	}
	assert.Len(t, s.ValidationLogs(), logsBefore)
}
