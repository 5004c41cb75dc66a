package store

import (
	"fmt"

	"ticket-marketplace-backend/internal/models"
)

// CreateTicketInput is the seam for the (simulated) purchase flow. The event
// title is denormalized onto the ticket at creation time.
type CreateTicketInput struct {
	EventID    string
	BuyerName  string
	BuyerEmail string
	TicketType string
	Quantity   int
	TotalPaid  string
}

// Tickets returns a copy of the sold-ticket collection. Kept as a full-list
// seam; joining and filtering stay with the caller.
func (s *Store) Tickets() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *Store) Ticket(id string) (models.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.ticketIndex(id); i >= 0 {
		return s.tickets[i], true
	}
	return models.Ticket{}, false
}

// ValidationLogs returns a copy of the append-only audit trail, oldest first.
func (s *Store) ValidationLogs() []models.ValidationLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ValidationLog, len(s.validationLogs))
	copy(out, s.validationLogs)
	return out
}

// CreateTicket records a sale against an event and notifies the organizer.
// An unknown event id is a no-op.
func (s *Store) CreateTicket(in CreateTicketInput) (models.Ticket, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.eventIndex(in.EventID)
	if i < 0 {
		return models.Ticket{}, false, nil
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	ticket := models.Ticket{
		ID:          newID(),
		EventID:     in.EventID,
		EventTitle:  s.events[i].Title,
		BuyerName:   in.BuyerName,
		BuyerEmail:  in.BuyerEmail,
		TicketType:  in.TicketType,
		Quantity:    quantity,
		TotalPaid:   in.TotalPaid,
		Status:      models.TicketStatusActive,
		PurchasedAt: s.now(),
	}

	s.tickets = append(s.tickets, ticket)
	if err := persistCollection(s, keyTickets, s.tickets); err != nil {
		return models.Ticket{}, false, err
	}
	if err := s.notify(
		models.NotifyTicketSold,
		"Ticket sold",
		fmt.Sprintf("%s bought %d x %s for %q.", ticket.BuyerName, ticket.Quantity, ticket.TicketType, ticket.EventTitle),
	); err != nil {
		return models.Ticket{}, false, err
	}
	return ticket, true, nil
}

// CheckInTicket marks an active ticket as used and appends the audit log
// entry. No notification fires for a plain check-in.
func (s *Store) CheckInTicket(id string, validator Actor, notes string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 || s.tickets[i].Status != models.TicketStatusActive {
		return false, nil
	}

	s.tickets[i].Status = models.TicketStatusUsed
	if err := s.persistTicketAction(i, models.LogActionApproved, validator, notes); err != nil {
		return false, err
	}
	return true, nil
}

// CancelTicket cancels an active ticket, logs the action, and notifies the
// organizer.
func (s *Store) CancelTicket(id string, validator Actor, notes string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 || s.tickets[i].Status != models.TicketStatusActive {
		return false, nil
	}

	s.tickets[i].Status = models.TicketStatusCancelled
	if err := s.persistTicketAction(i, models.LogActionCancelled, validator, notes); err != nil {
		return false, err
	}
	if err := s.notify(
		models.NotifyTicketCancelled,
		"Ticket cancelled",
		fmt.Sprintf("A ticket for %q was cancelled.", s.tickets[i].EventTitle),
	); err != nil {
		return false, err
	}
	return true, nil
}

// RefundTicket refunds an active or already-used ticket. The ticket ends up
// cancelled; the distinction from a plain cancellation lives in the log.
func (s *Store) RefundTicket(id string, validator Actor, notes string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ticketIndex(id)
	if i < 0 || s.tickets[i].Status == models.TicketStatusCancelled {
		return false, nil
	}

	s.tickets[i].Status = models.TicketStatusCancelled
	if err := s.persistTicketAction(i, models.LogActionRefunded, validator, notes); err != nil {
		return false, err
	}
	if err := s.notify(
		models.NotifyTicketRefunded,
		"Ticket refunded",
		fmt.Sprintf("A ticket for %q was refunded.", s.tickets[i].EventTitle),
	); err != nil {
		return false, err
	}
	return true, nil
}

// persistTicketAction writes the mutated ticket collection and appends
// exactly one validation log entry for the action. Callers hold the lock and
// have already changed the ticket's status.
func (s *Store) persistTicketAction(i int, action string, validator Actor, notes string) error {
	ticket := s.tickets[i]

	if err := persistCollection(s, keyTickets, s.tickets); err != nil {
		return err
	}

	s.validationLogs = append(s.validationLogs, models.ValidationLog{
		ID:            newID(),
		EventID:       ticket.EventID,
		EventTitle:    ticket.EventTitle,
		HolderName:    ticket.BuyerName,
		HolderEmail:   ticket.BuyerEmail,
		TicketType:    ticket.TicketType,
		Action:        action,
		ValidatorID:   validator.ID,
		ValidatorName: validator.Name,
		Notes:         notes,
		CreatedAt:     s.now(),
	})
	return persistCollection(s, keyValidationLogs, s.validationLogs)
}

func (s *Store) ticketIndex(id string) int {
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return i
		}
	}
	return -1
}
