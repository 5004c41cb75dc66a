package store

import (
	"strconv"
	"strings"
	"time"

	"ticket-marketplace-backend/internal/models"
)

// Stats is the back-office dashboard summary, recomputed from the live
// collections on every call.
type Stats struct {
	TotalEvents      int   `json:"total_events"`
	ActiveDopings    int   `json:"active_dopings"`
	PendingApproval  int   `json:"pending_approval"`
	TotalTicketsSold int   `json:"total_tickets_sold"`
	TotalRevenue     int64 `json:"total_revenue"`
}

// Stats aggregates over current collections. Doping activity is evaluated
// against the clock here; nothing sweeps stored doping statuses, so a record
// can keep reading "active" long after its end date while being counted as
// expired everywhere that matters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := Stats{TotalEvents: len(s.events)}

	for i := range s.events {
		if s.events[i].Status == models.EventStatusPending {
			out.PendingApproval++
		}
		for _, d := range s.events[i].Dopings {
			if EffectiveDopingStatus(d, now) == models.DopingStatusActive {
				out.ActiveDopings++
			}
		}
	}

	for i := range s.tickets {
		if s.tickets[i].Status == models.TicketStatusCancelled {
			continue
		}
		out.TotalTicketsSold += s.tickets[i].Quantity
		out.TotalRevenue += ParseAmount(s.tickets[i].TotalPaid)
	}

	return out
}

// ActivePromotions returns every doping across all events that is still
// running at read time, for the featured/popular placements.
func (s *Store) ActivePromotions() []models.Doping {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var out []models.Doping
	for i := range s.events {
		for _, d := range s.events[i].Dopings {
			if EffectiveDopingStatus(d, now) == models.DopingStatusActive {
				out = append(out, d)
			}
		}
	}
	return out
}

// EffectiveDopingStatus derives whether a placement is running. The stored
// status is trusted only as long as the end date has not passed.
func EffectiveDopingStatus(d models.Doping, now time.Time) string {
	if d.Status != models.DopingStatusActive {
		return models.DopingStatusExpired
	}
	if !d.EndsAt.After(now) {
		return models.DopingStatusExpired
	}
	return models.DopingStatusActive
}

// ParseAmount extracts the numeric value of a formatted currency string by
// keeping digits only: "₺1.250", "1,250 TL", and "₺1250" all parse to 1250.
// Thousands separators of either style are stripped, never treated as
// decimals. This is the one normalization rule for all revenue math.
func ParseAmount(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
