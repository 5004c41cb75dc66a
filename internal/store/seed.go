package store

import (
	"time"

	"ticket-marketplace-backend/internal/models"
)

// Demo datasets written when a collection has no (or unreadable) persisted
// data. Ids are fixed so the seed is stable across runs and references
// between collections hold.

func seedEvents(now time.Time) []models.Event {
	lat1, lng1 := 41.0425, 28.9869
	lat2, lng2 := 39.9255, 32.8662

	return []models.Event{
		{
			ID:          "evt-seed-1",
			OrganizerID: "org-seed-1",
			Title:       "Mor ve Ötesi: Harbiye Concert",
			Artist:      "Mor ve Ötesi",
			Genre:       "Rock",
			Date:        "2026-09-18",
			Time:        "21:00",
			Venue:       "Harbiye Açıkhava",
			City:        "Istanbul",
			Price:       "₺1.250",
			Description: "Open-air anniversary concert.",
			Address:     "Harbiye, Şişli",
			Lat:         &lat1,
			Lng:         &lng1,
			TicketTypes: []models.TicketType{
				{Name: "General", Price: "₺1.250", Description: "Standing", Available: true},
				{Name: "VIP", Price: "₺2.750", Description: "Front block seating", Available: true},
			},
			Rules:  []string{"no_refund_after_start", "age_18_plus"},
			Status: models.EventStatusApproved,
			Dopings: []models.Doping{
				{
					ID:        "dop-seed-1",
					PackageID: "pkg-homepage-weekly",
					Type:      models.DopingHomepageFeatured,
					StartsAt:  now.AddDate(0, 0, -2),
					EndsAt:    now.AddDate(0, 0, 5),
					Status:    models.DopingStatusActive,
				},
			},
			CreatedAt: now.AddDate(0, 0, -14),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:          "evt-seed-2",
			OrganizerID: "org-seed-1",
			Title:       "Jazz Evenings: Ankara Session",
			Artist:      "Kerem Görsev Trio",
			Genre:       "Jazz",
			Date:        "2026-10-03",
			Time:        "20:30",
			Venue:       "CSO Ada",
			City:        "Ankara",
			Price:       "₺850",
			Lat:         &lat2,
			Lng:         &lng2,
			TicketTypes: []models.TicketType{
				{Name: "Standard", Price: "₺850", Description: "Seated", Available: true},
			},
			Status:    models.EventStatusPending,
			CreatedAt: now.AddDate(0, 0, -3),
			UpdatedAt: now.AddDate(0, 0, -3),
		},
	}
}

func seedVenues(now time.Time) []models.Venue {
	lat, lng := 41.0425, 28.9869

	return []models.Venue{
		{
			ID:          "ven-seed-1",
			OrganizerID: "org-seed-1",
			Name:        "Harbiye Açıkhava",
			City:        "Istanbul",
			Capacity:    "4.500",
			Type:        "Open-air theatre",
			Rating:      4.7,
			Details: models.VenueDetails{
				Description: "Historic open-air stage in the city centre.",
				Address:     "Harbiye, Şişli, Istanbul",
				Lat:         &lat,
				Lng:         &lng,
				Phone:       "+90 212 000 00 00",
				SocialLinks: map[string]string{"instagram": "https://instagram.com/harbiyeacikhava"},
				OpeningHours: map[string]models.OpeningHours{
					"monday":    {Open: false},
					"tuesday":   {Open: true, Hours: "18:00-23:00"},
					"wednesday": {Open: true, Hours: "18:00-23:00"},
					"thursday":  {Open: true, Hours: "18:00-23:00"},
					"friday":    {Open: true, Hours: "18:00-00:00"},
					"saturday":  {Open: true, Hours: "18:00-00:00"},
					"sunday":    {Open: true, Hours: "18:00-23:00"},
				},
			},
			Status:    models.VenueStatusActive,
			CreatedAt: now.AddDate(0, -1, 0),
			UpdatedAt: now.AddDate(0, -1, 0),
		},
	}
}

func seedTickets(now time.Time) []models.Ticket {
	return []models.Ticket{
		{
			ID:          "tck-seed-1",
			EventID:     "evt-seed-1",
			EventTitle:  "Mor ve Ötesi: Harbiye Concert",
			BuyerName:   "Ayşe Yılmaz",
			BuyerEmail:  "ayse@example.com",
			TicketType:  "General",
			Quantity:    2,
			TotalPaid:   "₺2.500",
			Status:      models.TicketStatusActive,
			PurchasedAt: now.AddDate(0, 0, -5),
		},
		{
			ID:          "tck-seed-2",
			EventID:     "evt-seed-1",
			EventTitle:  "Mor ve Ötesi: Harbiye Concert",
			BuyerName:   "Mehmet Demir",
			BuyerEmail:  "mehmet@example.com",
			TicketType:  "VIP",
			Quantity:    1,
			TotalPaid:   "2,750 TL",
			Status:      models.TicketStatusActive,
			PurchasedAt: now.AddDate(0, 0, -4),
		},
	}
}

func seedValidationLogs(time.Time) []models.ValidationLog {
	return []models.ValidationLog{}
}

func seedCoupons(now time.Time) []models.Coupon {
	return []models.Coupon{
		{
			ID:            "cpn-seed-1",
			Code:          "WELCOME10",
			DiscountType:  models.DiscountPercent,
			DiscountValue: 10,
			MaxUsage:      100,
			UsedCount:     12,
			ExpiresAt:     now.AddDate(0, 2, 0),
			CreatedAt:     now.AddDate(0, 0, -10),
		},
	}
}

func seedAnnouncements(time.Time) []models.Announcement {
	return []models.Announcement{}
}

func seedNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:        "ntf-seed-1",
			Type:      models.NotifyTicketSold,
			Title:     "Ticket sold",
			Message:   "Ayşe Yılmaz bought 2 x General for \"Mor ve Ötesi: Harbiye Concert\".",
			Read:      false,
			CreatedAt: now.AddDate(0, 0, -5),
		},
	}
}

func seedArtistRequests(time.Time) []models.ArtistRequest {
	return []models.ArtistRequest{}
}
