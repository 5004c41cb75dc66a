package models

import (
	"time"
)

// User is the acting identity supplied to the store: admins decide approvals,
// organizers own events and venues, staff run check-in.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      string    `json:"role"` // admin|organizer|staff
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event statuses. These are the persisted values; time-derived states
// (e.g. a doping past its end date) are computed on read, never written back.
const (
	EventStatusDraft     = "draft"
	EventStatusPending   = "pending_approval"
	EventStatusApproved  = "approved"
	EventStatusRejected  = "rejected"
	EventStatusCancelled = "cancelled"
)

// Doping placement types and stored statuses.
const (
	DopingHomepageFeatured = "homepage_featured"
	DopingExplorePopular   = "explore_popular"
	DopingEventsEditorPick = "events_editor_pick"

	DopingStatusActive  = "active"
	DopingStatusExpired = "expired"
)

// TicketType is a purchasable ticket definition attached to an event.
type TicketType struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// Doping is a paid, time-bounded promotional placement on an event.
// Status holds the value written at purchase time; whether the placement is
// currently running is always derived from EndsAt against the clock.
type Doping struct {
	ID        string    `json:"id"`
	PackageID string    `json:"package_id"`
	Type      string    `json:"type"` // homepage_featured|explore_popular|events_editor_pick
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    string    `json:"status"` // active|expired
}

type Event struct {
	ID          string   `json:"id"`
	OrganizerID string   `json:"organizer_id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	ArtistIDs   []string `json:"artist_ids,omitempty"`
	Genre       string   `json:"genre"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	EndDate     string   `json:"end_date,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	Venue       string   `json:"venue"`
	City        string   `json:"city"`
	Price       string   `json:"price"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`

	TicketTypes []TicketType `json:"ticket_types,omitempty"`
	Rules       []string     `json:"rules,omitempty"`
	Dopings     []Doping     `json:"dopings,omitempty"`

	Status          string `json:"status"` // draft|pending_approval|approved|rejected|cancelled
	RejectionReason string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Venue statuses. Venues carry no approval workflow: organizer-created
// venues start active. The asymmetry with events is intentional.
const (
	VenueStatusActive  = "active"
	VenueStatusPending = "pending"
)

// OpeningHours is one row of a venue's weekly opening-hours table.
type OpeningHours struct {
	Open  bool   `json:"open"`
	Hours string `json:"hours,omitempty"`
}

// VenueDetails is the long-form detail block shown on a venue page.
type VenueDetails struct {
	Description  string                  `json:"description,omitempty"`
	Address      string                  `json:"address,omitempty"`
	Lat          *float64                `json:"lat,omitempty"`
	Lng          *float64                `json:"lng,omitempty"`
	Phone        string                  `json:"phone,omitempty"`
	Email        string                  `json:"email,omitempty"`
	Website      string                  `json:"website,omitempty"`
	SocialLinks  map[string]string       `json:"social_links,omitempty"`
	OpeningHours map[string]OpeningHours `json:"opening_hours,omitempty"` // keyed by day-of-week
	Gallery      []string                `json:"gallery,omitempty"`
}

type Venue struct {
	ID          string       `json:"id"`
	OrganizerID string       `json:"organizer_id"`
	Name        string       `json:"name"`
	City        string       `json:"city"`
	Capacity    string       `json:"capacity"`
	Type        string       `json:"type"`
	Image       string       `json:"image,omitempty"`
	Rating      float64      `json:"rating"`
	Details     VenueDetails `json:"details"`
	Status      string       `json:"status"` // active|pending
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Ticket statuses.
const (
	TicketStatusActive    = "active"
	TicketStatusUsed      = "used"
	TicketStatusCancelled = "cancelled"
)

// Ticket is a sold ticket record. EventTitle is denormalized for display;
// TotalPaid is a formatted display string — revenue math goes through
// store.ParseAmount, never through this field directly.
type Ticket struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	BuyerName   string    `json:"buyer_name"`
	BuyerEmail  string    `json:"buyer_email"`
	TicketType  string    `json:"ticket_type"`
	Quantity    int       `json:"quantity"`
	TotalPaid   string    `json:"total_paid"`
	Status      string    `json:"status"` // active|used|cancelled
	PurchasedAt time.Time `json:"purchased_at"`
}

// Validation log actions.
const (
	LogActionApproved  = "approved"
	LogActionCancelled = "cancelled"
	LogActionRefunded  = "refunded"
)

// ValidationLog is the append-only audit record of a ticket-status-changing
// action. Logs are never mutated or deleted; the ticket only carries its
// current status, so the log is the sole history.
type ValidationLog struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	HolderName    string    `json:"holder_name"`
	HolderEmail   string    `json:"holder_email"`
	TicketType    string    `json:"ticket_type"`
	Action        string    `json:"action"` // approved|cancelled|refunded
	ValidatorID   string    `json:"validator_id"`
	ValidatorName string    `json:"validator_name,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Coupon discount types and derived statuses. Status is never stored on the
// coupon; it is computed from usage and expiry at read time.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"

	CouponStatusActive   = "active"
	CouponStatusExpired  = "expired"
	CouponStatusDepleted = "depleted"
)

type Coupon struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`          // stored uppercased
	DiscountType  string    `json:"discount_type"` // percent|fixed
	DiscountValue float64   `json:"discount_value"`
	EventID       string    `json:"event_id,omitempty"` // empty = all events
	MaxUsage      int       `json:"max_usage"`
	UsedCount     int       `json:"used_count"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type Announcement struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification types.
const (
	NotifyEventApproved       = "event_approved"
	NotifyEventRejected       = "event_rejected"
	NotifyTicketSold          = "ticket_sold"
	NotifyTicketCancelled     = "ticket_cancelled"
	NotifyTicketRefunded      = "ticket_refunded"
	NotifyDopingExpiring      = "doping_expiring"
	NotifyArtistRequestUpdate = "artist_request_update"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Artist request statuses.
const (
	ArtistRequestOpen     = "open"
	ArtistRequestResolved = "resolved"
)

// ArtistRequest is an organizer's request to book or feature an artist.
// Resolution happens outside this system.
type ArtistRequest struct {
	ID          string    `json:"id"`
	ArtistName  string    `json:"artist_name"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // open|resolved
	CreatedAt   time.Time `json:"created_at"`
}
