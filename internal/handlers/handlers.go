package handlers

import (
	"ticket-marketplace-backend/internal/config"
	"ticket-marketplace-backend/internal/middleware"
	"ticket-marketplace-backend/internal/services"
	"ticket-marketplace-backend/internal/store"
	"ticket-marketplace-backend/internal/utils"
	"ticket-marketplace-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	store   *store.Store
	authSvc *services.AuthService
	cfg     *config.Config
}

func NewHandler(st *store.Store, authSvc *services.AuthService, cfg *config.Config) *Handler {
	return &Handler{
		store:   st,
		authSvc: authSvc,
		cfg:     cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	// Public routes
	auth := router.Group("/auth")
	{
		auth.Post("/login", h.Login)
		auth.Post("/register", h.RegisterUser)
	}

	// Protected routes (JWT required)
	protected := router.Group("", middleware.JWTMiddleware(h.cfg))
	{
		protected.Get("/profile", h.GetProfile)

		// Event management (organizer or admin)
		events := protected.Group("/events")
		events.Use(middleware.OrganizerOrAdmin)
		{
			events.Get("/", h.ListEvents)
			events.Get("/:id", h.GetEvent)
			events.Post("/", h.CreateEvent)
			events.Put("/:id", h.UpdateEvent)
			events.Delete("/:id", h.DeleteEvent)
			events.Post("/:id/submit", h.SubmitEventForApproval)
			events.Post("/:id/clone", h.CloneEvent)
			events.Post("/:id/dopings", h.PurchaseDoping)
			events.Post("/:id/announcements", h.CreateAnnouncement)
		}

		// Venue management (organizer or admin)
		venues := protected.Group("/venues")
		venues.Use(middleware.OrganizerOrAdmin)
		{
			venues.Get("/", h.ListVenues)
			venues.Get("/:id", h.GetVenue)
			venues.Post("/", h.CreateVenue)
			venues.Put("/:id", h.UpdateVenue)
			venues.Delete("/:id", h.DeleteVenue)
		}

		// Coupons, announcements, artist requests (organizer or admin)
		coupons := protected.Group("/coupons")
		coupons.Use(middleware.OrganizerOrAdmin)
		{
			coupons.Get("/", h.ListCoupons)
			coupons.Post("/", h.CreateCoupon)
			coupons.Delete("/:id", h.DeleteCoupon)
			coupons.Post("/:id/redeem", h.RedeemCoupon)
		}

		announcements := protected.Group("/announcements")
		announcements.Use(middleware.OrganizerOrAdmin)
		{
			announcements.Get("/", h.ListAnnouncements)
		}

		requests := protected.Group("/artist-requests")
		requests.Use(middleware.OrganizerOrAdmin)
		{
			requests.Get("/", h.ListArtistRequests)
			requests.Post("/", h.CreateArtistRequest)
			requests.Post("/:id/resolve", h.ResolveArtistRequest)
		}

		// Check-in dashboard (staff or above)
		tickets := protected.Group("/tickets")
		tickets.Use(middleware.StaffOrAbove)
		{
			tickets.Get("/", h.ListTickets)
			tickets.Get("/:id/qrcode", h.TicketQRCode)
			tickets.Post("/:id/cancel", h.CancelTicket)
			tickets.Post("/:id/refund", h.RefundTicket)
		}
		protected.Post("/checkin", middleware.StaffOrAbove, h.CheckInTicket)
		protected.Get("/logs", middleware.StaffOrAbove, h.ListValidationLogs)

		// Notifications (any authenticated role)
		notifications := protected.Group("/notifications")
		{
			notifications.Get("/", h.ListNotifications)
			notifications.Get("/unread-count", h.UnreadCount)
			notifications.Post("/:id/read", h.MarkNotificationRead)
			notifications.Post("/read-all", h.MarkAllNotificationsRead)
		}

		// CSV exports (organizer or admin)
		export := protected.Group("/export")
		export.Use(middleware.OrganizerOrAdmin)
		{
			export.Get("/tickets.csv", h.ExportTicketsCSV)
			export.Get("/logs.csv", h.ExportLogsCSV)
		}

		// Admin only
		admin := protected.Group("/admin")
		admin.Use(middleware.AdminOnly)
		{
			admin.Get("/stats", h.GetStats)
			admin.Post("/users", h.CreateUser)
			admin.Post("/events/:id/approve", h.ApproveEvent)
			admin.Post("/events/:id/reject", h.RejectEvent)
			admin.Post("/events/:id/cancel", h.CancelEvent)
		}
	}
}

// GetStats returns the dashboard aggregation, recomputed per request.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	return utils.Success(c, h.store.Stats(), "Stats retrieved")
}

// ErrorHandler handles global errors
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		logger.L().WithError(err).Error("request failed")
	}

	return utils.Error(c, message, code)
}
