package handlers

import (
	"time"

	"ticket-marketplace-backend/internal/middleware"
	"ticket-marketplace-backend/internal/models"
	"ticket-marketplace-backend/internal/store"
	"ticket-marketplace-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TicketTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type CreateEventRequest struct {
	Title       string              `json:"title" validate:"required"`
	Artist      string              `json:"artist" validate:"required"`
	ArtistIDs   []string            `json:"artist_ids"`
	Genre       string              `json:"genre"`
	Date        string              `json:"date" validate:"required"`
	Time        string              `json:"time" validate:"required"`
	EndDate     string              `json:"end_date"`
	EndTime     string              `json:"end_time"`
	Venue       string              `json:"venue" validate:"required"`
	City        string              `json:"city" validate:"required"`
	Price       string              `json:"price" validate:"required"`
	Image       string              `json:"image"`
	Description string              `json:"description"`
	Address     string              `json:"address"`
	Lat         *float64            `json:"lat"`
	Lng         *float64            `json:"lng"`
	Gallery     []string            `json:"gallery"`
	TicketTypes []TicketTypeRequest `json:"ticket_types"`
	Rules       []string            `json:"rules"`
}

// UpdateEventRequest is a partial update: absent fields stay untouched.
type UpdateEventRequest struct {
	Title       *string              `json:"title"`
	Artist      *string              `json:"artist"`
	ArtistIDs   *[]string            `json:"artist_ids"`
	Genre       *string              `json:"genre"`
	Date        *string              `json:"date"`
	Time        *string              `json:"time"`
	EndDate     *string              `json:"end_date"`
	EndTime     *string              `json:"end_time"`
	Venue       *string              `json:"venue"`
	City        *string              `json:"city"`
	Price       *string              `json:"price"`
	Image       *string              `json:"image"`
	Description *string              `json:"description"`
	Address     *string              `json:"address"`
	Lat         *float64             `json:"lat"`
	Lng         *float64             `json:"lng"`
	Gallery     *[]string            `json:"gallery"`
	TicketTypes *[]TicketTypeRequest `json:"ticket_types"`
	Rules       *[]string            `json:"rules"`
}

type RejectEventRequest struct {
	Reason string `json:"reason"`
}

type PurchaseDopingRequest struct {
	PackageID string `json:"package_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=homepage_featured explore_popular events_editor_pick"`
	StartsAt  string `json:"starts_at" validate:"required"`
	EndsAt    string `json:"ends_at" validate:"required"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	return utils.Success(c, h.store.Events(), "Events retrieved")
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event, ok := h.store.Event(c.Params("id"))
	if !ok {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	return utils.Success(c, event, "Event retrieved")
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	event, createErr := h.store.CreateEvent(actor, store.CreateEventInput{
		Title:       req.Title,
		Artist:      req.Artist,
		ArtistIDs:   req.ArtistIDs,
		Genre:       req.Genre,
		Date:        req.Date,
		Time:        req.Time,
		EndDate:     req.EndDate,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		City:        req.City,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Address:     req.Address,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Gallery:     req.Gallery,
		TicketTypes: toTicketTypes(req.TicketTypes),
		Rules:       req.Rules,
	})
	if createErr != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	return utils.Success(c, event, "Event created", fiber.StatusCreated)
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	patch := store.EventPatch{
		Title:       req.Title,
		Artist:      req.Artist,
		ArtistIDs:   req.ArtistIDs,
		Genre:       req.Genre,
		Date:        req.Date,
		Time:        req.Time,
		EndDate:     req.EndDate,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		City:        req.City,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Address:     req.Address,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Gallery:     req.Gallery,
		Rules:       req.Rules,
	}
	if req.TicketTypes != nil {
		types := toTicketTypes(*req.TicketTypes)
		patch.TicketTypes = &types
	}

	applied, err := h.store.UpdateEvent(c.Params("id"), patch)
	if err != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	event, _ := h.store.Event(c.Params("id"))
	return utils.Success(c, event, "Event updated")
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	applied, err := h.store.DeleteEvent(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to delete event", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	return utils.Success(c, nil, "Event deleted")
}

func (h *Handler) SubmitEventForApproval(c *fiber.Ctx) error {
	applied, err := h.store.SubmitForApproval(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Event cannot be submitted from its current status", fiber.StatusConflict)
	}
	event, _ := h.store.Event(c.Params("id"))
	return utils.Success(c, event, "Event submitted for approval")
}

func (h *Handler) ApproveEvent(c *fiber.Ctx) error {
	applied, err := h.store.ApproveEvent(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Event is not pending approval", fiber.StatusConflict)
	}
	event, _ := h.store.Event(c.Params("id"))
	return utils.Success(c, event, "Event approved")
}

func (h *Handler) RejectEvent(c *fiber.Ctx) error {
	var req RejectEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	applied, err := h.store.RejectEvent(c.Params("id"), req.Reason)
	if err != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Event is not pending approval", fiber.StatusConflict)
	}
	event, _ := h.store.Event(c.Params("id"))
	return utils.Success(c, event, "Event rejected")
}

func (h *Handler) CancelEvent(c *fiber.Ctx) error {
	applied, err := h.store.CancelEvent(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Event not found or already cancelled", fiber.StatusConflict)
	}
	return utils.Success(c, nil, "Event cancelled")
}

func (h *Handler) CloneEvent(c *fiber.Ctx) error {
	clone, ok, err := h.store.CloneEvent(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save event", fiber.StatusInternalServerError)
	}
	if !ok {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	return utils.Success(c, clone, "Event cloned", fiber.StatusCreated)
}

func (h *Handler) PurchaseDoping(c *fiber.Ctx) error {
	var req PurchaseDopingRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return utils.Error(c, "Invalid starts_at format", fiber.StatusBadRequest)
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return utils.Error(c, "Invalid ends_at format", fiber.StatusBadRequest)
	}
	if endsAt.Before(startsAt) {
		return utils.Error(c, "End date must be after start date", fiber.StatusBadRequest)
	}

	doping, ok, storeErr := h.store.PurchaseDoping(c.Params("id"), models.Doping{
		PackageID: req.PackageID,
		Type:      req.Type,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
	})
	if storeErr != nil {
		return utils.Error(c, "Failed to save doping", fiber.StatusInternalServerError)
	}
	if !ok {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	return utils.Success(c, doping, "Doping purchased", fiber.StatusCreated)
}

func (h *Handler) CreateAnnouncement(c *fiber.Ctx) error {
	var req CreateAnnouncementRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	announcement, ok, err := h.store.CreateAnnouncement(c.Params("id"), req.Title, req.Message)
	if err != nil {
		return utils.Error(c, "Failed to save announcement", fiber.StatusInternalServerError)
	}
	if !ok {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	return utils.Success(c, announcement, "Announcement created", fiber.StatusCreated)
}

func toTicketTypes(in []TicketTypeRequest) []models.TicketType {
	if in == nil {
		return nil
	}
	out := make([]models.TicketType, len(in))
	for i, t := range in {
		out[i] = models.TicketType{
			Name:        t.Name,
			Price:       t.Price,
			Description: t.Description,
			Available:   t.Available,
		}
	}
	return out
}
