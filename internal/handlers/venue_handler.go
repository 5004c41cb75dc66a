package handlers

import (
	"ticket-marketplace-backend/internal/middleware"
	"ticket-marketplace-backend/internal/models"
	"ticket-marketplace-backend/internal/store"
	"ticket-marketplace-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type VenueDetailsRequest struct {
	Description  string                         `json:"description"`
	Address      string                         `json:"address"`
	Lat          *float64                       `json:"lat"`
	Lng          *float64                       `json:"lng"`
	Phone        string                         `json:"phone"`
	Email        string                         `json:"email"`
	Website      string                         `json:"website"`
	SocialLinks  map[string]string              `json:"social_links"`
	OpeningHours map[string]models.OpeningHours `json:"opening_hours"`
	Gallery      []string                       `json:"gallery"`
}

type CreateVenueRequest struct {
	Name     string              `json:"name" validate:"required"`
	City     string              `json:"city" validate:"required"`
	Capacity string              `json:"capacity"`
	Type     string              `json:"type"`
	Image    string              `json:"image"`
	Rating   float64             `json:"rating" validate:"gte=0,lte=5"`
	Details  VenueDetailsRequest `json:"details"`
}

type UpdateVenueRequest struct {
	Name     *string              `json:"name"`
	City     *string              `json:"city"`
	Capacity *string              `json:"capacity"`
	Type     *string              `json:"type"`
	Image    *string              `json:"image"`
	Rating   *float64             `json:"rating"`
	Details  *VenueDetailsRequest `json:"details"`
}

func (h *Handler) ListVenues(c *fiber.Ctx) error {
	return utils.Success(c, h.store.Venues(), "Venues retrieved")
}

func (h *Handler) GetVenue(c *fiber.Ctx) error {
	venue, ok := h.store.Venue(c.Params("id"))
	if !ok {
		return utils.Error(c, "Venue not found", fiber.StatusNotFound)
	}
	return utils.Success(c, venue, "Venue retrieved")
}

func (h *Handler) CreateVenue(c *fiber.Ctx) error {
	var req CreateVenueRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	venue, createErr := h.store.CreateVenue(actor, store.CreateVenueInput{
		Name:     req.Name,
		City:     req.City,
		Capacity: req.Capacity,
		Type:     req.Type,
		Image:    req.Image,
		Rating:   req.Rating,
		Details:  toVenueDetails(req.Details),
	})
	if createErr != nil {
		return utils.Error(c, "Failed to save venue", fiber.StatusInternalServerError)
	}
	return utils.Success(c, venue, "Venue created", fiber.StatusCreated)
}

func (h *Handler) UpdateVenue(c *fiber.Ctx) error {
	var req UpdateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	patch := store.VenuePatch{
		Name:     req.Name,
		City:     req.City,
		Capacity: req.Capacity,
		Type:     req.Type,
		Image:    req.Image,
		Rating:   req.Rating,
	}
	if req.Details != nil {
		details := toVenueDetails(*req.Details)
		patch.Details = &details
	}

	applied, err := h.store.UpdateVenue(c.Params("id"), patch)
	if err != nil {
		return utils.Error(c, "Failed to save venue", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Venue not found", fiber.StatusNotFound)
	}
	venue, _ := h.store.Venue(c.Params("id"))
	return utils.Success(c, venue, "Venue updated")
}

func (h *Handler) DeleteVenue(c *fiber.Ctx) error {
	applied, err := h.store.DeleteVenue(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to delete venue", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Venue not found", fiber.StatusNotFound)
	}
	return utils.Success(c, nil, "Venue deleted")
}

func toVenueDetails(in VenueDetailsRequest) models.VenueDetails {
	return models.VenueDetails{
		Description:  in.Description,
		Address:      in.Address,
		Lat:          in.Lat,
		Lng:          in.Lng,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		SocialLinks:  in.SocialLinks,
		OpeningHours: in.OpeningHours,
		Gallery:      in.Gallery,
	}
}
