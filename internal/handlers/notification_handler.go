package handlers

import (
	"ticket-marketplace-backend/internal/middleware"
	"ticket-marketplace-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateArtistRequestRequest struct {
	ArtistName  string `json:"artist_name" validate:"required"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	return utils.Success(c, h.store.Notifications(), "Notifications retrieved")
}

func (h *Handler) UnreadCount(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"unread": h.store.UnreadCount()}, "Unread count retrieved")
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	applied, err := h.store.MarkNotificationRead(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save notification", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Notification not found or already read", fiber.StatusNotFound)
	}
	return utils.Success(c, nil, "Notification marked as read")
}

func (h *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := h.store.MarkAllNotificationsRead(); err != nil {
		return utils.Error(c, "Failed to save notifications", fiber.StatusInternalServerError)
	}
	return utils.Success(c, nil, "All notifications marked as read")
}

func (h *Handler) ListAnnouncements(c *fiber.Ctx) error {
	return utils.Success(c, h.store.Announcements(), "Announcements retrieved")
}

func (h *Handler) ListArtistRequests(c *fiber.Ctx) error {
	return utils.Success(c, h.store.ArtistRequests(), "Artist requests retrieved")
}

func (h *Handler) CreateArtistRequest(c *fiber.Ctx) error {
	var req CreateArtistRequestRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}

	request, err := h.store.CreateArtistRequest(req.ArtistName, req.Genre, req.Description)
	if err != nil {
		return utils.Error(c, "Failed to save artist request", fiber.StatusInternalServerError)
	}
	return utils.Success(c, request, "Artist request created", fiber.StatusCreated)
}

func (h *Handler) ResolveArtistRequest(c *fiber.Ctx) error {
	applied, err := h.store.ResolveArtistRequest(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Failed to save artist request", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Artist request not found or already resolved", fiber.StatusNotFound)
	}
	return utils.Success(c, nil, "Artist request resolved")
}
