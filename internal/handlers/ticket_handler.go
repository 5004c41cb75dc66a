package handlers

import (
	"ticket-marketplace-backend/internal/middleware"
	"ticket-marketplace-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckInRequest struct {
	TicketID string `json:"ticket_id" validate:"required"`
	Notes    string `json:"notes"`
}

type TicketActionRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) ListTickets(c *fiber.Ctx) error {
	return utils.Success(c, h.store.Tickets(), "Tickets retrieved")
}

func (h *Handler) ListValidationLogs(c *fiber.Ctx) error {
	return utils.Success(c, h.store.ValidationLogs(), "Validation logs retrieved")
}

// CheckInTicket marks a scanned ticket as used. The QR content is the ticket
// id, so the scanner posts it straight through.
func (h *Handler) CheckInTicket(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := middleware.ValidateBody(&req)(c); err != nil {
		return err
	}
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	applied, storeErr := h.store.CheckInTicket(req.TicketID, actor, req.Notes)
	if storeErr != nil {
		return utils.Error(c, "Failed to save check-in", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Ticket not found or not active", fiber.StatusConflict)
	}
	ticket, _ := h.store.Ticket(req.TicketID)
	return utils.Success(c, ticket, "Ticket checked in")
}

func (h *Handler) CancelTicket(c *fiber.Ctx) error {
	var req TicketActionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	applied, storeErr := h.store.CancelTicket(c.Params("id"), actor, req.Notes)
	if storeErr != nil {
		return utils.Error(c, "Failed to save ticket", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Ticket not found or not active", fiber.StatusConflict)
	}
	ticket, _ := h.store.Ticket(c.Params("id"))
	return utils.Success(c, ticket, "Ticket cancelled")
}

func (h *Handler) RefundTicket(c *fiber.Ctx) error {
	var req TicketActionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	applied, storeErr := h.store.RefundTicket(c.Params("id"), actor, req.Notes)
	if storeErr != nil {
		return utils.Error(c, "Failed to save ticket", fiber.StatusInternalServerError)
	}
	if !applied {
		return utils.Error(c, "Ticket not found or already cancelled", fiber.StatusConflict)
	}
	ticket, _ := h.store.Ticket(c.Params("id"))
	return utils.Success(c, ticket, "Ticket refunded")
}

// TicketQRCode renders the ticket id as a PNG for the buyer to present at
// the gate.
func (h *Handler) TicketQRCode(c *fiber.Ctx) error {
	ticket, ok := h.store.Ticket(c.Params("id"))
	if !ok {
		return utils.Error(c, "Ticket not found", fiber.StatusNotFound)
	}

	png, err := utils.GenerateTicketQR(ticket.ID)
	if err != nil {
		return utils.Error(c, "Failed to generate QR code", fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
