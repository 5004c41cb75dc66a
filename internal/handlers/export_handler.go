package handlers

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"ticket-marketplace-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// CSV export is a presentation concern: it formats what the store queries
// return, nothing more.

func (h *Handler) ExportTicketsCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"id", "event", "buyer_name", "buyer_email", "ticket_type", "quantity", "total_paid", "status", "purchased_at"})
	for _, t := range h.store.Tickets() {
		_ = w.Write([]string{
			t.ID,
			t.EventTitle,
			t.BuyerName,
			t.BuyerEmail,
			t.TicketType,
			strconv.Itoa(t.Quantity),
			t.TotalPaid,
			t.Status,
			t.PurchasedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return utils.Error(c, "Failed to build export", fiber.StatusInternalServerError)
	}

	return sendCSV(c, "tickets.csv", buf.Bytes())
}

func (h *Handler) ExportLogsCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"id", "event", "holder_name", "holder_email", "ticket_type", "action", "validator", "notes", "created_at"})
	for _, l := range h.store.ValidationLogs() {
		_ = w.Write([]string{
			l.ID,
			l.EventTitle,
			l.HolderName,
			l.HolderEmail,
			l.TicketType,
			l.Action,
			l.ValidatorName,
			l.Notes,
			l.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return utils.Error(c, "Failed to build export", fiber.StatusInternalServerError)
	}

	return sendCSV(c, "validation_logs.csv", buf.Bytes())
}

func sendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
