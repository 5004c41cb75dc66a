package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateTicketQR renders a ticket id as a PNG for the check-in scanner.
// The image is served inline, never written to disk.
func GenerateTicketQR(ticketID string) ([]byte, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID cannot be empty")
	}

	png, err := qrcode.Encode(ticketID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
