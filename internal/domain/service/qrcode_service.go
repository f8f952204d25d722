package service

import "github.com/pkg/errors"

// ErrInvalidPhone is returned when a phone number contains no digits.
var ErrInvalidPhone = errors.New("phone number has no digits")

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateWhatsAppQR returns a PNG encoding a wa.me link to the given phone number
	GenerateWhatsAppQR(phone string) ([]byte, error)

	// WhatsAppLink returns the chat link the QR code encodes
	WhatsAppLink(phone string) (string, error)
}
