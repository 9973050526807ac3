package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR renders the public share link of a list as a PNG QR code
	GenerateShareQR(publicID uuid.UUID) ([]byte, error)

	// ShareURL returns the public share link of a list
	ShareURL(publicID uuid.UUID) string

	// ParseShareQR parses QR code data and returns the list public ID
	ParseShareQR(qrData string) (uuid.UUID, error)
}
