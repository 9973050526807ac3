package qrcode

import (
	"net/url"
	"path"
	"strings"

	"ecocart/config"
	"ecocart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const publicListPath = "/api/v1/public/lists/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes public list links
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	return &qrcodeService{
		size:                 cfg.Size,
		errorCorrectionLevel: recoveryLevel(cfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShareURL returns the read-only link of a public list
func (s *qrcodeService) ShareURL(publicID uuid.UUID) string {
	return s.baseURL + publicListPath + publicID.String()
}

// GenerateShareQR renders the share link as a PNG
func (s *qrcodeService) GenerateShareQR(publicID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareURL(publicID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShareQR accepts a scanned share link or a bare public id
func (s *qrcodeService) ParseShareQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)
	if id, err := uuid.Parse(qrData); err == nil {
		return id, nil
	}

	link, err := url.Parse(qrData)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code data")
	}

	dir, last := path.Split(strings.TrimRight(link.Path, "/"))
	if dir != publicListPath {
		return uuid.Nil, errors.Errorf("not a shared list link: %s", qrData)
	}

	publicID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse list public ID")
	}

	return publicID, nil
}
