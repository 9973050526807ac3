package qrcode

import (
	"testing"

	"ecocart/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *qrcodeService {
	return NewQRCodeService(&config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "medium",
		BaseURL:              "https://ecocart.example.com/",
	}).(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	svc := newTestService()
	publicID := uuid.MustParse("0192a7e4-8b1c-7d3e-9f00-123456789abc")

	assert.Equal(t, "https://ecocart.example.com/api/v1/public/lists/0192a7e4-8b1c-7d3e-9f00-123456789abc", svc.ShareURL(publicID))
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	svc := newTestService()

	png, err := svc.GenerateShareQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseShareQR(t *testing.T) {
	svc := newTestService()
	publicID := uuid.New()

	got, err := svc.ParseShareQR(svc.ShareURL(publicID))
	require.NoError(t, err)
	assert.Equal(t, publicID, got)

	got, err = svc.ParseShareQR(publicID.String())
	require.NoError(t, err)
	assert.Equal(t, publicID, got)

	_, err = svc.ParseShareQR("https://ecocart.example.com/api/v1/products/" + publicID.String())
	assert.Error(t, err)

	_, err = svc.ParseShareQR("https://ecocart.example.com/api/v1/public/lists/not-a-uuid")
	assert.Error(t, err)
}
