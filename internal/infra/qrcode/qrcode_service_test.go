package qrcode

import (
	"testing"

	"blvgames/config"
	"blvgames/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.errorCorrectionLevel})
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateWhatsAppQR(t *testing.T) {
	svc := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	qrBytes, err := svc.GenerateWhatsAppQR("+591 700-12345")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateWhatsAppQR_NoDigits(t *testing.T) {
	svc := NewQRCodeService(nil)

	_, err := svc.GenerateWhatsAppQR("sin número")
	assert.ErrorIs(t, err, service.ErrInvalidPhone)
}

func TestQRCodeService_WhatsAppLink(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.QRCodeConfig
		in   string
		want string
	}{
		{
			name: "defaults strip formatting",
			cfg:  nil,
			in:   "+591 (700) 12-345",
			want: "https://wa.me/59170012345",
		},
		{
			name: "message is query escaped",
			cfg:  &config.QRCodeConfig{BaseURL: "https://wa.me", Message: "Hola, vi su juego en blvgames.bo"},
			in:   "59170012345",
			want: "https://wa.me/59170012345?text=Hola%2C+vi+su+juego+en+blvgames.bo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)

			got, err := svc.WhatsAppLink(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
