package qrcode

import (
	"net/url"
	"strings"
	"unicode"

	"blvgames/config"
	"blvgames/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://wa.me/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
	message              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	if cfg == nil {
		cfg = &config.QRCodeConfig{}
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(cfg.ErrorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
		message:              cfg.Message,
	}
}

// GenerateWhatsAppQR encodes a chat link for the phone number as a PNG.
func (s *qrcodeService) GenerateWhatsAppQR(phone string) ([]byte, error) {
	link, err := s.WhatsAppLink(phone)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// WhatsAppLink builds <baseURL><digits>[?text=<message>] from a free-form phone number.
func (s *qrcodeService) WhatsAppLink(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, phone)
	if digits == "" {
		return "", service.ErrInvalidPhone
	}

	link := s.baseURL + digits
	if s.message != "" {
		link += "?text=" + url.QueryEscape(s.message)
	}

	return link, nil
}
