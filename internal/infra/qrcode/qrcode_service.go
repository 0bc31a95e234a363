package qrcode

import (
	"encoding/json"

	"foodbridge/config"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	pickupPassType = "pickup"
	defaultSize    = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// pickupPassData is the JSON payload encoded in a pickup QR code.
type pickupPassData struct {
	Type        string `json:"type"`
	ProductID   string `json:"product_id"`
	NonprofitID string `json:"nonprofit_id"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePickupPass renders the pass a nonprofit shows the supplier at pickup.
func (s *qrcodeService) GeneratePickupPass(pass service.PickupPass) ([]byte, error) {
	payload, err := json.Marshal(pickupPassData{
		Type:        pickupPassType,
		ProductID:   pass.ProductID.String(),
		NonprofitID: pass.NonprofitID.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pickup pass")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupPass decodes the text scanned from a pickup QR code.
func (s *qrcodeService) ParsePickupPass(qrData string) (*service.PickupPass, error) {
	var data pickupPassData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal pickup pass")
	}

	if data.Type != pickupPassType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	productID, err := uuid.Parse(data.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse product ID")
	}
	nonprofitID, err := uuid.Parse(data.NonprofitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse nonprofit ID")
	}

	return &service.PickupPass{
		ProductID:   productID,
		NonprofitID: nonprofitID,
	}, nil
}
