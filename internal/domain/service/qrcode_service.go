package service

import (
	"github.com/google/uuid"
)

// PickupPass is what a pickup QR code encodes.
type PickupPass struct {
	ProductID   uuid.UUID
	NonprofitID uuid.UUID
}

// QRCodeService renders and parses pickup pass QR codes.
type QRCodeService interface {
	GeneratePickupPass(pass PickupPass) ([]byte, error)
	ParsePickupPass(qrData string) (*PickupPass, error)
}
