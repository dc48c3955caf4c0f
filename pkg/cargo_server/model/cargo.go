package model

import (
	"github.com/shopspring/decimal"
)

type ReceiptStatus string

const (
	ReceiptStatusPending    = ReceiptStatus("PENDING")
	ReceiptStatusReady      = ReceiptStatus("READY")
	ReceiptStatusInDispatch = ReceiptStatus("IN_DISPATCH")
)

type PieceType string

const (
	PieceTypePallets = PieceType("PALLETS")
	PieceTypeBoxes   = PieceType("BOXES")
	PieceTypeDrums   = PieceType("DRUMS")
	PieceTypeBundles = PieceType("BUNDLES")
	PieceTypeOther   = PieceType("OTHER")
)

// WarehouseReceipt is a staff-registered record of cargo that arrived at the
// warehouse, keyed by its unique receipt number.
//
// WeightKgs is derived from WeightLbs whenever WeightLbs is present; at least
// one of the two weights is required. See cargo.DeriveReceiptWeight.
type WarehouseReceipt struct {
	WRNumber        string           `json:"wr_number"` // Unique receipt number.
	Version         int64            `json:"version"`
	ClientID        string           `json:"client_id"` // Owning client user ID.
	Shipper         string           `json:"shipper"`
	Carrier         string           `json:"carrier"`
	ContainerNumber string           `json:"container_number,omitempty"`
	WeightLbs       *decimal.Decimal `json:"weight_lbs,omitempty"`
	WeightKgs       *decimal.Decimal `json:"weight_kgs,omitempty"`
	Foots           string           `json:"foots,omitempty"`
	Tracking        string           `json:"tracking,omitempty"`
	InvoiceNumber   string           `json:"invoice_number,omitempty"`
	PurchaseOrder   string           `json:"purchase_order,omitempty"`
	Status          ReceiptStatus    `json:"status"`
	Document        *File            `json:"document,omitempty"` // Optional uploaded reference document.

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

// PieceGroup is a declared category/quantity of cargo units within one
// receipt. Quantity is the authoritative count of PieceItem children; the
// reconcile operation converges the live item count toward it.
type PieceGroup struct {
	ID          string    `json:"id"`
	WRNumber    string    `json:"wr_number"`
	TypeOf      PieceType `json:"type_of"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
}

// PieceItem is one individually tracked physical unit within a piece group.
// Index is 1-based and unique within the owning group only.
type PieceItem struct {
	ID        string           `json:"id"`
	GroupID   string           `json:"group_id"`
	Index     int              `json:"index"`
	WeightLbs *decimal.Decimal `json:"weight_lbs,omitempty"`
	WeightKgs *decimal.Decimal `json:"weight_kgs,omitempty"`
	LengthCm  *decimal.Decimal `json:"length_cm,omitempty"`
	WidthCm   *decimal.Decimal `json:"width_cm,omitempty"`
	HeightCm  *decimal.Decimal `json:"height_cm,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}
