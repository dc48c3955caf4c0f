package model

// Read projections of a warehouse receipt. Staff and clients see different
// field sets; handlers pick the projection for the caller's role instead of
// branching on role per field.

type StaffReceiptView struct {
	Receipt WarehouseReceipt `json:"receipt"`
	Groups  []PieceGroup     `json:"groups"`
	Items   []PieceItem      `json:"items,omitempty"`
}

type ClientReceiptView struct {
	WRNumber        string           `json:"wr_number"`
	Shipper         string           `json:"shipper"`
	Carrier         string           `json:"carrier"`
	ContainerNumber string           `json:"container_number,omitempty"`
	WeightLbs       *string          `json:"weight_lbs,omitempty"`
	WeightKgs       *string          `json:"weight_kgs,omitempty"`
	Status          ReceiptStatus    `json:"status"`
	Pieces          []ClientPieceRow `json:"pieces"`
	CreatedAt       int64            `json:"created_at"`
}

type ClientPieceRow struct {
	TypeOf      PieceType `json:"type_of"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
}

func NewStaffReceiptView(receipt WarehouseReceipt, groups []PieceGroup, items []PieceItem) StaffReceiptView {
	return StaffReceiptView{
		Receipt: receipt,
		Groups:  groups,
		Items:   items,
	}
}

func NewClientReceiptView(receipt WarehouseReceipt, groups []PieceGroup) ClientReceiptView {
	view := ClientReceiptView{
		WRNumber:        receipt.WRNumber,
		Shipper:         receipt.Shipper,
		Carrier:         receipt.Carrier,
		ContainerNumber: receipt.ContainerNumber,
		Status:          receipt.Status,
		CreatedAt:       receipt.CreatedAt,
		Pieces:          make([]ClientPieceRow, 0, len(groups)),
	}
	if receipt.WeightLbs != nil {
		s := receipt.WeightLbs.String()
		view.WeightLbs = &s
	}
	if receipt.WeightKgs != nil {
		s := receipt.WeightKgs.String()
		view.WeightKgs = &s
	}
	for _, g := range groups {
		view.Pieces = append(view.Pieces, ClientPieceRow{
			TypeOf:      g.TypeOf,
			Quantity:    g.Quantity,
			Description: g.Description,
		})
	}
	return view
}
