package model

type DispatchMethod string

const (
	DispatchMethodMaritime = DispatchMethod("MARITIME")
	DispatchMethodAir      = DispatchMethod("AIR")
	DispatchMethodGround   = DispatchMethod("GROUND")
)

type DispatchStatus string

const (
	DispatchStatusPending   = DispatchStatus("PENDING")
	DispatchStatusApproved  = DispatchStatus("APPROVED")
	DispatchStatusRejected  = DispatchStatus("REJECTED")
	DispatchStatusCompleted = DispatchStatus("COMPLETED")
)

// DispatchRequest is a client's request to ship one warehouse receipt out.
//
// Standing invariant: Status may be APPROVED or COMPLETED only while
// BillOfLading is attached. The storage layer re-checks this on every store,
// not only at the transition call sites.
type DispatchRequest struct {
	ID       string         `json:"id"`
	Version  int64          `json:"version"`
	ClientID string         `json:"client_id"`
	Method   DispatchMethod `json:"method"`
	Status   DispatchStatus `json:"status"`
	Invoice  *File          `json:"invoice"` // Required at creation.

	BillOfLading  *File     `json:"bill_of_lading,omitempty"`
	BOLUploadedAt *DateTime `json:"bol_uploaded_at,omitempty"`

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

// CheckBOLInvariant reports whether the request violates the standing
// bill-of-lading invariant.
func (d *DispatchRequest) CheckBOLInvariant() error {
	if (d.Status == DispatchStatusApproved || d.Status == DispatchStatusCompleted) && d.BillOfLading == nil {
		return ErrMissingBillOfLading
	}
	return nil
}

// DispatchItem links one DispatchRequest to exactly one WarehouseReceipt.
// The (DispatchID, WRNumber) pair is unique.
type DispatchItem struct {
	DispatchID string `json:"dispatch_id"`
	WRNumber   string `json:"wr_number"`
}
