package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrConflict = errors.New("")         // Base error for storage-level uniqueness conflicts
var ErrNotFound = errors.New("")         // Base error for missing entities
var ErrUserError = errors.New("")        // Base error for User / authentication
var ErrNotification = errors.New("")     // Base error for notification delivery

// Warehouse receipt errors
var ErrReceiptNotFound = fmt.Errorf("warehouse receipt not found%w", ErrNotFound)
var ErrMissingWeight = fmt.Errorf("either weight_lbs or weight_kgs is required%w", ErrInvalidParameter)
var ErrDuplicateReceiptNumber = fmt.Errorf("warehouse receipt number already exists%w", ErrConflict)
var ErrReceiptInDispatch = fmt.Errorf("warehouse receipt is referenced by a dispatch request%w", ErrConflict)

// Piece group / item errors
var ErrPieceGroupNotFound = fmt.Errorf("piece group not found%w", ErrNotFound)
var ErrPieceItemNotFound = fmt.Errorf("piece item not found%w", ErrNotFound)
var ErrDuplicateItemIndex = fmt.Errorf("duplicate piece item index in group%w", ErrConflict)

// Dispatch errors
var ErrDispatchNotFound = fmt.Errorf("dispatch request not found%w", ErrNotFound)
var ErrMissingBillOfLading = fmt.Errorf("bill of lading is required%w", ErrInvalidParameter)
var ErrReceiptNotEligible = fmt.Errorf("warehouse receipt is not eligible for dispatch%w", ErrInvalidParameter)
var ErrDuplicateDispatchItem = fmt.Errorf("warehouse receipt already linked to this dispatch request%w", ErrConflict)
var ErrDispatchCompleted = fmt.Errorf("dispatch request is already completed%w", ErrInvalidParameter)

// User errors
var ErrUserNotFound = fmt.Errorf("user not found%w", ErrUserError)
var ErrUserAlreadyExists = fmt.Errorf("user already exists%w", ErrUserError)
var ErrUserInactive = fmt.Errorf("user is inactive%w", ErrUserError)
var ErrUserAuthenticationFail = fmt.Errorf("user name/password mismatch%w", ErrUserError)
var ErrUserTokenExpired = fmt.Errorf("user token expired%w", ErrUserError)
var ErrUserTokenInvalid = fmt.Errorf("user token invalid%w", ErrUserError)

// Notification errors
var ErrNotificationFailed = fmt.Errorf("notification delivery failed%w", ErrNotification)

// QuantityMismatchError reports a bulk item submission whose surviving entry
// count does not equal the group's declared quantity.
type QuantityMismatchError struct {
	Desired int
	Actual  int
}

func (e *QuantityMismatchError) Error() string {
	return fmt.Sprintf("group requires exactly %d items, submission yields %d", e.Desired, e.Actual)
}

func (e *QuantityMismatchError) Unwrap() error {
	return ErrInvalidParameter
}

// MissingInvoiceError reports the receipts of a dispatch submission that came
// without an invoice document. The whole submission is rejected.
type MissingInvoiceError struct {
	WRNumbers []string
}

func (e *MissingInvoiceError) Error() string {
	return fmt.Sprintf("missing invoice for warehouse receipt(s): %s", strings.Join(e.WRNumbers, ", "))
}

func (e *MissingInvoiceError) Unwrap() error {
	return ErrInvalidParameter
}
