package cargo

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

func ValidateCreateReceiptRequest(req CreateReceiptRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.WRNumber, validation.Required),
		validation.Field(&req.ClientID, validation.Required),
		validation.Field(&req.Shipper, validation.Required),
		validation.Field(&req.Carrier, validation.Required),
		validation.Field(&req.Status, validation.In(
			model.ReceiptStatusPending,
			model.ReceiptStatusReady,
			model.ReceiptStatusInDispatch,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListReceiptsRequest(req storage.ListReceiptsRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateAddGroupRequest(req AddGroupRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.WRNumber, validation.Required),
		validation.Field(&req.TypeOf, validation.Required, validation.In(
			model.PieceTypePallets,
			model.PieceTypeBoxes,
			model.PieceTypeDrums,
			model.PieceTypeBundles,
			model.PieceTypeOther,
		)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateUpdateGroupRequest(req UpdateGroupRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return ValidateAddGroupRequest(req.AddGroupRequest)
}

func ValidateAddItemRequest(req AddItemRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.GroupID, validation.Required),
		validation.Field(&req.Index, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateSyncItemsRequest(req SyncItemsRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.GroupID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	for _, entry := range req.Entries {
		if entry.Delete {
			continue
		}
		if entry.Index < 1 {
			return fmt.Errorf("item index must be at least 1%w", model.ErrInvalidParameter)
		}
	}

	return nil
}

// CheckSyncEntries rejects a bulk submission whose surviving entries repeat an
// index or do not number exactly the group's declared quantity.
func CheckSyncEntries(quantity int, survivors []SyncItemEntry) error {
	duplicated := lo.FindDuplicatesBy(survivors, func(e SyncItemEntry) int { return e.Index })
	if len(duplicated) > 0 {
		indices := lo.Map(duplicated, func(e SyncItemEntry, _ int) int { return e.Index })
		sort.Ints(indices)
		return fmt.Errorf("duplicated item index(es) %v%w", indices, model.ErrDuplicateItemIndex)
	}

	if len(survivors) != quantity {
		return &model.QuantityMismatchError{
			Desired: quantity,
			Actual:  len(survivors),
		}
	}

	return nil
}
