package dispatch

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/storage"
)

func ValidateCreateDispatchRequest(req CreateDispatchRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ClientID, validation.Required),
		validation.Field(&req.Method, validation.Required, validation.In(
			model.DispatchMethodMaritime,
			model.DispatchMethodAir,
			model.DispatchMethodGround,
		)),
		validation.Field(&req.Selections, validation.Required, validation.Length(1, 0)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	for _, selection := range req.Selections {
		if selection.WRNumber == "" {
			return fmt.Errorf("selection is missing wr_number%w", model.ErrInvalidParameter)
		}
	}

	duplicated := lo.FindDuplicatesBy(req.Selections, func(s DispatchSelection) string { return s.WRNumber })
	if len(duplicated) > 0 {
		wrNumbers := lo.Map(duplicated, func(s DispatchSelection, _ int) string { return s.WRNumber })
		return fmt.Errorf("duplicated wr_number(s) %v%w", wrNumbers, model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListDispatchesRequest(req storage.ListDispatchesRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateAttachBOLRequest(req AttachBOLRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.DispatchID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	if req.Document == nil || len(req.Document.Content) == 0 {
		return model.ErrMissingBillOfLading
	}

	return nil
}

func ValidateSendAndCompleteRequest(req SendAndCompleteRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.DispatchID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateRejectDispatchRequest(req RejectDispatchRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.DispatchID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
