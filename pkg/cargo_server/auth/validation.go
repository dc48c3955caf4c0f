package auth

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

func ValidateCreateUserRequest(req CreateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequestUser, validation.Required),
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(RoleStaff, RoleClient)),
		validation.Field(&req.Email, is.Email),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateQuickCreateClientRequest(req QuickCreateClientRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequestUser, validation.Required),
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.Email, is.Email),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateUpdateUserRequest(req UpdateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequestUser, validation.Required),
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Email, is.Email),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateChangePasswordRequest(req ChangePasswordRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.OldPassword, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateActivateUserRequest(req ActivateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequestUser, validation.Required),
		validation.Field(&req.UserID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateAuthenticateUserRequest(req AuthenticateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListUserRequest(req ListUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
