package payload

import (
	"errors"
	"notely/internal/core"

	"github.com/jellydator/validation"
)

type UpdateAccountRequest struct {
	UserID          *uint  `json:"userId"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
}

// Validate requires at least one change; password and currentPassword travel together.
func (u UpdateAccountRequest) Validate() error {
	if u.Username == "" && u.Password == "" && u.CurrentPassword == "" {
		return errors.New("no update data provided")
	}

	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Length(1, 255)),
		validation.Field(&u.Password, validation.When(u.CurrentPassword != "", validation.Required)),
		validation.Field(&u.CurrentPassword, validation.When(u.Password != "", validation.Required)),
	)
}

func (u UpdateAccountRequest) ToAccountUpdate() core.AccountUpdate {
	return core.AccountUpdate{
		Username:        u.Username,
		Password:        u.Password,
		CurrentPassword: u.CurrentPassword,
	}
}
