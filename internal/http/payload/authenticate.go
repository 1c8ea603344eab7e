package payload

import (
	"notely/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}
