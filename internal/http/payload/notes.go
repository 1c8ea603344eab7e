package payload

import (
	"notely/internal/core"

	"github.com/jellydator/validation"
)

type CreateNoteRequest struct {
	UserID  *uint  `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Content, validation.Required),
	)
}

func (c CreateNoteRequest) ToDraft() core.NoteDraft {
	return core.NoteDraft{
		Title:   c.Title,
		Content: c.Content,
	}
}

type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (u UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&u.Content, validation.Required),
	)
}

func (u UpdateNoteRequest) ToDraft() core.NoteDraft {
	return core.NoteDraft{
		Title:   u.Title,
		Content: u.Content,
	}
}
