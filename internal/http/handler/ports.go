package handler

import (
	"context"
	"net/http"
	"notely/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name NotebookService . NotebookService
type NotebookService interface {
	Register(ctx context.Context, creds core.Credentials) (core.Session, error)
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
	GetProfile(ctx context.Context, userID uint) (core.Profile, error)
	UpdateProfilePicture(ctx context.Context, userID uint, picture *core.Picture) (core.Profile, error)
	UpdateAccount(ctx context.Context, userID uint, update core.AccountUpdate) (core.Profile, error)
	ListNotes(ctx context.Context, userID uint) ([]core.Note, error)
	CreateNote(ctx context.Context, userID uint, draft core.NoteDraft) (core.Note, error)
	GetNote(ctx context.Context, userID, noteID uint) (core.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uint, draft core.NoteDraft) (core.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
