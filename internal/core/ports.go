package core

import (
	"context"
	"notely/internal/repository"
	tokenIssuer "notely/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	UpdateUser(ctx context.Context, id uint, changes repository.UserChanges) (repository.User, error)
	SetProfilePicture(ctx context.Context, id uint, picture *string) (repository.User, error)
	CreateNote(ctx context.Context, note repository.Note) (repository.Note, error)
	GetNote(ctx context.Context, userID, noteID uint) (repository.Note, error)
	ListNotes(ctx context.Context, userID uint) ([]repository.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uint, title, content string) (repository.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
