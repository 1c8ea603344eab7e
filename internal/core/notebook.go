package core

import (
	"errors"
	"fmt"
	"notely/internal/repository"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrValidation error = errors.New("validation failed")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrIncorrectPassword error = errors.New("current password is incorrect")
var ErrUnauthorized error = errors.New("unauthorized")
var ErrUserNotFound error = errors.New("user not found")
var ErrNoteNotFound error = errors.New("note not found")

// ErrInvalidPicture marks rejected profile pictures; it is a validation error.
var ErrInvalidPicture error = fmt.Errorf("%w: invalid profile picture", ErrValidation)

const (
	DefaultSessionTTL      = 24 * time.Hour
	DefaultMaxPictureBytes = 5 << 20
)

type Settings struct {
	SessionTTL      time.Duration
	MaxPictureBytes int64
	// HashCost is the bcrypt cost; zero means bcrypt.DefaultCost.
	HashCost int
}

// Notebook implements the account and note operations of the service.
type Notebook struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	settings  Settings
}

// NewNotebook is a constructor function for the Notebook type. Zero settings
// fall back to the package defaults.
func NewNotebook(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, settings Settings) *Notebook {
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = DefaultSessionTTL
	}
	if settings.MaxPictureBytes <= 0 {
		settings.MaxPictureBytes = DefaultMaxPictureBytes
	}
	if settings.HashCost == 0 {
		settings.HashCost = bcrypt.DefaultCost
	}

	return &Notebook{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		settings:  settings,
	}
}

func (n *Notebook) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), n.settings.HashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password is too long", ErrValidation)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// repoError maps repository sentinels onto the core ones and wraps
// everything else with op.
func repoError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrNoteNotFound):
		return ErrNoteNotFound
	case errors.Is(err, repository.ErrUsernameTaken):
		return ErrUsernameTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func publicUser(user repository.User) PublicUser {
	return PublicUser{
		ID:       user.ID,
		Username: user.Username,
	}
}

func profileOf(user repository.User) Profile {
	return Profile{
		ID:             user.ID,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
	}
}

func noteOf(note repository.Note) Note {
	return Note{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
