package core

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"notely/internal/repository"
	tokenIssuer "notely/pkg/jwt"
	"notely/pkg/metrics"
	"strconv"
)

var allowedPictureTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
}

// Register creates a user with a bcrypt-hashed password and opens a session for it.
func (n *Notebook) Register(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return Session{}, validationError("username and password required")
	}

	// the unique index on username still catches a concurrent registration
	_, err := n.repo.GetUserByUsername(ctx, creds.Username)
	if err == nil {
		return Session{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return Session{}, fmt.Errorf("get user by username: %w", err)
	}

	hash, err := n.hashPassword(creds.Password)
	if err != nil {
		return Session{}, err
	}

	user, err := n.repo.CreateUser(ctx, creds.Username, hash)
	if err != nil {
		return Session{}, repoError("create user", err)
	}

	metrics.RecordUserRegistered()
	n.logs.Infow("user registered", "userId", user.ID)

	return n.newSession(user)
}

// Login checks the credentials against the stored hash. An unknown username
// and a wrong password are reported the same way.
func (n *Notebook) Login(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return Session{}, validationError("username and password required")
	}

	user, err := n.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			metrics.RecordLoginFailure()
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if !passwordMatches(user.PasswordHash, creds.Password) {
		metrics.RecordLoginFailure()
		return Session{}, ErrInvalidCredentials
	}

	return n.newSession(user)
}

// Authorize validates a session token and returns the user id it was issued for.
func (n *Notebook) Authorize(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}

	claims, err := n.jwtIssuer.Validate(token)
	if err != nil {
		return 0, fmt.Errorf("validate jwt token: %w: %w", err, ErrUnauthorized)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("missing subject: %w", ErrUnauthorized)
	}

	userID, err := strconv.ParseUint(sub, 10, 0)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("malformed subject %q: %w", sub, ErrUnauthorized)
	}

	return uint(userID), nil
}

func (n *Notebook) GetProfile(ctx context.Context, userID uint) (Profile, error) {
	if userID == 0 {
		return Profile{}, validationError("user id required")
	}

	user, err := n.repo.GetUserByID(ctx, userID)
	if err != nil {
		return Profile{}, repoError("get user by id", err)
	}

	return profileOf(user), nil
}

// UpdateProfilePicture stores picture as a base64 data URI, replacing the
// previous one. A nil picture clears it.
func (n *Notebook) UpdateProfilePicture(ctx context.Context, userID uint, picture *Picture) (Profile, error) {
	if userID == 0 {
		return Profile{}, validationError("user id required")
	}

	var dataURI *string
	outcome := "cleared"
	if picture != nil {
		mediaType, err := n.checkPicture(*picture)
		if err != nil {
			metrics.RecordPictureUpload("rejected")
			return Profile{}, err
		}

		uri := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(picture.Data))
		dataURI = &uri
		outcome = "stored"
	}

	user, err := n.repo.SetProfilePicture(ctx, userID, dataURI)
	if err != nil {
		return Profile{}, repoError("set profile picture", err)
	}

	metrics.RecordPictureUpload(outcome)
	n.logs.Infow("profile picture updated", "userId", userID, "outcome", outcome)

	return profileOf(user), nil
}

func (n *Notebook) checkPicture(picture Picture) (string, error) {
	mediaType, _, err := mime.ParseMediaType(picture.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: unreadable content type %q", ErrInvalidPicture, picture.ContentType)
	}

	if _, ok := allowedPictureTypes[mediaType]; !ok {
		return "", fmt.Errorf("%w: only PNG, JPG and JPEG are allowed", ErrInvalidPicture)
	}

	if int64(len(picture.Data)) > n.settings.MaxPictureBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidPicture, n.settings.MaxPictureBytes)
	}

	return mediaType, nil
}

// UpdateAccount applies a partial username/password change. Changing the
// password requires the current one.
func (n *Notebook) UpdateAccount(ctx context.Context, userID uint, update AccountUpdate) (Profile, error) {
	if userID == 0 {
		return Profile{}, validationError("user id required")
	}

	var changes repository.UserChanges

	if update.Password != "" || update.CurrentPassword != "" {
		if update.Password == "" || update.CurrentPassword == "" {
			return Profile{}, validationError("password and currentPassword are both required")
		}

		user, err := n.repo.GetUserByID(ctx, userID)
		if err != nil {
			return Profile{}, repoError("get user by id", err)
		}

		if !passwordMatches(user.PasswordHash, update.CurrentPassword) {
			return Profile{}, ErrIncorrectPassword
		}

		hash, err := n.hashPassword(update.Password)
		if err != nil {
			return Profile{}, err
		}
		changes.PasswordHash = &hash
	}

	if update.Username != "" {
		existing, err := n.repo.GetUserByUsername(ctx, update.Username)
		switch {
		case err == nil && existing.ID != userID:
			return Profile{}, ErrUsernameTaken
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return Profile{}, fmt.Errorf("get user by username: %w", err)
		}
		username := update.Username
		changes.Username = &username
	}

	if changes.Username == nil && changes.PasswordHash == nil {
		return Profile{}, validationError("no update data provided")
	}

	user, err := n.repo.UpdateUser(ctx, userID, changes)
	if err != nil {
		return Profile{}, repoError("update user", err)
	}

	n.logs.Infow("account updated",
		"userId", userID,
		"usernameChanged", changes.Username != nil,
		"passwordChanged", changes.PasswordHash != nil)

	return profileOf(user), nil
}

func (n *Notebook) newSession(user repository.User) (Session, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: n.settings.SessionTTL,
	}
	token := n.jwtIssuer.Generate(tokenInfo)
	signed, err := n.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		User:  publicUser(user),
		Token: signed,
	}, nil
}
