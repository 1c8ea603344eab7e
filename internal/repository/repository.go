package repository

import (
	"context"
	"errors"
	"fmt"
	"notely/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrNoteNotFound error = errors.New("note not found")
var ErrUsernameTaken error = errors.New("username already taken")

// notesOrder lists newest notes first; id breaks ties between notes created
// within the same timestamp resolution.
const notesOrder = "created_at desc, id desc"

type NotebookRepository struct {
	db Storage
}

func NewNotebookRepository(db Storage) *NotebookRepository {
	return &NotebookRepository{
		db: db,
	}
}

func (r *NotebookRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Note{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *NotebookRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *NotebookRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *NotebookRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *NotebookRepository) getUserBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

// UpdateUser writes the supplied changes and returns the stored user.
func (r *NotebookRepository) UpdateUser(ctx context.Context, id uint, changes UserChanges) (User, error) {
	fields := make(map[string]any, 2)
	if changes.Username != nil {
		fields["username"] = *changes.Username
	}
	if changes.PasswordHash != nil {
		fields["password_hash"] = *changes.PasswordHash
	}

	if len(fields) == 0 {
		return r.GetUserByID(ctx, id)
	}

	return r.updateUser(ctx, id, fields)
}

// SetProfilePicture replaces the stored picture; nil clears it.
func (r *NotebookRepository) SetProfilePicture(ctx context.Context, id uint, picture *string) (User, error) {
	var value any
	if picture != nil {
		value = *picture
	}

	return r.updateUser(ctx, id, map[string]any{"profile_picture": value})
}

func (r *NotebookRepository) updateUser(ctx context.Context, id uint, fields map[string]any) (User, error) {
	affected, err := r.db.UpdateWhere(ctx, &User{}, map[string]any{"id": id}, fields)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("update user: %w", err)
	}

	if affected == 0 {
		return User{}, ErrUserNotFound
	}

	return r.GetUserByID(ctx, id)
}

func (r *NotebookRepository) CreateNote(ctx context.Context, note Note) (Note, error) {
	err := r.db.Create(ctx, &note)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

func (r *NotebookRepository) GetNote(ctx context.Context, userID, noteID uint) (Note, error) {
	var note Note

	err := r.db.GetWhere(ctx, noteOwnedBy(userID, noteID), &note)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Note{}, ErrNoteNotFound
		}
		return Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

// ListNotes returns the notes of userID, newest first.
func (r *NotebookRepository) ListNotes(ctx context.Context, userID uint) ([]Note, error) {
	notes := []Note{}

	err := r.db.GetAllBy(ctx, "user_id", userID, notesOrder, &notes)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *NotebookRepository) UpdateNote(ctx context.Context, userID, noteID uint, title, content string) (Note, error) {
	fields := map[string]any{
		"title":   title,
		"content": content,
	}

	affected, err := r.db.UpdateWhere(ctx, &Note{}, noteOwnedBy(userID, noteID), fields)
	if err != nil {
		return Note{}, fmt.Errorf("update note: %w", err)
	}

	if affected == 0 {
		return Note{}, ErrNoteNotFound
	}

	return r.GetNote(ctx, userID, noteID)
}

func (r *NotebookRepository) DeleteNote(ctx context.Context, userID, noteID uint) error {
	affected, err := r.db.DeleteWhere(ctx, &Note{}, noteOwnedBy(userID, noteID))
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func noteOwnedBy(userID, noteID uint) map[string]any {
	return map[string]any{
		"id":      noteID,
		"user_id": userID,
	}
}
