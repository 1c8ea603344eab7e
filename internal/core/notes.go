package core

import (
	"context"
	"notely/internal/repository"
	"notely/pkg/metrics"
)

// ListNotes returns the notes owned by userID, newest first.
func (n *Notebook) ListNotes(ctx context.Context, userID uint) ([]Note, error) {
	if userID == 0 {
		return nil, validationError("user id required")
	}

	stored, err := n.repo.ListNotes(ctx, userID)
	if err != nil {
		return nil, repoError("list notes", err)
	}

	notes := make([]Note, len(stored))
	for i, note := range stored {
		notes[i] = noteOf(note)
	}

	return notes, nil
}

// CreateNote stores a new note for userID. It is not idempotent: submitting
// the same draft twice creates two notes.
func (n *Notebook) CreateNote(ctx context.Context, userID uint, draft NoteDraft) (Note, error) {
	if userID == 0 || draft.Title == "" || draft.Content == "" {
		return Note{}, validationError("missing required fields")
	}

	note, err := n.repo.CreateNote(ctx, repository.Note{
		UserID:  userID,
		Title:   draft.Title,
		Content: draft.Content,
	})
	if err != nil {
		return Note{}, repoError("create note", err)
	}

	metrics.RecordNoteCreated()
	n.logs.Infow("note created", "userId", userID, "noteId", note.ID)

	return noteOf(note), nil
}

func (n *Notebook) GetNote(ctx context.Context, userID, noteID uint) (Note, error) {
	if userID == 0 || noteID == 0 {
		return Note{}, validationError("user id and note id required")
	}

	note, err := n.repo.GetNote(ctx, userID, noteID)
	if err != nil {
		return Note{}, repoError("get note", err)
	}

	return noteOf(note), nil
}

// UpdateNote overwrites title and content of a note owned by userID.
func (n *Notebook) UpdateNote(ctx context.Context, userID, noteID uint, draft NoteDraft) (Note, error) {
	if userID == 0 || noteID == 0 {
		return Note{}, validationError("user id and note id required")
	}
	if draft.Title == "" || draft.Content == "" {
		return Note{}, validationError("title and content required")
	}

	note, err := n.repo.UpdateNote(ctx, userID, noteID, draft.Title, draft.Content)
	if err != nil {
		return Note{}, repoError("update note", err)
	}

	n.logs.Infow("note updated", "userId", userID, "noteId", noteID)

	return noteOf(note), nil
}

func (n *Notebook) DeleteNote(ctx context.Context, userID, noteID uint) error {
	if userID == 0 || noteID == 0 {
		return validationError("user id and note id required")
	}

	if err := n.repo.DeleteNote(ctx, userID, noteID); err != nil {
		return repoError("delete note", err)
	}

	metrics.RecordNoteDeleted()
	n.logs.Infow("note deleted", "userId", userID, "noteId", noteID)

	return nil
}
