package handler

import (
	"net/http"
	"notely/internal/core"
	"notely/internal/http/handler/middleware"
	"notely/internal/http/payload"
)

func (h *NotebookHandler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	claimed, err := payload.ParseUserID(r.URL.Query().Get("userId"))
	if err != nil {
		h.fail(w, r, ListNotes, "Could not retrieve notes", invalidPayload(err))
		return
	}

	userID, err := sessionUser(r, claimed)
	if err != nil {
		h.fail(w, r, ListNotes, "Could not retrieve notes", err)
		return
	}

	notes, err := h.notebook.ListNotes(r.Context(), userID)
	if err != nil {
		h.fail(w, r, ListNotes, "Could not retrieve notes", err)
		return
	}

	resp := map[string][]core.Note{
		"notes": notes,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *NotebookHandler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateNoteRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, r, CreateNote, "Could not create note", invalidPayload(err))
		return
	}

	var claimed uint
	if req.UserID != nil {
		claimed = *req.UserID
	}

	userID, err := sessionUser(r, claimed)
	if err != nil {
		h.fail(w, r, CreateNote, "Could not create note", err)
		return
	}

	note, err := h.notebook.CreateNote(r.Context(), userID, req.ToDraft())
	if err != nil {
		h.fail(w, r, CreateNote, "Could not create note", err)
		return
	}

	resp := map[string]core.Note{
		"note": note,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *NotebookHandler) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := h.noteTarget(r)
	if err != nil {
		h.fail(w, r, GetNote, "Could not retrieve note", err)
		return
	}

	note, err := h.notebook.GetNote(r.Context(), userID, noteID)
	if err != nil {
		h.fail(w, r, GetNote, "Could not retrieve note", err)
		return
	}

	resp := map[string]core.Note{
		"note": note,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *NotebookHandler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := h.noteTarget(r)
	if err != nil {
		h.fail(w, r, UpdateNote, "Could not update note", err)
		return
	}

	var req payload.UpdateNoteRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, r, UpdateNote, "Could not update note", invalidPayload(err))
		return
	}

	note, err := h.notebook.UpdateNote(r.Context(), userID, noteID, req.ToDraft())
	if err != nil {
		h.fail(w, r, UpdateNote, "Could not update note", err)
		return
	}

	resp := map[string]core.Note{
		"note": note,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *NotebookHandler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := h.noteTarget(r)
	if err != nil {
		h.fail(w, r, DeleteNote, "Could not delete note", err)
		return
	}

	if err := h.notebook.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.fail(w, r, DeleteNote, "Could not delete note", err)
		return
	}

	h.respond(w, Response{
		Message: "Note deleted successfully",
	}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

// noteTarget resolves the session user and the {id} path parameter.
func (h *NotebookHandler) noteTarget(r *http.Request) (uint, uint, error) {
	userID, err := sessionUser(r, 0)
	if err != nil {
		return 0, 0, err
	}

	noteID, err := payload.ParseNoteID(r.PathValue("id"))
	if err != nil {
		return 0, 0, invalidPayload(err)
	}

	return userID, noteID, nil
}
