package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"notely/internal/core"
	"notely/internal/http/handler/middleware"
	"notely/internal/http/payload"
)

func invalidPayload(err error) error {
	return fmt.Errorf("%w: invalid request payload: %w", core.ErrValidation, err)
}

func (h *NotebookHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, r, Register, "Registration failed", invalidPayload(err))
		return
	}

	session, err := h.notebook.Register(r.Context(), req.ToCredentials())
	if err != nil {
		h.fail(w, r, Register, "Registration failed", err)
		return
	}

	h.logs.Infow("user registered",
		"user_id", session.User.ID,
		"handler", Register,
		"request_id", middleware.RequestIDFromContext(r.Context()))

	h.respond(w, session, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *NotebookHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, r, Login, "Login failed", invalidPayload(err))
		return
	}

	session, err := h.notebook.Login(r.Context(), req.ToCredentials())
	if err != nil {
		h.fail(w, r, Login, "Login failed", err)
		return
	}

	h.respond(w, session, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *NotebookHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	claimed, err := payload.ParseUserID(r.URL.Query().Get("userId"))
	if err != nil {
		h.fail(w, r, GetProfile, "Could not retrieve profile", invalidPayload(err))
		return
	}

	userID, err := sessionUser(r, claimed)
	if err != nil {
		h.fail(w, r, GetProfile, "Could not retrieve profile", err)
		return
	}

	profile, err := h.notebook.GetProfile(r.Context(), userID)
	if err != nil {
		h.fail(w, r, GetProfile, "Could not retrieve profile", err)
		return
	}

	resp := map[string]core.Profile{
		"user": profile,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

// HandleUpdatePicture accepts a multipart form with an optional userId field
// and an optional profilePicture file. Without a file the picture is cleared.
func (h *NotebookHandler) HandleUpdatePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: request exceeds %d bytes", core.ErrInvalidPicture, tooLarge.Limit)
		} else {
			err = invalidPayload(err)
		}
		h.fail(w, r, UpdatePicture, "Could not update profile picture", err)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	claimed, err := payload.ParseUserID(r.FormValue("userId"))
	if err != nil {
		h.fail(w, r, UpdatePicture, "Could not update profile picture", invalidPayload(err))
		return
	}

	userID, err := sessionUser(r, claimed)
	if err != nil {
		h.fail(w, r, UpdatePicture, "Could not update profile picture", err)
		return
	}

	picture, err := readPicture(r)
	if err != nil {
		h.fail(w, r, UpdatePicture, "Could not update profile picture", err)
		return
	}

	profile, err := h.notebook.UpdateProfilePicture(r.Context(), userID, picture)
	if err != nil {
		h.fail(w, r, UpdatePicture, "Could not update profile picture", err)
		return
	}

	resp := map[string]core.Profile{
		"user": profile,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func readPicture(r *http.Request) (*core.Picture, error) {
	file, header, err := r.FormFile("profilePicture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, invalidPayload(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}

	return &core.Picture{
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *NotebookHandler) HandleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateAccountRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.fail(w, r, UpdateAccount, "Could not update account", invalidPayload(err))
		return
	}

	var claimed uint
	if req.UserID != nil {
		claimed = *req.UserID
	}

	userID, err := sessionUser(r, claimed)
	if err != nil {
		h.fail(w, r, UpdateAccount, "Could not update account", err)
		return
	}

	profile, err := h.notebook.UpdateAccount(r.Context(), userID, req.ToAccountUpdate())
	if err != nil {
		h.fail(w, r, UpdateAccount, "Could not update account", err)
		return
	}

	resp := map[string]core.Profile{
		"user": profile,
	}
	h.respond(w, resp, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}
