package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"notely/internal/core"
	"notely/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Register      = "POST /auth/register"
	Login         = "POST /auth/login"
	ListNotes     = "GET /notes"
	CreateNote    = "POST /notes"
	GetNote       = "GET /notes/{id}"
	UpdateNote    = "PUT /notes/{id}"
	DeleteNote    = "DELETE /notes/{id}"
	GetProfile    = "GET /users"
	UpdatePicture = "PUT /users"
	UpdateAccount = "PUT /users/update"
)

// multipartOverhead is the room left for form fields and part headers on
// top of the picture size limit.
const multipartOverhead = 1 << 20

var errForbidden = errors.New("user id does not match the session")

type NotebookHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	notebook         NotebookService
	maxUploadBytes   int64
}

func NewNotebookHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, notebookService NotebookService, maxPictureBytes int64) *NotebookHandler {
	return &NotebookHandler{
		logs:             logger,
		requestValidator: requestValidator,
		notebook:         notebookService,
		maxUploadBytes:   maxPictureBytes + multipartOverhead,
	}
}

// sessionUser returns the authenticated user id. A non-zero claimed id must
// match it.
func sessionUser(r *http.Request, claimed uint) (uint, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, core.ErrUnauthorized
	}

	if claimed != 0 && claimed != userID {
		return 0, errForbidden
	}

	return userID, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrUsernameTaken):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrIncorrectPassword),
		errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrNoteNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail maps err to a status, responds with it and logs the failure. Details of
// unexpected errors stay in the log.
func (h *NotebookHandler) fail(w http.ResponseWriter, r *http.Request, handler, message string, err error) {
	requestId := middleware.RequestIDFromContext(r.Context())
	code := statusOf(err)

	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
		h.logs.Errorw(message,
			"error", err,
			"handler", handler,
			"request_id", requestId)
	} else {
		h.logs.Warnw(message,
			"error", err,
			"status", code,
			"handler", handler,
			"request_id", requestId)
	}

	h.respond(w, resp, code, requestId)
}

func (h *NotebookHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
