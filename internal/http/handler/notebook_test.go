package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"notely/internal/core"
	"notely/internal/http/handler"
	"notely/internal/http/handler/fake"
	"notely/internal/http/handler/middleware"
	"notely/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const maxPictureBytes = 5 << 20

func withSession(req *http.Request, userID uint) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func pictureForm(userID, contentType string, data []byte) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if userID != "" {
		Expect(writer.WriteField("userId", userID)).To(Succeed())
	}

	if data != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="profilePicture"; filename="avatar"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write(data)
		Expect(err).NotTo(HaveOccurred())
	}

	Expect(writer.Close()).To(Succeed())
	return body, writer.FormDataContentType()
}

var _ = Describe("NotebookHandler", func() {
	var (
		nh            *handler.NotebookHandler
		fakeService   *fake.NotebookService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		session       core.Session
		profile       core.Profile
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.NotebookService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
			return payload.Decoder{}.DecodeJSONPayload(r, object)
		}

		session = core.Session{
			User:  core.PublicUser{ID: 1, Username: "alice"},
			Token: "signed.token",
		}
		profile = core.Profile{ID: 7, Username: "bob"}

		w = httptest.NewRecorder()
		nh = handler.NewNotebookHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, maxPictureBytes)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"alice","password":"pw1"}`))
			fakeService.RegisterReturns(session, nil)
		})

		JustBeforeEach(func() {
			nh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return the user and token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"user":{"id":1,"username":"alice"},"token":"signed.token"}`))

				_, creds := fakeService.RegisterArgsForCall(0)
				Expect(creds).To(Equal(core.Credentials{Username: "alice", Password: "pw1"}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, core.ErrUsernameTaken)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUsernameTaken.Error()))
			})
		})

		When("a field is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"alice"}`))
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, fakeErr)
			})

			It("should return 500 with a generic error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"pw1"}`))
			fakeService.LoginReturns(session, nil)
		})

		JustBeforeEach(func() {
			nh.HandleLogin(w, req)
		})

		When("the credentials are valid", func() {
			It("should return the session", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var got core.Session
				Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
				Expect(got).To(Equal(session))
			})
		})

		When("the credentials are invalid", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{}, core.ErrInvalidCredentials)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the body is malformed", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetProfile", func() {
		BeforeEach(func() {
			req = withSession(httptest.NewRequest(http.MethodGet, "/users?userId=7", nil), 7)
			fakeService.GetProfileReturns(profile, nil)
		})

		JustBeforeEach(func() {
			nh.HandleGetProfile(w, req)
		})

		When("the user id matches the session", func() {
			It("should return the profile", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"user":{"id":7,"username":"bob","profile_picture":null}}`))
				_, userID := fakeService.GetProfileArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
			})
		})

		When("the user id is omitted", func() {
			BeforeEach(func() {
				req = withSession(httptest.NewRequest(http.MethodGet, "/users", nil), 7)
			})

			It("should use the session user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, userID := fakeService.GetProfileArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
			})
		})

		When("the user id belongs to someone else", func() {
			BeforeEach(func() {
				req = withSession(httptest.NewRequest(http.MethodGet, "/users?userId=8", nil), 7)
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(fakeService.GetProfileCallCount()).To(Equal(0))
			})
		})

		When("the user id is malformed", func() {
			BeforeEach(func() {
				req = withSession(httptest.NewRequest(http.MethodGet, "/users?userId=abc", nil), 7)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("there is no session", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/users", nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.GetProfileReturns(core.Profile{}, core.ErrUserNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUpdatePicture", func() {
		var (
			userIDField string
			contentType string
			data        []byte
		)

		BeforeEach(func() {
			userIDField = "7"
			contentType = "image/jpeg"
			data = bytes.Repeat([]byte{0xff}, 1024)
			fakeService.UpdateProfilePictureReturns(profile, nil)
		})

		JustBeforeEach(func() {
			body, formType := pictureForm(userIDField, contentType, data)
			req = withSession(httptest.NewRequest(http.MethodPut, "/users", body), 7)
			req.Header.Set("Content-Type", formType)
			nh.HandleUpdatePicture(w, req)
		})

		When("a jpeg is uploaded", func() {
			It("should pass the file to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, userID, picture := fakeService.UpdateProfilePictureArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
				Expect(picture).NotTo(BeNil())
				Expect(picture.ContentType).To(Equal("image/jpeg"))
				Expect(picture.Data).To(HaveLen(1024))
			})
		})

		When("no file is attached", func() {
			BeforeEach(func() {
				data = nil
			})

			It("should ask the service to clear the picture", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, picture := fakeService.UpdateProfilePictureArgsForCall(0)
				Expect(picture).To(BeNil())
			})
		})

		When("the upload exceeds the request limit", func() {
			BeforeEach(func() {
				data = make([]byte, 6<<20+1)
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateProfilePictureCallCount()).To(Equal(0))
			})
		})

		When("the service rejects the picture", func() {
			BeforeEach(func() {
				contentType = "image/gif"
				fakeService.UpdateProfilePictureReturns(core.Profile{}, core.ErrInvalidPicture)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the form names another user", func() {
			BeforeEach(func() {
				userIDField = "8"
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(fakeService.UpdateProfilePictureCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdatePicture without multipart", func() {
		It("should return 400", func() {
			req = withSession(httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(`{}`)), 7)
			req.Header.Set("Content-Type", "application/json")
			nh.HandleUpdatePicture(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("HandleUpdateAccount", func() {
		var body string

		BeforeEach(func() {
			body = `{"userId":7,"password":"new","currentPassword":"old"}`
			fakeService.UpdateAccountReturns(profile, nil)
		})

		JustBeforeEach(func() {
			req = withSession(httptest.NewRequest(http.MethodPut, "/users/update", strings.NewReader(body)), 7)
			nh.HandleUpdateAccount(w, req)
		})

		When("the password change is valid", func() {
			It("should return the updated user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, userID, update := fakeService.UpdateAccountArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
				Expect(update).To(Equal(core.AccountUpdate{Password: "new", CurrentPassword: "old"}))
			})
		})

		When("the current password is wrong", func() {
			BeforeEach(func() {
				fakeService.UpdateAccountReturns(core.Profile{}, core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("nothing is supplied", func() {
			BeforeEach(func() {
				body = `{"userId":7}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateAccountCallCount()).To(Equal(0))
			})
		})

		When("the body names another user", func() {
			BeforeEach(func() {
				body = `{"userId":9,"username":"mallory"}`
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleListNotes", func() {
		BeforeEach(func() {
			req = withSession(httptest.NewRequest(http.MethodGet, "/notes?userId=7", nil), 7)
			fakeService.ListNotesReturns([]core.Note{{ID: 2, UserID: 7, Title: "b"}, {ID: 1, UserID: 7, Title: "a"}}, nil)
		})

		JustBeforeEach(func() {
			nh.HandleListNotes(w, req)
		})

		When("the user has notes", func() {
			It("should return them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string][]core.Note
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp["notes"]).To(HaveLen(2))
				Expect(resp["notes"][0].ID).To(Equal(uint(2)))
			})
		})

		When("the user has none", func() {
			BeforeEach(func() {
				fakeService.ListNotesReturns([]core.Note{}, nil)
			})

			It("should return an empty array", func() {
				Expect(w.Body.String()).To(MatchJSON(`{"notes":[]}`))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListNotesReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateNote", func() {
		var body string

		BeforeEach(func() {
			body = `{"userId":7,"title":"groceries","content":"milk"}`
			fakeService.CreateNoteReturns(core.Note{ID: 3, UserID: 7, Title: "groceries", Content: "milk"}, nil)
		})

		JustBeforeEach(func() {
			req = withSession(httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(body)), 7)
			nh.HandleCreateNote(w, req)
		})

		When("the note is valid", func() {
			It("should return the created note", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"note"`))
				_, userID, draft := fakeService.CreateNoteArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
				Expect(draft).To(Equal(core.NoteDraft{Title: "groceries", Content: "milk"}))
			})
		})

		When("the user id is omitted", func() {
			BeforeEach(func() {
				body = `{"title":"groceries","content":"milk"}`
			})

			It("should create the note for the session user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, userID, _ := fakeService.CreateNoteArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
			})
		})

		When("the title is missing", func() {
			BeforeEach(func() {
				body = `{"userId":7,"content":"milk"}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateNoteCallCount()).To(Equal(0))
			})
		})

		When("the body names another user", func() {
			BeforeEach(func() {
				body = `{"userId":8,"title":"groceries","content":"milk"}`
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(fakeService.CreateNoteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("note by id", func() {
		var mux *http.ServeMux

		BeforeEach(func() {
			mux = http.NewServeMux()
			mux.HandleFunc(handler.GetNote, nh.HandleGetNote)
			mux.HandleFunc(handler.UpdateNote, nh.HandleUpdateNote)
			mux.HandleFunc(handler.DeleteNote, nh.HandleDeleteNote)
		})

		serve := func(method, target, body string) {
			req = withSession(httptest.NewRequest(method, target, strings.NewReader(body)), 7)
			mux.ServeHTTP(w, req)
		}

		Describe("HandleGetNote", func() {
			It("should return the note", func() {
				fakeService.GetNoteReturns(core.Note{ID: 3, UserID: 7}, nil)
				serve(http.MethodGet, "/notes/3", "")

				Expect(w.Code).To(Equal(http.StatusOK))
				_, userID, noteID := fakeService.GetNoteArgsForCall(0)
				Expect(userID).To(Equal(uint(7)))
				Expect(noteID).To(Equal(uint(3)))
			})

			It("should return 400 for a malformed id", func() {
				serve(http.MethodGet, "/notes/abc", "")

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetNoteCallCount()).To(Equal(0))
			})
		})

		Describe("HandleUpdateNote", func() {
			It("should return the updated note", func() {
				fakeService.UpdateNoteReturns(core.Note{ID: 3, Title: "new"}, nil)
				serve(http.MethodPut, "/notes/3", `{"title":"new","content":"body"}`)

				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, noteID, draft := fakeService.UpdateNoteArgsForCall(0)
				Expect(noteID).To(Equal(uint(3)))
				Expect(draft).To(Equal(core.NoteDraft{Title: "new", Content: "body"}))
			})

			It("should return 404 for a missing or foreign note", func() {
				fakeService.UpdateNoteReturns(core.Note{}, core.ErrNoteNotFound)
				serve(http.MethodPut, "/notes/3", `{"title":"new","content":"body"}`)

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})

			It("should return 400 for an empty body", func() {
				serve(http.MethodPut, "/notes/3", `{}`)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateNoteCallCount()).To(Equal(0))
			})
		})

		Describe("HandleDeleteNote", func() {
			It("should confirm the deletion", func() {
				serve(http.MethodDelete, "/notes/3", "")

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"message":"Note deleted successfully"}`))
			})

			It("should return 404 for a missing or foreign note", func() {
				fakeService.DeleteNoteReturns(core.ErrNoteNotFound)
				serve(http.MethodDelete, "/notes/3", "")

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})

var _ = Describe("HealthHandler", func() {
	var (
		fakePinger *fake.Pinger
		w          *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakePinger = new(fake.Pinger)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		hh := handler.NewHealthHandler(zap.NewNop().Sugar(), fakePinger)
		hh.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	})

	When("the database answers", func() {
		It("should report ok", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
		})
	})

	When("the database is unreachable", func() {
		BeforeEach(func() {
			fakePinger.PingReturns(errors.New("connection refused"))
		})

		It("should report unavailable", func() {
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"unavailable"}`))
		})
	})
})
