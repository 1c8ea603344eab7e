package core_test

import (
	"context"
	"errors"
	"notely/internal/core"
	"notely/internal/core/fake"
	"notely/internal/repository"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Notebook notes", func() {
	var (
		fakeRepo *fake.Repository
		ctx      context.Context
		notebook *core.Notebook
		created  time.Time
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		ctx = context.Background()
		notebook = core.NewNotebook(zap.NewNop().Sugar(), fakeRepo, new(fake.JWTIssuer), core.Settings{})
		created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		fakeErr = errors.New("fake error")
	})

	Describe("ListNotes", func() {
		var (
			userID uint
			notes  []core.Note
			err    error
		)

		BeforeEach(func() {
			userID = 4
			fakeRepo.ListNotesReturns([]repository.Note{
				{ID: 2, UserID: 4, Title: "second", Content: "b", CreatedAt: created.Add(time.Minute)},
				{ID: 1, UserID: 4, Title: "first", Content: "a", CreatedAt: created},
			}, nil)
		})

		JustBeforeEach(func() {
			notes, err = notebook.ListNotes(ctx, userID)
		})

		When("the user has notes", func() {
			It("should return them in repository order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(notes).To(HaveLen(2))
				Expect(notes[0].ID).To(Equal(uint(2)))
				Expect(notes[1].Title).To(Equal("first"))

				_, id := fakeRepo.ListNotesArgsForCall(0)
				Expect(id).To(Equal(uint(4)))
			})
		})

		When("the user has no notes", func() {
			BeforeEach(func() {
				fakeRepo.ListNotesReturns([]repository.Note{}, nil)
			})

			It("should return an empty, non-nil list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(notes).NotTo(BeNil())
				Expect(notes).To(BeEmpty())
			})
		})

		When("the user id is missing", func() {
			BeforeEach(func() {
				userID = 0
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.ListNotesCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListNotesReturns(nil, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateNote", func() {
		var (
			draft core.NoteDraft
			note  core.Note
			err   error
		)

		BeforeEach(func() {
			draft = core.NoteDraft{Title: "groceries", Content: "milk"}
			fakeRepo.CreateNoteCalls(func(_ context.Context, n repository.Note) (repository.Note, error) {
				n.ID = 11
				n.CreatedAt = created
				n.UpdatedAt = created
				return n, nil
			})
		})

		JustBeforeEach(func() {
			note, err = notebook.CreateNote(ctx, 4, draft)
		})

		When("all fields are present", func() {
			It("should return the stored note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(note).To(Equal(core.Note{
					ID:        11,
					UserID:    4,
					Title:     "groceries",
					Content:   "milk",
					CreatedAt: created,
					UpdatedAt: created,
				}))
			})
		})

		When("the content is missing", func() {
			BeforeEach(func() {
				draft.Content = ""
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateNoteCallCount()).To(Equal(0))
			})
		})

		When("the same draft is submitted twice", func() {
			It("should create two notes", func() {
				_, err := notebook.CreateNote(ctx, 4, draft)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateNoteCallCount()).To(Equal(2))
			})
		})
	})

	Describe("GetNote", func() {
		var err error

		JustBeforeEach(func() {
			_, err = notebook.GetNote(ctx, 4, 11)
		})

		When("the note belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.GetNoteReturns(repository.Note{}, repository.ErrNoteNotFound)
			})

			It("should return note not found", func() {
				Expect(err).To(MatchError(core.ErrNoteNotFound))
				_, userID, noteID := fakeRepo.GetNoteArgsForCall(0)
				Expect(userID).To(Equal(uint(4)))
				Expect(noteID).To(Equal(uint(11)))
			})
		})
	})

	Describe("UpdateNote", func() {
		var (
			draft core.NoteDraft
			note  core.Note
			err   error
		)

		BeforeEach(func() {
			draft = core.NoteDraft{Title: "new title", Content: "new content"}
			fakeRepo.UpdateNoteCalls(func(_ context.Context, userID, noteID uint, title, content string) (repository.Note, error) {
				return repository.Note{ID: noteID, UserID: userID, Title: title, Content: content}, nil
			})
		})

		JustBeforeEach(func() {
			note, err = notebook.UpdateNote(ctx, 4, 11, draft)
		})

		When("the note is owned by the caller", func() {
			It("should reflect the new title and content", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(note.Title).To(Equal("new title"))
				Expect(note.Content).To(Equal("new content"))
			})
		})

		When("the note does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateNoteCalls(nil)
				fakeRepo.UpdateNoteReturns(repository.Note{}, repository.ErrNoteNotFound)
			})

			It("should return note not found", func() {
				Expect(err).To(MatchError(core.ErrNoteNotFound))
			})
		})

		When("the title is empty", func() {
			BeforeEach(func() {
				draft.Title = ""
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.UpdateNoteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteNote", func() {
		When("the note exists", func() {
			It("should no longer be readable afterwards", func() {
				fakeRepo.GetNoteReturns(repository.Note{}, repository.ErrNoteNotFound)

				Expect(notebook.DeleteNote(ctx, 4, 11)).To(Succeed())
				_, err := notebook.GetNote(ctx, 4, 11)
				Expect(err).To(MatchError(core.ErrNoteNotFound))
			})
		})

		When("the note is missing or foreign", func() {
			It("should return note not found", func() {
				fakeRepo.DeleteNoteReturns(repository.ErrNoteNotFound)

				err := notebook.DeleteNote(ctx, 4, 11)
				Expect(err).To(MatchError(core.ErrNoteNotFound))
			})
		})

		When("the note id is missing", func() {
			It("should return a validation error", func() {
				err := notebook.DeleteNote(ctx, 4, 0)
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.DeleteNoteCallCount()).To(Equal(0))
			})
		})
	})
})
