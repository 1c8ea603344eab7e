package repository_test

import (
	"context"
	"errors"
	"notely/internal/db"
	"notely/internal/repository"
	"notely/internal/repository/fake"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NotebookRepository", func() {
	var (
		repo        *repository.NotebookRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewNotebookRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate users and notes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				models := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(models).To(HaveLen(2))
				Expect(models[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(models[1]).To(BeAssignableToTypeOf(&repository.Note{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "hash")
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateStub = func(_ context.Context, record any) error {
					record.(*repository.User).ID = 1
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hash"))
			})
		})

		When("the username is already stored", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(db.ErrDuplicateKey)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: 3, Username: value.(string)}
					return nil
				}
			})

			It("should look up by username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(3)))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("get user by username: fake error"))
			})
		})
	})

	Describe("UpdateUser", func() {
		var (
			changes repository.UserChanges
			user    repository.User
			err     error
		)

		BeforeEach(func() {
			username := "bob"
			hash := "new-hash"
			changes = repository.UserChanges{Username: &username, PasswordHash: &hash}

			fakeStorage.UpdateWhereReturns(1, nil)
			fakeStorage.GetOneByStub = func(_ context.Context, _ string, value any, entity any) error {
				*entity.(*repository.User) = repository.User{ID: value.(uint), Username: "bob"}
				return nil
			}
		})

		JustBeforeEach(func() {
			user, err = repo.UpdateUser(ctx, 5, changes)
		})

		When("the update succeeds", func() {
			It("should write only the supplied columns and reload the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("bob"))

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
				_, model, conditions, fields := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(conditions).To(Equal(map[string]any{"id": uint(5)}))
				Expect(fields).To(Equal(map[string]any{"username": "bob", "password_hash": "new-hash"}))
			})
		})

		When("nothing is supplied", func() {
			BeforeEach(func() {
				changes = repository.UserChanges{}
			})

			It("should only reload the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(0))
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the new username collides", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, db.ErrDuplicateKey)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})
	})

	Describe("SetProfilePicture", func() {
		BeforeEach(func() {
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		It("should store the data uri", func() {
			picture := "data:image/png;base64,AAAA"
			_, err := repo.SetProfilePicture(ctx, 2, &picture)
			Expect(err).NotTo(HaveOccurred())

			_, _, _, fields := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(fields).To(Equal(map[string]any{"profile_picture": picture}))
		})

		It("should clear the picture when given nil", func() {
			_, err := repo.SetProfilePicture(ctx, 2, nil)
			Expect(err).NotTo(HaveOccurred())

			_, _, _, fields := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(fields).To(HaveKeyWithValue("profile_picture", BeNil()))
		})
	})

	Describe("CreateNote", func() {
		var (
			note repository.Note
			err  error
		)

		JustBeforeEach(func() {
			note, err = repo.CreateNote(ctx, repository.Note{UserID: 1, Title: "A", Content: "x"})
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CreateStub = func(_ context.Context, record any) error {
					n := record.(*repository.Note)
					n.ID = 10
					n.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
					return nil
				}
			})

			It("should return the full record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(note.ID).To(Equal(uint(10)))
				Expect(note.UserID).To(Equal(uint(1)))
				Expect(note.Title).To(Equal("A"))
				Expect(note.CreatedAt).NotTo(BeZero())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("create note: fake error"))
			})
		})
	})

	Describe("ListNotes", func() {
		var (
			notes []repository.Note
			err   error
		)

		JustBeforeEach(func() {
			notes, err = repo.ListNotes(ctx, 1)
		})

		When("the user has notes", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(_ context.Context, _ string, _ any, _ string, dest any) error {
					*dest.(*[]repository.Note) = []repository.Note{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}}
					return nil
				}
			})

			It("should ask for newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(notes).To(HaveLen(2))
				Expect(notes[0].Title).To(Equal("B"))

				_, column, value, order, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(column).To(Equal("user_id"))
				Expect(value).To(Equal(uint(1)))
				Expect(order).To(Equal("created_at desc, id desc"))
			})
		})

		When("the user has no notes", func() {
			It("should return an empty, non-nil list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(notes).NotTo(BeNil())
				Expect(notes).To(BeEmpty())
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("list notes: fake error"))
			})
		})
	})

	Describe("UpdateNote", func() {
		var (
			note repository.Note
			err  error
		)

		BeforeEach(func() {
			fakeStorage.UpdateWhereReturns(1, nil)
			fakeStorage.GetWhereStub = func(_ context.Context, _ map[string]any, entity any) error {
				*entity.(*repository.Note) = repository.Note{ID: 4, UserID: 1, Title: "t2", Content: "c2"}
				return nil
			}
		})

		JustBeforeEach(func() {
			note, err = repo.UpdateNote(ctx, 1, 4, "t2", "c2")
		})

		When("the note belongs to the user", func() {
			It("should scope the update to the owner and reload the note", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(note.Title).To(Equal("t2"))
				Expect(note.Content).To(Equal("c2"))

				_, model, conditions, fields := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Note{}))
				Expect(conditions).To(Equal(map[string]any{"id": uint(4), "user_id": uint(1)}))
				Expect(fields).To(Equal(map[string]any{"title": "t2", "content": "c2"}))
			})
		})

		When("no note matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return ErrNoteNotFound", func() {
				Expect(err).To(MatchError(repository.ErrNoteNotFound))
				Expect(fakeStorage.GetWhereCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetNote", func() {
		When("the note is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetWhereReturns(db.ErrNotFound)
			})

			It("should return ErrNoteNotFound", func() {
				_, err := repo.GetNote(ctx, 1, 9)
				Expect(err).To(MatchError(repository.ErrNoteNotFound))
			})
		})
	})

	Describe("DeleteNote", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteNote(ctx, 1, 4)
		})

		When("the note is removed", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should scope the delete to the owner", func() {
				Expect(err).NotTo(HaveOccurred())
				_, model, conditions := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Note{}))
				Expect(conditions).To(Equal(map[string]any{"id": uint(4), "user_id": uint(1)}))
			})
		})

		When("no note matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should return ErrNoteNotFound", func() {
				Expect(err).To(MatchError(repository.ErrNoteNotFound))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("delete note: fake error"))
			})
		})
	})
})
