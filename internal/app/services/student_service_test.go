package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aylin/coursebook/internal/app/models"
	"github.com/aylin/coursebook/internal/pkg/apperrors"
)

func TestStudentServiceCreate(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)
	ctx := context.Background()

	student := &models.Student{Name: "Ada Lovelace", Email: "ada@example.edu"}
	require.NoError(t, svc.CreateStudent(ctx, student))
	assert.NotZero(t, student.ID)

	got, err := svc.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "ada@example.edu", got.Email)
}

func TestStudentServiceCreateDuplicateEmail(t *testing.T) {
	store := newFakeStudentStore()
	store.add("Ada Lovelace", "ada@example.edu")
	svc := NewStudentService(store)

	err := svc.CreateStudent(context.Background(), &models.Student{Name: "Other", Email: "ada@example.edu"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestStudentServiceGetByIDNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	_, err := svc.GetStudentByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentServiceGetAllPagination(t *testing.T) {
	store := newFakeStudentStore()
	store.add("Ada", "ada@example.edu")
	store.add("Alan", "alan@example.edu")
	store.add("Grace", "grace@example.edu")
	svc := NewStudentService(store)
	ctx := context.Background()

	page, err := svc.GetAllStudents(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Alan", page[0].Name)

	empty, err := svc.GetAllStudents(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStudentServiceUpdate(t *testing.T) {
	store := newFakeStudentStore()
	existing := store.add("Ada Lovelace", "ada@example.edu")
	svc := NewStudentService(store)
	ctx := context.Background()

	existing.Name = "Ada King"
	require.NoError(t, svc.UpdateStudent(ctx, existing))

	got, err := svc.GetStudentByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", got.Name)
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	err := svc.UpdateStudent(context.Background(), &models.Student{ID: 42, Name: "Ghost", Email: "ghost@example.edu"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

// Updating a student to its own current email must not count as a collision.
func TestStudentServiceUpdateKeepsOwnEmail(t *testing.T) {
	store := newFakeStudentStore()
	existing := store.add("Ada Lovelace", "ada@example.edu")
	svc := NewStudentService(store)

	existing.Name = "Ada King"
	assert.NoError(t, svc.UpdateStudent(context.Background(), existing))
}

func TestStudentServiceUpdateEmailTakenByOther(t *testing.T) {
	store := newFakeStudentStore()
	store.add("Ada Lovelace", "ada@example.edu")
	other := store.add("Alan Turing", "alan@example.edu")
	svc := NewStudentService(store)

	other.Email = "ada@example.edu"
	err := svc.UpdateStudent(context.Background(), other)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestStudentServiceDelete(t *testing.T) {
	store := newFakeStudentStore()
	existing := store.add("Ada Lovelace", "ada@example.edu")
	svc := NewStudentService(store)
	ctx := context.Background()

	require.NoError(t, svc.DeleteStudent(ctx, existing.ID))

	// A second delete sees a missing student
	err := svc.DeleteStudent(ctx, existing.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentServiceDeleteWithEnrollments(t *testing.T) {
	store := newFakeStudentStore()
	existing := store.add("Ada Lovelace", "ada@example.edu")
	store.enrolled[existing.ID] = true
	svc := NewStudentService(store)

	err := svc.DeleteStudent(context.Background(), existing.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentHasEnrollments)
}
