package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniguide/internal/student/models"
	dErrors "uniguide/pkg/domain-errors"
)

func TestStudentCRUD(t *testing.T) {
	st := NewInMemoryStore()
	ctx := context.Background()

	created, err := st.CreateStudent(ctx, models.Student{Name: "Ada", Status: "Applying"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := st.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	created.Name = "Ada L."
	require.NoError(t, st.UpdateStudent(ctx, created))
	got, err = st.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", got.Name)

	require.NoError(t, st.DeleteStudent(ctx, created.ID))
	_, err = st.GetStudent(ctx, created.ID)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestStudentNotFoundVariants(t *testing.T) {
	st := NewInMemoryStore()
	ctx := context.Background()

	_, err := st.GetStudent(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.UpdateStudent(ctx, models.Student{ID: "nope"}), ErrNotFound)
	assert.ErrorIs(t, st.DeleteStudent(ctx, "nope"), ErrNotFound)
	assert.ErrorIs(t, st.UpdateNote(ctx, "nope", models.Note{ID: "n1"}), ErrNotFound)
	assert.ErrorIs(t, st.DeleteCommunication(ctx, "nope", "c1"), ErrNotFound)
}

func TestListStudentsPreservesInsertionOrder(t *testing.T) {
	st := NewInMemoryStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := st.CreateStudent(ctx, models.Student{Name: fmt.Sprintf("S%d", i)})
		require.NoError(t, err)
	}

	students, err := st.ListStudents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, students, 5)
	for i, s := range students {
		assert.Equal(t, fmt.Sprintf("S%d", i), s.Name)
	}

	students, err = st.ListStudents(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, students, 3)
}

func TestNoteSubcollection(t *testing.T) {
	st := NewInMemoryStore()
	ctx := context.Background()
	s, err := st.CreateStudent(ctx, models.Student{Name: "Ada"})
	require.NoError(t, err)

	n, err := st.AddNote(ctx, s.ID, models.Note{Author: "Counselor", Content: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)

	n.Content = "second"
	require.NoError(t, st.UpdateNote(ctx, s.ID, n))

	notes, err := st.ListNotes(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "second", notes[0].Content)

	require.NoError(t, st.DeleteNote(ctx, s.ID, n.ID))
	assert.ErrorIs(t, st.DeleteNote(ctx, s.ID, n.ID), ErrNotFound)
}

func TestDeleteStudentLeavesSubcollections(t *testing.T) {
	st := NewInMemoryStore()
	ctx := context.Background()
	s, err := st.CreateStudent(ctx, models.Student{Name: "Ada"})
	require.NoError(t, err)
	_, err = st.AddNote(ctx, s.ID, models.Note{Content: "orphaned"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteStudent(ctx, s.ID))

	// Delete is shallow. Subcollection documents survive the parent.
	notes, err := st.ListNotes(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}
