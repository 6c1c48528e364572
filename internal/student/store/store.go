package store

import (
	"context"

	"uniguide/internal/student/models"
	dErrors "uniguide/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific 404s consistent across the memory and
// Firestore implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

// Store is the student slice of the record store. Implementations must not
// share mutable state between requests; each call stands alone.
type Store interface {
	// ListStudents returns at most limit student documents. The bound is
	// applied before any filtering happens upstream.
	ListStudents(ctx context.Context, limit int) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (models.Student, error)
	CreateStudent(ctx context.Context, s models.Student) (models.Student, error)
	UpdateStudent(ctx context.Context, s models.Student) error
	// DeleteStudent removes the student document only. Subcollection
	// documents are orphaned, not cascaded.
	DeleteStudent(ctx context.Context, id string) error

	ListColleges(ctx context.Context, studentID string) ([]models.CollegeInterest, error)
	ListEssays(ctx context.Context, studentID string) ([]models.Essay, error)
	ListActivities(ctx context.Context, studentID string) ([]models.Activity, error)
	ListInteractions(ctx context.Context, studentID string) ([]models.Interaction, error)
	ListCommunications(ctx context.Context, studentID string) ([]models.Communication, error)
	ListNotes(ctx context.Context, studentID string) ([]models.Note, error)

	AddNote(ctx context.Context, studentID string, n models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, studentID string, n models.Note) error
	DeleteNote(ctx context.Context, studentID, noteID string) error

	AddCommunication(ctx context.Context, studentID string, c models.Communication) (models.Communication, error)
	UpdateCommunication(ctx context.Context, studentID string, c models.Communication) error
	DeleteCommunication(ctx context.Context, studentID, commID string) error

	// AddInteraction appends to the timeline. There is deliberately no
	// update or delete: the log is append-only.
	AddInteraction(ctx context.Context, studentID string, i models.Interaction) (models.Interaction, error)
}
