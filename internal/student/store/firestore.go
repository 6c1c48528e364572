package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"uniguide/internal/student/models"
)

const (
	studentsCollection = "students"

	collegesSub       = "colleges"
	essaysSub         = "essays"
	activitiesSub     = "activities"
	interactionsSub   = "interactions"
	communicationsSub = "communications"
	notesSub          = "notes"
)

// FirestoreStore is the production Store backed by the managed document
// database. Documents are read as raw maps and normalized into typed records
// at this boundary.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) students() *firestore.CollectionRef {
	return s.client.Collection(studentsCollection)
}

func (s *FirestoreStore) sub(studentID, name string) *firestore.CollectionRef {
	return s.students().Doc(studentID).Collection(name)
}

func (s *FirestoreStore) ListStudents(ctx context.Context, limit int) ([]models.Student, error) {
	q := s.students().Query
	if limit > 0 {
		q = q.Limit(limit)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []models.Student
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list students: %w", err)
		}
		out = append(out, models.Normalize(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

func (s *FirestoreStore) GetStudent(ctx context.Context, id string) (models.Student, error) {
	doc, err := s.students().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, fmt.Errorf("get student %s: %w", id, err)
	}
	return models.Normalize(doc.Ref.ID, doc.Data()), nil
}

func (s *FirestoreStore) CreateStudent(ctx context.Context, st models.Student) (models.Student, error) {
	ref, _, err := s.students().Add(ctx, st)
	if err != nil {
		return models.Student{}, fmt.Errorf("create student: %w", err)
	}
	st.ID = ref.ID
	return st, nil
}

func (s *FirestoreStore) UpdateStudent(ctx context.Context, st models.Student) error {
	if _, err := s.GetStudent(ctx, st.ID); err != nil {
		return err
	}
	if _, err := s.students().Doc(st.ID).Set(ctx, st); err != nil {
		return fmt.Errorf("update student %s: %w", st.ID, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteStudent(ctx context.Context, id string) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}
	// Only the student document is removed; subcollections stay behind.
	if _, err := s.students().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete student %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) ListColleges(ctx context.Context, studentID string) ([]models.CollegeInterest, error) {
	var out []models.CollegeInterest
	err := s.eachDoc(ctx, studentID, collegesSub, func(id string, data map[string]any) {
		out = append(out, models.NormalizeCollegeInterest(id, data))
	})
	return out, err
}

func (s *FirestoreStore) ListEssays(ctx context.Context, studentID string) ([]models.Essay, error) {
	var out []models.Essay
	err := s.eachDoc(ctx, studentID, essaysSub, func(id string, data map[string]any) {
		out = append(out, models.NormalizeEssay(id, data))
	})
	return out, err
}

func (s *FirestoreStore) ListActivities(ctx context.Context, studentID string) ([]models.Activity, error) {
	var out []models.Activity
	err := s.eachDoc(ctx, studentID, activitiesSub, func(id string, data map[string]any) {
		out = append(out, models.NormalizeActivity(id, data))
	})
	return out, err
}

func (s *FirestoreStore) ListInteractions(ctx context.Context, studentID string) ([]models.Interaction, error) {
	var out []models.Interaction
	err := s.eachDoc(ctx, studentID, interactionsSub, func(id string, data map[string]any) {
		out = append(out, models.NormalizeInteraction(id, data))
	})
	return out, err
}

func (s *FirestoreStore) ListCommunications(ctx context.Context, studentID string) ([]models.Communication, error) {
	var out []models.Communication
	err := s.eachDoc(ctx, studentID, communicationsSub, func(id string, data map[string]any) {
		out = append(out, models.NormalizeCommunication(id, data))
	})
	return out, err
}

func (s *FirestoreStore) ListNotes(ctx context.Context, studentID string) ([]models.Note, error) {
	var out []models.Note
	err := s.eachDoc(ctx, studentID, notesSub, func(id string, data map[string]any) {
		out = append(out, models.NormalizeNote(id, data))
	})
	return out, err
}

func (s *FirestoreStore) AddNote(ctx context.Context, studentID string, n models.Note) (models.Note, error) {
	ref, _, err := s.sub(studentID, notesSub).Add(ctx, n)
	if err != nil {
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}
	n.ID = ref.ID
	return n, nil
}

func (s *FirestoreStore) UpdateNote(ctx context.Context, studentID string, n models.Note) error {
	return s.updateSubDoc(ctx, studentID, notesSub, n.ID, n)
}

func (s *FirestoreStore) DeleteNote(ctx context.Context, studentID, noteID string) error {
	return s.deleteSubDoc(ctx, studentID, notesSub, noteID)
}

func (s *FirestoreStore) AddCommunication(ctx context.Context, studentID string, c models.Communication) (models.Communication, error) {
	ref, _, err := s.sub(studentID, communicationsSub).Add(ctx, c)
	if err != nil {
		return models.Communication{}, fmt.Errorf("add communication: %w", err)
	}
	c.ID = ref.ID
	return c, nil
}

func (s *FirestoreStore) UpdateCommunication(ctx context.Context, studentID string, c models.Communication) error {
	return s.updateSubDoc(ctx, studentID, communicationsSub, c.ID, c)
}

func (s *FirestoreStore) DeleteCommunication(ctx context.Context, studentID, commID string) error {
	return s.deleteSubDoc(ctx, studentID, communicationsSub, commID)
}

func (s *FirestoreStore) AddInteraction(ctx context.Context, studentID string, i models.Interaction) (models.Interaction, error) {
	ref, _, err := s.sub(studentID, interactionsSub).Add(ctx, i)
	if err != nil {
		return models.Interaction{}, fmt.Errorf("add interaction: %w", err)
	}
	i.ID = ref.ID
	return i, nil
}

func (s *FirestoreStore) eachDoc(ctx context.Context, studentID, sub string, fn func(id string, data map[string]any)) error {
	iter := s.sub(studentID, sub).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("list %s for student %s: %w", sub, studentID, err)
		}
		fn(doc.Ref.ID, doc.Data())
	}
}

func (s *FirestoreStore) updateSubDoc(ctx context.Context, studentID, sub, id string, data any) error {
	ref := s.sub(studentID, sub).Doc(id)
	if _, err := ref.Get(ctx); status.Code(err) == codes.NotFound {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("get %s/%s: %w", sub, id, err)
	}
	if _, err := ref.Set(ctx, data); err != nil {
		return fmt.Errorf("update %s/%s: %w", sub, id, err)
	}
	return nil
}

func (s *FirestoreStore) deleteSubDoc(ctx context.Context, studentID, sub, id string) error {
	ref := s.sub(studentID, sub).Doc(id)
	if _, err := ref.Get(ctx); status.Code(err) == codes.NotFound {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("get %s/%s: %w", sub, id, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", sub, id, err)
	}
	return nil
}
