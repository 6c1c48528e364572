package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"uniguide/internal/student/models"
)

// InMemoryStore keeps the student collection in process memory. It backs
// unit tests and local development; insertion order is preserved so list
// results are deterministic.
type InMemoryStore struct {
	mu             sync.RWMutex
	order          []string
	students       map[string]models.Student
	colleges       map[string][]models.CollegeInterest
	essays         map[string][]models.Essay
	activities     map[string][]models.Activity
	interactions   map[string][]models.Interaction
	communications map[string][]models.Communication
	notes          map[string][]models.Note
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		students:       make(map[string]models.Student),
		colleges:       make(map[string][]models.CollegeInterest),
		essays:         make(map[string][]models.Essay),
		activities:     make(map[string][]models.Activity),
		interactions:   make(map[string][]models.Interaction),
		communications: make(map[string][]models.Communication),
		notes:          make(map[string][]models.Note),
	}
}

func (s *InMemoryStore) ListStudents(_ context.Context, limit int) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.order))
	for _, id := range s.order {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.students[id])
	}
	return out, nil
}

func (s *InMemoryStore) GetStudent(_ context.Context, id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.students[id]; ok {
		return st, nil
	}
	return models.Student{}, ErrNotFound
}

func (s *InMemoryStore) CreateStudent(_ context.Context, st models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if _, exists := s.students[st.ID]; !exists {
		s.order = append(s.order, st.ID)
	}
	s.students[st.ID] = st
	return st, nil
}

func (s *InMemoryStore) UpdateStudent(_ context.Context, st models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[st.ID]; !ok {
		return ErrNotFound
	}
	s.students[st.ID] = st
	return nil
}

func (s *InMemoryStore) DeleteStudent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[id]; !ok {
		return ErrNotFound
	}
	delete(s.students, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	// Subcollections are intentionally left behind; deletes do not cascade.
	return nil
}

func (s *InMemoryStore) ListColleges(_ context.Context, studentID string) ([]models.CollegeInterest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CollegeInterest(nil), s.colleges[studentID]...), nil
}

func (s *InMemoryStore) ListEssays(_ context.Context, studentID string) ([]models.Essay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Essay(nil), s.essays[studentID]...), nil
}

func (s *InMemoryStore) ListActivities(_ context.Context, studentID string) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Activity(nil), s.activities[studentID]...), nil
}

func (s *InMemoryStore) ListInteractions(_ context.Context, studentID string) ([]models.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Interaction(nil), s.interactions[studentID]...), nil
}

func (s *InMemoryStore) ListCommunications(_ context.Context, studentID string) ([]models.Communication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Communication(nil), s.communications[studentID]...), nil
}

func (s *InMemoryStore) ListNotes(_ context.Context, studentID string) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Note(nil), s.notes[studentID]...), nil
}

func (s *InMemoryStore) AddNote(_ context.Context, studentID string, n models.Note) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	s.notes[studentID] = append(s.notes[studentID], n)
	return n, nil
}

func (s *InMemoryStore) UpdateNote(_ context.Context, studentID string, n models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.notes[studentID] {
		if existing.ID == n.ID {
			s.notes[studentID][i] = n
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) DeleteNote(_ context.Context, studentID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.notes[studentID]
	for i, existing := range notes {
		if existing.ID == noteID {
			s.notes[studentID] = append(notes[:i], notes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) AddCommunication(_ context.Context, studentID string, c models.Communication) (models.Communication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.communications[studentID] = append(s.communications[studentID], c)
	return c, nil
}

func (s *InMemoryStore) UpdateCommunication(_ context.Context, studentID string, c models.Communication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.communications[studentID] {
		if existing.ID == c.ID {
			s.communications[studentID][i] = c
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) DeleteCommunication(_ context.Context, studentID, commID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comms := s.communications[studentID]
	for i, existing := range comms {
		if existing.ID == commID {
			s.communications[studentID] = append(comms[:i], comms[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) AddInteraction(_ context.Context, studentID string, i models.Interaction) (models.Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	s.interactions[studentID] = append(s.interactions[studentID], i)
	return i, nil
}

// Seed helpers used by tests and local fixtures.

func (s *InMemoryStore) SeedCollege(studentID string, c models.CollegeInterest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.colleges[studentID] = append(s.colleges[studentID], c)
}

func (s *InMemoryStore) SeedEssay(studentID string, e models.Essay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.essays[studentID] = append(s.essays[studentID], e)
}

func (s *InMemoryStore) SeedActivity(studentID string, a models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.activities[studentID] = append(s.activities[studentID], a)
}
