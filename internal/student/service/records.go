package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"uniguide/internal/student/models"
	dErrors "uniguide/pkg/domain-errors"
)

// Get returns a student with all six subcollections loaded. The subcollection
// reads are issued concurrently once the parent document is known to exist.
func (s *Service) Get(ctx context.Context, id string) (models.Detail, error) {
	st, err := s.store.GetStudent(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return models.Detail{}, dErrors.New(dErrors.CodeNotFound, "student not found")
		}
		return models.Detail{}, dErrors.Wrap(dErrors.CodeInternal, "failed to fetch student", err)
	}

	detail := models.Detail{
		Student:        st,
		Colleges:       []models.CollegeInterest{},
		Essays:         []models.Essay{},
		Activities:     []models.Activity{},
		Interactions:   []models.Interaction{},
		Communications: []models.Communication{},
		Notes:          []models.Note{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.store.ListColleges(gctx, id)
		if err == nil && items != nil {
			detail.Colleges = items
		}
		return err
	})
	g.Go(func() error {
		items, err := s.store.ListEssays(gctx, id)
		if err == nil && items != nil {
			detail.Essays = items
		}
		return err
	})
	g.Go(func() error {
		items, err := s.store.ListActivities(gctx, id)
		if err == nil && items != nil {
			detail.Activities = items
		}
		return err
	})
	g.Go(func() error {
		items, err := s.store.ListInteractions(gctx, id)
		if err == nil && items != nil {
			detail.Interactions = items
		}
		return err
	})
	g.Go(func() error {
		items, err := s.store.ListCommunications(gctx, id)
		if err == nil && items != nil {
			detail.Communications = items
		}
		return err
	})
	g.Go(func() error {
		items, err := s.store.ListNotes(gctx, id)
		if err == nil && items != nil {
			detail.Notes = items
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Detail{}, dErrors.Wrap(dErrors.CodeInternal, "failed to fetch student", err)
	}
	return detail, nil
}

// Create stores a new student. Missing status defaults to the canonical
// starting label; lastActive defaults to now.
func (s *Service) Create(ctx context.Context, st models.Student) (models.Student, error) {
	if st.Status == "" {
		st.Status = models.StatusExploring
	}
	if st.LastActive == nil {
		now := s.now()
		st.LastActive = &now
	}
	created, err := s.store.CreateStudent(ctx, st)
	if err != nil {
		return models.Student{}, dErrors.Wrap(dErrors.CodeInternal, "failed to create student", err)
	}
	return created, nil
}

// Update replaces a student document in place.
func (s *Service) Update(ctx context.Context, st models.Student) error {
	if err := s.store.UpdateStudent(ctx, st); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "student not found")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to update student", err)
	}
	return nil
}

// Delete removes a student document. Subcollections are not cascaded.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "student not found")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete student", err)
	}
	return nil
}

// AddNote stores an advisor note and appends a note_added event to the
// student's timeline. A failed timeline append is logged and swallowed; the
// note itself is the source of truth.
func (s *Service) AddNote(ctx context.Context, studentID string, n models.Note) (models.Note, error) {
	if n.Date == nil {
		now := s.now()
		n.Date = &now
	}
	created, err := s.store.AddNote(ctx, studentID, n)
	if err != nil {
		return models.Note{}, dErrors.Wrap(dErrors.CodeInternal, "failed to add note", err)
	}
	s.logInteraction(ctx, studentID, "note_added", "Note added by "+n.Author)
	return created, nil
}

func (s *Service) UpdateNote(ctx context.Context, studentID string, n models.Note) error {
	if err := s.store.UpdateNote(ctx, studentID, n); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "note not found")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to update note", err)
	}
	return nil
}

func (s *Service) DeleteNote(ctx context.Context, studentID, noteID string) error {
	if err := s.store.DeleteNote(ctx, studentID, noteID); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "note not found")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete note", err)
	}
	return nil
}

// AddCommunication logs an outreach touchpoint.
func (s *Service) AddCommunication(ctx context.Context, studentID string, c models.Communication) (models.Communication, error) {
	if c.Date == nil {
		now := s.now()
		c.Date = &now
	}
	created, err := s.store.AddCommunication(ctx, studentID, c)
	if err != nil {
		return models.Communication{}, dErrors.Wrap(dErrors.CodeInternal, "failed to add communication", err)
	}
	return created, nil
}

func (s *Service) UpdateCommunication(ctx context.Context, studentID string, c models.Communication) error {
	if err := s.store.UpdateCommunication(ctx, studentID, c); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "communication not found")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to update communication", err)
	}
	return nil
}

func (s *Service) DeleteCommunication(ctx context.Context, studentID, commID string) error {
	if err := s.store.DeleteCommunication(ctx, studentID, commID); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "communication not found")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete communication", err)
	}
	return nil
}

// AddInteraction appends to the timeline log.
func (s *Service) AddInteraction(ctx context.Context, studentID string, i models.Interaction) (models.Interaction, error) {
	if i.Date == nil {
		now := s.now()
		i.Date = &now
	}
	created, err := s.store.AddInteraction(ctx, studentID, i)
	if err != nil {
		return models.Interaction{}, dErrors.Wrap(dErrors.CodeInternal, "failed to add interaction", err)
	}
	return created, nil
}

func (s *Service) logInteraction(ctx context.Context, studentID, kind, detail string) {
	now := s.now()
	_, err := s.store.AddInteraction(ctx, studentID, models.Interaction{
		Type:   kind,
		Detail: detail,
		Date:   &now,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "timeline append failed",
			"student_id", studentID,
			"type", kind,
			"error", err,
		)
	}
}
