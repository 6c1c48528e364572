package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"uniguide/internal/college/models"
)

const collegesCollection = "colleges"

// FirestoreStore is the production Store backed by the managed document
// database.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) ListColleges(ctx context.Context, limit int) ([]models.College, error) {
	q := s.client.Collection(collegesCollection).Query
	if limit > 0 {
		q = q.Limit(limit)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []models.College
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list colleges: %w", err)
		}
		out = append(out, models.Normalize(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

func (s *FirestoreStore) GetCollege(ctx context.Context, id string) (models.College, error) {
	doc, err := s.client.Collection(collegesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.College{}, ErrNotFound
	}
	if err != nil {
		return models.College{}, fmt.Errorf("get college %s: %w", id, err)
	}
	return models.Normalize(doc.Ref.ID, doc.Data()), nil
}
