package scan

import (
	"Agri-Assist-Backend/domain"
	"context"

	"cloud.google.com/go/firestore"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository stores documents natively in Firestore. Parent
// documents are not created implicitly.
func NewFirestoreRepository(client *firestore.Client) ScanRepository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) AppendToSubcollection(ctx context.Context, collection, docID, subcollection string, data domain.Document) (string, error) {
	ref, _, err := r.client.Collection(collection).Doc(docID).Collection(subcollection).Add(ctx, map[string]interface{}(data))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *firestoreRepository) ListTopLevel(ctx context.Context, collection string) ([]domain.Document, error) {
	snapshots, err := r.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return toDocuments(len(snapshots), func(i int) (string, map[string]interface{}) {
		return snapshots[i].Ref.ID, snapshots[i].Data()
	}), nil
}
