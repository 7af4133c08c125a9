package scan

import (
	"Agri-Assist-Backend/domain"
	"Agri-Assist-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// ScanRepository is the document store as seen by the scan service.
	ScanRepository interface {
		// AppendToSubcollection stores data as a new auto-keyed document under
		// collection/docID/subcollection and returns the generated id.
		AppendToSubcollection(ctx context.Context, collection, docID, subcollection string, data domain.Document) (string, error)
		// ListTopLevel returns every document of collection, each carrying its id.
		ListTopLevel(ctx context.Context, collection string) ([]domain.Document, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

// SubcollectionPath is the collection path of a child collection.
func SubcollectionPath(collection, docID, subcollection string) string {
	return collection + "/" + docID + "/" + subcollection
}

// AppendToSubcollection also creates an empty parent document when none
// exists yet, so the farmer shows up in ListTopLevel.
func (r *scanRepository) AppendToSubcollection(ctx context.Context, collection, docID, subcollection string, data domain.Document) (string, error) {
	parent := &entities.Document{
		Collection: collection,
		ID:         docID,
		Data:       map[string]interface{}{},
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(parent).Error; err != nil {
		return "", err
	}

	doc := &entities.Document{
		Collection: SubcollectionPath(collection, docID, subcollection),
		ID:         uuid.New().String(),
		Data:       data,
	}
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return "", err
	}
	return doc.ID, nil
}

func (r *scanRepository) ListTopLevel(ctx context.Context, collection string) ([]domain.Document, error) {
	var docs []entities.Document
	if err := r.db.WithContext(ctx).Where("collection = ?", collection).Find(&docs).Error; err != nil {
		return nil, err
	}
	return toDocuments(len(docs), func(i int) (string, map[string]interface{}) {
		return docs[i].ID, docs[i].Data
	}), nil
}

// toDocuments copies stored fields over the id, so a stored "id" field wins.
func toDocuments(n int, at func(i int) (string, map[string]interface{})) []domain.Document {
	out := make([]domain.Document, 0, n)
	for i := 0; i < n; i++ {
		id, data := at(i)
		doc := domain.Document{"id": id}
		for k, v := range data {
			doc[k] = v
		}
		out = append(out, doc)
	}
	return out
}
