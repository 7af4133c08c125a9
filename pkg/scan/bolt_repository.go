package scan

import (
	"Agri-Assist-Backend/domain"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

type boltRepository struct {
	db *bolt.DB
}

// NewBoltRepository keeps every collection path in its own bucket, one JSON
// value per document id. Documents are listed in key order.
func NewBoltRepository(db *bolt.DB) ScanRepository {
	return &boltRepository{db: db}
}

func (r *boltRepository) AppendToSubcollection(_ context.Context, collection, docID, subcollection string, data domain.Document) (string, error) {
	enc, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.New().String()
	err = r.db.Update(func(tx *bolt.Tx) error {
		parent, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		if parent.Get([]byte(docID)) == nil {
			if err := parent.Put([]byte(docID), []byte("{}")); err != nil {
				return err
			}
		}

		child, err := tx.CreateBucketIfNotExists([]byte(SubcollectionPath(collection, docID, subcollection)))
		if err != nil {
			return err
		}
		return child.Put([]byte(id), enc)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *boltRepository) ListTopLevel(_ context.Context, collection string) ([]domain.Document, error) {
	var ids []string
	var fields []map[string]interface{}

	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			data := map[string]interface{}{}
			if len(v) > 0 {
				if err := json.Unmarshal(v, &data); err != nil {
					return fmt.Errorf("decode document %s: %w", k, err)
				}
			}
			ids = append(ids, string(k))
			fields = append(fields, data)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return toDocuments(len(ids), func(i int) (string, map[string]interface{}) {
		return ids[i], fields[i]
	}), nil
}
