package entities

// Document is one record of a document collection. Collection holds the full
// collection path, so the scans of farmer "f1" live under "farmers/f1/scans".
type Document struct {
	Collection string                 `gorm:"type:varchar(512);primaryKey" json:"collection"`
	ID         string                 `gorm:"type:varchar(256);primaryKey" json:"id"`
	Data       map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"data"`

	Timestamp
}

func (Document) TableName() string {
	return "documents"
}
