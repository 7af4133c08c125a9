package domain

import (
	"errors"
)

const (
	CollectionFarmers = "farmers"
	SubcollectionScan = "scans"

	DefaultLanguage = "English"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "invalid request body"

	ErrStorageFailure = errors.New("storage operation failed")
)

// Document is a schemaless record as stored in a collection.
type Document map[string]interface{}
