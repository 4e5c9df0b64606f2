package recordstore

import "context"

// IRecordStore is the document-store contract consumed by repositories.
type IRecordStore interface {
	// ListDocuments lists documents in a collection matching the query.
	ListDocuments(ctx context.Context, collection string, q Query) ([]Document, error)

	// PutDocument upserts a document under a stable key within a collection.
	PutDocument(ctx context.Context, collection string, req PutRequest) (*Document, error)
}
