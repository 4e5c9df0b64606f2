package recordstore

import (
	"encoding/json"
	"time"
)

// Document is one stored record. Data carries the collection-specific
// payload; callers decode it into their own types.
type Document struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	Key        string          `json:"key"`
	Data       json.RawMessage `json:"data"`
	CreateTime string          `json:"createTime"`
	UpdateTime string          `json:"updateTime"`
}

// Query filters a collection listing. Zero-valued fields are omitted from
// the request.
type Query struct {
	UserID    string
	Category  string
	Completed *bool
	From      time.Time
	To        time.Time
	Limit     int
	SortDesc  bool // sort by creation time, newest first
}

// PutRequest is the body for upserting a document under a key.
type PutRequest struct {
	Key  string `json:"key"`
	Data any    `json:"data"`
}
