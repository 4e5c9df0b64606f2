package recordstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestListDocuments(t *testing.T) {
	t.Run("builds the query and decodes documents", func(t *testing.T) {
		var gotPath, gotQuery, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{
				"documents": []map[string]any{
					{"id": "d1", "collection": "tasks", "data": map[string]any{"title": "a"}},
					{"id": "d2", "collection": "tasks", "data": map[string]any{"title": "b"}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret")
		completed := true
		docs, err := client.ListDocuments(context.Background(), CollectionTasks, Query{
			UserID:    "u1",
			Category:  "coding",
			Completed: &completed,
			Limit:     10,
			SortDesc:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 || docs[0].ID != "d1" {
			t.Errorf("unexpected documents: %+v", docs)
		}
		if gotPath != "/api/v1/collections/tasks/documents" {
			t.Errorf("unexpected path %q", gotPath)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("unexpected auth header %q", gotAuth)
		}
		for _, want := range []string{"userId=u1", "category=coding", "completed=true", "limit=10", "sort=-createTime"} {
			if !strings.Contains(gotQuery, want) {
				t.Errorf("query %q missing %q", gotQuery, want)
			}
		}
	})

	t.Run("non-200 becomes an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret")
		if _, err := client.ListDocuments(context.Background(), CollectionTasks, Query{}); err == nil {
			t.Fatal("expected error for 403 response")
		}
	})
}

func TestPutDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		var req PutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad body: %v", err)
		}
		if req.Key != "u1:current" {
			t.Errorf("unexpected key %q", req.Key)
		}
		json.NewEncoder(w).Encode(Document{ID: "doc-9", Collection: CollectionAnalytics, Key: req.Key})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	doc, err := client.PutDocument(context.Background(), CollectionAnalytics, PutRequest{
		Key:  "u1:current",
		Data: map[string]any{"score": 0.9, "at": time.Now().Format(time.RFC3339)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID != "doc-9" {
		t.Errorf("unexpected document: %+v", doc)
	}
}
