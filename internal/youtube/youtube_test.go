package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), "test-key", option.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	return client
}

func TestMetadata(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "abc123" {
			t.Errorf("id param = %q, want abc123", got)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"items": [{
				"id": "abc123",
				"snippet": {
					"title": "Some Video",
					"channelTitle": "Some Channel",
					"publishedAt": "2024-05-01T10:30:00Z"
				},
				"contentDetails": {"duration": "PT1H2M3S"},
				"statistics": {"viewCount": "1234567"}
			}]
		}`)
	})

	md, err := client.Metadata(context.Background(), "abc123")
	if err != nil {
		t.Fatal(err)
	}

	if md.ID != "abc123" {
		t.Errorf("ID = %q", md.ID)
	}

	if md.Title != "Some Video" {
		t.Errorf("Title = %q", md.Title)
	}

	if md.Channel != "Some Channel" {
		t.Errorf("Channel = %q", md.Channel)
	}

	if md.PostDate != "2024-05-01" {
		t.Errorf("PostDate = %q, want date portion only", md.PostDate)
	}

	if md.ViewCount != 1234567 {
		t.Errorf("ViewCount = %d", md.ViewCount)
	}

	if md.DurationSeconds != 3723 {
		t.Errorf("DurationSeconds = %d, want 3723", md.DurationSeconds)
	}
}

func TestMetadataUnknownID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items": []}`)
	})

	if _, err := client.Metadata(context.Background(), "nope"); err == nil {
		t.Fatal("expected an error for an id with no items")
	}
}

func TestMetadataAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": {"code": 403, "message": "quotaExceeded"}}`)
	})

	if _, err := client.Metadata(context.Background(), "abc123"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty api key")
	}
}
