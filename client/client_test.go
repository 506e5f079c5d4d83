package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

func TestIsConfigured(t *testing.T) {
	cases := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"empty url", "", "key", false},
		{"wrong scheme", "ftp://db.example", "key", false},
		{"placeholder url", "https://xyzcompany.supabase.co", "key", false},
		{"missing key", "https://proj.supabase.co", "", false},
		{"placeholder key", "https://proj.supabase.co", "your-anon-key", false},
		{"configured", "https://proj.supabase.co", "real-key", true},
	}

	for _, tc := range cases {
		if got := IsConfigured(tc.url, tc.key); got != tc.want {
			t.Fatalf("%s: expected %v got %v", tc.name, tc.want, got)
		}
	}
}

func TestSelectDossiers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/dossiers" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon" {
			t.Errorf("expected apikey header")
		}
		json.NewEncoder(w).Encode([]domain.Dossier{
			{ID: "d1", FullName: "Amina Yusuf", Category: "Politics"},
		})
	}))
	defer server.Close()

	c := New(server.URL, "anon")
	dossiers, err := c.SelectDossiers(context.Background())
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(dossiers) != 1 || dossiers[0].FullName != "Amina Yusuf" {
		t.Fatalf("unexpected rows: %+v", dossiers)
	}
}

func TestInsertDossierSurfacesRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "duplicate key value"})
	}))
	defer server.Close()

	c := New(server.URL, "anon")
	err := c.InsertDossier(context.Background(), domain.DossierInput{FullName: "X", Category: "Politics"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var berr domain.BackendError
	if !errors.As(err, &berr) {
		t.Fatalf("expected BackendError, got %T", err)
	}
	if berr.Message != "duplicate key value" {
		t.Fatalf("expected verbatim remote message, got %q", berr.Message)
	}
}

func TestDeleteDossierTargetsRow(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL, "anon")
	if err := c.DeleteDossier(context.Background(), "d1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if gotQuery != "id=eq.d1" {
		t.Fatalf("expected id filter, got %q", gotQuery)
	}
}

func TestPublicObjectURL(t *testing.T) {
	c := New("https://proj.supabase.co/", "anon")
	url := c.PublicObjectURL("dossier-images", "abc.png")
	want := "https://proj.supabase.co/storage/v1/object/public/dossier-images/abc.png"
	if url != want {
		t.Fatalf("expected %q got %q", want, url)
	}
}
