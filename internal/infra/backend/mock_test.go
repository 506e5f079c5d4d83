package backend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

func TestMockReadsDegradeToEmpty(t *testing.T) {
	m := NewMock()

	dossiers, err := m.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch must not fail: %v", err)
	}
	if dossiers == nil || len(dossiers) != 0 {
		t.Fatalf("expected empty collection, got %+v", dossiers)
	}
	if m.PublicURL("any-key") != "" {
		t.Fatalf("public url must be empty")
	}
}

func TestMockMutationsReturnNotConfigured(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	errs := []error{
		m.Insert(ctx, domain.DossierInput{}),
		m.Update(ctx, "id", domain.DossierInput{}),
		m.Delete(ctx, "id"),
		m.Upload(ctx, "key", "image/png", strings.NewReader("x")),
	}

	for i, err := range errs {
		if !errors.Is(err, domain.ErrBackendNotConfigured) {
			t.Fatalf("operation %d: expected not-configured error, got %v", i, err)
		}
	}
}
