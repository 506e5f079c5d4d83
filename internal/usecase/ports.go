package usecase

import (
	"context"
	"io"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

// DossierBackend defines the CRUD surface of a dossier store. Exactly
// one implementation is selected at startup (live or mock); callers
// never branch on configuration state.
type DossierBackend interface {
	FetchAll(ctx context.Context) ([]domain.Dossier, error)
	Insert(ctx context.Context, input domain.DossierInput) error
	Update(ctx context.Context, id string, input domain.DossierInput) error
	Delete(ctx context.Context, id string) error
}

// ImageStore defines the object-storage surface for profile images.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	PublicURL(key string) string
}

// Summarizer resolves a free-text query to a short localized summary.
// Implementations map their own failures to user-safe text and only
// return an error when they cannot produce any message at all.
type Summarizer interface {
	Summarize(ctx context.Context, query string, lang domain.Language) (string, error)
}
