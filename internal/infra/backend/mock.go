package backend

import (
	"context"
	"io"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

// Mock implements the full backend surface without any remote service.
// Reads succeed with empty results so callers fall through to the
// bundled fallback dataset; mutations fail with a deterministic
// not-configured error. Every method is safe with any arguments, so
// the rest of the system carries exactly one code path regardless of
// configuration state.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) FetchAll(ctx context.Context) ([]domain.Dossier, error) {
	return []domain.Dossier{}, nil
}

func (m *Mock) Insert(ctx context.Context, input domain.DossierInput) error {
	return domain.ErrBackendNotConfigured
}

func (m *Mock) Update(ctx context.Context, id string, input domain.DossierInput) error {
	return domain.ErrBackendNotConfigured
}

func (m *Mock) Delete(ctx context.Context, id string) error {
	return domain.ErrBackendNotConfigured
}

func (m *Mock) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	return domain.ErrBackendNotConfigured
}

func (m *Mock) PublicURL(key string) string {
	return ""
}
