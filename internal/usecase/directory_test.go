package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

type mockBackend struct {
	records    []domain.Dossier
	fetchErr   error
	fetchCalls int
	inserted   *domain.DossierInput
	updatedID  string
	deletedID  string
	mutateErr  error
}

func (m *mockBackend) FetchAll(ctx context.Context) ([]domain.Dossier, error) {
	m.fetchCalls++
	return m.records, m.fetchErr
}

func (m *mockBackend) Insert(ctx context.Context, input domain.DossierInput) error {
	m.inserted = &input
	return m.mutateErr
}

func (m *mockBackend) Update(ctx context.Context, id string, input domain.DossierInput) error {
	m.updatedID = id
	return m.mutateErr
}

func (m *mockBackend) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.mutateErr
}

type mockImages struct {
	key       string
	uploadErr error
}

func (m *mockImages) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	m.key = key
	return m.uploadErr
}

func (m *mockImages) PublicURL(key string) string {
	return "https://img.example/" + key
}

func TestFetchAllNeverEmpty(t *testing.T) {
	cases := []struct {
		name    string
		backend *mockBackend
	}{
		{"backend error", &mockBackend{fetchErr: domain.BackendError{Message: "boom"}}},
		{"zero rows", &mockBackend{}},
		{"all rows invalid", &mockBackend{records: []domain.Dossier{{ID: "x"}}}},
	}

	for _, tc := range cases {
		uc := NewDirectoryUsecase(tc.backend, &mockImages{})
		profiles := uc.FetchAll(context.Background(), domain.LangEnglish)
		if len(profiles) == 0 {
			t.Fatalf("%s: expected fallback dataset, got empty", tc.name)
		}
	}
}

func TestFetchAllNormalizesAndSkipsInvalid(t *testing.T) {
	backend := &mockBackend{records: []domain.Dossier{
		sampleDossier(),
		{ID: "broken"}, // missing name and category
	}}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	profiles := uc.FetchAll(context.Background(), domain.LangSomali)
	if len(profiles) != 1 {
		t.Fatalf("expected invalid record skipped, got %d profiles", len(profiles))
	}
	if profiles[0].Name != "Amina Yusuf" {
		t.Fatalf("unexpected profile %+v", profiles[0])
	}
	if profiles[0].CategoryLabel != "Siyaasadda" {
		t.Fatalf("expected somali category label, got %q", profiles[0].CategoryLabel)
	}
}

func TestFetchAllCachesPerLanguage(t *testing.T) {
	backend := &mockBackend{records: []domain.Dossier{sampleDossier()}}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	uc.FetchAll(context.Background(), domain.LangEnglish)
	uc.FetchAll(context.Background(), domain.LangEnglish)
	if backend.fetchCalls != 1 {
		t.Fatalf("expected single backend fetch, got %d", backend.fetchCalls)
	}

	uc.FetchAll(context.Background(), domain.LangArabic)
	if backend.fetchCalls != 2 {
		t.Fatalf("expected per-language fetch, got %d", backend.fetchCalls)
	}
}

func TestSaveInsertsWithoutID(t *testing.T) {
	backend := &mockBackend{records: []domain.Dossier{sampleDossier()}}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	form := domain.DossierEdit{FullName: "New Entry", Category: "Business"}
	if err := uc.Save(context.Background(), form, domain.LangEnglish); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if backend.inserted == nil {
		t.Fatalf("expected insert to be called")
	}
	if backend.fetchCalls == 0 {
		t.Fatalf("expected cache refresh after save")
	}
}

func TestSaveUpdatesWithID(t *testing.T) {
	backend := &mockBackend{}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	form := domain.DossierEdit{ID: "d1", FullName: "Amina Yusuf", Category: "Politics"}
	if err := uc.Save(context.Background(), form, domain.LangEnglish); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if backend.updatedID != "d1" {
		t.Fatalf("expected update keyed by id, got %q", backend.updatedID)
	}
}

func TestSaveSurfacesBackendErrorVerbatim(t *testing.T) {
	backend := &mockBackend{mutateErr: domain.BackendError{Message: "duplicate key value"}}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	err := uc.Save(context.Background(), domain.DossierEdit{FullName: "X", Category: "Politics"}, domain.LangEnglish)
	if err == nil || err.Error() != "duplicate key value" {
		t.Fatalf("expected verbatim backend message, got %v", err)
	}
}

func TestSaveRejectsInvalidFormWithoutWriting(t *testing.T) {
	backend := &mockBackend{}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	err := uc.Save(context.Background(), domain.DossierEdit{Role: "orphan"}, domain.LangEnglish)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if backend.inserted != nil || backend.updatedID != "" {
		t.Fatalf("no write may be attempted for an invalid form")
	}
}

func TestDeleteRefreshesCache(t *testing.T) {
	backend := &mockBackend{records: []domain.Dossier{sampleDossier()}}
	uc := NewDirectoryUsecase(backend, &mockImages{})

	uc.FetchAll(context.Background(), domain.LangEnglish)
	calls := backend.fetchCalls

	if err := uc.Delete(context.Background(), "d1", domain.LangEnglish); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if backend.deletedID != "d1" {
		t.Fatalf("expected delete by id, got %q", backend.deletedID)
	}
	if backend.fetchCalls <= calls {
		t.Fatalf("expected re-fetch after delete")
	}
}

func TestUploadImagePreservesExtension(t *testing.T) {
	images := &mockImages{}
	uc := NewDirectoryUsecase(&mockBackend{}, images)

	url, err := uc.UploadImage(context.Background(), "portrait.png", "image/png", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasSuffix(images.key, ".png") {
		t.Fatalf("expected extension preserved, got key %q", images.key)
	}
	if images.key == "portrait.png" {
		t.Fatalf("expected randomized key, got original filename")
	}
	if !strings.HasPrefix(url, "https://img.example/") {
		t.Fatalf("unexpected public url %q", url)
	}
}

func TestUploadImageWrapsFailures(t *testing.T) {
	images := &mockImages{uploadErr: domain.ErrBackendNotConfigured}
	uc := NewDirectoryUsecase(&mockBackend{}, images)

	_, err := uc.UploadImage(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("x"))
	if err == nil {
		t.Fatalf("expected upload error")
	}
	var uerr domain.UploadError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UploadError, got %T", err)
	}
}
