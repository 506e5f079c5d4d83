package usecase

import (
	"context"
	"io"
	"log/slog"
	"path"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

var tracer = otel.Tracer("directory")

// DirectoryUsecase orchestrates fetch, save, delete and image upload
// against the selected backend and keeps a per-language cache of
// normalized profiles. Mutations never touch the cache directly; they
// flush it and re-fetch, so cache and remote state cannot diverge.
type DirectoryUsecase struct {
	backend  DossierBackend
	images   ImageStore
	profiles *cache.Cache
}

func NewDirectoryUsecase(backend DossierBackend, images ImageStore) *DirectoryUsecase {
	return &DirectoryUsecase{
		backend:  backend,
		images:   images,
		profiles: cache.New(cache.NoExpiration, 0),
	}
}

// FetchAll returns the canonical profiles for a language. A backend
// error or an empty result both degrade to the bundled fallback
// dataset, so the directory is never empty. Records that fail
// normalization are skipped with a warning; the batch continues.
func (uc *DirectoryUsecase) FetchAll(ctx context.Context, lang domain.Language) []domain.Profile {
	ctx, span := tracer.Start(ctx, "Directory.FetchAll")
	defer span.End()

	if cached, found := uc.profiles.Get(string(lang)); found {
		return cached.([]domain.Profile)
	}

	records, err := uc.backend.FetchAll(ctx)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "dossier fetch failed, serving fallback dataset",
			slog.String("error", err.Error()),
			slog.String("module", "directory"),
		)
		return domain.FallbackProfiles(lang)
	}
	if len(records) == 0 {
		return domain.FallbackProfiles(lang)
	}

	profiles := make([]domain.Profile, 0, len(records))
	for _, record := range records {
		profile, err := Normalize(record, lang)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed dossier",
				slog.String("id", record.ID),
				slog.String("error", err.Error()),
				slog.String("module", "directory"),
			)
			continue
		}
		profiles = append(profiles, profile)
	}
	if len(profiles) == 0 {
		return domain.FallbackProfiles(lang)
	}

	uc.profiles.Set(string(lang), profiles, cache.NoExpiration)
	return profiles
}

// Get returns a single profile by id for a language.
func (uc *DirectoryUsecase) Get(ctx context.Context, id string, lang domain.Language) (domain.Profile, error) {
	for _, profile := range uc.FetchAll(ctx, lang) {
		if profile.ID == id {
			return profile, nil
		}
	}
	return domain.Profile{}, domain.NotFoundError{Resource: "profile"}
}

// Save denormalizes the form and inserts or updates depending on
// whether an id is present. On success the whole cache is flushed and
// re-fetched; backend failures are returned verbatim.
func (uc *DirectoryUsecase) Save(ctx context.Context, form domain.DossierEdit, lang domain.Language) error {
	ctx, span := tracer.Start(ctx, "Directory.Save")
	defer span.End()

	input, err := Denormalize(form, lang)
	if err != nil {
		return err
	}

	if form.ID != "" {
		err = uc.backend.Update(ctx, form.ID, input)
	} else {
		err = uc.backend.Insert(ctx, input)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	uc.refresh(ctx, lang)
	return nil
}

// Delete removes a dossier by id and refreshes the cache. The caller
// is responsible for any interactive confirmation.
func (uc *DirectoryUsecase) Delete(ctx context.Context, id string, lang domain.Language) error {
	ctx, span := tracer.Start(ctx, "Directory.Delete")
	defer span.End()

	if err := uc.backend.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	uc.refresh(ctx, lang)
	return nil
}

// UploadImage stores an image under a randomized key that preserves
// the original extension and returns its public URL.
func (uc *DirectoryUsecase) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	ctx, span := tracer.Start(ctx, "Directory.UploadImage")
	defer span.End()

	key := uuid.NewString() + path.Ext(filename)

	if err := uc.images.Upload(ctx, key, contentType, body); err != nil {
		span.RecordError(err)
		return "", domain.UploadError{Message: err.Error()}
	}

	return uc.images.PublicURL(key), nil
}

func (uc *DirectoryUsecase) refresh(ctx context.Context, lang domain.Language) {
	uc.profiles.Flush()
	uc.FetchAll(ctx, lang)
}
