package backend

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/infra/database/models"
)

// Postgres serves dossiers from a self-hosted database. It covers the
// table surface only; image storage stays with the hosted backend or
// the mock.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (r *Postgres) FetchAll(ctx context.Context) ([]domain.Dossier, error) {
	var rows []models.Dossier
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, domain.BackendError{Message: err.Error()}
	}

	dossiers := make([]domain.Dossier, 0, len(rows))
	for _, row := range rows {
		dossier, err := toDomain(row)
		if err != nil {
			return nil, errors.Wrapf(err, "dossier %s has malformed details", row.ID)
		}
		dossiers = append(dossiers, dossier)
	}
	return dossiers, nil
}

func (r *Postgres) Insert(ctx context.Context, input domain.DossierInput) error {
	row, err := toModel(input)
	if err != nil {
		return err
	}
	row.ID = uuid.NewString()

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.BackendError{Message: err.Error()}
	}
	return nil
}

func (r *Postgres) Update(ctx context.Context, id string, input domain.DossierInput) error {
	row, err := toModel(input)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.Dossier{}).
		Where("id = ?", id).
		Select("full_name", "role", "bio", "status", "reputation_score",
			"image_url", "category", "verification_level", "details").
		Updates(&row)
	if result.Error != nil {
		return domain.BackendError{Message: result.Error.Error()}
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "dossier"}
	}
	return nil
}

func (r *Postgres) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Dossier{}, "id = ?", id)
	if result.Error != nil {
		return domain.BackendError{Message: result.Error.Error()}
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "dossier"}
	}
	return nil
}

func toDomain(row models.Dossier) (domain.Dossier, error) {
	var details domain.DossierDetails
	if row.Details != "" {
		if err := json.Unmarshal([]byte(row.Details), &details); err != nil {
			return domain.Dossier{}, err
		}
	}

	return domain.Dossier{
		ID:                row.ID,
		CreatedAt:         row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		FullName:          row.FullName,
		Role:              row.Role,
		Bio:               row.Bio,
		Status:            domain.DossierStatus(row.Status),
		ReputationScore:   row.ReputationScore,
		ImageURL:          row.ImageURL,
		Category:          row.Category,
		VerificationLevel: row.VerificationLevel,
		Details:           details,
	}, nil
}

func toModel(input domain.DossierInput) (models.Dossier, error) {
	details, err := json.Marshal(input.Details)
	if err != nil {
		return models.Dossier{}, errors.Wrap(err, "failed to encode details")
	}

	return models.Dossier{
		FullName:          input.FullName,
		Role:              input.Role,
		Bio:               input.Bio,
		Status:            string(input.Status),
		ReputationScore:   input.ReputationScore,
		ImageURL:          input.ImageURL,
		Category:          input.Category,
		VerificationLevel: input.VerificationLevel,
		Details:           string(details),
	}, nil
}
