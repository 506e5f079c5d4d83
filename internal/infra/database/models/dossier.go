package models

import "time"

// Dossier is the self-hosted dossiers table. Details keeps the
// localized and lifecycle payload as a JSON column, mirroring the
// hosted backend's schema.
type Dossier struct {
	ID                string    `json:"id" gorm:"primaryKey;type:text"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	FullName          string    `json:"full_name" gorm:"type:text;not null"`
	Role              string    `json:"role" gorm:"type:text"`
	Bio               string    `json:"bio" gorm:"type:text"`
	Status            string    `json:"status" gorm:"type:text;default:'Unverified'"`
	ReputationScore   int       `json:"reputation_score"`
	ImageURL          string    `json:"image_url" gorm:"type:text"`
	Category          string    `json:"category" gorm:"type:text;index;not null"`
	VerificationLevel string    `json:"verification_level" gorm:"type:text;default:'Standard'"`
	Details           string    `json:"details" gorm:"type:jsonb;default:'{}'"`
}
