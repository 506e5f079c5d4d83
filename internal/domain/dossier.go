package domain

// DossierDetails is the typed shape of the backend's details column.
// Every field is optional; normalization applies the documented
// defaults for absent values.
type DossierDetails struct {
	FullBio        map[Language]string          `json:"fullBio,omitempty"`
	Timeline       map[Language][]TimelineEvent `json:"timeline,omitempty"`
	Location       string                       `json:"location,omitempty"`
	Archives       []ArchiveItem                `json:"archives,omitempty"`
	News           []NewsItem                   `json:"news,omitempty"`
	Influence      *InfluenceStats              `json:"influence,omitempty"`
	IsOrganization bool                         `json:"isOrganization,omitempty"`
	Status         ProfileStatus                `json:"status,omitempty"`
	DateStart      string                       `json:"dateStart,omitempty"`
	DateEnd        string                       `json:"dateEnd,omitempty"`
}

// Dossier is a raw record as stored in the dossiers table.
type Dossier struct {
	ID                string         `json:"id"`
	CreatedAt         string         `json:"created_at,omitempty"`
	FullName          string         `json:"full_name"`
	Role              string         `json:"role"`
	Bio               string         `json:"bio"`
	Status            DossierStatus  `json:"status"`
	ReputationScore   int            `json:"reputation_score"`
	ImageURL          string         `json:"image_url"`
	Category          string         `json:"category"`
	VerificationLevel string         `json:"verification_level"`
	Details           DossierDetails `json:"details"`
}

// DossierInput is the exact shape the backend expects for inserts and
// updates. It never carries an identifier; the caller keys updates.
type DossierInput struct {
	FullName          string         `json:"full_name"`
	Role              string         `json:"role"`
	Bio               string         `json:"bio"`
	Status            DossierStatus  `json:"status"`
	ReputationScore   int            `json:"reputation_score"`
	ImageURL          string         `json:"image_url"`
	Category          string         `json:"category"`
	VerificationLevel string         `json:"verification_level"`
	Details           DossierDetails `json:"details"`
}

// DossierEdit is an in-progress admin edit form. All fields are
// optional at the type level; Denormalize enforces the required set.
// FullBio is free text written under the language active at edit time;
// Details, when present, overrides the details column wholesale.
type DossierEdit struct {
	ID                string          `json:"id,omitempty"`
	FullName          string          `json:"full_name"`
	Role              string          `json:"role"`
	Bio               string          `json:"bio"`
	Status            DossierStatus   `json:"status,omitempty"`
	ReputationScore   *int            `json:"reputation_score,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
	Category          string          `json:"category"`
	VerificationLevel string          `json:"verification_level,omitempty"`
	FullBio           string          `json:"full_bio,omitempty"`
	Details           *DossierDetails `json:"details,omitempty"`
}
