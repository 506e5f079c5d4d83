package domain

// TimelineEvent is a single dated entry in a profile's timeline.
type TimelineEvent struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ArchiveItem is a document, image or award attached to a profile.
type ArchiveItem struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // PDF, IMAGE or AWARD
	Title string `json:"title"`
	Date  string `json:"date"`
	Size  string `json:"size,omitempty"`
}

// NewsItem is a press mention attached to a profile.
type NewsItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// InfluenceStats is a sentiment breakdown in percentage points.
// Support, neutral and opposition conceptually sum to 100.
type InfluenceStats struct {
	Support    int `json:"support"`
	Neutral    int `json:"neutral"`
	Opposition int `json:"opposition"`
}

// Profile is the canonical, language-resolved representation of a
// dossier. Profiles are derived, never persisted: they are recomputed
// on every fetch and whenever the active language changes, because
// localization is resolved at normalization time.
type Profile struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Title             string            `json:"title"`
	Category          Category          `json:"category"`
	CategoryLabel     string            `json:"categoryLabel,omitempty"`
	Verified          bool              `json:"verified"`
	VerificationLevel VerificationLevel `json:"verificationLevel,omitempty"`
	ImageURL          string            `json:"imageUrl"`
	ShortBio          string            `json:"shortBio"`
	FullBio           string            `json:"fullBio"`
	Timeline          []TimelineEvent   `json:"timeline"`
	Location          string            `json:"location,omitempty"`
	Archives          []ArchiveItem     `json:"archives"`
	News              []NewsItem        `json:"news"`
	Influence         InfluenceStats    `json:"influence"`
	IsOrganization    bool              `json:"isOrganization"`
	Status            ProfileStatus     `json:"status"`
	DateStart         string            `json:"dateStart"`
	DateEnd           string            `json:"dateEnd,omitempty"`
}

// SearchResult is the outcome of resolving a free-text query: either
// local profile matches, or an archivist summary when nothing matched.
type SearchResult struct {
	Query     string    `json:"query"`
	Profiles  []Profile `json:"profiles"`
	AISummary string    `json:"aiSummary,omitempty"`
}
