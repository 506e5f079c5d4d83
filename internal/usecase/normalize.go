package usecase

import (
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

// Normalize converts a raw dossier into the canonical Profile for the
// given language. It is a pure function of its inputs.
//
// Localized fields resolve through a strict fallback chain: requested
// language, then English, then the always-present short bio (full bio)
// or an empty sequence (timeline). Unknown categories keep their raw
// value but borrow the Politics display label.
func Normalize(d domain.Dossier, lang domain.Language) (domain.Profile, error) {
	if d.ID == "" {
		return domain.Profile{}, domain.ValidationError{Field: "id"}
	}
	if d.FullName == "" {
		return domain.Profile{}, domain.ValidationError{Field: "full_name"}
	}
	if d.Category == "" {
		return domain.Profile{}, domain.ValidationError{Field: "category"}
	}

	category := domain.Category(d.Category)

	p := domain.Profile{
		ID:                d.ID,
		Name:              d.FullName,
		Title:             d.Role,
		Category:          category,
		CategoryLabel:     domain.CategoryLabel(category, lang),
		Verified:          d.Status == domain.DossierVerified,
		VerificationLevel: domain.VerificationLevel(d.VerificationLevel),
		ImageURL:          d.ImageURL,
		ShortBio:          d.Bio,
		FullBio:           resolveFullBio(d, lang),
		Timeline:          resolveTimeline(d.Details.Timeline, lang),
		Location:          d.Details.Location,
		Archives:          d.Details.Archives,
		News:              d.Details.News,
		Influence:         resolveInfluence(d),
		IsOrganization:    d.Details.IsOrganization,
		Status:            d.Details.Status,
		DateStart:         d.Details.DateStart,
		DateEnd:           d.Details.DateEnd,
	}

	if p.Archives == nil {
		p.Archives = []domain.ArchiveItem{}
	}
	if p.News == nil {
		p.News = []domain.NewsItem{}
	}
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	if p.DateStart == "" {
		p.DateStart = "Unknown"
	}

	return p, nil
}

func resolveFullBio(d domain.Dossier, lang domain.Language) string {
	if bio := d.Details.FullBio[lang]; bio != "" {
		return bio
	}
	if bio := d.Details.FullBio[domain.LangEnglish]; bio != "" {
		return bio
	}
	return d.Bio
}

func resolveTimeline(timeline map[domain.Language][]domain.TimelineEvent, lang domain.Language) []domain.TimelineEvent {
	if events := timeline[lang]; len(events) > 0 {
		return events
	}
	if events := timeline[domain.LangEnglish]; len(events) > 0 {
		return events
	}
	return []domain.TimelineEvent{}
}

// resolveInfluence prefers a stored breakdown over the derived one.
// Current data only carries the single reputation score, from which
// neutral is the remainder and opposition is zero.
func resolveInfluence(d domain.Dossier) domain.InfluenceStats {
	if d.Details.Influence != nil {
		return *d.Details.Influence
	}
	return domain.InfluenceStats{
		Support:    d.ReputationScore,
		Neutral:    100 - d.ReputationScore,
		Opposition: 0,
	}
}

// Denormalize converts an admin edit form into the raw input shape the
// backend expects. FullName and Category are required; no partial
// write is ever attempted without them. The free-text full bio is
// written only under the language active at edit time.
func Denormalize(form domain.DossierEdit, lang domain.Language) (domain.DossierInput, error) {
	if form.FullName == "" {
		return domain.DossierInput{}, domain.ValidationError{Field: "full_name"}
	}
	if form.Category == "" {
		return domain.DossierInput{}, domain.ValidationError{Field: "category"}
	}

	input := domain.DossierInput{
		FullName:          form.FullName,
		Role:              form.Role,
		Bio:               form.Bio,
		Status:            form.Status,
		ImageURL:          form.ImageURL,
		Category:          form.Category,
		VerificationLevel: form.VerificationLevel,
	}

	if input.Status == "" {
		input.Status = domain.DossierUnverified
	}
	if form.ReputationScore != nil {
		input.ReputationScore = *form.ReputationScore
	}
	if input.VerificationLevel == "" {
		input.VerificationLevel = string(domain.VerificationStandard)
	}

	if form.Details != nil {
		input.Details = *form.Details
	}
	if form.FullBio != "" {
		if input.Details.FullBio == nil {
			input.Details.FullBio = map[domain.Language]string{}
		}
		input.Details.FullBio[lang] = form.FullBio
	}

	return input, nil
}
