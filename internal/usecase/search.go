package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

// SearchUsecase resolves a free-text query against the loaded
// directory, escalating to the archivist only when nothing matched
// locally. An earlier summary is always discarded once local matches
// exist.
type SearchUsecase struct {
	directory *DirectoryUsecase
	archivist Summarizer
}

func NewSearchUsecase(directory *DirectoryUsecase, archivist Summarizer) *SearchUsecase {
	return &SearchUsecase{
		directory: directory,
		archivist: archivist,
	}
}

// Resolve matches the query case-insensitively against profile names.
// With no local match the archivist supplies a localized summary;
// archivist failures degrade to a fixed user-safe sentence and are
// never surfaced raw.
func (uc *SearchUsecase) Resolve(ctx context.Context, query string, lang domain.Language) domain.SearchResult {
	needle := strings.ToLower(strings.TrimSpace(query))

	matches := []domain.Profile{}
	for _, profile := range uc.directory.FetchAll(ctx, lang) {
		if strings.Contains(strings.ToLower(profile.Name), needle) {
			matches = append(matches, profile)
		}
	}

	if len(matches) > 0 {
		return domain.SearchResult{Query: query, Profiles: matches}
	}

	summary, err := uc.archivist.Summarize(ctx, query, lang)
	if err != nil {
		slog.ErrorContext(ctx, "archivist call failed",
			slog.String("error", err.Error()),
			slog.String("module", "search"),
		)
		summary = domain.SummaryRetryMessage
	}

	return domain.SearchResult{Query: query, Profiles: matches, AISummary: summary}
}
