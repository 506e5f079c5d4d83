package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
)

var tracer = otel.Tracer("archivist")

const archivistInstruction = `You are the Head Archivist for 'SomaliPin', a prestigious digital registry of Somali excellence.
Your tone is authoritative, objective, and respectful, similar to an encyclopedia or a government historian.

Provide a concise summary (max 150 words) regarding the user's query about Somali figures, history, or business.
Focus on verified achievements and historical significance.
If the query is vague, politely ask for clarification.
Do not use markdown formatting like bolding or headers, just plain text paragraphs.

IMPORTANT: The user has selected %s as their preferred language. You MUST reply in %s.`

const emptyArchiveReply = "No records found in the archive at this time."

// SummaryCache stores archivist replies keyed by language and query.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Archivist resolves free-text queries through an OpenAI-compatible
// completion endpoint. Without a credential it degrades to a fixed
// localized sentence; call failures degrade to a generic retry
// sentence. Raw errors go to the log, never to the caller.
type Archivist struct {
	client *openai.Client
	model  string
	cache  SummaryCache
}

// NewArchivist builds the gateway. An empty apiKey leaves the client
// nil, which is the unconfigured mode. baseURL selects the provider;
// any OpenAI-compatible endpoint works, including the Gemini shim.
func NewArchivist(apiKey, baseURL, model string, cache SummaryCache) *Archivist {
	a := &Archivist{
		model: model,
		cache: cache,
	}
	if apiKey == "" {
		return a
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	a.client = openai.NewClientWithConfig(config)
	return a
}

func (a *Archivist) Summarize(ctx context.Context, query string, lang domain.Language) (string, error) {
	ctx, span := tracer.Start(ctx, "Archivist.Summarize")
	defer span.End()

	if a.client == nil {
		return domain.SummaryUnavailableMessage(lang), nil
	}

	key := summaryKey(lang, query)
	if a.cache != nil {
		if cached, found := a.cache.Get(ctx, key); found {
			return cached, nil
		}
	}

	languageName := domain.LanguageName(lang)
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(archivistInstruction, languageName, languageName),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "User Query: " + query,
			},
		},
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "archive retrieval failed"))
		slog.ErrorContext(ctx, "archive retrieval failed",
			slog.String("error", err.Error()),
			slog.String("module", "archivist"),
		)
		return domain.SummaryRetryMessage, nil
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return emptyArchiveReply, nil
	}

	text := resp.Choices[0].Message.Content
	if a.cache != nil {
		a.cache.Set(ctx, key, text)
	}
	return text, nil
}

func summaryKey(lang domain.Language, query string) string {
	return fmt.Sprintf("summary:%x", xxh3.HashString(string(lang)+"\x00"+query))
}
