package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stockassistant/internal/cache"
	"stockassistant/internal/model"
	"stockassistant/pkg/llm"
)

var (
	ErrMissingCredential = errors.New("extractor: LLM credential not configured")
	ErrUpstream          = errors.New("extractor: LLM call failed")
	ErrMalformed         = errors.New("extractor: malformed intent")
)

const (
	temperature = 0.1
	maxTokens   = 150
)

type Extractor struct {
	llm   llm.Completer
	cache cache.Cache
}

func New(completer llm.Completer, c cache.Cache) *Extractor {
	return &Extractor{llm: completer, cache: c}
}

// Extract classifies question into an Intent. Successful results are cached
// by the literal question text.
func (e *Extractor) Extract(ctx context.Context, question string) (model.Intent, error) {
	if cached, ok := cache.Load[model.Intent](ctx, e.cache, cache.NamespaceEntities, question); ok {
		return cached, nil
	}

	content, err := e.llm.Complete(ctx, llm.Request{
		Prompt:      fmt.Sprintf(extractPrompt, question),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return model.Intent{}, fmt.Errorf("%w: %v", ErrMissingCredential, err)
		}
		return model.Intent{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	intent, err := Parse(content)
	if err != nil {
		return model.Intent{}, err
	}

	cache.Store(ctx, e.cache, cache.NamespaceEntities, question, intent)
	return intent, nil
}

// Parse decodes an LLM reply into an Intent. Code fences are tolerated; an
// unknown question_type is rejected. An absent needs_analysis means analysis.
func Parse(content string) (model.Intent, error) {
	content = llm.CleanJSONResponse(content)

	intent := model.Intent{NeedsAnalysis: true}
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		return model.Intent{}, fmt.Errorf("%w: %v, content: %s", ErrMalformed, err, content)
	}

	intent.QuestionType = model.QuestionType(strings.ToLower(strings.TrimSpace(string(intent.QuestionType))))
	if !intent.QuestionType.Valid() {
		return model.Intent{}, fmt.Errorf("%w: question_type %q", ErrMalformed, intent.QuestionType)
	}

	return intent.Normalize(), nil
}
