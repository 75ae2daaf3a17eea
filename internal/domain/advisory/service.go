package advisory

import (
	"context"
	"fmt"
	"strings"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

// Completer is the slice of the AI client the advisory service depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Answer is the result of a text advisory request.
type Answer struct {
	Answer   string `json:"answer"`
	Language string `json:"language"`
}

// Service turns farmer questions into prompts and relays the model's reply.
type Service struct {
	ai     Completer
	logger *logging.Logger
}

func NewService(ai Completer, logger *logging.Logger) *Service {
	return &Service{ai: ai, logger: logger}
}

// Ask validates the question, builds the advisory prompt in the resolved
// display language and returns the model's reply with the echoed code.
func (s *Service) Ask(ctx context.Context, question, language string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New(errors.KindInvalidInput, "advisory.ask", "Please ask a question!")
	}
	if language == "" {
		language = DefaultLanguageCode
	}

	prompt := BuildAskPrompt(DisplayLanguage(language), question)

	s.logger.DebugTag("AI", "ask: language=%s question_length=%d", language, len(question))

	answer, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, errors.Wrap(errors.KindAIService, "advisory.ask",
			fmt.Sprintf("AI service error: %v", err), err)
	}

	return &Answer{
		Answer:   strings.TrimSpace(answer),
		Language: language,
	}, nil
}
