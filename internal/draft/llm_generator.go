package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// Purpose labels drafting requests in the LLM event log.
const Purpose = "question-draft"

// LLMGenerator drafts questions with an llm.Provider, asking for JSON that
// follows the kind's payload schema.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
	newID    func() string
}

func New(provider llm.Provider, cfg Config) *LLMGenerator {
	cfg.Attempts = max(cfg.Attempts, 1)
	return &LLMGenerator{provider: provider, cfg: cfg, newID: uuid.NewString}
}

// reply is the model's answer before it becomes a quiz.Question.
type reply struct {
	Text    string          `json:"text"`
	Payload json.RawMessage `json:"payload"`
}

// Draft asks for a question and checks it. A rejected draft is sent back
// with the reason so the next attempt can fix it.
func (g *LLMGenerator) Draft(ctx context.Context, in Input) (quiz.Question, error) {
	schema := SchemaFor(in.Kind)
	if schema == nil {
		return quiz.Question{}, &quiz.UnsupportedKindError{Kind: in.Kind}
	}
	ctx = llm.WithQuiz(llm.WithPurpose(ctx, Purpose), in.QuizID)

	msgs := []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in, g.cfg)}}
	var rejected *RejectedError
	for attempt := 1; attempt <= g.cfg.Attempts; attempt++ {
		resp, err := g.provider.Generate(ctx, llm.Request{
			System:      systemPrompt,
			Messages:    msgs,
			Schema:      schema,
			MaxTokens:   g.cfg.MaxTokens,
			Temperature: g.cfg.Temperature,
		})
		if err != nil {
			return quiz.Question{}, fmt.Errorf("draft question: %w", err)
		}

		q, err := g.decode(in.Kind, resp.Content)
		if err != nil {
			return quiz.Question{}, err
		}
		check, reason := runChecks(g.cfg.Checks, q, in)
		if check == "" {
			return q, nil
		}
		rejected = &RejectedError{Check: check, Reason: reason, Attempts: attempt}
		msgs = append(msgs,
			llm.Message{Role: llm.RoleAssistant, Content: string(resp.Content)},
			llm.Message{Role: llm.RoleUser, Content: "That question was rejected: " + reason + ". Write a different one that follows every rule."},
		)
	}
	return quiz.Question{}, rejected
}

func (g *LLMGenerator) decode(kind quiz.Kind, content json.RawMessage) (quiz.Question, error) {
	var r reply
	if err := json.Unmarshal(content, &r); err != nil {
		return quiz.Question{}, fmt.Errorf("parse draft: %w", err)
	}
	payload, err := quiz.DecodePayload(kind, r.Payload)
	if err != nil {
		return quiz.Question{}, fmt.Errorf("parse drafted payload: %w", err)
	}
	return quiz.Question{ID: g.newID(), Text: r.Text, Kind: kind, Payload: payload}, nil
}
