package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a model and returns its output. When the
// request carries a Schema, Content is JSON that validated against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System string

	// Messages is usually a single user turn; drafting is one-shot.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mode. Without it Content is the raw reply text.
	Schema *Schema

	MaxTokens int

	// Temperature is left to the provider default when zero.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the reply must satisfy.
type Schema struct {
	// Name is kebab-case, e.g. "draft-ordering". It doubles as the cache key
	// for the compiled schema, so distinct definitions need distinct names.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the normalized reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a successful generation.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }

// complete turns a provider reply into a Response, rejecting truncated
// output and output that fails the request schema.
func complete(req Request, content json.RawMessage, stop StopReason, usage Usage, model string) (*Response, error) {
	if stop == StopMaxTokens {
		return nil, &Error{Code: CodeTruncated, Content: content}
	}
	if req.Schema != nil {
		if err := req.Schema.Check(content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel maps a short alias to a provider model id. Unknown names
// pass through so full ids can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
