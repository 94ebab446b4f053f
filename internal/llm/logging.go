package llm

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/quizdeck/internal/store"
)

// LoggingProvider journals every call to the LLM event table. The
// journal is best effort: a failed write is logged and the call's own
// result is returned unchanged.
type LoggingProvider struct {
	inner  Provider
	name   string
	events store.EventRepo
	logger *slog.Logger
}

// WithLogging wraps p. name is the Config.Provider value.
func WithLogging(p Provider, name string, events store.EventRepo) *LoggingProvider {
	return &LoggingProvider{inner: p, name: name, events: events, logger: slog.Default()}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		QuizID:      QuizFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		var e *Error
		if errors.As(err, &e) && len(e.Content) > 0 {
			ev.ResponseBody = string(e.Content)
		}
	}

	attrs := []any{
		"provider", ev.Provider,
		"model", ev.Model,
		"purpose", ev.Purpose,
		"latency_ms", ev.LatencyMs,
	}
	if err != nil {
		l.logger.WarnContext(ctx, "llm request failed", append(attrs, "error", err)...)
	} else {
		l.logger.DebugContext(ctx, "llm request", append(attrs, "tokens", resp.Usage.Total())...)
	}

	// Journal with a context that outlives a cancelled request so the
	// failure itself is still recorded.
	if jerr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); jerr != nil {
		l.logger.WarnContext(ctx, "journal llm request", "error", jerr)
	}
	return resp, err
}

// transcript renders a request as the readable text stored in the
// request_body column.
func transcript(req Request) string {
	var b strings.Builder
	section := func(label, body string) {
		b.WriteString("[" + label + "]\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}
	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
