package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// DefaultTimeout bounds each request when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 512

// Config configures the HTTP client.
type Config struct {
	BaseURL string

	// Token is a static bearer token. Ignored when client credentials are
	// configured.
	Token string

	// Client credentials grant, used when TokenURL and ClientID are set.
	TokenURL     string
	ClientID     string
	ClientSecret string

	Timeout time.Duration
	Logger  *slog.Logger

	// HTTPClient overrides the underlying transport client (tests).
	HTTPClient *http.Client
}

// HTTPClient implements Service over the platform's JSON API.
type HTTPClient struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

var _ Service = (*HTTPClient)(nil)

// New creates a client for cfg.BaseURL.
func New(cfg Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("remote: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("remote: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("remote: base URL must be http or https, got %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPClient{
		base:   base,
		http:   newHTTPClient(cfg, timeout),
		logger: logger.With("component", "remote"),
	}, nil
}

func newHTTPClient(cfg Config, timeout time.Duration) *http.Client {
	ctx := context.Background()
	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
	}

	var h *http.Client
	switch {
	case cfg.TokenURL != "" && cfg.ClientID != "":
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		h = cc.Client(ctx)
	case cfg.Token != "":
		h = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"}))
	case cfg.HTTPClient != nil:
		copied := *cfg.HTTPClient
		h = &copied
	default:
		h = &http.Client{}
	}
	h.Timeout = timeout
	return h
}

// FetchQuiz implements QuizService.
func (c *HTTPClient) FetchQuiz(ctx context.Context, quizID string) (*quiz.Quiz, error) {
	const op = "fetch quiz"
	body, err := c.do(ctx, op, http.MethodGet, c.path("quizzes", quizID), nil, nil)
	if err != nil {
		return nil, err
	}
	if err := quiz.ValidateQuizDocument(body); err != nil {
		return nil, &InvalidDocumentError{Op: op, Err: err}
	}
	var q quiz.Quiz
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, &InvalidDocumentError{Op: op, Err: err}
	}
	return &q, nil
}

type submissionRequest struct {
	Responses []quiz.Response `json:"responses"`
}

// SubmitResponses implements QuizService. The idempotency key from the
// context, if any, is sent as the Idempotency-Key header.
func (c *HTTPClient) SubmitResponses(ctx context.Context, quizID string, responses []quiz.Response) (quiz.SubmissionResult, error) {
	const op = "submit responses"
	if responses == nil {
		responses = []quiz.Response{}
	}
	headers := map[string]string{}
	if key := idempotencyKeyFrom(ctx); key != "" {
		headers["Idempotency-Key"] = key
	}
	body, err := c.do(ctx, op, http.MethodPost, c.path("quizzes", quizID, "submissions"), submissionRequest{Responses: responses}, headers)
	if err != nil {
		return quiz.SubmissionResult{}, err
	}
	var res quiz.SubmissionResult
	if err := json.Unmarshal(body, &res); err != nil {
		return quiz.SubmissionResult{}, &InvalidDocumentError{Op: op, Err: err}
	}
	if res.Score < 0 || res.Score > 100 {
		return quiz.SubmissionResult{}, &InvalidDocumentError{Op: op, Err: fmt.Errorf("score %v out of range", res.Score)}
	}
	return res, nil
}

// CreateQuestion implements AuthoringService. The question is validated
// before it is sent; the platform may assign a new id.
func (c *HTTPClient) CreateQuestion(ctx context.Context, quizID string, q quiz.Question) (quiz.Question, error) {
	const op = "create question"
	if err := q.Validate(); err != nil {
		return quiz.Question{}, err
	}
	body, err := c.do(ctx, op, http.MethodPost, c.path("quizzes", quizID, "questions"), q, nil)
	if err != nil {
		return quiz.Question{}, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return q, nil
	}
	var created quiz.Question
	if err := json.Unmarshal(body, &created); err != nil {
		return quiz.Question{}, &InvalidDocumentError{Op: op, Err: err}
	}
	return created, nil
}

// UpdateQuestion implements AuthoringService.
func (c *HTTPClient) UpdateQuestion(ctx context.Context, quizID string, q quiz.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	_, err := c.do(ctx, "update question", http.MethodPut, c.path("quizzes", quizID, "questions", q.ID), q, nil)
	return err
}

// DeleteQuestion implements AuthoringService.
func (c *HTTPClient) DeleteQuestion(ctx context.Context, quizID, questionID string) error {
	_, err := c.do(ctx, "delete question", http.MethodDelete, c.path("quizzes", quizID, "questions", questionID), nil, nil)
	return err
}

type reorderRequest struct {
	QuestionIDs []string `json:"questionIds"`
}

// ReorderQuestions implements AuthoringService.
func (c *HTTPClient) ReorderQuestions(ctx context.Context, quizID string, orderedIDs []string) error {
	_, err := c.do(ctx, "reorder questions", http.MethodPut, c.path("quizzes", quizID, "questions", "order"), reorderRequest{QuestionIDs: orderedIDs}, nil)
	return err
}

func (c *HTTPClient) path(segments ...string) string {
	u := *c.base
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u.Path = c.base.Path + "/" + strings.Join(escaped, "/")
	u.RawPath = ""
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, op, method, endpoint string, payload any, headers map[string]string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "op", op, "method", method, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}
	c.logger.Debug("request done", "op", op, "method", method, "url", endpoint,
		"status", res.StatusCode, "latency_ms", time.Since(start).Milliseconds())

	if res.StatusCode/100 != 2 {
		text := strings.TrimSpace(string(body))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return nil, &APIError{Op: op, Status: res.StatusCode, Body: text}
	}
	return body, nil
}
