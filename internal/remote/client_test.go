package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
)

const quizDoc = `{
  "id": "geo",
  "title": "Geography",
  "durationMinutes": 5,
  "questions": [
    {"id": "q1", "text": "Capital of Spain?", "kind": "single_choice",
     "payload": {"options": [{"id": "1", "text": "Lisbon"}, {"id": "2", "text": "Madrid", "isCorrect": true}]}},
    {"id": "q2", "text": "Draw a map", "kind": "drawing", "payload": {}}
  ]
}`

// fakePlatform is an in-memory stand-in for the platform API.
type fakePlatform struct {
	mu          sync.Mutex
	submissions []json.RawMessage
	idemKeys    []string
	authHeaders []string
	created     []quiz.Question
	deleted     []string
	order       []string
	failSubmit  int
}

func (f *fakePlatform) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.authHeaders = append(f.authHeaders, req.Header.Get("Authorization"))
			f.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/quizzes/{quizID}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			switch chi.URLParam(req, "quizID") {
			case "geo":
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, quizDoc)
			case "broken":
				_, _ = io.WriteString(w, `{"id":"broken","questions":[]}`)
			default:
				http.Error(w, "no such quiz", http.StatusNotFound)
			}
		})
		r.Post("/submissions", func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failSubmit > 0 {
				f.failSubmit--
				http.Error(w, "try later", http.StatusServiceUnavailable)
				return
			}
			var body struct {
				Responses json.RawMessage `json:"responses"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.submissions = append(f.submissions, body.Responses)
			f.idemKeys = append(f.idemKeys, req.Header.Get("Idempotency-Key"))
			_, _ = io.WriteString(w, `{"score": 75, "passed": true}`)
		})
		r.Post("/questions", func(w http.ResponseWriter, req *http.Request) {
			var q quiz.Question
			if err := json.NewDecoder(req.Body).Decode(&q); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.mu.Lock()
			f.created = append(f.created, q)
			f.mu.Unlock()
			q.ID = "server-" + q.ID
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(q)
		})
		r.Put("/questions/order", func(w http.ResponseWriter, req *http.Request) {
			var body reorderRequest
			_ = json.NewDecoder(req.Body).Decode(&body)
			f.mu.Lock()
			f.order = body.QuestionIDs
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
		r.Put("/questions/{questionID}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/questions/{questionID}", func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.deleted = append(f.deleted, chi.URLParam(req, "questionID"))
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}

func newTestClient(t *testing.T) (*HTTPClient, *fakePlatform) {
	t.Helper()
	platform := &fakePlatform{}
	srv := httptest.NewServer(platform.router())
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL + "/api/", Token: "secret", HTTPClient: srv.Client()})
	require.NoError(t, err)
	return client, platform
}

func TestFetchQuiz(t *testing.T) {
	client, platform := newTestClient(t)

	q, err := client.FetchQuiz(context.Background(), "geo")
	require.NoError(t, err)

	assert.Equal(t, "Geography", q.Title)
	require.Len(t, q.Questions, 2)
	assert.IsType(t, quiz.SingleChoicePayload{}, q.Questions[0].Payload)
	assert.IsType(t, quiz.UnsupportedPayload{}, q.Questions[1].Payload)
	assert.Equal(t, []string{"Bearer secret"}, platform.authHeaders)
}

func TestFetchQuiz_NotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.FetchQuiz(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.False(t, IsRetryable(err))
}

func TestFetchQuiz_InvalidDocument(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.FetchQuiz(context.Background(), "broken")
	var invalid *InvalidDocumentError
	assert.ErrorAs(t, err, &invalid)
}

func TestSubmitResponses(t *testing.T) {
	client, platform := newTestClient(t)

	ctx := WithIdempotencyKey(context.Background(), "session-1")
	res, err := client.SubmitResponses(ctx, "geo", []quiz.Response{
		{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}},
	})
	require.NoError(t, err)

	assert.Equal(t, quiz.SubmissionResult{Score: 75, Passed: true}, res)
	require.Len(t, platform.submissions, 1)
	assert.JSONEq(t, `[{"questionId":"q1","value":"2"}]`, string(platform.submissions[0]))
	assert.Equal(t, []string{"session-1"}, platform.idemKeys)
}

func TestSubmitResponses_ServerErrorIsRetryable(t *testing.T) {
	client, platform := newTestClient(t)
	platform.failSubmit = 1

	_, err := client.SubmitResponses(context.Background(), "geo", nil)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))

	_, err = client.SubmitResponses(context.Background(), "geo", nil)
	assert.NoError(t, err)
}

func TestSubmitResponses_Cancelled(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SubmitResponses(ctx, "geo", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, IsRetryable(err))
}

func TestAuthoringRoundTrip(t *testing.T) {
	client, platform := newTestClient(t)
	ctx := context.Background()

	q := quiz.NewQuestion("tmp", "Sky is blue", quiz.TrueFalsePayload{Options: []quiz.Option{
		{ID: "t", Text: "True", IsCorrect: true}, {ID: "f", Text: "False"},
	}})
	created, err := client.CreateQuestion(ctx, "geo", q)
	require.NoError(t, err)
	assert.Equal(t, "server-tmp", created.ID)
	assert.Equal(t, quiz.KindTrueFalse, created.Kind)

	require.NoError(t, client.UpdateQuestion(ctx, "geo", created))
	require.NoError(t, client.ReorderQuestions(ctx, "geo", []string{"q2", "q1"}))
	require.NoError(t, client.DeleteQuestion(ctx, "geo", "q2"))

	assert.Len(t, platform.created, 1)
	assert.Equal(t, []string{"q2", "q1"}, platform.order)
	assert.Equal(t, []string{"q2"}, platform.deleted)
}

func TestCreateQuestion_RejectsInvalidBeforeSending(t *testing.T) {
	client, platform := newTestClient(t)

	bad := quiz.Question{ID: "x", Text: "Order", Kind: quiz.KindOrdering, Payload: quiz.SingleChoicePayload{}}
	_, err := client.CreateQuestion(context.Background(), "geo", bad)

	var invalid *quiz.InvalidQuestionError
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, platform.authHeaders, "nothing should reach the server")
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)
}
