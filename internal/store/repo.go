package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session actions recorded in the journal.
const (
	ActionStart         = "start"
	ActionResponse      = "response"
	ActionSubmitAttempt = "submit_attempt"
	ActionSubmitted     = "submitted"
	ActionSubmitFailed  = "submit_failed"
	ActionAbandoned     = "abandoned"
)

// Session statuses as stored.
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionFailed     = "failed"
	SessionAbandoned  = "abandoned"
)

// SessionRecord is one row of the session history.
type SessionRecord struct {
	ID        string
	QuizID    string
	QuizTitle string
	Status    string
	Trigger   string
	Answered  int
	Total     int
	Score     *float64
	Passed    *bool
	StartedAt time.Time
	EndedAt   *time.Time
}

// SessionOutcome closes a session record.
type SessionOutcome struct {
	Status   string
	Trigger  string
	Answered int
	Total    int
	Result   *quiz.SubmissionResult
	EndedAt  time.Time
}

// SessionEventData captures a single journal entry for a session.
type SessionEventData struct {
	SessionID  string
	Action     string
	QuestionID string
	Detail     string
}

// SessionEventRecord is a stored SessionEventData.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// PendingSubmission holds the responses of a session whose submission
// never reached the platform.
type PendingSubmission struct {
	SessionID string
	QuizID    string
	Responses []quiz.Response

	// Kinds maps question ids to their kind so values can be decoded.
	Kinds     map[string]quiz.Kind
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JournalRepo is the local record of quiz sessions.
type JournalRepo interface {
	// StartSession inserts a new in-progress session.
	StartSession(ctx context.Context, rec SessionRecord) error

	// FinishSession stores the final status of a session.
	FinishSession(ctx context.Context, sessionID string, outcome SessionOutcome) error

	// AppendSessionEvent appends an entry to a session's journal.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// SessionEvents returns a session's journal in sequence order.
	SessionEvents(ctx context.Context, sessionID string) ([]SessionEventRecord, error)

	// ListSessions returns sessions, most recent first.
	ListSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// GetSession returns one session or ErrNotFound.
	GetSession(ctx context.Context, sessionID string) (*SessionRecord, error)

	// SavePending upserts the pending submission of a session.
	SavePending(ctx context.Context, p PendingSubmission) error

	// Pending returns the pending submission of a session or ErrNotFound.
	Pending(ctx context.Context, sessionID string) (*PendingSubmission, error)

	// ListPending returns every pending submission, oldest first.
	ListPending(ctx context.Context) ([]PendingSubmission, error)

	// ResolvePending removes a pending submission once it was delivered.
	ResolvePending(ctx context.Context, sessionID string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	QuizID       string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMFilter narrows QueryLLMEvents. Zero fields match everything.
type LLMFilter struct {
	Purpose    string
	QuizID     string
	FailedOnly bool
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching filter, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts, filter LLMFilter) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event, or nil when it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
