package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the learner's aggregate study profile, maintained so
// the stats view does not replay the whole event log.
type SnapshotData struct {
	Version           int `json:"version"`
	SessionsCompleted int `json:"sessions_completed"`
	QuestionsAnswered int `json:"questions_answered"`
	CorrectAnswers    int `json:"correct_answers"`
	DocumentsIngested int `json:"documents_ingested"`
}

// Snapshot is a point-in-time capture of the study profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages study profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ReviewStartData captures a session start with its settings.
type ReviewStartData struct {
	SessionID    string
	QuestionType string
	Difficulty   string
	NumQuestions int
	Topics       []string
}

// ReviewEndData captures a session end with its score.
type ReviewEndData struct {
	SessionID      string
	TotalAnswered  int
	CorrectAnswers int
	Accuracy       float64
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID        string
	QuestionType     string
	Topic            string
	QuestionText     string
	CorrectAnswer    string
	LearnerAnswer    string
	Correct          bool
	PartiallyCorrect bool
	Feedback         string
}

// DocumentEventData captures one document ingestion.
type DocumentEventData struct {
	Source   string
	Passages int
	Topics   []string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestSummary is one logged LLM call as returned by queries.
type LLMRequestSummary struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestDetail is one logged LLM call with its full request and
// response bodies.
type LLMRequestDetail struct {
	LLMRequestSummary
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token consumption for one purpose or model.
type LLMUsage struct {
	Key          string // purpose or model
	Requests     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ReviewStats aggregates the whole review history.
type ReviewStats struct {
	SessionsStarted   int
	SessionsCompleted int
	QuestionsAnswered int
	CorrectAnswers    int
	DocumentsIngested int
}

// AnswerSummary is one graded answer as returned by queries.
type AnswerSummary struct {
	Timestamp     time.Time
	Topic         string
	QuestionText  string
	LearnerAnswer string
	Correct       bool
}

// EventRepo provides append and query access to review events.
type EventRepo interface {
	// AppendReviewStart records a session start with its settings.
	AppendReviewStart(ctx context.Context, data ReviewStartData) error

	// AppendReviewEnd records a session end with its score.
	AppendReviewEnd(ctx context.Context, data ReviewEndData) error

	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendDocument records one document ingestion.
	AppendDocument(ctx context.Context, data DocumentEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestSummary, error)

	// GetLLMEvent returns one logged LLM call with its full request and
	// response bodies, or nil if no event has that ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestDetail, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model name.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// ReviewStats aggregates the whole review history.
	ReviewStats(ctx context.Context) (ReviewStats, error)

	// RecentAnswers returns the most recent graded answers, newest first.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerSummary, error)
}
