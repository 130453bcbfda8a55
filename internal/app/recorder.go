package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studiz/internal/evaluate"
	"github.com/abhisek/studiz/internal/quizgen"
	"github.com/abhisek/studiz/internal/review"
	"github.com/abhisek/studiz/internal/store"
)

const snapshotKeep = 10

// sessionRecorder bridges the dialogue machine's Recorder hooks to the
// event store. Each started session gets a fresh UUID that tags all of
// its events.
type sessionRecorder struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
	sessionID string
}

var _ review.Recorder = (*sessionRecorder)(nil)

// NewRecorder creates a review.Recorder backed by the event store.
// snapshots may be nil; the aggregate snapshot is then skipped.
func NewRecorder(events store.EventRepo, snapshots store.SnapshotRepo) review.Recorder {
	return &sessionRecorder{events: events, snapshots: snapshots}
}

func (r *sessionRecorder) SessionStarted(ctx context.Context, s *review.SessionState) error {
	r.sessionID = uuid.New().String()
	return r.events.AppendReviewStart(ctx, store.ReviewStartData{
		SessionID:    r.sessionID,
		QuestionType: string(s.QuestionType),
		Difficulty:   string(s.Difficulty),
		NumQuestions: s.NumQuestions,
		Topics:       s.Topics,
	})
}

func (r *sessionRecorder) AnswerRecorded(ctx context.Context, q *quizgen.Question, answer string, ev *evaluate.Evaluation) error {
	return r.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:        r.sessionID,
		QuestionType:     string(q.Type),
		Topic:            q.Topic,
		QuestionText:     q.Text,
		CorrectAnswer:    q.Answer,
		LearnerAnswer:    answer,
		Correct:          ev.IsCorrect,
		PartiallyCorrect: ev.IsPartiallyCorrect,
		Feedback:         ev.Feedback,
	})
}

func (r *sessionRecorder) SessionEnded(ctx context.Context, sum review.Summary) error {
	err := r.events.AppendReviewEnd(ctx, store.ReviewEndData{
		SessionID:      r.sessionID,
		TotalAnswered:  sum.Total,
		CorrectAnswers: sum.Correct,
		Accuracy:       sum.Accuracy,
	})
	if err != nil {
		return err
	}

	r.saveSnapshot(ctx)
	return nil
}

// saveSnapshot refreshes the aggregate study profile from the event
// log. Best-effort: a snapshot failure never fails the session end.
func (r *sessionRecorder) saveSnapshot(ctx context.Context) {
	if r.snapshots == nil {
		return
	}

	stats, err := r.events.ReviewStats(ctx)
	if err != nil {
		return
	}

	_ = r.snapshots.Save(ctx, &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:           1,
			SessionsCompleted: stats.SessionsCompleted,
			QuestionsAnswered: stats.QuestionsAnswered,
			CorrectAnswers:    stats.CorrectAnswers,
			DocumentsIngested: stats.DocumentsIngested,
		},
	})
	_ = r.snapshots.Prune(ctx, snapshotKeep)
}
