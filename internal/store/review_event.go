package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiz/ent"
	"github.com/abhisek/studiz/ent/answerevent"
	"github.com/abhisek/studiz/ent/reviewevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReviewStart(ctx context.Context, data ReviewStartData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction("start").
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetNumQuestions(data.NumQuestions)

	if len(data.Topics) > 0 {
		builder = builder.SetTopics(data.Topics)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save review start event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReviewEnd(ctx context.Context, data ReviewEndData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction("end").
		SetTotalAnswered(data.TotalAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetAccuracy(data.Accuracy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review end event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewStats(ctx context.Context) (ReviewStats, error) {
	var stats ReviewStats

	started, err := r.client.ReviewEvent.Query().
		Where(reviewevent.Action("start")).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count started sessions: %w", err)
	}
	stats.SessionsStarted = started

	completed, err := r.client.ReviewEvent.Query().
		Where(reviewevent.Action("end")).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count completed sessions: %w", err)
	}
	stats.SessionsCompleted = completed

	answered, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count answers: %w", err)
	}
	stats.QuestionsAnswered = answered

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count correct answers: %w", err)
	}
	stats.CorrectAnswers = correct

	docs, err := r.client.DocumentEvent.Query().Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count documents: %w", err)
	}
	stats.DocumentsIngested = docs

	return stats, nil
}

func (r *eventRepo) AppendDocument(ctx context.Context, data DocumentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.DocumentEvent.Create().
		SetSequence(seqNum).
		SetSource(data.Source).
		SetPassages(data.Passages)

	if len(data.Topics) > 0 {
		builder = builder.SetTopics(data.Topics)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save document event: %w", err)
	}
	return nil
}
