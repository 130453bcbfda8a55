package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiz/ent"
	"github.com/abhisek/studiz/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionType(data.QuestionType).
		SetTopic(data.Topic).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetPartiallyCorrect(data.PartiallyCorrect).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerSummary, error) {
	q := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}

	out := make([]AnswerSummary, len(events))
	for i, e := range events {
		out[i] = AnswerSummary{
			Timestamp:     e.Timestamp,
			Topic:         e.Topic,
			QuestionText:  e.QuestionText,
			LearnerAnswer: e.LearnerAnswer,
			Correct:       e.Correct,
		}
	}
	return out, nil
}
