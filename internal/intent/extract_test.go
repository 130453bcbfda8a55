package intent

import (
	"reflect"
	"testing"

	"github.com/abhisek/studiz/internal/quizgen"
)

func TestExtractNumQuestions(t *testing.T) {
	cases := []struct {
		clause string
		want   int
	}{
		{"10 questions", 10},
		{"questions 7", 7},
		{"set 15 questions", 15},
		{"I want 20 questions please", 20},
		{"set the number of questions to 12", 12},
		{"twenty-five questions", 25},
		{"set twenty five questions", 25},
		{"questions should be forty-two", 42},
		{"no number here", 0},
	}
	for _, tc := range cases {
		if got := extractNumQuestions(tc.clause); got != tc.want {
			t.Errorf("extractNumQuestions(%q) = %d, want %d", tc.clause, got, tc.want)
		}
	}
}

func TestExtractDifficulty(t *testing.T) {
	cases := []struct {
		clause string
		want   quizgen.Difficulty
	}{
		{"set difficulty to easy", quizgen.DifficultyEasy},
		{"make it simple", quizgen.DifficultyEasy},
		{"intermediate level please", quizgen.DifficultyMedium},
		{"set difficulty to hard", quizgen.DifficultyHard},
		{"make the questions challenging", quizgen.DifficultyHard},
		{"set difficulty to impossible", ""},
	}
	for _, tc := range cases {
		if got := extractDifficulty(tc.clause); got != tc.want {
			t.Errorf("extractDifficulty(%q) = %q, want %q", tc.clause, got, tc.want)
		}
	}
}

func TestExtractQuestionType(t *testing.T) {
	cases := []struct {
		clause string
		want   quizgen.QuestionType
	}{
		{"use multiple choice questions", quizgen.TypeMultipleChoice},
		{"switch to mc", quizgen.TypeMultipleChoice},
		{"set question type to free text", quizgen.TypeFreeText},
		{"open ended questions please", quizgen.TypeFreeText},
		{"use essay questions", ""},
	}
	for _, tc := range cases {
		if got := extractQuestionType(tc.clause); got != tc.want {
			t.Errorf("extractQuestionType(%q) = %q, want %q", tc.clause, got, tc.want)
		}
	}
}

func TestExtractTopics_StructuredMarkers(t *testing.T) {
	cases := []struct {
		clause string
		want   []string
	}{
		{"set topic to machine learning", []string{"machine learning"}},
		{"set the topic to: python, history", []string{"python", "history"}},
		{"focus on neural networks and data science", []string{"neural networks", "data science"}},
		{"the subject should be photosynthesis", []string{"photosynthesis"}},
		{"topics: algebra, geometry and calculus", []string{"algebra", "geometry", "calculus"}},
	}
	for _, tc := range cases {
		if got := extractTopics(tc.clause); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("extractTopics(%q) = %v, want %v", tc.clause, got, tc.want)
		}
	}
}

func TestExtractTopics_DeduplicatesCaseInsensitively(t *testing.T) {
	got := extractTopics("set topics to: History, history, geography")
	want := []string{"History", "geography"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractTopics = %v, want %v", got, want)
	}
}

func TestExtractTopics_NoValue(t *testing.T) {
	for _, clause := range []string{"set the topic to", "change the subject please"} {
		if got := extractTopics(clause); len(got) != 0 {
			t.Errorf("extractTopics(%q) = %v, want empty", clause, got)
		}
	}
}

func TestExtract_NeverPanics(t *testing.T) {
	kinds := []Kind{
		KindDocumentUpload, KindStartReview, KindStopReview, KindAnswer,
		KindReviewStatus, KindReviewSettings, KindSetQuestionType,
		KindSetNumQuestions, KindSetTopic, KindSetDifficulty,
		KindEnableSpeech, KindDisableSpeech, KindContinue,
		KindOutOfScope, KindUnknown,
	}
	inputs := []string{"", "   ", "?!.,;", "set", "topic", "9999999999999999999 questions"}
	for _, k := range kinds {
		for _, in := range inputs {
			got := Extract(k, in)
			if got.Kind != k {
				t.Errorf("Extract(%q, %q).Kind = %q", k, in, got.Kind)
			}
		}
	}
}

func TestExtract_AnswerCarriesClause(t *testing.T) {
	in := Extract(KindAnswer, "it is B")
	if in.Answer != "it is B" {
		t.Errorf("Answer = %q, want the clause text", in.Answer)
	}
}
