package intent

import (
	"reflect"
	"testing"

	"github.com/abhisek/studiz/internal/quizgen"
)

func TestClassify_SetNumQuestions_Digits(t *testing.T) {
	c := New()
	res := c.Classify("set 10 questions")

	if res.Primary.Kind != KindSetNumQuestions {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindSetNumQuestions)
	}
	if res.Primary.NumQuestions != 10 {
		t.Errorf("NumQuestions = %d, want 10", res.Primary.NumQuestions)
	}
	if len(res.Additional) != 0 {
		t.Errorf("Additional = %v, want empty", res.Additional)
	}
}

func TestClassify_SetNumQuestions_WordNumber(t *testing.T) {
	c := New()
	res := c.Classify("set twenty-five questions")

	if res.Primary.Kind != KindSetNumQuestions {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindSetNumQuestions)
	}
	if res.Primary.NumQuestions != 25 {
		t.Errorf("NumQuestions = %d, want 25", res.Primary.NumQuestions)
	}
}

func TestClassify_CompoundSettings_PriorityOrder(t *testing.T) {
	c := New()
	res := c.Classify("set difficulty to hard and question type to free text")

	if res.Primary.Kind != KindSetDifficulty {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindSetDifficulty)
	}
	if res.Primary.Difficulty != quizgen.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", res.Primary.Difficulty)
	}

	var qt *Intent
	for i := range res.Additional {
		if res.Additional[i].Kind == KindSetQuestionType {
			qt = &res.Additional[i]
		}
	}
	if qt == nil {
		t.Fatalf("Additional = %v, want a set_question_type intent", res.Additional)
	}
	if qt.QuestionType != quizgen.TypeFreeText {
		t.Errorf("QuestionType = %q, want free-text", qt.QuestionType)
	}
}

func TestClassify_FastPathCollectsOtherIntents(t *testing.T) {
	c := New()
	res := c.Classify("10 questions and make it easy please")

	if res.Primary.Kind != KindSetNumQuestions {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindSetNumQuestions)
	}
	if res.Primary.NumQuestions != 10 {
		t.Errorf("NumQuestions = %d, want 10", res.Primary.NumQuestions)
	}
	if len(res.Additional) == 0 {
		t.Fatal("expected additional intents from second pass")
	}
	if res.Additional[0].Kind != KindSetDifficulty {
		t.Errorf("Additional[0].Kind = %q, want %q", res.Additional[0].Kind, KindSetDifficulty)
	}
	if res.Additional[0].Difficulty != quizgen.DifficultyEasy {
		t.Errorf("Additional[0].Difficulty = %q, want easy", res.Additional[0].Difficulty)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := New()
	utterances := []string{
		"set 10 questions",
		"set difficulty to hard and question type to free text",
		"focus on neural networks and data science",
		"the mitochondria is the powerhouse of the cell",
		"",
	}
	for _, u := range utterances {
		a := c.Classify(u)
		b := c.Classify(u)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Classify(%q) not idempotent:\nfirst:  %+v\nsecond: %+v", u, a, b)
		}
	}
}

func TestClassify_TopicList(t *testing.T) {
	c := New()
	res := c.Classify("focus on neural networks and data science")

	if res.Primary.Kind != KindSetTopic {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindSetTopic)
	}
	want := []string{"neural networks", "data science"}
	if !reflect.DeepEqual(res.Primary.Topics, want) {
		t.Errorf("Topics = %v, want %v", res.Primary.Topics, want)
	}
	if res.Primary.TopicExtractionFailed {
		t.Error("TopicExtractionFailed = true, want false")
	}
}

func TestClassify_TopicMarkerWithoutValue(t *testing.T) {
	c := New()
	res := c.Classify("set the topic to")

	if res.Primary.Kind != KindSetTopic {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindSetTopic)
	}
	if !res.Primary.TopicExtractionFailed {
		t.Error("TopicExtractionFailed = false, want true")
	}
	if len(res.Primary.Topics) != 0 {
		t.Errorf("Topics = %v, want empty", res.Primary.Topics)
	}
}

func TestClassify_AnswerFallback(t *testing.T) {
	c := New()
	text := "the mitochondria is the powerhouse of the cell"
	res := c.Classify(text)

	if res.Primary.Kind != KindAnswer {
		t.Fatalf("Primary.Kind = %q, want %q", res.Primary.Kind, KindAnswer)
	}
	if res.Primary.Answer != text {
		t.Errorf("Answer = %q, want the full utterance", res.Primary.Answer)
	}
	if res.RawText != text {
		t.Errorf("RawText = %q, want %q", res.RawText, text)
	}
}

func TestClassify_OutOfScope(t *testing.T) {
	c := New()
	res := c.Classify("tell me about the news")

	if res.Primary.Kind != KindOutOfScope {
		t.Errorf("Primary.Kind = %q, want %q", res.Primary.Kind, KindOutOfScope)
	}
}

func TestClassify_UnknownCapabilityQuestion(t *testing.T) {
	c := New()
	res := c.Classify("what are you capable of doing")

	if res.Primary.Kind != KindUnknown {
		t.Errorf("Primary.Kind = %q, want %q", res.Primary.Kind, KindUnknown)
	}
}

func TestClassify_StartReview(t *testing.T) {
	c := New()
	res := c.Classify("let's start the quiz")

	if res.Primary.Kind != KindStartReview {
		t.Errorf("Primary.Kind = %q, want %q", res.Primary.Kind, KindStartReview)
	}
}

func TestClassify_Continue(t *testing.T) {
	c := New()
	for _, u := range []string{"next question please", "ok", "go ahead"} {
		res := c.Classify(u)
		if res.Primary.Kind != KindContinue {
			t.Errorf("Classify(%q).Primary.Kind = %q, want %q", u, res.Primary.Kind, KindContinue)
		}
	}
}

func TestClassify_EmptyUtterance(t *testing.T) {
	c := New()
	res := c.Classify("")

	if res.Primary.Kind != KindAnswer {
		t.Errorf("Primary.Kind = %q, want the answer fallback", res.Primary.Kind)
	}
}

func TestMatchClause_DominantDomainTieBreak(t *testing.T) {
	// "start speaking practice" matches both start_review (practice) and
	// enable_speech (speaking); the dominant domain decides.
	clause := "start speaking practice"

	kind, ok := matchClause(clause, DomainSpeech)
	if !ok || kind != KindEnableSpeech {
		t.Errorf("matchClause(%q, speech) = %q, want %q", clause, kind, KindEnableSpeech)
	}

	kind, ok = matchClause(clause, DomainReview)
	if !ok || kind != KindStartReview {
		t.Errorf("matchClause(%q, review) = %q, want %q", clause, kind, KindStartReview)
	}
}

func TestPriority_OrdersSettingsFirst(t *testing.T) {
	if !(Priority(KindSetDifficulty) < Priority(KindEnableSpeech)) {
		t.Error("settings must outrank speech toggles")
	}
	if !(Priority(KindEnableSpeech) < Priority(KindStartReview)) {
		t.Error("speech toggles must outrank session control")
	}
	if !(Priority(KindStartReview) < Priority(KindReviewStatus)) {
		t.Error("session control must outrank status queries")
	}
	if !(Priority(KindAnswer) < Priority(KindUnknown)) {
		t.Error("answer must outrank unknown")
	}
	if !(Priority(KindUnknown) < Priority(KindOutOfScope)) {
		t.Error("unknown must outrank out_of_scope")
	}
}
