package intent

import "testing"

func TestScoreContext_DirectMarkersWeighDouble(t *testing.T) {
	scores := ScoreContext("start the quiz session")

	if scores[DomainReview] < 4 {
		t.Errorf("review score = %d, want >= 4 (two markers x2)", scores[DomainReview])
	}
	if scores[DomainSpeech] != 0 {
		t.Errorf("speech score = %d, want 0", scores[DomainSpeech])
	}
}

func TestScoreContext_AdjacencyBonus(t *testing.T) {
	// "audio" is not a speech marker but nudges the speech domain.
	scores := ScoreContext("turn on audio")

	if scores[DomainSpeech] != 1 {
		t.Errorf("speech score = %d, want 1 (adjacency only)", scores[DomainSpeech])
	}
}

func TestScoreContext_OutOfScopePenalty(t *testing.T) {
	with := ScoreContext("start the quiz session")
	without := ScoreContext("start the quiz session and tell me the news")

	for _, d := range domainOrder {
		if without[d] != with[d]-outOfScopePenalty {
			t.Errorf("domain %s: score = %d, want %d (penalized)", d, without[d], with[d]-outOfScopePenalty)
		}
	}
}

func TestDominantDomain_Deterministic(t *testing.T) {
	// All-zero scores resolve to the first enumerated domain.
	scores := ScoreContext("hello there")
	if d := DominantDomain(scores); d != DomainReview {
		t.Errorf("DominantDomain(zeros) = %s, want review (enumeration order)", d)
	}

	if d := DominantDomain(ScoreContext("enable the microphone for voice input")); d != DomainSpeech {
		t.Error("expected speech to dominate")
	}
}
