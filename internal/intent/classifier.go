package intent

import (
	"sort"
	"strings"
)

// Classifier turns one free-form utterance into one primary intent plus
// an ordered list of additional intents. It is stateless: classifying
// the same utterance twice yields the identical Result.
type Classifier struct{}

// New creates a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// settingScanOrder ranks compound setting commands: difficulty wins
// primacy, then question type, count, topic. This is the one total
// order used everywhere settings compete.
var settingScanOrder = []Kind{
	KindSetDifficulty,
	KindSetQuestionType,
	KindSetNumQuestions,
	KindSetTopic,
}

// Classify resolves text into a Result. It never fails: utterances that
// match nothing fall back to an answer intent carrying the full text.
func (c *Classifier) Classify(text string) Result {
	raw := text
	text = strings.TrimSpace(text)

	scores := ScoreContext(text)
	dominant := DominantDomain(scores)

	// Fast path: a bare question-count phrase anywhere in the utterance
	// resolves immediately, then a second pass collects the rest.
	if n := extractNumQuestions(text); n > 0 {
		primary := Intent{Kind: KindSetNumQuestions, Text: text, NumQuestions: n}
		return Result{
			Primary:    primary,
			Additional: c.findOtherIntents(text, dominant, map[Kind]bool{KindSetNumQuestions: true}),
			RawText:    raw,
		}
	}

	// Compound-settings scan: two or more settings in one utterance are
	// resolved without clause segmentation, covering compact commands
	// like "difficulty hard, free text".
	if found := scanCompoundSettings(text); len(found) >= 2 {
		return Result{
			Primary:    found[0],
			Additional: found[1:],
			RawText:    raw,
		}
	}

	var detected []Intent
	seen := make(map[Kind]bool)
	for _, clause := range Segment(text) {
		kind, ok := matchClause(clause, dominant)
		if !ok || seen[kind] {
			continue
		}
		seen[kind] = true
		detected = append(detected, Extract(kind, clause))
	}

	if len(detected) == 0 {
		return Result{Primary: fallbackIntent(text), RawText: raw}
	}

	// Stable sort by the fixed priority table: the highest-priority
	// intent drives the reply, the rest queue behind it in order.
	sort.SliceStable(detected, func(i, j int) bool {
		return Priority(detected[i].Kind) < Priority(detected[j].Kind)
	})

	return Result{
		Primary:    detected[0],
		Additional: detected[1:],
		RawText:    raw,
	}
}

// fallbackIntent resolves an utterance no clause matched: dedicated
// out-of-scope and unknown detectors first, then the universal answer
// fallback (every utterance is classifiable).
func fallbackIntent(text string) Intent {
	switch {
	case matchesOutOfScope(text):
		return Intent{Kind: KindOutOfScope, Text: text}
	case matchesUnknown(text):
		return Intent{Kind: KindUnknown, Text: text}
	}
	return Intent{Kind: KindAnswer, Text: text, Answer: text}
}

// scanCompoundSettings probes each setting directly on the whole
// utterance. A setting counts only when its pattern matches and a value
// is extractable; results come back in settingScanOrder.
func scanCompoundSettings(text string) []Intent {
	var found []Intent
	for _, kind := range settingScanOrder {
		if !ruleMatches(kind, text) {
			continue
		}
		in := Extract(kind, text)
		if !settingHasValue(in) {
			continue
		}
		found = append(found, in)
	}
	return found
}

func settingHasValue(in Intent) bool {
	switch in.Kind {
	case KindSetDifficulty:
		return in.Difficulty != ""
	case KindSetQuestionType:
		return in.QuestionType != ""
	case KindSetNumQuestions:
		return in.NumQuestions > 0
	case KindSetTopic:
		return len(in.Topics) > 0
	}
	return false
}

// ruleMatches reports whether any pattern group for kind matches text.
func ruleMatches(kind Kind, text string) bool {
	for _, r := range ruleTable {
		if r.kind != kind {
			continue
		}
		for _, re := range r.groups {
			if re.MatchString(text) {
				return true
			}
		}
	}
	return false
}

// findOtherIntents is the explicit second pass after a fast-path hit:
// re-scan the utterance's clauses for every intent not in exclude and
// return the findings in priority order.
func (c *Classifier) findOtherIntents(text string, dominant Domain, exclude map[Kind]bool) []Intent {
	var found []Intent
	seen := make(map[Kind]bool)
	for _, clause := range Segment(text) {
		for _, r := range ruleTable {
			if exclude[r.kind] || seen[r.kind] {
				continue
			}
			for _, re := range r.groups {
				if re.MatchString(clause) {
					seen[r.kind] = true
					found = append(found, Extract(r.kind, clause))
					break
				}
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return Priority(found[i].Kind) < Priority(found[j].Kind)
	})
	return found
}

// matchClause tests one clause against every intent's pattern groups.
// Several intents matching is resolved by the dominant-domain tie-break
// for the known ambiguous pair, then raw match count, then priority.
func matchClause(clause string, dominant Domain) (Kind, bool) {
	counts := make(map[Kind]int)
	var order []Kind
	for _, r := range ruleTable {
		n := 0
		for _, re := range r.groups {
			if re.MatchString(clause) {
				n++
			}
		}
		if n > 0 {
			if _, ok := counts[r.kind]; !ok {
				order = append(order, r.kind)
			}
			counts[r.kind] += n
		}
	}

	if len(counts) == 0 {
		return "", false
	}

	// "start ..." is the classic ambiguity: start the review or start
	// voice input. The dominant context domain decides.
	if counts[KindStartReview] > 0 && counts[KindEnableSpeech] > 0 {
		switch dominant {
		case DomainSpeech:
			delete(counts, KindStartReview)
		case DomainReview:
			delete(counts, KindEnableSpeech)
		}
	}

	best := Kind("")
	for _, k := range order {
		n, ok := counts[k]
		if !ok {
			continue
		}
		if best == "" {
			best = k
			continue
		}
		switch {
		case n > counts[best]:
			best = k
		case n == counts[best] && Priority(k) < Priority(best):
			best = k
		}
	}
	return best, best != ""
}
