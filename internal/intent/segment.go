package intent

import (
	"regexp"
	"sort"
	"strings"
)

// Clause segmentation. An utterance like "set difficulty to hard and
// question type to free text" carries two commands; clauses are the unit
// the pattern matcher classifies, so each command must end up in its own
// self-contained clause.

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)

	// compoundTriggerRe gates marker carving: a settings verb plus a
	// joining word is the shape of a compound setting command.
	compoundTriggerRe = regexp.MustCompile(`(?i)\b(set|change|make|use|switch)\b.*\b(and|with|,)`)

	// conjunctionSplitRe finds "and <command verb>" / "then <command verb>"
	// boundaries. The verb requirement keeps ordinary prose ("cats and
	// dogs") in one clause. Group 1 marks where the next clause begins.
	conjunctionSplitRe = regexp.MustCompile(`(?i)\b(?:and|then),?\s+((?:set|change|make|start|stop|begin|enable|disable|use|switch|focus|turn|show|quiz|let)\b)`)

	// shorthandRe catches "and X to Y" tails that skip the setting noun,
	// e.g. "... and the rest to free text". X is group 1, Y is group 2.
	shorthandRe = regexp.MustCompile(`(?i)\band\s+(?:the\s+)?([a-z]+(?:\s+[a-z]+)?)\s+to\s+([a-z0-9][a-z0-9 -]*)`)

	commandVerbRe = regexp.MustCompile(`(?i)^(set|change|make|use|switch|focus|do|give|start|stop|enable|disable|turn|show)\b`)

	trailingJoinerRe = regexp.MustCompile(`(?i)[\s,;]*(and|with|then)?[\s,;]*$`)
)

// settingMarker locates one configurable setting inside a fragment.
type settingMarker struct {
	kind Kind
	re   *regexp.Regexp
}

// settingMarkers in carving order. Value words (e.g. "multiple choice")
// count as question-type markers so compact commands without the word
// "type" still carve correctly.
var settingMarkers = []settingMarker{
	{KindSetDifficulty, regexp.MustCompile(`(?i)\b(difficulty|level)\b`)},
	{KindSetQuestionType, regexp.MustCompile(`(?i)\bquestion\s+(type|style|format)s?\b|\b(multiple.?choice|free.?text|open.?ended)\b`)},
	{KindSetNumQuestions, regexp.MustCompile(`(?i)\b(number|amount|count)\s+of\s+questions?\b|\b\d+\s+questions?\b`)},
	{KindSetTopic, regexp.MustCompile(`(?i)\b(topics?|subjects?)\b|\bfocus\s+on\b`)},
}

// Segment splits an utterance into independently classifiable clauses.
// The result can be longer than the number of sentences: compound
// setting commands synthesize one imperative clause per setting.
func Segment(text string) []string {
	var clauses []string

	for _, frag := range splitSentences(text) {
		if spans := carveSettings(frag); len(spans) >= 2 {
			clauses = append(clauses, spans...)
		} else {
			clauses = append(clauses, splitConjunctions(frag)...)
		}
		if syn, ok := synthesizeShorthand(frag); ok {
			clauses = append(clauses, syn)
		}
	}

	if len(clauses) == 0 {
		t := strings.TrimSpace(text)
		if t != "" {
			clauses = []string{t}
		}
	}
	return clauses
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		s = strings.TrimRight(s, ".!?")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// carveSettings cuts a compound setting command at each setting marker,
// producing one self-contained clause per setting. Returns nil unless at
// least two distinct settings are present.
func carveSettings(frag string) []string {
	if !compoundTriggerRe.MatchString(frag) {
		return nil
	}

	// First occurrence per setting kind; later hits of the same kind are
	// usually the value ("free text"), not a second command.
	var cuts []int
	seen := make(map[Kind]bool)
	for _, m := range settingMarkers {
		loc := m.re.FindStringIndex(frag)
		if loc == nil || seen[m.kind] {
			continue
		}
		seen[m.kind] = true
		cuts = append(cuts, loc[0])
	}
	if len(cuts) < 2 {
		return nil
	}
	sort.Ints(cuts)

	var spans []string
	for i := range cuts {
		// The leading span runs from the fragment start so the original
		// command verb stays attached.
		start := 0
		if i > 0 {
			start = cuts[i]
		}
		end := len(frag)
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		span := strings.TrimSpace(frag[start:end])
		span = trailingJoinerRe.ReplaceAllString(span, "")
		span = strings.TrimSpace(span)
		if span == "" {
			continue
		}
		if !commandVerbRe.MatchString(span) {
			span = "set " + span
		}
		spans = append(spans, span)
	}
	return spans
}

// splitConjunctions splits on "and"/"then" only when a command verb
// follows, so prose answers stay whole.
func splitConjunctions(frag string) []string {
	var out []string
	rest := frag
	for {
		loc := conjunctionSplitRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		head := strings.TrimSpace(rest[:loc[0]])
		if head != "" {
			out = append(out, head)
		}
		rest = rest[loc[2]:] // next clause starts at the command verb
	}
	rest = strings.TrimSpace(rest)
	if rest != "" {
		out = append(out, rest)
	}
	return out
}

// synthesizeShorthand turns an "and X to Y" tail without a setting noun
// into an explicit clause when the value names a known setting.
func synthesizeShorthand(frag string) (string, bool) {
	for _, m := range shorthandRe.FindAllStringSubmatch(frag, -1) {
		subject, value := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if hasSettingNoun(subject) || commandVerbRe.MatchString(subject) {
			continue
		}
		switch {
		case difficultyValueRe.MatchString(value):
			return "set difficulty to " + value, true
		case questionTypeValueRe.MatchString(value):
			return "set question type to " + value, true
		case isCountValue(value):
			return "set number of questions to " + value, true
		}
	}
	return "", false
}

var (
	difficultyValueRe   = regexp.MustCompile(`(?i)^(easy|simple|beginner|medium|moderate|intermediate|hard|difficult|challenging|advanced)$`)
	questionTypeValueRe = regexp.MustCompile(`(?i)^(multiple.?choice|mc|free.?text|open.?ended)$`)
	digitsRe            = regexp.MustCompile(`^\d+$`)
)

func isCountValue(v string) bool {
	if digitsRe.MatchString(v) {
		return true
	}
	_, ok := wordToNumber(v)
	return ok
}

func hasSettingNoun(s string) bool {
	for _, m := range settingMarkers {
		if m.re.MatchString(s) {
			return true
		}
	}
	return false
}
