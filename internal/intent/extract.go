package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/studiz/internal/quizgen"
)

// Per-intent field extraction. Given a clause and the intent it matched,
// pull out the structured payload. Absence of a parseable field is a
// zero value or an explicit failed flag, never a panic.

// Extract builds an Intent for kind from the given clause, extracting
// whatever structured fields the kind calls for.
func Extract(kind Kind, clause string) Intent {
	in := Intent{Kind: kind, Text: clause}

	switch kind {
	case KindSetQuestionType:
		in.QuestionType = extractQuestionType(clause)
	case KindSetNumQuestions:
		in.NumQuestions = extractNumQuestions(clause)
	case KindSetDifficulty:
		in.Difficulty = extractDifficulty(clause)
	case KindSetTopic:
		in.Topics = extractTopics(clause)
		in.TopicExtractionFailed = len(in.Topics) == 0
	case KindAnswer:
		in.Answer = clause
	}

	return in
}

var (
	multipleChoiceRe = regexp.MustCompile(`(?i)\b(multiple.?choice|mc)\b`)
	freeTextRe       = regexp.MustCompile(`(?i)\b(free.?text|open.?ended)\b`)
)

func extractQuestionType(clause string) quizgen.QuestionType {
	switch {
	case multipleChoiceRe.MatchString(clause):
		return quizgen.TypeMultipleChoice
	case freeTextRe.MatchString(clause):
		return quizgen.TypeFreeText
	}
	return ""
}

var (
	easyRe   = regexp.MustCompile(`(?i)\b(easy|easier|simple|beginner)\b`)
	mediumRe = regexp.MustCompile(`(?i)\b(medium|moderate|intermediate)\b`)
	hardRe   = regexp.MustCompile(`(?i)\b(hard|harder|difficult|challenging|advanced)\b`)
)

func extractDifficulty(clause string) quizgen.Difficulty {
	switch {
	case easyRe.MatchString(clause):
		return quizgen.DifficultyEasy
	case mediumRe.MatchString(clause):
		return quizgen.DifficultyMedium
	case hardRe.MatchString(clause):
		return quizgen.DifficultyHard
	}
	return ""
}

// Digit-based count shapes, tried in order. Each captures the number.
var digitCountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d+)\s+questions?\b`),
	regexp.MustCompile(`(?i)\bquestions?\s+(\d+)\b`),
	regexp.MustCompile(`(?i)\b(?:set|use|have|want|do|give|ask|make|prepare|create)\b.{0,15}?\b(\d+)\b.{0,5}questions?`),
	regexp.MustCompile(`(?i)\bquestions?.{0,15}?\b(?:be|is|to|as|at|of)\b.{0,5}?(\d+)\b`),
}

// Word-number variants of the same shapes.
var wordCountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(` + numberWordExpr + `)\s+questions?\b`),
	regexp.MustCompile(`(?i)\bquestions?\s+(` + numberWordExpr + `)\b`),
	regexp.MustCompile(`(?i)\b(?:set|use|have|want|do|give|ask|make|prepare|create)\b.{0,15}?\b(` + numberWordExpr + `)\b.{0,5}questions?`),
	regexp.MustCompile(`(?i)\bquestions?.{0,15}?\b(?:be|is|to|as|at|of)\b.{0,5}?\b(` + numberWordExpr + `)\b`),
}

// extractNumQuestions returns the requested question count, or 0 when no
// digit or word-number shape matches. Range checking is the settings
// handler's job, not the extractor's.
func extractNumQuestions(clause string) int {
	for _, re := range digitCountRes {
		if m := re.FindStringSubmatch(clause); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	for _, re := range wordCountRes {
		if m := re.FindStringSubmatch(clause); m != nil {
			if n, ok := wordToNumber(m[1]); ok {
				return n
			}
		}
	}
	return 0
}

// Topic extraction is layered: structured markers first, then text after
// a bare marker word, then significant tokens near a marker. Each layer
// only runs when the previous found nothing.

var structuredTopicRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:set|change|make)\b.{1,5}?(?:topics?|subjects?)\b.{0,5}?(?:to|as|about|:)\s*([^,.!?;]+(?:,[^.!?;]+)*)`),
	regexp.MustCompile(`(?i)\bfocus\s+on\s+(?:the\s+)?(?:topics?|subjects?)?\s*(?:of\s+)?:?\s*([^.!?;]+)`),
	regexp.MustCompile(`(?i)\b(?:topics?|subjects?)\b.{1,5}?(?:should|will|must|can)\b.{1,5}?(?:be|include|cover)\s*:?\s*([^.!?;]+)`),
	regexp.MustCompile(`(?i)\b(?:topics?|subjects?)\s*:\s*([^.!?;]+)`),
	regexp.MustCompile(`(?i)\b(?:about|regarding|concerning)\s+(?:the\s+)?(?:topics?|subjects?)?\s*:?\s*([^,.!?;]+)`),
}

var topicMarkerWords = []string{"topic", "subject", "focus", "about", "on"}

var topicConnectorRe = regexp.MustCompile(`(?i)^(to|on|be|is|are|should|will|can|must|the|a|an|of|:|;|,)\s+`)

var topicStopwords = map[string]bool{
	"set": true, "topic": true, "topics": true, "subject": true, "subjects": true,
	"focus": true, "on": true, "the": true, "to": true, "and": true, "for": true,
	"with": true, "should": true, "will": true, "can": true, "be": true,
	"about": true, "regarding": true, "want": true, "please": true, "this": true,
	"that": true, "these": true, "those": true, "make": true, "change": true,
	"modify": true, "create": true, "review": true, "questions": true,
}

func extractTopics(clause string) []string {
	var raw []string

	for _, re := range structuredTopicRes {
		for _, m := range re.FindAllStringSubmatch(clause, -1) {
			raw = append(raw, splitTopicList(m[1])...)
		}
		if len(raw) > 0 {
			break
		}
	}

	if len(raw) == 0 {
		raw = topicsAfterMarkers(clause)
	}

	if len(raw) == 0 {
		raw = significantTokensNearMarkers(clause)
	}

	return cleanTopics(raw)
}

// splitTopicList breaks "neural networks, data science and statistics"
// into individual topics.
func splitTopicList(s string) []string {
	parts := regexp.MustCompile(`(?i),\s*|\s+and\s+`).Split(s, -1)
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// topicsAfterMarkers takes the text immediately following a marker word,
// stripping leading connector words.
func topicsAfterMarkers(clause string) []string {
	lower := strings.ToLower(clause)
	for _, marker := range topicMarkerWords {
		re := regexp.MustCompile(`\b` + marker + `\b`)
		loc := re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		rest := strings.TrimSpace(clause[loc[1]:])
		for {
			stripped := topicConnectorRe.ReplaceAllString(rest, "")
			if stripped == rest {
				break
			}
			rest = strings.TrimSpace(stripped)
		}
		if rest == "" {
			continue
		}
		if m := regexp.MustCompile(`^[:;,]?\s*([^,.!?;]+)`).FindStringSubmatch(rest); m != nil {
			if t := strings.TrimSpace(m[1]); t != "" {
				return splitTopicList(t)
			}
		}
	}
	return nil
}

// significantTokensNearMarkers is the last resort: words of 3+ letters
// that appear after a marker word and are not command vocabulary.
func significantTokensNearMarkers(clause string) []string {
	var out []string
	words := regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9_-]{2,}\b`).FindAllString(clause, -1)
	for _, w := range words {
		if topicStopwords[strings.ToLower(w)] {
			continue
		}
		for _, marker := range topicMarkerWords {
			re := regexp.MustCompile(`(?i)\b` + marker + `\b.*?\b` + regexp.QuoteMeta(w) + `\b`)
			if re.MatchString(clause) {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

var topicEdgePunctRe = regexp.MustCompile(`^[^a-zA-Z0-9]+|[^a-zA-Z0-9]+$`)

var topicLeadingFillerRe = regexp.MustCompile(`(?i)^(the|a|an|is|are|be|to|of)\s+`)

// cleanTopics trims punctuation and leading fillers, drops one-letter
// leftovers, and deduplicates case-insensitively preserving order.
func cleanTopics(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range raw {
		t = topicEdgePunctRe.ReplaceAllString(t, "")
		t = strings.TrimSpace(topicLeadingFillerRe.ReplaceAllString(t, ""))
		if len(t) < 2 {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] || topicStopwords[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
