package intent

import "regexp"

// rule is one intent's ordered pattern groups. A group is a handful of
// alternative phrasings for the same shape of command; groups are tried
// in order and every matching group counts toward the intent's score.
type rule struct {
	kind   Kind
	groups []*regexp.Regexp
}

// ruleTable drives clause matching. Order matters only for determinism;
// scoring is by match count with ties broken by context and priority.
//
// The patterns deliberately allow short free-text gaps (`.{1,20}`) between
// anchor words so that "upload my chemistry pdf" and "upload a pdf" both
// land on document_upload without enumerating every filler word.
var ruleTable = []rule{
	{KindDocumentUpload, compileAll(
		`(?i)\b(upload|add|attach|send).{1,20}(document|pdf|file|pptx|notes|material)s?\b`,
		`(?i)\b(document|pdf|file|pptx)s?.{1,20}(upload|add|attach|send)`,
		`(?i)\bi.{1,10}(want|like|need).{1,20}(upload|add).{1,20}(document|pdf|file)s?\b`,
	)},
	{KindStartReview, compileAll(
		`(?i)\b(start|begin|launch).{1,10}(review|quiz|test|practice|session)\b`,
		`(?i)\blet'?s (start|begin|do).{1,10}(review|quiz|test|practice)\b`,
		`(?i)\bi.{1,10}(want|like|ready).{1,10}(start|begin|do).{1,10}(review|quiz|test)\b`,
		`(?i)\b(quiz|test)\s+me\b`,
	)},
	{KindStopReview, compileAll(
		`(?i)\b(stop|end|finish|quit|exit|terminate).{1,10}(review|quiz|test|session|practice)\b`,
		`(?i)\b(cancel|halt).{1,10}(review|quiz|test|session|practice)\b`,
	)},
	{KindReviewStatus, compileAll(
		`(?i)\b(what.{1,10}(status|progress)|how.{1,10}(doing|progressing))\b`,
		`(?i)\b(status|progress).{1,10}(review|quiz|test|session)\b`,
		`(?i)\bhow.{1,10}(am|are|is|was).{1,10}(doing|performing|scoring)\b`,
		`(?i)\b(score|results?)\s+so\s+far\b`,
	)},
	{KindReviewSettings, compileAll(
		`(?i)\b(what|show|display|list).{1,15}(settings|options|configuration)\b`,
		`(?i)\bwhat.{1,10}(is|are).{1,10}(current|available).{1,10}(settings|options)\b`,
		`(?i)\bcurrent.{1,10}(settings|options|configuration)\b`,
		`(?i)\bsettings.{1,10}(now|current|available)\b`,
	)},
	{KindSetQuestionType, compileAll(
		`(?i)\b(set|change|switch|use).{1,10}question.{1,10}(type|style|format).{1,10}(to|as).{1,10}(multiple.?choice|free.?text|open.?ended)\b`,
		`(?i)\b(use|do|set|make).{1,10}(multiple.?choice|free.?text|open.?ended).{1,10}(question|format|style)s?\b`,
		`(?i)\b(multiple.?choice|free.?text|open.?ended).{1,10}(question|format|style)s?\b`,
		`(?i)\bquestion\s+type\s+(to|as)\s+(multiple.?choice|free.?text|open.?ended|mc)\b`,
	)},
	{KindSetNumQuestions, compileAll(
		`(?i)\b\d+\s+questions?\b`,
		`(?i)\bquestions?\s+\d+\b`,
		`(?i)\b(set|use|do|want|have|give|ask|make).{0,10}\d+.{0,5}questions?\b`,
		`(?i)\b(set|change|make).{0,10}(number|amount|count).{0,10}questions?.{0,10}\d+\b`,
		`(?i)\b(prepare|create)\b.{0,5}\d+.{0,5}questions?\b`,
		`(?i)\bquestions?.{0,5}(should|will).{0,5}be.{0,5}\d+\b`,
	)},
	{KindSetTopic, compileAll(
		`(?i)\b(set|change|focus|concentrate).{1,10}(topic|subject)s?\b`,
		`(?i)\b(topic|subject)s?.{1,5}(should|will|must).{1,5}(be|include)\b`,
		`(?i)\bfocus\s+on\b`,
		`(?i)\b(topic|subject)s?\s*:`,
	)},
	{KindSetDifficulty, compileAll(
		`(?i)\b(set|change|use).{1,10}(difficulty|level).{1,10}(to|as|at).{1,10}(easy|medium|hard|simple|intermediate|difficult|challenging)\b`,
		`(?i)\b(easy|medium|hard|simple|difficult|challenging).{1,10}(difficulty|level|questions|mode)\b`,
		`(?i)\b(make|set).{1,10}(it|questions|things).{1,10}(easy|easier|medium|hard|harder|simple|difficult|challenging)\b`,
		`(?i)\bdifficulty\s+(to|as)?\s*(easy|medium|hard)\b`,
	)},
	{KindEnableSpeech, compileAll(
		`(?i)\b(enable|activate|turn.{1,5}on).{1,10}(speech|voice|microphone|speaking|recognition)\b`,
		`(?i)\b(use|start).{1,10}(speech|voice).{1,10}(recognition|input|mode)\b`,
		`(?i)\b(start|begin).{1,10}(speech|voice|speaking|talking)\b`,
		`(?i)\bi.{1,10}(want|like).{1,10}(speak|talk).{1,10}(to|with|instead)`,
	)},
	{KindDisableSpeech, compileAll(
		`(?i)\b(disable|deactivate|turn.{1,5}off).{1,10}(speech|voice|microphone|speaking|recognition)\b`,
		`(?i)\b(stop|don'?t).{1,10}(use|listen).{1,10}(speech|voice|microphone)\b`,
		`(?i)\b(type|text).{1,10}(only|instead).{1,10}(speech|voice|talking)\b`,
	)},
	{KindContinue, compileAll(
		`(?i)\b(next|continue|proceed|go on|go ahead|move on)\b`,
		`(?i)\b(next question|another question|ask another|ask next)\b`,
		`(?i)^(ok|okay|sure|yes|yep|yeah|y|alright|fine|ready|got it)\b`,
	)},
	{KindOutOfScope, compileAll(
		`(?i)\b(who|what|where|when|why|how).{1,30}(world|universe|life|economy|politics|news|weather)\b`,
		`(?i)\b(tell|explain|describe).{1,20}(yourself|the news|politics)\b`,
		`(?i)\bwhat.{1,5}(is|are).{1,20}(meaning|purpose|goal|objective).{1,10}(life|universe|existence)\b`,
		`(?i)\b(browse|search|find|google|look up|navigate).{1,20}(internet|web|online)\b`,
	)},
	{KindUnknown, compileAll(
		`(?i)\b(help|assist|not sure|confused|lost)\b`,
	)},
}

// capabilityQuestion and domainVocabulary implement the dedicated unknown
// detector: a "what can/do you ..." style question that mentions none of
// the assistant's vocabulary is unknown rather than an answer.
var (
	capabilityQuestion = regexp.MustCompile(`(?i)\b(what|how|can you|would you|could you|do|work|function|capabilit)`)
	domainVocabulary   = regexp.MustCompile(`(?i)\b(review|document|speech|question|topic|difficulty|setting|upload|start|stop|status|answer|quiz)`)
)

// matchesUnknown reports whether the whole utterance looks like a
// capability question outside the assistant's vocabulary.
func matchesUnknown(text string) bool {
	for _, re := range ruleTable[len(ruleTable)-1].groups {
		if re.MatchString(text) {
			return true
		}
	}
	return capabilityQuestion.MatchString(text) && !domainVocabulary.MatchString(text)
}

// matchesOutOfScope reports whether the whole utterance matches a
// dedicated out-of-scope pattern.
func matchesOutOfScope(text string) bool {
	for _, r := range ruleTable {
		if r.kind != KindOutOfScope {
			continue
		}
		for _, re := range r.groups {
			if re.MatchString(text) {
				return true
			}
		}
	}
	for _, re := range outOfScopeMarkers {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
