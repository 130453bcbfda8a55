package intent

import "regexp"

// Domain is a coarse topical area used to break ties between
// structurally similar patterns ("start ..." could open a review
// session or switch on the microphone).
type Domain string

const (
	DomainReview   Domain = "review"
	DomainSpeech   Domain = "speech"
	DomainDocument Domain = "document"
	DomainSettings Domain = "settings"
)

// domainOrder fixes iteration order so arg-max ties resolve deterministically.
var domainOrder = []Domain{DomainReview, DomainSpeech, DomainDocument, DomainSettings}

// domainMarkers are the direct keyword patterns per domain. Each
// word-boundary hit counts double against the adjacency bonuses below.
var domainMarkers = map[Domain][]*regexp.Regexp{
	DomainReview: compileAll(
		`(?i)\breview\b`, `(?i)\bquiz\b`, `(?i)\btest\b`, `(?i)\bsession\b`,
		`(?i)\bpractice\b`, `(?i)\bquestions?\b`, `(?i)\bdifficulty\b`,
	),
	DomainSpeech: compileAll(
		`(?i)\bspeech\b`, `(?i)\bvoice\b`, `(?i)\btalk\b`, `(?i)\blisten\b`,
		`(?i)\bmicrophone\b`, `(?i)\bspeak\b`, `(?i)\brecognition\b`,
	),
	DomainDocument: compileAll(
		`(?i)\bdocuments?\b`, `(?i)\bfiles?\b`, `(?i)\bpdf\b`, `(?i)\bpptx\b`,
		`(?i)\bupload\b`, `(?i)\btext\b`, `(?i)\bmaterial\b`,
	),
	DomainSettings: compileAll(
		`(?i)\bsettings?\b`, `(?i)\boptions?\b`, `(?i)\bconfigure\b`,
		`(?i)\bpreferenc`, `(?i)\bcustom\b`,
	),
}

// domainAdjacent are semantically nearby terms that add a small bonus,
// e.g. "audio" nudges toward the speech domain without being a marker.
var domainAdjacent = map[Domain]*regexp.Regexp{
	DomainReview:   regexp.MustCompile(`(?i)\b(ask|answer|score)\b`),
	DomainSpeech:   regexp.MustCompile(`(?i)\b(talk|hear|audio|sound)\b`),
	DomainDocument: regexp.MustCompile(`(?i)\b(content|read|material|learn)\b`),
	DomainSettings: regexp.MustCompile(`(?i)\b(change|adjust|modify|set)\b`),
}

// outOfScopeMarkers penalize every domain when the utterance strays from
// study review entirely (news, philosophy, "who are you", web browsing).
var outOfScopeMarkers = compileAll(
	`(?i)\b(news|weather|sports|politics|economy|stocks?|crypto|bitcoin)\b`,
	`(?i)\b(meaning of life|universe|philosophy|religion|beliefs)\b`,
	`(?i)\b(tell me about yourself|who are you|how do you work|what can you do)\b`,
	`(?i)\b(browse|google|search the web|surf)\b`,
)

// outOfScopePenalty is subtracted from every domain score when an
// out-of-scope marker is present.
const outOfScopePenalty = 1

// ScoreContext counts domain markers across the utterance and returns a
// score per domain. Direct marker hits weigh 2, adjacent terms add 1.
func ScoreContext(text string) map[Domain]int {
	scores := make(map[Domain]int, len(domainOrder))
	for _, d := range domainOrder {
		n := 0
		for _, re := range domainMarkers[d] {
			n += len(re.FindAllStringIndex(text, -1)) * 2
		}
		if domainAdjacent[d].MatchString(text) {
			n++
		}
		scores[d] = n
	}

	for _, re := range outOfScopeMarkers {
		if re.MatchString(text) {
			for _, d := range domainOrder {
				scores[d] -= outOfScopePenalty
			}
			break
		}
	}

	return scores
}

// DominantDomain returns the highest scoring domain. Ties resolve in
// domainOrder, so the result is deterministic for a given utterance.
func DominantDomain(scores map[Domain]int) Domain {
	best := domainOrder[0]
	for _, d := range domainOrder[1:] {
		if scores[d] > scores[best] {
			best = d
		}
	}
	return best
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}
