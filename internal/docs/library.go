// Package docs is the document pipeline: it ingests the learner's
// study material, splits it into retrievable passages, and derives the
// topic list the review session can be restricted to.
//
// Retrieval is a keyword-overlap scorer over passages. The boundary is
// the same as a vector search would present (topics in, passages out),
// so the scorer can be swapped without touching the dialogue machine.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Passage is one retrievable chunk of ingested material.
type Passage struct {
	Source  string // file or label the passage came from
	Heading string // nearest markdown heading, lowercased; may be empty
	Text    string
}

// Chunking parameters, in words.
const (
	passageWords = 180
	overlapWords = 30
)

// Library holds all ingested material for one conversation.
// Not safe for concurrent use.
type Library struct {
	passages []Passage
	topics   []string
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{}
}

// IngestFile reads a plain-text or markdown file and ingests it.
// Returns the number of passages added.
func (l *Library) IngestFile(path string) (int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".markdown", "":
	default:
		return 0, fmt.Errorf("unsupported document type %q (only plain text and markdown)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading document: %w", err)
	}

	source := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return l.Ingest(source, string(data)), nil
}

// Ingest splits text into passages and adds them under source.
// Markdown headings become topics; heading-less text gets the source
// name as its topic. Returns the number of passages added.
func (l *Library) Ingest(source, text string) int {
	sections := splitSections(text)

	added := 0
	for _, sec := range sections {
		heading := strings.ToLower(sec.heading)
		for _, chunk := range chunkWords(sec.body, passageWords, overlapWords) {
			l.passages = append(l.passages, Passage{
				Source:  source,
				Heading: heading,
				Text:    chunk,
			})
			added++
		}
		if heading != "" {
			l.addTopic(heading)
		}
	}

	if added > 0 && len(sections) == 1 && sections[0].heading == "" {
		l.addTopic(strings.ToLower(source))
	}
	return added
}

// Loaded reports whether any material has been ingested.
func (l *Library) Loaded() bool {
	return len(l.passages) > 0
}

// Topics lists the available topics in ingestion order.
func (l *Library) Topics() []string {
	return l.topics
}

// Passages returns the number of ingested passages.
func (l *Library) Passages() int {
	return len(l.passages)
}

// Search returns up to limit passage texts relevant to the topics.
// With no topics it samples across the whole library so consecutive
// questions draw on different material.
func (l *Library) Search(topics []string, limit int) []string {
	if limit <= 0 || len(l.passages) == 0 {
		return nil
	}

	if len(topics) == 0 {
		return l.sample(limit)
	}

	type scored struct {
		idx   int
		score int
	}
	var hits []scored
	for i, p := range l.passages {
		s := scorePassage(p, topics)
		if s > 0 {
			hits = append(hits, scored{idx: i, score: s})
		}
	}

	// Highest score first; ties keep ingestion order.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) == 0 {
		return l.sample(limit)
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = l.passages[h.idx].Text
	}
	return out
}

// sample spreads limit picks evenly over the passage list.
func (l *Library) sample(limit int) []string {
	n := len(l.passages)
	if limit >= n {
		out := make([]string, n)
		for i, p := range l.passages {
			out[i] = p.Text
		}
		return out
	}

	out := make([]string, 0, limit)
	step := n / limit
	for i := 0; i < n && len(out) < limit; i += step {
		out = append(out, l.passages[i].Text)
	}
	return out
}

// scorePassage counts topic-word hits in the passage, with heading
// matches weighted double.
func scorePassage(p Passage, topics []string) int {
	body := strings.ToLower(p.Text)
	score := 0
	for _, topic := range topics {
		for _, word := range strings.Fields(strings.ToLower(topic)) {
			if len(word) < 3 {
				continue
			}
			if strings.Contains(p.Heading, word) {
				score += 2
			}
			if strings.Contains(body, word) {
				score++
			}
		}
	}
	return score
}

func (l *Library) addTopic(topic string) {
	for _, t := range l.topics {
		if t == topic {
			return
		}
	}
	l.topics = append(l.topics, topic)
}

type section struct {
	heading string
	body    string
}

// splitSections carves markdown into heading-delimited sections. Text
// before the first heading (or all of a plain file) forms a headingless
// section.
func splitSections(text string) []section {
	var sections []section
	cur := section{}
	flush := func() {
		if strings.TrimSpace(cur.body) != "" {
			cur.body = strings.TrimSpace(cur.body)
			sections = append(sections, cur)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			flush()
			cur = section{heading: strings.TrimSpace(strings.TrimLeft(trimmed, "# "))}
			continue
		}
		cur.body += line + "\n"
	}
	flush()

	if len(sections) == 0 {
		return []section{{}}
	}
	return sections
}

// chunkWords splits body into chunks of at most size words, with the
// last overlap words repeated at the start of the next chunk.
func chunkWords(body string, size, overlap int) []string {
	words := strings.Fields(body)
	if len(words) == 0 {
		return nil
	}
	if len(words) <= size {
		return []string{strings.Join(words, " ")}
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(words); start += step {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
