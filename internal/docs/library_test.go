package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const studyNotes = `# Neural Networks

A neural network is built from layers of connected units. The input
layer receives features, hidden layers transform them, and the output
layer produces the prediction.

# Model Evaluation

Overfitting happens when a model memorizes the training data. It is
detected by comparing training accuracy with validation accuracy.
`

func TestIngest_MarkdownHeadingsBecomeTopics(t *testing.T) {
	l := NewLibrary()
	added := l.Ingest("notes", studyNotes)
	if added != 2 {
		t.Fatalf("Ingest added %d passages, want 2", added)
	}
	if !l.Loaded() {
		t.Fatal("Loaded() = false after ingest")
	}

	topics := l.Topics()
	if len(topics) != 2 || topics[0] != "neural networks" || topics[1] != "model evaluation" {
		t.Errorf("Topics = %v", topics)
	}
}

func TestIngest_PlainTextUsesSourceAsTopic(t *testing.T) {
	l := NewLibrary()
	l.Ingest("biology", "The cell is the basic unit of life.")

	topics := l.Topics()
	if len(topics) != 1 || topics[0] != "biology" {
		t.Errorf("Topics = %v, want [biology]", topics)
	}
}

func TestIngest_EmptyText(t *testing.T) {
	l := NewLibrary()
	if added := l.Ingest("empty", "   \n  "); added != 0 {
		t.Errorf("Ingest added %d passages for blank text, want 0", added)
	}
	if l.Loaded() {
		t.Error("Loaded() must stay false")
	}
}

func TestIngest_LongSectionChunksWithOverlap(t *testing.T) {
	words := make([]string, 400)
	for i := range words {
		words[i] = "word"
	}
	l := NewLibrary()
	added := l.Ingest("long", strings.Join(words, " "))
	if added < 2 {
		t.Fatalf("expected a 400-word text to split, got %d passages", added)
	}
}

func TestSearch_PrefersMatchingSection(t *testing.T) {
	l := NewLibrary()
	l.Ingest("notes", studyNotes)

	got := l.Search([]string{"overfitting"}, 1)
	if len(got) != 1 {
		t.Fatalf("Search returned %d passages, want 1", len(got))
	}
	if !strings.Contains(got[0], "memorizes the training data") {
		t.Errorf("expected the model-evaluation passage, got %q", got[0])
	}
}

func TestSearch_HeadingMatchBeatsBodyMention(t *testing.T) {
	l := NewLibrary()
	l.Ingest("notes", studyNotes)

	got := l.Search([]string{"neural networks"}, 1)
	if len(got) != 1 || !strings.Contains(got[0], "layers of connected units") {
		t.Errorf("expected the neural-networks passage, got %v", got)
	}
}

func TestSearch_NoTopicsSamples(t *testing.T) {
	l := NewLibrary()
	l.Ingest("notes", studyNotes)

	got := l.Search(nil, 5)
	if len(got) != 2 {
		t.Errorf("Search(nil) returned %d passages, want all 2", len(got))
	}
}

func TestSearch_UnmatchedTopicFallsBackToSample(t *testing.T) {
	l := NewLibrary()
	l.Ingest("notes", studyNotes)

	got := l.Search([]string{"quantum chromodynamics"}, 1)
	if len(got) != 1 {
		t.Errorf("Search must still return material, got %d passages", len(got))
	}
}

func TestSearch_EmptyLibrary(t *testing.T) {
	l := NewLibrary()
	if got := l.Search([]string{"anything"}, 3); got != nil {
		t.Errorf("Search on empty library = %v, want nil", got)
	}
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "physics.md")
	if err := os.WriteFile(path, []byte("# Gravity\n\nMass attracts mass."), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLibrary()
	added, err := l.IngestFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if l.Topics()[0] != "gravity" {
		t.Errorf("Topics = %v", l.Topics())
	}

	if _, err := l.IngestFile(filepath.Join(dir, "slides.pdf")); err == nil {
		t.Error("expected an error for unsupported extensions")
	}
	if _, err := l.IngestFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected an error for missing files")
	}
}
