package intent

import (
	"reflect"
	"testing"
)

func TestSegment_CompoundSettingCommand(t *testing.T) {
	got := Segment("set difficulty to hard and question type to free text")
	want := []string{
		"set difficulty to hard",
		"set question type to free text",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %#v, want %#v", got, want)
	}
}

func TestSegment_SentenceSplit(t *testing.T) {
	got := Segment("start the quiz. make it easy")
	want := []string{"start the quiz", "make it easy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %#v, want %#v", got, want)
	}
}

func TestSegment_ConjunctionBeforeCommandVerb(t *testing.T) {
	got := Segment("start the quiz and make it easy")
	want := []string{"start the quiz", "make it easy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %#v, want %#v", got, want)
	}
}

func TestSegment_ProseStaysWhole(t *testing.T) {
	got := Segment("I like cats and dogs")
	want := []string{"I like cats and dogs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %#v, want %#v", got, want)
	}
}

func TestSegment_ShorthandSynthesizesSettingClause(t *testing.T) {
	got := Segment("set difficulty to hard and questions to twelve")

	found := false
	for _, c := range got {
		if c == "set number of questions to twelve" {
			found = true
		}
	}
	if !found {
		t.Errorf("Segment = %#v, want a synthesized num-questions clause", got)
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	if got := Segment(""); got != nil {
		t.Errorf("Segment(\"\") = %#v, want nil", got)
	}
	if got := Segment("   "); got != nil {
		t.Errorf("Segment(blank) = %#v, want nil", got)
	}
}
