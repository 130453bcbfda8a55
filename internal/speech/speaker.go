// Package speech defines the text-to-speech boundary.
//
// The assistant core only decides WHEN to speak; HOW audio is produced
// is behind the Speaker interface so the core stays testable and the
// engine swappable.
package speech

import "context"

// Speaker converts reply text to audio output.
type Speaker interface {
	// Speak voices the text. It should return promptly; long synthesis
	// should respect ctx cancellation.
	Speak(ctx context.Context, text string) error
}

// Noop is a Speaker that produces no audio. Used when speech output is
// unavailable or disabled at build time.
type Noop struct{}

func (Noop) Speak(context.Context, string) error { return nil }
