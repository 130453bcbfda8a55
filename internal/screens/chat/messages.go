package chat

import (
	"time"

	"github.com/abhisek/studiz/internal/review"
)

// responseMsg is sent when the dialogue machine has produced a reply.
type responseMsg struct {
	Resp review.Response
}

// spinnerTickMsg animates the "thinking" indicator while a reply is
// being generated.
type spinnerTickMsg time.Time
