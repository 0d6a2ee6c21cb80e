package voice

import (
	"context"
	"time"
)

// Speaker turns text into audio.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Listener captures one utterance. ok is false when nothing was understood before timeout.
type Listener interface {
	Listen(ctx context.Context, timeout time.Duration) (text string, ok bool)
}
