package voice

import (
	"context"
	"time"
)

// Nop is a silent Speaker and a deaf Listener, used when voice is disabled.
type Nop struct{}

func (Nop) Speak(context.Context, string) error { return nil }

func (Nop) Listen(context.Context, time.Duration) (string, bool) { return "", false }
