package voice

import (
	"context"

	pkgLog "jarvis-assistant/pkg/log"
)

const LogPrefixSpeakAsync = "internal.voice.SpeakAsync"

// SpeakAsync speaks in the background. Errors are logged and dropped.
// The returned channel is closed once speaking has finished.
func SpeakAsync(ctx context.Context, s Speaker, l pkgLog.Logger, text string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := s.Speak(context.WithoutCancel(ctx), text); err != nil {
			l.Warnf(ctx, "%s: %v", LogPrefixSpeakAsync, err)
		}
	}()
	return done
}
