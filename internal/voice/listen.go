package voice

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const DefaultListenTimeout = 5 * time.Second

// CommandListener runs a speech-to-text command that records one utterance
// and prints the transcript on stdout.
type CommandListener struct {
	name string
	args []string
}

// NewCommandListener splits command on whitespace. An empty command yields nil.
func NewCommandListener(command string) *CommandListener {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	return &CommandListener{name: fields[0], args: fields[1:]}
}

// Listen reports ok=false on timeout, a failing command or an empty transcript.
func (l *CommandListener) Listen(ctx context.Context, timeout time.Duration) (string, bool) {
	if timeout <= 0 {
		timeout = DefaultListenTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, l.name, l.args...).Output()
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(string(out))
	return text, text != ""
}
