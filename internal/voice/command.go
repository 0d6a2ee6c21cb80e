package voice

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	DefaultCommand = "espeak"
	DefaultRate    = 180
	DefaultVolume  = 0.9

	// espeak amplitude runs 0..200 with 100 as normal.
	maxAmplitude = 200
)

var ErrEmptyText = errors.New("voice: nothing to say")

// CommandSpeaker shells out to an espeak-compatible TTS binary.
type CommandSpeaker struct {
	command string
	rate    int
	volume  float64
}

// NewCommandSpeaker creates a speaker. volume is a 0..1 fraction.
func NewCommandSpeaker(command string, rate int, volume float64) *CommandSpeaker {
	if command == "" {
		command = DefaultCommand
	}
	if rate <= 0 {
		rate = DefaultRate
	}
	if volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}
	return &CommandSpeaker{command: command, rate: rate, volume: volume}
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}

	cmd := exec.CommandContext(ctx, s.command, s.args(text)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("voice: %s: %w: %s", s.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *CommandSpeaker) args(text string) []string {
	return []string{
		"-s", strconv.Itoa(s.rate),
		"-a", strconv.Itoa(int(s.volume * maxAmplitude)),
		"--", text,
	}
}
