package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/agent/orchestrator"
	"jarvis-assistant/internal/bootstrap"
	"jarvis-assistant/internal/voice"
	"jarvis-assistant/pkg/log"
)

const consoleSessionID = "console"

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the assistant",
		Long: `Sends a single message, or starts an interactive session when no
message is given. Type /help inside the session for commands.

Examples:
  jarvis chat "remind me to stretch in the evening at 6pm"
  jarvis chat --voice    (then /listen to speak a request)`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChat,
	}

	cmd.Flags().Bool("voice", false, "speak replies with the configured TTS command")
	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	verbose, _ := cmd.Flags().GetBool("verbose")
	withVoice, _ := cmd.Flags().GetBool("voice")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{Level: level, Mode: "production", Encoding: "console"})

	parser := bootstrap.NewParser(ctx, cfg, logger)
	deps, err := bootstrap.NewDeps(ctx, cfg, logger, parser)
	if err != nil {
		return err
	}
	factory, err := bootstrap.NewFactory(cfg, logger, deps, parser)
	if err != nil {
		return err
	}

	c := newConsole(cmd.OutOrStdout(), factory(consoleSessionID), logger)
	switch {
	case withVoice && cfg.Voice.Enabled:
		c.speaker = voice.NewCommandSpeaker(cfg.Voice.Command, cfg.Voice.Rate, cfg.Voice.Volume)
		if listener := voice.NewCommandListener(cfg.Voice.ListenCommand); listener != nil {
			c.listener = listener
			c.listenTimeout = cfg.Voice.ListenTimeout
		}
	case withVoice:
		logger.Warn(ctx, "--voice ignored: voice.enabled is false")
	}
	defer c.wait()

	if len(args) > 0 {
		c.turn(ctx, args[0])
		return nil
	}
	return c.repl(ctx)
}

func (c *console) repl(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptColor.Sprint("you> "),
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          c.out,
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	c.greet(time.Now())
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !c.handle(ctx, line) {
			return nil
		}
	}
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	if err := os.MkdirAll(filepath.Join(dir, "jarvis"), 0o700); err != nil {
		return ""
	}
	return filepath.Join(dir, "jarvis", "history")
}

// console renders one orchestrator session to a terminal.
type console struct {
	out     io.Writer
	orch    *orchestrator.Orchestrator
	l       log.Logger
	speaker voice.Speaker
	// listener serves /listen.
	listener      voice.Listener
	listenTimeout time.Duration
	// speaking is closed when the last reply has been spoken.
	speaking <-chan struct{}
}

func newConsole(out io.Writer, orch *orchestrator.Orchestrator, l log.Logger) *console {
	return &console{out: out, orch: orch, l: l, speaker: voice.Nop{}, listener: voice.Nop{}}
}

func (c *console) greet(now time.Time) {
	c.say(c.orch.Formatter().Greeting())
	if suggestion, ok := c.orch.ProactiveSuggestion(now); ok {
		fmt.Fprintln(c.out, hintColor.Sprint(suggestion))
	}
}

// handle runs one input line and reports whether the session continues.
func (c *console) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return true
	case "exit", "quit", "/exit", "/quit":
		c.say("Goodbye, sir.")
		return false
	case "/help":
		fmt.Fprintln(c.out, hintColor.Sprint("/listen   speak instead of typing\n/summary  session statistics\n/agents   registered agents\n/reset    clear the conversation\n/exit     leave"))
	case "/listen":
		c.listen(ctx)
	case "/summary":
		s := c.orch.Memory().GetSummary()
		fmt.Fprintln(c.out, hintColor.Sprintf("%s in session, %d messages, %d active tasks, %d preferences",
			s.SessionDuration.Round(time.Second), s.MessagesExchanged, s.ActiveTasks, s.PreferencesLearned))
	case "/agents":
		agents := c.orch.ActiveAgents()
		if len(agents) == 0 {
			fmt.Fprintln(c.out, hintColor.Sprint("no agents registered yet"))
		} else {
			fmt.Fprintln(c.out, hintColor.Sprint(strings.Join(agents, ", ")))
		}
	case "/reset":
		c.orch.Reset()
		fmt.Fprintln(c.out, hintColor.Sprint("conversation cleared"))
	default:
		c.turn(ctx, line)
	}
	return true
}

func (c *console) listen(ctx context.Context) {
	c.wait()
	fmt.Fprintln(c.out, hintColor.Sprint("listening..."))
	text, ok := c.listener.Listen(ctx, c.listenTimeout)
	if !ok {
		fmt.Fprintln(c.out, hintColor.Sprint("nothing heard"))
		return
	}
	fmt.Fprintln(c.out, promptColor.Sprint("you> ")+text)
	c.turn(ctx, text)
}

func (c *console) turn(ctx context.Context, text string) {
	res := c.orch.ProcessMessage(ctx, text)
	if res.Success {
		c.say(res.Message)
	} else {
		fmt.Fprintln(c.out, errorColor.Sprint(assistantLabel+res.Message))
		c.speak(ctx, res.Message)
	}
}

func (c *console) say(text string) {
	fmt.Fprintln(c.out, replyColor.Sprint(assistantLabel+text))
	c.speak(context.Background(), text)
}

func (c *console) speak(ctx context.Context, text string) {
	c.wait()
	c.speaking = voice.SpeakAsync(ctx, c.speaker, c.l, text)
}

// wait blocks until the previous reply has been spoken.
func (c *console) wait() {
	if c.speaking != nil {
		<-c.speaking
		c.speaking = nil
	}
}
