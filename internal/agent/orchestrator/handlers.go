package orchestrator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"jarvis-assistant/internal/gateway"
)

var (
	triggerPatterns = compileTriggers(scheduleTriggers)
	spaceRun        = regexp.MustCompile(`\s+`)
)

func compileTriggers(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p))
	}
	return patterns
}

// reminderBody removes every trigger phrase, case-insensitively, and tidies whitespace.
func reminderBody(text string) string {
	for _, p := range triggerPatterns {
		text = p.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(text, " "))
}

func (o *Orchestrator) handleSchedule(ctx context.Context, text string) outcome {
	desc := o.parser.ParseSchedule(text, o.now())

	res, err := o.deps.Scheduler.CreateSchedule(ctx, gateway.ScheduleInput{
		Content:        reminderPrefix + reminderBody(text),
		CronExpression: desc.CronExpression,
		Type:           gateway.ScheduleTypeReminder,
		Recurring:      desc.Recurring,
	})
	if err != nil {
		return failed(o.styledError(err.Error()), nil)
	}
	if !res.Success {
		return failed(o.styledError(orDefault(res.Error, defaultScheduleError)), res.Payload)
	}
	return succeeded(fmt.Sprintf(scheduledTemplate, o.formatter.Acknowledge()), res.Payload)
}

func (o *Orchestrator) handleSearch(ctx context.Context, text string) outcome {
	res, err := o.deps.Search.Search(ctx, text)
	if err != nil {
		return failed(o.styledError(err.Error()), nil)
	}
	if !res.Success {
		return failed(o.styledError(orDefault(res.Error, defaultSearchError)), res.Payload)
	}
	return succeeded(o.formatter.Format(orDefault(res.Message, defaultSearchMessage)), res.Payload)
}

func (o *Orchestrator) handleTime(text string) outcome {
	now := o.now().In(o.parser.Location())
	if strings.Contains(strings.ToLower(text), dateKeyword) {
		return succeeded(fmt.Sprintf(dateTemplate, now.Format(dateLayout)), nil)
	}
	return succeeded(fmt.Sprintf(timeTemplate, now.Format(timeLayout)), nil)
}

func (o *Orchestrator) handleGeneral(ctx context.Context, text string) outcome {
	res, err := o.deps.Chat.Chat(ctx, text, o.memory.GetContext())
	if err != nil {
		return failed(o.styledError(err.Error()), nil)
	}
	if !res.Success {
		return failed(o.styledError(orDefault(res.Error, defaultChatError)), res.Payload)
	}
	return succeeded(o.formatter.Format(orDefault(res.Message, defaultChatMessage)), res.Payload)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
