package orchestrator

import (
	"context"
	"fmt"

	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/personality"
	"jarvis-assistant/internal/router"
)

// ProcessMessage records text, routes it and records the reply.
// Exactly one user and one assistant message are appended per call, whatever the handlers do.
func (o *Orchestrator) ProcessMessage(ctx context.Context, text string) ProcessResult {
	o.memory.AddMessage(memory.RoleUser, text, nil)

	intent := o.router.Classify(text)
	o.l.Debugf(ctx, "%s: intent=%s confidence=%.1f", LogPrefixProcessMessage, intent.Intent, intent.Confidence)

	o.registerAgents(ctx, o.router.ResolveAgents(text))

	out := o.dispatch(ctx, intent.Intent, text)

	o.memory.AddMessage(memory.RoleAssistant, out.message, map[string]any{
		MetadataIntent:  string(intent.Intent),
		MetadataSuccess: out.ok,
	})

	return out.result()
}

// registerAgents enables every needed agent that is not active yet.
// An agent counts as active after one attempt, even when registration failed or panicked.
func (o *Orchestrator) registerAgents(ctx context.Context, needed router.AgentSet) {
	for _, id := range o.agents.Missing(needed.Sorted()) {
		o.addAgent(ctx, id)
		o.agents.Add(id)
	}
}

func (o *Orchestrator) addAgent(ctx context.Context, id string) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: register agent %s panicked: %v", LogPrefixRegisterAgents, id, r)
		}
	}()

	res, err := o.deps.Agents.AddAgent(ctx, id)
	switch {
	case err != nil:
		o.l.Warnf(ctx, "%s: register agent %s: %v", LogPrefixRegisterAgents, id, err)
	case !res.Success:
		o.l.Warnf(ctx, "%s: register agent %s refused: %s", LogPrefixRegisterAgents, id, res.Error)
	}
}

func (o *Orchestrator) dispatch(ctx context.Context, intent router.Intent, text string) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: %s handler panicked: %v", LogPrefixDispatch, intent, r)
			out = failed(o.styledError(unexpectedError), nil)
		}
	}()

	switch intent {
	case router.IntentSchedule:
		return o.handleSchedule(ctx, text)
	case router.IntentSearch:
		return o.handleSearch(ctx, text)
	case router.IntentTime:
		return o.handleTime(text)
	default:
		return o.handleGeneral(ctx, text)
	}
}

func (o *Orchestrator) styledError(detail string) string {
	return fmt.Sprintf("%s %s", o.formatter.Error(), detail)
}

// Memory exposes the session memory for summaries, preferences and tasks.
func (o *Orchestrator) Memory() *memory.SessionMemory {
	return o.memory
}

// ActiveAgents returns the registered agents in lexical order.
func (o *Orchestrator) ActiveAgents() []string {
	return o.agents.List()
}

// Reset clears history and tasks. Preferences and active agents are kept.
func (o *Orchestrator) Reset() {
	o.memory.Clear()
}

// Formatter returns the personality used for replies.
func (o *Orchestrator) Formatter() personality.Formatter {
	return o.formatter
}
