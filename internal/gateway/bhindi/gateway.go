package bhindi

import (
	"context"

	"jarvis-assistant/internal/gateway"
	"jarvis-assistant/internal/memory"
	pkgBhindi "jarvis-assistant/pkg/bhindi"
)

func (g *Gateway) Chat(ctx context.Context, message string, history []memory.ContextMessage) (gateway.Result, error) {
	ctxMsgs := make([]pkgBhindi.ContextMessage, len(history))
	for i, m := range history {
		ctxMsgs[i] = pkgBhindi.ContextMessage{Role: string(m.Role), Content: m.Content}
	}
	return toResult(g.client.Chat(ctx, message, ctxMsgs))
}

func (g *Gateway) AddAgent(ctx context.Context, agentID string) (gateway.Result, error) {
	return toResult(g.client.AddAgent(ctx, agentID))
}

func (g *Gateway) CreateSchedule(ctx context.Context, in gateway.ScheduleInput) (gateway.Result, error) {
	return toResult(g.client.CreateSchedule(ctx, pkgBhindi.ScheduleRequest{
		Content:        in.Content,
		CronExpression: in.CronExpression,
		Type:           in.Type,
		Recurring:      in.Recurring,
	}))
}

func (g *Gateway) Search(ctx context.Context, query string) (gateway.Result, error) {
	return toResult(g.client.Search(ctx, query))
}

func toResult(resp *pkgBhindi.Response, err error) (gateway.Result, error) {
	if err != nil {
		return gateway.Result{Success: false, Error: err.Error()}, err
	}
	return gateway.Result{
		Success: resp.Success,
		Message: resp.Message,
		Error:   resp.Error,
		Payload: resp.Raw,
	}, nil
}
