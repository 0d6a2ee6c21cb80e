package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jarvis-assistant/internal/router"
)

func TestClassify(t *testing.T) {
	r := router.New()

	tests := []struct {
		name    string
		message string
		want    router.Intent
	}{
		{"remind first", "Remind me to search for flights", router.IntentSchedule},
		{"meeting", "Book a meeting with Sam", router.IntentSchedule},
		{"search", "Look up the capital of Peru", router.IntentSearch},
		{"what is beats question", "What is Go?", router.IntentSearch},
		{"weather", "Weather in Pune", router.IntentWeather},
		{"time", "What day is it", router.IntentTime},
		{"date", "today's date please", router.IntentTime},
		{"task", "execute the backup", router.IntentTask},
		{"question mark", "Are you there?", router.IntentQuestion},
		{"why", "why so serious", router.IntentQuestion},
		// "schedule" precedes "weather" in the table.
		{"table order breaks ties", "schedule a weather check", router.IntentSchedule},
		// "do" matches inside words; substring matching is intentional.
		{"substring match", "hello, doctor", router.IntentTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(tt.message)
			assert.Equal(t, tt.want, got.Intent)
			assert.Equal(t, router.MatchedConfidence, got.Confidence)
		})
	}
}

func TestClassify_Fallback(t *testing.T) {
	r := router.New()

	for _, msg := range []string{"", "hello jarvis", "thanks, sir"} {
		got := r.Classify(msg)
		assert.Equal(t, router.IntentGeneral, got.Intent, msg)
		assert.Equal(t, 0.5, got.Confidence, msg)
	}
}

func TestClassify_RemindAlwaysSchedules(t *testing.T) {
	r := router.New()

	for _, msg := range []string{
		"remind me what is the weather",
		"REMIND me to google it",
		"remind: how do I run tests?",
	} {
		got := r.Classify(msg)
		assert.Equal(t, router.IntentSchedule, got.Intent, msg)
		assert.Equal(t, 0.8, got.Confidence, msg)
	}
}

func TestResolveAgents(t *testing.T) {
	r := router.New()

	t.Run("multi label", func(t *testing.T) {
		got := r.ResolveAgents("search the weather")
		assert.True(t, got.Has(router.AgentPerplexity))
		assert.True(t, got.Has(router.AgentWeather))
		assert.Len(t, got, 2)
	})

	t.Run("scheduler and time", func(t *testing.T) {
		got := r.ResolveAgents("Set an alarm for the meeting date")
		assert.Equal(t, []string{router.AgentScheduler, router.AgentTime}, got.Sorted())
	})

	t.Run("gmail and calculator", func(t *testing.T) {
		got := r.ResolveAgents("compute the total and send mail to finance")
		assert.Equal(t, []string{router.AgentCalculator, router.AgentGmail}, got.Sorted())
	})

	t.Run("nothing needed", func(t *testing.T) {
		got := r.ResolveAgents("good morning")
		assert.Empty(t, got)
		assert.Empty(t, got.Sorted())
	})
}
