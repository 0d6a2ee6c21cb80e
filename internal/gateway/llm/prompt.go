package llm

import (
	"fmt"
	"time"
)

func (c *ChatCompleter) systemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, c.assistantName) + buildTimeContext(c.now().In(c.location))
}

// buildTimeContext describes now, tomorrow and the current Monday-Sunday week.
func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(
		timeContextTemplate,
		now.Format("2006-01-02 15:04"),
		now.Weekday().String(),
		now.AddDate(0, 0, 1).Format(dateFormatISO),
		weekStart.Format(dateFormatISO),
		weekEnd.Format(dateFormatISO),
	)
}
