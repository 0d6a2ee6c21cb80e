package orchestrator

import "time"

// ProactiveSuggestion returns a time-of-day nudge when now falls in a
// suggestion band, evaluated in the parser's timezone.
func (o *Orchestrator) ProactiveSuggestion(now time.Time) (string, bool) {
	hour := now.In(o.parser.Location()).Hour()
	for _, band := range suggestionBands {
		if hour >= band.startHour && hour < band.endHour {
			return o.formatter.ProactiveSuggestion(band.context) + band.action, true
		}
	}
	return "", false
}
