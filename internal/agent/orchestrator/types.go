package orchestrator

// ProcessResult is what ProcessMessage reports back to the presentation layer.
type ProcessResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// outcome is the tagged result of a handler.
type outcome struct {
	ok      bool
	message string
	data    map[string]any
}

func succeeded(message string, data map[string]any) outcome {
	return outcome{ok: true, message: message, data: data}
}

func failed(message string, data map[string]any) outcome {
	return outcome{ok: false, message: message, data: data}
}

func (o outcome) result() ProcessResult {
	return ProcessResult{Success: o.ok, Message: o.message, Data: o.data}
}
