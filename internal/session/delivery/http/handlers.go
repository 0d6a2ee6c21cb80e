package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a message to the assistant
// @Description Runs one conversation turn for the session and returns the assistant's reply.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string     true "Session ID"
// @Param       body       body messageReq true "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{session_id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Process(ctx, req.SessionID, req.Text)
	if err != nil {
		h.respondError(c, "uc.Process", err)
		return
	}

	response.OK(c, newMessageResp(res))
}

// Suggestion godoc
// @Summary     Proactive suggestion
// @Description Returns a time-of-day suggestion, or null when none applies.
// @Tags        Sessions
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} suggestionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/{session_id}/suggestion [GET]
func (h *handler) Suggestion(c *gin.Context) {
	ctx := c.Request.Context()

	text, ok, err := h.uc.Suggestion(ctx, c.Param("session_id"), h.now())
	if err != nil {
		h.respondError(c, "uc.Suggestion", err)
		return
	}

	response.OK(c, newSuggestionResp(text, ok))
}

// Summary godoc
// @Summary     Session summary
// @Description Returns conversation statistics, tracked tasks and registered agents.
// @Tags        Sessions
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sum, err := h.uc.Summary(ctx, c.Param("session_id"))
	if err != nil {
		h.respondError(c, "uc.Summary", err)
		return
	}

	response.OK(c, newSummaryResp(sum))
}

// SetPreference godoc
// @Summary     Set a preference
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string        true "Session ID"
// @Param       body       body preferenceReq true "Preference"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/{session_id}/preferences [PUT]
func (h *handler) SetPreference(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreferenceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetPreference(ctx, req.SessionID, req.Key, req.Value); err != nil {
		h.respondError(c, "uc.SetPreference", err)
		return
	}

	response.OK(c, nil)
}

// AddTask godoc
// @Summary     Track a task
// @Description Adds a session-scoped task. An id is generated when none is given.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string  true  "Session ID"
// @Param       body       body taskReq false "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/{session_id}/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.AddTask(ctx, req.SessionID, req.toTask())
	if err != nil {
		h.respondError(c, "uc.AddTask", err)
		return
	}

	response.OK(c, newTaskResp(task))
}

// CompleteTask godoc
// @Summary     Complete a task
// @Description Removes every task with the given id. Unknown ids are ignored.
// @Tags        Sessions
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Param       task_id    path string true "Task ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/sessions/{session_id}/tasks/{task_id} [DELETE]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CompleteTask(ctx, c.Param("session_id"), c.Param("task_id")); err != nil {
		h.respondError(c, "uc.CompleteTask", err)
		return
	}

	response.OK(c, nil)
}

// Reset godoc
// @Summary     Reset a session
// @Description Clears conversation history and tasks. Preferences and registered agents are kept.
// @Tags        Sessions
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/sessions/{session_id} [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, c.Param("session_id")); err != nil {
		h.respondError(c, "uc.Reset", err)
		return
	}

	response.OK(c, nil)
}
