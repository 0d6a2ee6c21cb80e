package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("session_id")
	return req, req.validate()
}

func (h *handler) processPreferenceReq(c *gin.Context) (preferenceReq, error) {
	var req preferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("session_id")
	return req, req.validate()
}

// processTaskReq accepts an empty body; the task then gets a generated id.
func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.SessionID = c.Param("session_id")
	return req, req.validate()
}
