package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/pkg/response"
)

const (
	HealthMessage = "At your service"
	HealthVersion = "1.0.0"
	ServiceName   = "jarvis-assistant"
)

type healthResp struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Version       string `json:"version"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	// Sessions is only reported by /ready.
	Sessions *int `json:"sessions,omitempty"`
}

func (srv HTTPServer) health(status string) healthResp {
	return healthResp{
		Status:        status,
		Message:       HealthMessage,
		Version:       HealthVersion,
		Service:       ServiceName,
		UptimeSeconds: int64(time.Since(srv.startedAt).Seconds()),
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck godoc
// @Summary Readiness Check
// @Description Reports the number of live conversation sessions.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	h := srv.health("ready")
	n := srv.sessionUC.Len()
	h.Sessions = &n
	response.OK(c, h)
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
