package httpserver

import (
	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "assistant-tools"

	keyHealth = "health"
)

type healthResp struct {
	State     string   `json:"state"`
	Version   string   `json:"version"`
	Service   string   `json:"service"`
	Functions []string `json:"functions,omitempty"`
}

func (srv HTTPServer) health(state string) healthResp {
	return healthResp{
		State:   state,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.Write(c, response.Success(keyHealth, srv.health("healthy")))
}

// readyCheck reports the functions the gateway can dispatch.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.health("ready")
	for _, reg := range []*rpc.Registry{srv.calendar, srv.tasks} {
		for _, fn := range reg.List() {
			resp.Functions = append(resp.Functions, fn.Name)
		}
	}
	response.Write(c, response.Success(keyHealth, resp))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.Write(c, response.Success(keyHealth, srv.health("alive")))
}
