package httpserver

import (
	"io"

	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/response"

	"github.com/gin-gonic/gin"
)

// callCalendar dispatches a function call to the calendar registry.
// @Summary Call a calendar function
// @Description Body is {"function": name, "args": {...}}; response is the result envelope
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body httpserver.callRequest true "Function call"
// @Success 200 {object} map[string]interface{} "Success envelope"
// @Failure 400 {object} map[string]interface{} "Error envelope"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/v1/calendar/call [post]
func (srv HTTPServer) callCalendar(c *gin.Context) {
	srv.call(c, srv.calendar)
}

// callTasks dispatches a function call to the task registry.
// @Summary Call a task function
// @Description Body is {"function": name, "args": {...}}; response is the result envelope
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body httpserver.callRequest true "Function call"
// @Success 200 {object} map[string]interface{} "Success envelope"
// @Failure 400 {object} map[string]interface{} "Error envelope"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Router /api/v1/tasks/call [post]
func (srv HTTPServer) callTasks(c *gin.Context) {
	srv.call(c, srv.tasks)
}

// callRequest documents the request body; decoding is done by the registry.
type callRequest struct {
	Function string         `json:"function" example:"get_tasks"`
	Args     map[string]any `json:"args"`
}

func (srv HTTPServer) call(c *gin.Context, reg *rpc.Registry) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		srv.l.Warnf(c.Request.Context(), "httpserver.call: read body: %v", err)
		response.Write(c, response.InvalidJSON())
		return
	}
	response.Write(c, reg.Handle(c.Request.Context(), body))
}
