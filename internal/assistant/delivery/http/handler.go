package http

import (
	"github.com/gin-gonic/gin"

	"marketing-insights-assistant/internal/model"
	"marketing-insights-assistant/pkg/response"
)

const LogPrefixQuery = "internal.assistant.delivery.http.Query"

// Query answers a dashboard question.
// @Summary Ask the assistant
// @Description Route a marketing question to the right topic handler and answer it
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body askRequest true "Question and session scope"
// @Success 200 {object} response.Resp{data=model.AgentResponse}
// @Router /api/v1/assistant/query [post]
func (h handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "%s: invalid request: %v", LogPrefixQuery, err)
		response.Error(c, err, nil)
		return
	}

	resp := h.d.Respond(ctx, req.Query, req.sessionContext(), []model.Turn{})
	response.OK(c, resp)
}

// Capabilities lists what the assistant can answer.
// @Summary List assistant capabilities
// @Description Descriptors of every registered topic handler
// @Tags Assistant
// @Produce json
// @Success 200 {object} response.Resp{data=[]capabilityItem}
// @Router /api/v1/assistant/capabilities [get]
func (h handler) Capabilities(c *gin.Context) {
	items := make([]capabilityItem, 0, h.registry.Len())
	for _, hd := range h.registry.List() {
		desc := hd.Descriptor()
		topics := make([]string, 0, len(desc.Capabilities))
		for _, capability := range desc.Capabilities {
			topics = append(topics, capability.Name)
		}
		items = append(items, capabilityItem{
			ID:          string(desc.ID),
			DisplayName: desc.DisplayName,
			Description: desc.Description,
			Topics:      topics,
		})
	}
	response.OK(c, items)
}
