package http

import (
	"github.com/gin-gonic/gin"

	"marketing-insights-assistant/internal/assistant"
	"marketing-insights-assistant/internal/assistant/dispatcher"
	"marketing-insights-assistant/internal/middleware"
	pkgLog "marketing-insights-assistant/pkg/log"
)

// Handler exposes the assistant over HTTP.
type Handler interface {
	Query(c *gin.Context)
	Capabilities(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	d        dispatcher.Responder
	registry *assistant.Registry
}

var _ Handler = (*handler)(nil)

func New(l pkgLog.Logger, d dispatcher.Responder, registry *assistant.Registry) Handler {
	return &handler{l: l, d: d, registry: registry}
}

// RegisterRoutes registers assistant routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RequestLog(), mw.RateLimit())
	rg.POST("/query", h.Query)
	rg.GET("/capabilities", h.Capabilities)
}
