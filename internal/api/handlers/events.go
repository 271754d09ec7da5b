package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sales-crm-backend/internal/logger"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// heartbeatInterval keeps idle SSE connections from being reaped by proxies
const heartbeatInterval = 30 * time.Second

// EventsHandler streams change feed events over Server-Sent Events
type EventsHandler struct {
	feed *service.ChangeFeed
	log  *logger.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(feed *service.ChangeFeed) *EventsHandler {
	return &EventsHandler{
		feed: feed,
		log:  logger.WithComponent("events"),
	}
}

// Stream handles GET /events
// @Summary Stream change events
// @Description Subscribe to record change events as Server-Sent Events. Each event carries the entity, action and the changed record.
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream of change events"
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.feed.Subscribe()
	defer sub.Unsubscribe()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			// SSE comment line; clients ignore it
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			flusher.Flush()
		case event, open := <-sub.Events():
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.log.WithError(err).Error("failed to marshal change event")
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s.%s\ndata: %s\n\n", event.Entity, event.Action, payload)
			flusher.Flush()
		}
	}
}
