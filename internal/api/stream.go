package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/astralhq/github-wrapped/internal/journey"
)

// Frame cadence for the journey stream.
const streamTick = 33 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamJourney upgrades to a WebSocket and emits JourneyState frames on a
// fixed tick from flight start until the terminal stage completes or the
// client disconnects.
// GET /api/journey/stream?duration=<seconds>&distance=<units>
func (h *Handler) StreamJourney(c *gin.Context) {
	duration := parseFloatQuery(c, "duration", h.journeyDuration)
	distance := parseFloatQuery(c, "distance", h.journeyDistance)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Drain client frames so close and ping handling keep working; any read
	// error ends the flight.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	opts := []journey.Option{
		journey.WithDuration(duration),
		journey.WithDistance(distance),
	}
	if h.journeyStages != nil {
		opts = append(opts, journey.WithStages(h.journeyStages))
	}
	timeline := journey.NewTimeline(opts...)
	timeline.Start()
	started := time.Now()

	ticker := time.NewTicker(streamTick)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			state := timeline.Advance(time.Since(started).Seconds())
			if err := conn.WriteJSON(state); err != nil {
				return
			}
			if state.Transitioned {
				log.Debug("journey stage", "stage", state.Stage, "elapsed", time.Since(started))
			}
			if state.Progress >= 1 {
				timeline.Stop()
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "journey complete"))
				return
			}
		}
	}
}

// parseFloatQuery parses a positive float query parameter with a default
func parseFloatQuery(c *gin.Context, key string, defaultValue float64) float64 {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
