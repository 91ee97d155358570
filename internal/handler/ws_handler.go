package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/salaleitura/leitura-backend/internal/analytics"
	"github.com/salaleitura/leitura-backend/internal/realtime"
	"github.com/salaleitura/leitura-backend/internal/service"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live dashboard data: after every store mutation the
// dashboard payload is recomputed per connection filter and pushed.
type WSHandler struct {
	hub              *realtime.Hub
	dashboardService *service.DashboardService
	log              zerolog.Logger
	upgrader         websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *realtime.Hub, dashboardService *service.DashboardService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub:              hub,
		dashboardService: dashboardService,
		log:              log.With().Str("component", "ws").Logger(),
		upgrader:         buildUpgrader(allowedOrigins),
	}
}

// DashboardStream godoc
// GET /ws/v1/dashboard/stream?token=&class_id=&search=
// Upgrades to WebSocket and pushes the filtered dashboard payload on
// connect and after every data change.
func (h *WSHandler) DashboardStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	filter := analytics.Filter{
		ClassID: c.Query("class_id"),
		Search:  c.Query("search"),
	}

	changes, cancel := h.hub.Subscribe()
	defer cancel()

	// Reader goroutine: we never expect client messages, but reading is
	// required to notice closes.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.push(conn, filter); err != nil {
		return
	}

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return // Hub closed during shutdown.
			}
			if err := h.push(conn, filter); err != nil {
				return
			}
		case <-ping.C:
			if err := h.write(conn, realtime.Message{Event: realtime.EventPing}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *WSHandler) push(conn *websocket.Conn, filter analytics.Filter) error {
	return h.write(conn, realtime.Message{
		Event: realtime.EventDashboard,
		Data:  h.dashboardService.GetDashboardData(filter),
	})
}

func (h *WSHandler) write(conn *websocket.Conn, msg realtime.Message) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(msg)
}
