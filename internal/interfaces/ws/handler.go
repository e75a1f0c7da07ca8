package ws

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fuelpass.backend/internal/domain/entities"
	"fuelpass.backend/internal/interfaces/http/middleware"
	"fuelpass.backend/pkg/logger"
)

// Handler upgrades HTTP requests to websocket connections and binds
// them to the hub. User connections take their identity from the JWT;
// station terminals additionally declare which station they serve.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler backed by the given hub
func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /ws
func (h *Handler) Serve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	role := RoleUser
	id := userID

	if c.Query("clientType") == RoleStation {
		userRole, _ := middleware.GetUserRole(c)
		if userRole != string(entities.UserRoleStation) && userRole != string(entities.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "station role required"})
			return
		}
		stationID, err := strconv.ParseUint(c.Query("stationId"), 10, 32)
		if err != nil || stationID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "stationId is required for station clients"})
			return
		}
		role = RoleStation
		id = uint(stationID)
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(role, id, conn)

	// Inbound messages are not part of the protocol; the read loop only
	// detects disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(role, id, conn)
				return
			}
		}
	}()
}
