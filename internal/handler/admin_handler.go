package handler

import (
	"log"
	"net/http"
	"time"

	"kurator/config"
	"kurator/internal/auth"
	"kurator/internal/service"
	"kurator/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler serves the dashboard API: login, global stats and the live
// click feed.
type AdminHandler struct {
	cfg     *config.Config
	tracker *service.TrackerService
	feed    *ws.Hub
}

func NewAdminHandler(cfg *config.Config, tracker *service.TrackerService, feed *ws.Hub) *AdminHandler {
	return &AdminHandler{cfg: cfg, tracker: tracker, feed: feed}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
		return
	}
	if h.cfg.Admin.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	token, err := auth.GenerateToken(&h.cfg.JWT)
	if err != nil {
		log.Printf("[admin] token generation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, outcome := h.tracker.GlobalStats()
	if outcome != service.OutcomeOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": outcome.String()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

// Feed upgrades the connection and streams click events until the client
// goes away.
func (h *AdminHandler) Feed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[admin] feed upgrade: %v", err)
		return
	}
	client := &ws.Client{Send: make(chan []byte, 64)}
	h.feed.Register(client)

	go func() {
		defer conn.Close()
		for msg := range client.Send {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				client.Close()
				return
			}
		}
	}()

	// Drain reads to notice the peer closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			client.Close()
			return
		}
	}
}
