package ws

import (
	"errors"
	"net/http"

	"github.com/Yunus705/alpharush/internal/common/uuid"
	"github.com/Yunus705/alpharush/internal/services/game"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP requests to WebSocket connections
type Handler struct {
	hub      *Hub
	service  game.Service
	idGen    uuid.UUID
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// HandlerConfig holds configuration for the WebSocket handler
type HandlerConfig struct {
	Hub     *Hub
	Service game.Service
	UUID    uuid.UUID
	Logger  zerolog.Logger

	// CheckOrigin overrides the upgrade origin check; nil allows all
	CheckOrigin func(r *http.Request) bool
}

// NewHandler creates a new WebSocket handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}
	if cfg.Service == nil {
		return nil, errors.New("service cannot be nil")
	}

	idGen := cfg.UUID
	if idGen == nil {
		idGen = uuid.New()
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}

	return &Handler{
		hub:     cfg.Hub,
		service: cfg.Service,
		idGen:   idGen,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: cfg.Logger,
	}, nil
}

// ServeHTTP handles WebSocket upgrade requests. Each connection gets a
// fresh player ID; rooms are created and joined over the socket itself.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	playerID := h.idGen.NewUUID()
	client := NewClient(conn, h.hub, h.service, playerID, h.logger)

	h.logger.Info().Str("player", playerID).Str("remote", r.RemoteAddr).Msg("websocket connected")

	client.Run()

	h.logger.Info().Str("player", playerID).Msg("websocket disconnected")
}
