package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"jersey-quiz-service/internal/app"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// WSHandler streams leaderboard snapshots to websocket clients.
type WSHandler struct {
	service  *app.Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.Service, logger *slog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

type inboundMessage struct {
	Type string `json:"type"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// ServeWS upgrades the request and pushes a "leaderboard" message with the
// current top scores, then another one after every saved score. Clients may
// send {"type":"refresh"} to get the board again.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	updates, cancel, err := h.service.Subscribe(r.Context())
	if err != nil {
		h.logger.Error("subscribe leaderboard failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch top scores")
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	send := make(chan outboundMessage, 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// single writer: gorilla connections allow one concurrent writer
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case msg, ok := <-send:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					h.logger.Warn("ws write error", "error", err)
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage{Type: "leaderboard", Payload: update}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var inbound inboundMessage
		if err := json.Unmarshal(raw, &inbound); err != nil {
			h.queue(send, writerDone, outboundMessage{Type: "error", Payload: ErrorResponse{Message: "invalid message"}})
			continue
		}
		switch inbound.Type {
		case "refresh":
			top, err := h.service.TopScores(r.Context())
			if err != nil {
				h.logger.Error("refresh top scores failed", "error", err)
				h.queue(send, writerDone, outboundMessage{Type: "error", Payload: ErrorResponse{Message: "Failed to fetch top scores"}})
				continue
			}
			h.queue(send, writerDone, outboundMessage{Type: "topScores", Payload: top})
		default:
			h.queue(send, writerDone, outboundMessage{Type: "error", Payload: ErrorResponse{Message: "unsupported message type"}})
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// queue hands msg to the writer unless it already quit.
func (h *WSHandler) queue(send chan<- outboundMessage, writerDone <-chan struct{}, msg outboundMessage) {
	select {
	case send <- msg:
	case <-writerDone:
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
