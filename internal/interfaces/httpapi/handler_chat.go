package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/cricvibe/cricvibe-api/internal/interfaces/realtime"
	"github.com/cricvibe/cricvibe-api/internal/usecase"
)

const chatKeepAliveInterval = 25 * time.Second

// StreamChatRoom holds the connection open and relays room messages as
// server-sent events until the client disconnects.
func (h *Handler) StreamChatRoom(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamChatRoom")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	room := realtime.NormalizeRoom(r.PathValue("room"))
	if room == "" {
		writeError(ctx, w, fmt.Errorf("%w: room is required", usecase.ErrInvalidInput))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(ctx, w, fmt.Errorf("streaming unsupported by connection"))
		return
	}

	sub := h.chatHub.Join(room)
	defer sub.Close()

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.InfoContext(ctx, "chat subscriber joined", "room", room, "user_id", principal.UserID)

	keepAlive := time.NewTicker(chatKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			if err := realtime.WriteSSEComment(w, "ping"); err != nil {
				return
			}
			flusher.Flush()
		case msg, open := <-sub.C:
			if !open {
				return
			}
			payload, err := sonic.Marshal(chatMessageDTO{
				Event:      msg.Event,
				Room:       msg.Room,
				SenderID:   msg.SenderID,
				SenderName: msg.SenderName,
				Message:    msg.Body,
				Timestamp:  formatTime(msg.SentAt),
			})
			if err != nil {
				h.logger.ErrorContext(ctx, "chat message encode failed", "room", room, "error", err)
				continue
			}
			if err := realtime.WriteSSEEvent(w, msg.Event, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// PostChatMessage relays one message to a room. Player identities always
// broadcast to the elite fans room with the player-message event, matching
// how fan clients subscribe.
func (h *Handler) PostChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PostChatMessage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	room := realtime.NormalizeRoom(r.PathValue("room"))
	if room == "" {
		writeError(ctx, w, fmt.Errorf("%w: room is required", usecase.ErrInvalidInput))
		return
	}

	req, err := decodeBody[chatMessageRequest](r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	event := realtime.EventMessage
	if principal.IsPlayer() {
		event = realtime.EventPlayerMessage
		room = realtime.EliteRoom
	}

	senderName := strings.TrimSpace(req.SenderName)
	if senderName == "" {
		senderName = principal.Email
	}

	delivered := h.chatHub.Broadcast(realtime.Message{
		Event:      event,
		Room:       room,
		SenderID:   principal.UserID,
		SenderName: senderName,
		Body:       req.Message,
		SentAt:     time.Now().UTC(),
	})

	writeSuccess(ctx, w, http.StatusAccepted, chatPostResultDTO{
		Room:      room,
		Delivered: delivered,
	})
}
