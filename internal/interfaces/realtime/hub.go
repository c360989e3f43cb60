// Package realtime is the in-process chat relay. Rooms exist while they have
// subscribers; nothing is persisted and a restart drops all of them.
package realtime

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"
)

// EliteRoom is the room player broadcasts fan out to.
const EliteRoom = "elite-fans"

const (
	// EventMessage is a regular fan chat message.
	EventMessage = "message"
	// EventPlayerMessage is a message sent by a player to their fans.
	EventPlayerMessage = "player-message"

	defaultSubscriberBuffer = 16
)

// Message is one chat event delivered to every subscriber of a room.
type Message struct {
	Event      string
	Room       string
	SenderID   string
	SenderName string
	Body       string
	SentAt     time.Time
}

// Subscription is one member's live feed for a single room. Close exactly
// once when done; the channel is closed by the hub afterwards.
type Subscription struct {
	C <-chan Message

	hub  *Hub
	room string
	ch   chan Message
	once sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.leave(s.room, s.ch)
	})
}

// Hub routes chat messages to room subscribers. Delivery is best effort: a
// subscriber whose buffer is full misses the message instead of blocking
// the rest of the room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[chan Message]struct{}
	buffer int
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub{
		rooms:  make(map[string]map[chan Message]struct{}),
		buffer: defaultSubscriberBuffer,
		logger: logger,
	}
}

// NormalizeRoom maps the raw path segment onto a room name.
func NormalizeRoom(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Join subscribes the caller to a room, creating the room on first join.
func (h *Hub) Join(room string) *Subscription {
	room = NormalizeRoom(room)
	ch := make(chan Message, h.buffer)

	h.mu.Lock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[chan Message]struct{})
		h.rooms[room] = members
	}
	members[ch] = struct{}{}
	h.mu.Unlock()

	return &Subscription{C: ch, hub: h, room: room, ch: ch}
}

func (h *Hub) leave(room string, ch chan Message) {
	h.mu.Lock()
	if members, ok := h.rooms[room]; ok {
		delete(members, ch)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
	close(ch)
}

// Broadcast sends the message to every current subscriber of its room and
// reports how many buffers accepted it.
func (h *Hub) Broadcast(msg Message) int {
	msg.Room = NormalizeRoom(msg.Room)
	if msg.Event == "" {
		msg.Event = EventMessage
	}

	h.mu.RLock()
	targets := make([]chan Message, 0, len(h.rooms[msg.Room]))
	for ch := range h.rooms[msg.Room] {
		targets = append(targets, ch)
	}
	h.mu.RUnlock()

	var delivered atomic.Int32
	var wg conc.WaitGroup
	for _, ch := range targets {
		target := ch
		wg.Go(func() {
			select {
			case target <- msg:
				delivered.Add(1)
			default:
				h.logger.Warn("chat subscriber buffer full, dropping message",
					"room", msg.Room,
					"event", msg.Event,
				)
			}
		})
	}
	wg.Wait()

	return int(delivered.Load())
}

// MemberCount reports the current subscriber count of a room.
func (h *Hub) MemberCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[NormalizeRoom(room)])
}
