package wshub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"shootinggallery/internal/render"
	"sync"

	"github.com/coder/websocket"
)

// Client message types.
const (
	MsgStart   = "start"
	MsgRestart = "restart"
	MsgClick   = "click"
	MsgResize  = "resize"
)

// Server message types.
const (
	MsgWelcome = "welcome"
	MsgFrame   = "frame"
	MsgPhase   = "phase"
	MsgSound   = "sound"
	MsgOver    = "over"
	MsgBye     = "bye"
)

// ClientMessage is the JSON structure received from clients.
type ClientMessage struct {
	Type string  `json:"t"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
}

// ServerMessage is the JSON structure sent to clients.
type ServerMessage struct {
	Type      string              `json:"t"`
	SessionID string              `json:"id,omitempty"`
	Assets    map[string][]string `json:"a,omitempty"`
	Frame     *render.Frame       `json:"f,omitempty"`
	Phase     string              `json:"ph,omitempty"`
	Sound     string              `json:"snd,omitempty"`
	Score     uint32              `json:"sc,omitempty"`
	Reason    string              `json:"r,omitempty"`
}

// ErrStalled means a client let its control queue fill up.
var ErrStalled = errors.New("client stopped reading")

// Client represents a single WebSocket connection in the hub. Only the newest
// frame waits to be written; every other message is queued in order and is
// never dropped.
type Client struct {
	SessionID string
	Conn      *websocket.Conn

	mu      sync.Mutex
	queue   [][]byte
	frame   []byte
	limit   int
	closed  bool
	stalled bool
	wake    chan struct{}
}

// NewClient returns a client that holds at most limit unwritten control
// messages. Going past it closes the client.
func NewClient(sessionID string, conn *websocket.Conn, limit int) *Client {
	return &Client{
		SessionID: sessionID,
		Conn:      conn,
		limit:     limit,
		wake:      make(chan struct{}, 1),
	}
}

// WritePump writes queued messages to the WebSocket connection, control
// messages before the pending frame. Once the client is closed it flushes
// what is left and returns.
func (c *Client) WritePump(ctx context.Context) error {
	for {
		batch, done, err := c.take()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		for _, msg := range batch {
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return fmt.Errorf("write to %s: %w", c.SessionID, err)
			}
		}
		if len(batch) > 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-c.wake:
		}
	}
}

// ReadPump decodes client messages and hands each one to handle. Frames that
// are not valid JSON are logged and skipped. It returns nil when the peer
// closes normally.
func (c *Client) ReadPump(ctx context.Context, handle func(ClientMessage)) error {
	for {
		_, data, err := c.Conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read from %s: %w", c.SessionID, err)
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WSHub] Bad message from %s: %v\n", c.SessionID, err)
			continue
		}
		handle(msg)
	}
}

// Deliver queues msg for the write pump without blocking. A frame replaces
// any frame not yet written. It reports false once the client is closed.
func (c *Client) Deliver(msg ServerMessage) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return false
	}
	return c.offer(msg.Type, data)
}

func (c *Client) offer(kind string, data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	if kind == MsgFrame {
		c.frame = data
		c.signal()
		return true
	}
	if len(c.queue) >= c.limit {
		log.Printf("[WSHub] %s has %d unsent messages, closing\n", c.SessionID, len(c.queue))
		c.stalled = true
		c.closed = true
		c.queue, c.frame = nil, nil
		c.signal()
		return false
	}
	c.queue = append(c.queue, data)
	c.signal()
	return true
}

// take removes everything waiting to be written, frame last. done is true
// when the client is closed and nothing is left.
func (c *Client) take() (batch [][]byte, done bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stalled {
		return nil, true, fmt.Errorf("%s: %w", c.SessionID, ErrStalled)
	}
	batch, c.queue = c.queue, nil
	if c.frame != nil {
		batch = append(batch, c.frame)
		c.frame = nil
	}
	return batch, c.closed && len(batch) == 0, nil
}

func (c *Client) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// close stops new messages; the write pump flushes what is queued and stops.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		c.signal()
	}
}

// Hub tracks every connected session.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.SessionID] = c
}

// Unregister removes a client and closes it.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[sessionID]; ok {
		c.close()
		delete(h.clients, sessionID)
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a message for every client.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		c.offer(msg.Type, data)
	}
}

// Shutdown sends a last message to every client and closes them all. Each
// write pump flushes its queue and returns, which ends the session.
func (h *Hub) Shutdown(last ServerMessage) {
	h.Broadcast(last)

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		c.close()
		delete(h.clients, id)
	}
}
