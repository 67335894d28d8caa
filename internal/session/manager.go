package session

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/feedhandler/mdfeed/internal/itch"
	"github.com/feedhandler/mdfeed/internal/symbol"
)

// Manager handles client registration, subscriptions, and message fan-out.
type Manager struct {
	mu         sync.RWMutex
	clients    map[uint64]*Client
	symbols    *symbol.Table
	bufferSize int
}

// NewManager creates a session manager backed by the feed's learned symbol table.
func NewManager(symbols *symbol.Table, bufferSize int) *Manager {
	return &Manager{
		clients:    make(map[uint64]*Client),
		symbols:    symbols,
		bufferSize: bufferSize,
	}
}

// Register adds a new client. Returns the client for further use.
func (m *Manager) Register(conn *websocket.Conn) *Client {
	c := NewClient(conn, m.bufferSize)

	m.mu.Lock()
	m.clients[c.ID] = c
	m.mu.Unlock()

	log.Printf("client %d connected (%s)", c.ID, conn.RemoteAddr())
	return c
}

// Unregister removes a client.
func (m *Manager) Unregister(c *Client) {
	m.mu.Lock()
	delete(m.clients, c.ID)
	m.mu.Unlock()

	c.Close()
	log.Printf("client %d disconnected", c.ID)
}

// ResolveTickers converts ticker strings to locate codes, using whatever the
// feed has learned so far. Returns nil, true for "*" (all symbols).
func (m *Manager) ResolveTickers(tickers []string) (locates []uint16, all bool) {
	for _, t := range tickers {
		if t == "*" {
			return nil, true
		}
		if d, ok := m.symbols.ByTicker(t); ok {
			locates = append(locates, d.Locate)
		}
	}
	return locates, false
}

// Broadcast sends a batch of decoded messages for one locate to every
// client subscribed to it, encoding each message once per format rather
// than once per client.
func (m *Manager) Broadcast(locate uint16, msgs []any) {
	if len(msgs) == 0 {
		return
	}

	var jsonEncoded [][]byte
	var binaryEncoded [][]byte
	var jsonOnce, binaryOnce sync.Once

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.clients {
		if !c.IsSubscribed(locate) {
			continue
		}

		switch c.Format() {
		case FormatJSON:
			jsonOnce.Do(func() {
				jsonEncoded = encodeAllJSON(msgs)
			})
			for _, data := range jsonEncoded {
				if !c.Send(data) {
					// buffer full, message dropped
				}
			}

		case FormatBinary:
			binaryOnce.Do(func() {
				binaryEncoded = encodeAllBinary(msgs)
			})
			for _, data := range binaryEncoded {
				if !c.Send(data) {
					// buffer full, message dropped
				}
			}
		}
	}
}

// SendToClient sends messages directly to a specific client (e.g., stock
// directory entries on connect).
func (m *Manager) SendToClient(c *Client, msgs []any) {
	switch c.Format() {
	case FormatJSON:
		for _, data := range encodeAllJSON(msgs) {
			c.Send(data)
		}
	case FormatBinary:
		for _, data := range encodeAllBinary(msgs) {
			c.Send(data)
		}
	}
}

// ClientCount returns the number of connected clients.
func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// ClientStats returns a snapshot of every connected client's subscription
// and delivery state, for the /api/clients introspection endpoint.
func (m *Manager) ClientStats() []Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Stats, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c.Stats())
	}
	return out
}

// Symbols returns the feed's learned symbol table.
func (m *Manager) Symbols() *symbol.Table {
	return m.symbols
}

func encodeAllJSON(msgs []any) [][]byte {
	out := make([][]byte, 0, len(msgs))
	for _, msg := range msgs {
		data, err := itch.EncodeJSON(msg)
		if err != nil {
			continue
		}
		out = append(out, data)
	}
	return out
}

func encodeAllBinary(msgs []any) [][]byte {
	out := make([][]byte, 0, len(msgs))
	for _, msg := range msgs {
		data, err := itch.Encode(msg)
		if err != nil {
			continue
		}
		out = append(out, data)
	}
	return out
}
