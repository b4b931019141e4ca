// Package ws — канал сообщений между страницами и контроллером воркера поверх websocket.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gorilla/websocket"
)

// Тайминги heartbeat: ping чаще, чем истекает таймаут чтения.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 32
)

// errorFrame — ответ клиенту на отклонённое сообщение.
type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type controlPlane interface {
	HandleMessage(ctx context.Context, msg domain.ControlMessage) error
}

// Hub — все открытые страницы. Сообщения страниц уходят в контроллер,
// уведомления контроллера рассылаются всем страницам.
type Hub struct {
	control  controlPlane
	log      ports.Logger
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[*conn]struct{}
}

type conn struct {
	ws        *websocket.Conn
	send      chan []byte
	requestID string
	closeOnce sync.Once
}

func NewHub(control controlPlane, log ports.Logger) *Hub {
	return &Hub{
		control: control,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// страницы витрины обслуживаются тем же процессом
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*conn]struct{}),
	}
}

// ServeHTTP — апгрейд до websocket и запуск read/write-циклов соединения.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf(r.Context(), "websocket upgrade failed: %v", err)
		return
	}

	rid, _ := ctxmeta.RequestIDFromContext(r.Context())
	c := &conn{ws: wsConn, send: make(chan []byte, sendBuffer), requestID: rid}
	h.register(c)

	go h.writePump(c)
	go h.readPump(c)
}

// Notify — рассылка уведомления контроллера; подходит как worker.Listener.
// Медленный клиент с заполненным буфером пропускает уведомление.
func (h *Hub) Notify(ctx context.Context, n domain.Notification) {
	raw, err := json.Marshal(n)
	if err != nil {
		h.log.Errorf(ctx, "encode notification: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns {
		select {
		case c.send <- raw:
		default:
			h.log.Warnf(ctx, "websocket client buffer full, dropping %s", n.Type)
		}
	}
}

// Count — число открытых соединений.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close — закрывает все соединения (при остановке сервера).
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		c.closeOnce.Do(func() { close(c.send) })
		_ = c.ws.Close()
		delete(h.conns, c)
	}
}

func (h *Hub) register(c *conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; ok {
		delete(h.conns, c)
		c.closeOnce.Do(func() { close(c.send) })
	}
}

func (h *Hub) readPump(c *conn) {
	defer func() {
		h.unregister(c)
		_ = c.ws.Close()
	}()

	ctx := ctxmeta.WithRequestID(context.Background(), c.requestID)

	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warnf(ctx, "websocket read: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		h.handle(ctx, c, raw)
	}
}

func (h *Hub) handle(ctx context.Context, c *conn, raw []byte) {
	var msg domain.ControlMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Type == "" {
		h.reply(c, errorFrame{Type: "ERROR", Error: "invalid control message"})
		return
	}
	if err := h.control.HandleMessage(ctx, msg); err != nil {
		h.log.Warnf(ctx, "control message %s rejected: %v", msg.Type, err)
		h.reply(c, errorFrame{Type: "ERROR", Error: err.Error()})
	}
}

func (h *Hub) reply(c *conn, frame errorFrame) {
	raw, err := json.Marshal(frame)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.conns[c]; !ok {
		return
	}
	select {
	case c.send <- raw:
	default:
	}
}

func (h *Hub) writePump(c *conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
