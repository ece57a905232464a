package orderControllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/madoxlx/egtravel-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// orderEvent is the envelope pushed to admin consoles. Full order rows stay
// behind the REST endpoints; the feed only carries enough to ring a bell.
type orderEvent struct {
	Event       string    `json:"event"`
	OrderNumber string    `json:"order_number"`
	TotalAmount float64   `json:"total_amount,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	Status      string    `json:"status,omitempty"`
	At          time.Time `json:"at"`
}

type orderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

var feed = orderFeed{clients: make(map[*websocket.Conn]struct{})}

func (f *orderFeed) add(conn *websocket.Conn) {
	f.mu.Lock()
	f.clients[conn] = struct{}{}
	f.mu.Unlock()
}

func (f *orderFeed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.clients, conn)
	f.mu.Unlock()
}

func (f *orderFeed) broadcast(ev orderEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

// GET /api/admin/orders/ws
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	feed.add(conn)
	defer func() {
		feed.remove(conn)
		conn.Close()
	}()

	// Drain control/client frames until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func broadcastNewOrder(order models.Order) {
	feed.broadcast(orderEvent{
		Event:       "order.created",
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		At:          time.Now().UTC(),
	})
}

func broadcastOrderStatus(orderNumber string, status models.OrderStatus) {
	feed.broadcast(orderEvent{
		Event:       "order.status_changed",
		OrderNumber: orderNumber,
		Status:      string(status),
		At:          time.Now().UTC(),
	})
}
