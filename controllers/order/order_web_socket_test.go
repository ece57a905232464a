package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/madoxlx/egtravel-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFeedBroadcastsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/orders/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/admin/orders/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// The handler registers the connection just after the handshake;
	// wait for it before broadcasting.
	require.Eventually(t, func() bool {
		feed.mu.Lock()
		defer feed.mu.Unlock()
		return len(feed.clients) > 0
	}, time.Second, 10*time.Millisecond)

	broadcastNewOrder(models.Order{OrderNumber: "SJ123-ABCDEF", TotalAmount: 900, Currency: "EGP"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var created orderEvent
	require.NoError(t, conn.ReadJSON(&created))
	assert.Equal(t, "order.created", created.Event)
	assert.Equal(t, "SJ123-ABCDEF", created.OrderNumber)
	assert.Equal(t, 900.0, created.TotalAmount)
	assert.Equal(t, "EGP", created.Currency)

	broadcastOrderStatus("SJ123-ABCDEF", models.OrderStatusConfirmed)

	var changed orderEvent
	require.NoError(t, conn.ReadJSON(&changed))
	assert.Equal(t, "order.status_changed", changed.Event)
	assert.Equal(t, string(models.OrderStatusConfirmed), changed.Status)
}
