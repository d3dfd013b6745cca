package storeapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/greenandblue/gbstore/internal/catalog"
	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/internal/webserver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveHub fans catalog snapshots out to connected storefront clients. Every
// frame is a full catalog replacement, mirroring the store's subscription
// contract.
type liveHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
	unsub func()
}

var hub = &liveHub{conns: make(map[*websocket.Conn]bool)}

func registerLiveRoutes() {
	webserver.ApiGET("/products/live", liveProducts)
}

func (h *liveHub) ensureSubscribed(store *catalog.Store) error {
	h.mu.Lock()
	if h.unsub != nil {
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	// Subscribe outside the lock: the store invokes broadcast synchronously
	// with the immediate snapshot, and broadcast takes h.mu itself.
	unsub, err := store.Subscribe(h.broadcast)
	if err != nil {
		return err
	}

	h.mu.Lock()
	if h.unsub != nil {
		// another request won the race, keep its subscription
		h.mu.Unlock()
		unsub()
		return nil
	}
	h.unsub = unsub
	h.mu.Unlock()
	return nil
}

func (h *liveHub) broadcast(products []domain.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(conn)
			_ = conn.Close()
		}
	}
}

func (h *liveHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
}

func (h *liveHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

func liveProducts(c echo.Context) error {
	appx := getApp(c)
	if err := hub.ensureSubscribed(appx.CatalogStore()); err != nil {
		return fail(c, http.StatusInternalServerError, "LIVE_ERROR", "Failed to attach catalog feed", err.Error())
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}
	defer conn.Close()

	// first frame is the current snapshot so a new client renders immediately
	snapshot, err := json.Marshal(appx.CatalogCache().Snapshot())
	if err == nil {
		if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			return nil
		}
	}

	hub.add(conn)
	defer hub.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("live feed client dropped", zap.Error(err))
			}
			return nil
		}
	}
}
