package httpserver

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/storefront/catalog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS layer for browsers; the socket itself accepts any.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type liveInput struct {
	Q string `json:"q"`
}

// liveSearch streams debounced search results. Each message from the client is
// the current text of the search box; the filters from the URL stay fixed for
// the life of the connection.
func (h *handlers) liveSearch(c *gin.Context) {
	l := h.language(c)
	base := catalog.ParseQuery(c.Request.URL.Query())

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("httpserver: live upgrade failed err=%v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())

	var writeMu sync.Mutex
	search := func(ctx context.Context, text string) ([]domain.Product, error) {
		q := base
		q.Q = text
		return h.deps.Catalog.Search(ctx, q)
	}
	deliver := func(text string, parts []domain.Product, err error) {
		res := h.deps.Catalog.Live(context.WithoutCancel(ctx), l, text, parts, err)
		writeMu.Lock()
		defer writeMu.Unlock()
		if werr := conn.WriteJSON(res); werr != nil {
			h.logger.Printf("httpserver: live write err=%v", werr)
		}
	}
	deb := catalog.NewDebouncer(ctx, h.deps.SearchDebounce, search, deliver)
	defer func() {
		cancel()
		deb.Stop()
	}()

	for {
		var in liveInput
		if err := conn.ReadJSON(&in); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("httpserver: live read session=%s err=%v", sessionOf(c).id, err)
			}
			return
		}
		deb.Input(in.Q)
	}
}
