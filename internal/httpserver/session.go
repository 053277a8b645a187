package httpserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/cart"
	"autoparts-storefront/internal/state/kv"
	"autoparts-storefront/internal/state/lang"
)

const (
	sessionCookie = "ap_sid"
	sessionCtxKey = "ap.session"
)

// session is the per-visitor storage scope: cart, login and language all
// live under one namespace keyed by the cookie.
type session struct {
	id    string
	store kv.Store
}

// sessionMiddleware attaches a session to every request, issuing a fresh id
// when the cookie is missing or malformed. The cookie is re-sent each time so
// its expiry slides with activity.
func sessionMiddleware(store kv.Store, ttl time.Duration, secure bool, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !validSessionID(id) {
			id = uuid.NewString()
			logger.Printf("httpserver: new session id=%s", id)
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(sessionCtxKey, &session{id: id, store: kv.Namespace(store, "session:"+id)})
		c.Next()
	}
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func sessionOf(c *gin.Context) *session {
	return c.MustGet(sessionCtxKey).(*session)
}

// language is the visitor's stored preference; storage failures fall back to Arabic.
func (h *handlers) language(c *gin.Context) lang.Lang {
	pref, err := lang.Open(c.Request.Context(), sessionOf(c).store)
	if err != nil {
		h.logger.Printf("httpserver: load lang err=%v", err)
		return lang.Arabic
	}
	return pref.Lang()
}

func (h *handlers) cart(c *gin.Context) (*cart.Cart, bool) {
	crt, err := cart.Open(c.Request.Context(), sessionOf(c).store)
	if err != nil {
		h.storageFailed(c, err)
		return nil, false
	}
	return crt, true
}

func (h *handlers) auth(c *gin.Context) (*auth.Session, bool) {
	a, err := auth.Open(c.Request.Context(), sessionOf(c).store)
	if err != nil {
		h.storageFailed(c, err)
		return nil, false
	}
	return a, true
}
