package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/otp"
	"github.com/RekhaKadam/sonna-s-cafe/session"
	"github.com/RekhaKadam/sonna-s-cafe/store"
)

// SessionHeader carries the opaque session id. The server issues one on
// first contact; clients echo it on every later request.
const SessionHeader = "X-Session-ID"

const sessionKey = "session"

// Handler wires the storefront's HTTP surface to its services.
type Handler struct {
	store    *store.Store
	otp      *otp.Generator
	sessions *session.Manager
}

// New creates a handler over the given services.
func New(s *store.Store, gen *otp.Generator, sessions *session.Manager) *Handler {
	return &Handler{store: s, otp: gen, sessions: sessions}
}

// WithSession resolves the caller's session from the session header,
// creating one when needed, and echoes the id back on the response.
func (h *Handler) WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := h.sessions.Get(c.GetHeader(SessionHeader))
		c.Set(sessionKey, sess)
		c.Header(SessionHeader, sess.ID)
		c.Next()
	}
}

func getSession(c *gin.Context) *session.Session {
	v, _ := c.Get(sessionKey)
	return v.(*session.Session)
}
