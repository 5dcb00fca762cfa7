package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/RekhaKadam/sonna-s-cafe/cart"
	"github.com/RekhaKadam/sonna-s-cafe/checkout"
	"github.com/RekhaKadam/sonna-s-cafe/otp"
	"github.com/RekhaKadam/sonna-s-cafe/store"
)

// Session is one browsing session: its cart, its checkout flow and any
// login-in-progress state. Cart and checkout serialize themselves; the
// login fields are only touched from the session's own requests.
type Session struct {
	ID       string
	Cart     *cart.Cart
	Checkout *checkout.Orchestrator

	mu         sync.Mutex
	loginOTP   string
	loginName  string
	loginPhone string
}

// BeginLogin records the pending login attempt and its code.
func (s *Session) BeginLogin(name, phone, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginName = name
	s.loginPhone = phone
	s.loginOTP = code
}

// PendingLogin returns the login attempt awaiting verification.
func (s *Session) PendingLogin() (name, phone, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginName, s.loginPhone, s.loginOTP
}

// FinishLogin clears the pending attempt.
func (s *Session) FinishLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginName = ""
	s.loginPhone = ""
	s.loginOTP = ""
}

// Teardown cancels the session's pending timers.
func (s *Session) Teardown() {
	s.Checkout.Close()
	s.Cart.StopAnimation()
}

// Manager hands out sessions keyed by an opaque id the client echoes
// back on every request.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	store *store.Store
	otp   *otp.Generator
	opts  []checkout.Option
}

// NewManager creates a registry whose sessions share the given store and
// OTP generator. Checkout options apply to every session's orchestrator.
func NewManager(s *store.Store, gen *otp.Generator, opts ...checkout.Option) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    s,
		otp:      gen,
		opts:     opts,
	}
}

// Get returns the session for the id, creating a fresh one when the id
// is unknown or blank.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	c := cart.New()
	s := &Session{
		ID:       uuid.NewString(),
		Cart:     c,
		Checkout: checkout.New(c, m.store, m.otp, m.opts...),
	}
	m.sessions[s.ID] = s
	return s
}

// Drop tears the session down and forgets it.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Teardown()
	}
}
