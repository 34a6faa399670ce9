package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/desertthunder/onboard/internal/models"
	"github.com/desertthunder/onboard/internal/shared"
	"github.com/desertthunder/onboard/internal/wizard"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "onboard_session"

// Session store defaults.
const (
	DefaultSessionTTL   = 30 * time.Minute
	DefaultSessionLimit = 10000
)

// Sessions maps session ids to wizard controllers.
//
// A session idle longer than the TTL expires, and the least recently used one is evicted once the store is full.
type Sessions struct {
	mu          sync.Mutex
	entries     *expirable.LRU[string, *wizard.Controller]
	topics      models.Dataset
	newsletters models.Dataset
	opts        []wizard.Option
}

// NewSessions creates an empty store whose controllers share the given datasets and options.
func NewSessions(topics, newsletters models.Dataset, opts ...wizard.Option) *Sessions {
	return &Sessions{
		entries:     expirable.NewLRU[string, *wizard.Controller](DefaultSessionLimit, nil, DefaultSessionTTL),
		topics:      topics,
		newsletters: newsletters,
		opts:        opts,
	}
}

// SetLimits replaces the store with an empty one using the given idle TTL and size.
// Non-positive values fall back to the defaults.
func (s *Sessions) SetLimits(ttl time.Duration, limit int) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if limit <= 0 {
		limit = DefaultSessionLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = expirable.NewLRU[string, *wizard.Controller](limit, nil, ttl)
}

// With runs fn on the caller's controller while holding the store lock, issuing a new session cookie when needed.
//
// Every call renews the session's TTL.
func (s *Sessions) With(w http.ResponseWriter, r *http.Request, fn func(c *wizard.Controller)) {
	id := sessionID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.entries.Get(id)
	if !ok {
		id = shared.GenerateID()
		c = wizard.NewController(s.topics, s.newsletters, s.opts...)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	s.entries.Add(id, c)
	fn(c)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}

func sessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	if err := uuid.Validate(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}
