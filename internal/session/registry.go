package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTTL время простоя, после которого сессия вытесняется
const DefaultIdleTTL = 30 * time.Minute

// Registry хранит сессии форм по UUID.
// Простаивающие дольше ttl сессии удаляются при обращении к реестру.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	deps         Deps
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewRegistry создает реестр; ttl <= 0 заменяется на DefaultIdleTTL
func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &Registry{
		sessions:     make(map[string]*Session),
		deps:         deps,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник текущего времени для реестра и новых сессий
func (r *Registry) WithTimeProvider(tp TimeProvider) *Registry {
	r.timeProvider = tp
	return r
}

// Create открывает новую сессию
func (r *Registry) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()

	s := New(uuid.New().String(), r.deps, r.timeProvider)
	r.sessions[s.ID()] = s
	r.deps.Logger.Info("Registry: session %s created, active=%d", s.ID(), len(r.sessions))
	return s
}

// Get возвращает сессию по идентификатору
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete закрывает сессию
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Len возвращает число активных сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *Registry) evictLocked() {
	now := r.timeProvider.Now()
	for id, s := range r.sessions {
		if now.Sub(s.LastActive()) > r.ttl {
			delete(r.sessions, id)
			r.deps.Logger.Info("Registry: session %s evicted after idle timeout", id)
		}
	}
}
