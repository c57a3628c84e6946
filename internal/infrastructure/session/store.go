// Package session implementa las sesiones opacas del lado servidor. Las
// sesiones viven en memoria: se pierden en un reinicio y el usuario vuelve a
// loguearse. La expiración es perezosa, sin timers: una sesión vencida se
// descarta recién cuando alguien pregunta por ella.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EzequielRindello/StockCore/internal/application/ports"
)

var _ ports.SessionStore = (*Store)(nil)

type record struct {
	userID   string
	lastSeen time.Time
}

// Store sesiones en memoria con ventana de inactividad deslizante.
type Store struct {
	mu      sync.Mutex
	records map[string]record
	idle    time.Duration
	now     func() time.Time // inyectable en tests
}

// NewStore construye el store con la ventana de inactividad dada.
func NewStore(idle time.Duration) *Store {
	return &Store{
		records: map[string]record{},
		idle:    idle,
		now:     time.Now,
	}
}

// Create abre una sesión y devuelve su token opaco (uuid).
func (s *Store) Create(userID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[token] = record{userID: userID, lastSeen: s.now()}
	return token
}

// Get resuelve el token al user id. Cada acierto renueva la ventana de
// inactividad; una sesión vencida se elimina y responde como inexistente.
func (s *Store) Get(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[token]
	if !ok {
		return "", false
	}
	now := s.now()
	if now.Sub(rec.lastSeen) > s.idle {
		delete(s.records, token)
		return "", false
	}
	rec.lastSeen = now
	s.records[token] = rec
	return rec.userID, true
}

// Destroy elimina la sesión. Token desconocido es un no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
}
