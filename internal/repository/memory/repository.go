package memory

import "sync"

// Repository remembers the last game recapped per team so the
// scheduled recap job does not repost a game it already announced.
type Repository struct {
	lastRecapped map[string]string
	mu           sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{lastRecapped: make(map[string]string)}
}

func (r *Repository) SaveLastRecapped(teamAbbr, gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRecapped[teamAbbr] = gameID
}

func (r *Repository) GetLastRecapped(teamAbbr string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRecapped[teamAbbr]
}
