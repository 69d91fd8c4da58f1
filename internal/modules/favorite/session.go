package favorite

import (
	"sort"
	"sync"
)

// Session is the per-device client state: the set of favorited document ids
// and the selected locality. It replaces what the web client used to keep in
// browser storage.
type Session struct {
	mu        sync.Mutex
	favorites map[uint]struct{}
	gu        string
	dong      string
}

func newSession() *Session {
	return &Session{favorites: make(map[uint]struct{})}
}

// Add puts a document id into the favorite set. Returns false when it was
// already present.
func (s *Session) Add(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[id]; ok {
		return false
	}
	s.favorites[id] = struct{}{}
	return true
}

// Remove takes a document id out of the favorite set. Returns false when it
// was not present.
func (s *Session) Remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[id]; !ok {
		return false
	}
	delete(s.favorites, id)
	return true
}

// Has reports whether a document id is in the favorite set.
func (s *Session) Has(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[id]
	return ok
}

// IDs returns the favorite set as a sorted slice.
func (s *Session) IDs() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uint, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SetLocality stores the selected gu/dong pair.
func (s *Session) SetLocality(gu, dong string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gu = gu
	s.dong = dong
}

// Locality returns the selected gu/dong pair. Both are empty until a
// locality is chosen.
func (s *Session) Locality() (gu, dong string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gu, s.dong
}

// Store keeps one session per device id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Session returns the session for a device id, creating it on first use.
func (st *Store) Session(deviceID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[deviceID]
	if !ok {
		sess = newSession()
		st.sessions[deviceID] = sess
	}
	return sess
}
