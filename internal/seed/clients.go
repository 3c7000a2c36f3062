package seed

import "shootseeder/internal/models"

// ClientSet keeps the first client seen for each key, in first-seen order.
type ClientSet struct {
	index   map[string]int
	clients []models.Client
}

func NewClientSet() *ClientSet {
	return &ClientSet{index: make(map[string]int)}
}

// Add stores c under key unless the key is already present. It reports
// whether c was stored.
func (s *ClientSet) Add(key string, c models.Client) bool {
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.clients)
	s.clients = append(s.clients, c)
	return true
}

func (s *ClientSet) Get(key string) (models.Client, bool) {
	i, ok := s.index[key]
	if !ok {
		return models.Client{}, false
	}
	return s.clients[i], true
}

func (s *ClientSet) Len() int {
	return len(s.clients)
}

// Clients returns the stored clients in first-seen order.
func (s *ClientSet) Clients() []models.Client {
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}
