package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hupe1980/llmcouncil/core"
)

// DefaultSize is the number of finished discussions kept by default.
const DefaultSize = 128

// InMemoryStore is a volatile, bounded DiscussionStore. When full, the least
// recently used discussion is evicted. It is safe for concurrent access.
// Returned discussions are copies; callers cannot mutate stored state.
type InMemoryStore struct {
	cache *lru.Cache[string, core.Discussion]
}

// NewInMemoryStore constructs an empty store holding at most size
// discussions. size <= 0 selects DefaultSize.
func NewInMemoryStore(size int) (*InMemoryStore, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, core.Discussion](size)
	if err != nil {
		return nil, fmt.Errorf("create discussion cache: %w", err)
	}
	return &InMemoryStore{cache: cache}, nil
}

// Save stores a copy of d under d.ID.
func (s *InMemoryStore) Save(d core.Discussion) error {
	if d.ID == "" {
		return fmt.Errorf("save discussion: empty id")
	}
	s.cache.Add(d.ID, clone(d))
	return nil
}

// Get returns a copy of the discussion with the given id or core.ErrNotFound.
func (s *InMemoryStore) Get(id string) (core.Discussion, error) {
	d, ok := s.cache.Get(id)
	if !ok {
		return core.Discussion{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	return clone(d), nil
}

// Len returns the number of discussions currently held.
func (s *InMemoryStore) Len() int { return s.cache.Len() }

// clone copies the slices of d. Responses of finished rounds are never
// written again and are shared.
func clone(d core.Discussion) core.Discussion {
	out := d
	out.Result.Rounds = append([]core.Round(nil), d.Result.Rounds...)
	out.Transcript = append([]core.Utterance(nil), d.Transcript...)
	return out
}
