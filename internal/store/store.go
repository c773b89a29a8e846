package store

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/arunsketh/smoothening-curve/pkg/models"
)

// ResultStore caches computed curves for redisplay. Entries expire after the
// configured TTL; nothing outlives the process.
type ResultStore interface {
	// Put stores a record and marks it fresh, replacing any existing entry.
	Put(id string, rec *models.CurveRecord)
	// Get returns a record along with a one-shot freshness flag: true on the
	// first read after Put, false on every later read.
	Get(id string) (rec *models.CurveRecord, fresh bool, ok bool)
	// Peek returns a record without consuming its freshness flag.
	Peek(id string) (*models.CurveRecord, bool)
	// Delete removes a record if present.
	Delete(id string)
}

type resultStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

type entry struct {
	rec   *models.CurveRecord
	fresh bool
}

// NewResultStore creates a TTL-backed result store.
func NewResultStore(ttl time.Duration) ResultStore {
	return &resultStore{
		cache: cache.New(ttl, ttl),
	}
}

func (s *resultStore) Put(id string, rec *models.CurveRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.SetDefault(id, &entry{rec: rec, fresh: true})
}

func (s *resultStore) Get(id string) (*models.CurveRecord, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false, false
	}
	e := v.(*entry)
	fresh := e.fresh
	e.fresh = false
	return e.rec, fresh, true
}

func (s *resultStore) Peek(id string) (*models.CurveRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*entry).rec, true
}

func (s *resultStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(id)
}
