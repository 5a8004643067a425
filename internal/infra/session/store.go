package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"restobill/go_backend/internal/domain/bill"
)

var ErrNotFound = errors.New("bill not found")

type entry struct {
	mu      sync.Mutex
	bill    *bill.Bill
	touched time.Time
}

// Store keeps open bills in memory, one per billing session. Nothing is
// written to disk; a bill is gone once it is deleted or idles past the TTL.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	newBill func() *bill.Bill
	now     func() time.Time
}

func New(ttl time.Duration, newBill func() *bill.Bill) *Store {
	return &Store{
		entries: make(map[uuid.UUID]*entry),
		ttl:     ttl,
		newBill: newBill,
		now:     time.Now,
	}
}

func (s *Store) Create() (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[id] = &entry{bill: s.newBill(), touched: s.now()}
	return id, nil
}

// Do runs fn with exclusive access to the bill. A bill deleted or evicted
// while Do waited for it is reported as ErrNotFound and fn is not run.
func (s *Store) Do(id uuid.UUID, fn func(b *bill.Bill) error) error {
	e, ok := s.lookup(id)
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !s.live(id, e) {
		return ErrNotFound
	}
	return fn(e.bill)
}

// live is called with e.mu held; lock order is always e.mu before s.mu.
func (s *Store) live(id uuid.UUID, e *entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[id] == e
}

func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) lookup(id uuid.UUID) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, id)
		return nil, false
	}
	e.touched = now
	return e, true
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.touched) > s.ttl
}

func (s *Store) sweepLocked() {
	now := s.now()
	n := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			n++
		}
	}
	if n > 0 {
		log.Printf("session: evicted %d idle bills", n)
	}
}
