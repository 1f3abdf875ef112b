package store

import (
	"errors"
	"log"
	"sync"

	"crisis-supply-api-server/internal/models"
	"crisis-supply-api-server/internal/request"
)

var ErrRequestNotFound = errors.New("request not found")

// Notifier receives an event for every request mutation. The websocket hub
// satisfies this; a nil notifier disables notifications.
type Notifier interface {
	Broadcast(event string, payload any)
}

// Counts holds the derived per-status figures shown on the dashboards.
type Counts struct {
	Open     int `json:"open"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Partial  int `json:"partial"`
}

// Store owns the authoritative in-memory request list and is its only
// writer. Every mutation is persisted as a whole through the configured
// Persistence backend before the lock is released.
type Store struct {
	mu       sync.RWMutex
	requests []request.Request
	index    map[string]int // request ID -> slice position
	seq      *request.Sequence
	persist  Persistence
	notify   Notifier
}

func New(persist Persistence, seq *request.Sequence, notify Notifier) *Store {
	return &Store{
		index:   make(map[string]int),
		seq:     seq,
		persist: persist,
		notify:  notify,
	}
}

// Load pulls the persisted list and re-seeds the ID sequence from it.
// Malformed or unreadable state is logged and treated as an empty list so
// the server still starts.
func (s *Store) Load() {
	requests, err := s.persist.Load()
	if err != nil {
		log.Printf("request store: discarding persisted state: %v", err)
		requests = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = requests
	s.reindex()
	s.seq.InitializeFrom(requests)
}

// AddRequest builds a new request from the cart, appends it and persists
// the list. A persistence failure keeps the in-memory record and is logged,
// matching the best-effort durability of the storage contract.
func (s *Store) AddRequest(cart []models.InventoryItem, meta request.Meta) (request.Request, error) {
	s.mu.Lock()
	req, err := request.NewFromCart(cart, meta, s.seq)
	if err == nil {
		s.requests = append(s.requests, req)
		s.index[req.ID] = len(s.requests) - 1
		s.save()
	}
	s.mu.Unlock()

	if err != nil {
		return request.Request{}, err
	}
	s.broadcast("request_created", req)
	return req, nil
}

// UpdateStatus transitions the request with the given ID and persists the
// list. An unknown ID fails with ErrRequestNotFound.
func (s *Store) UpdateStatus(id string, newStatus request.Status, comment, user string, updates map[string]request.ArticleUpdate) (request.Request, error) {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return request.Request{}, ErrRequestNotFound
	}
	updated, err := request.UpdateStatus(s.requests[pos], newStatus, comment, user, updates)
	if err == nil {
		s.requests[pos] = updated
		s.save()
	}
	s.mu.Unlock()

	if err != nil {
		return request.Request{}, err
	}
	s.broadcast("request_updated", updated)
	return updated, nil
}

func (s *Store) GetByID(id string) (request.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return request.Request{}, false
	}
	return s.requests[pos], true
}

// ForChairman maps the full list through the approver projection.
func (s *Store) ForChairman() []request.ChairmanRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]request.ChairmanRequest, len(s.requests))
	for i, r := range s.requests {
		out[i] = request.ToChairmanView(r)
	}
	return out
}

// ForEmployee maps the full list through the requester projection.
func (s *Store) ForEmployee() []request.EmployeeRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]request.EmployeeRequest, len(s.requests))
	for i, r := range s.requests {
		out[i] = request.ToEmployeeView(r)
	}
	return out
}

func (s *Store) OpenCount() int {
	return s.CountsByStatus().Open
}

func (s *Store) CountsByStatus() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var c Counts
	for _, r := range s.requests {
		switch r.Status {
		case request.StatusOpen:
			c.Open++
			c.Pending++
		case request.StatusAccepted:
			c.Approved++
		case request.StatusRejected:
			c.Rejected++
		case request.StatusPartial:
			c.Partial++
		}
	}
	return c
}

// Snapshot returns a copy of the full canonical list, e.g. for archive
// exports. The records themselves are safe to share since the store only
// ever replaces them wholesale.
func (s *Store) Snapshot() []request.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]request.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// save persists the full list; callers hold the write lock.
func (s *Store) save() {
	if err := s.persist.Save(s.requests); err != nil {
		log.Printf("request store: persist failed: %v", err)
	}
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.requests))
	for i, r := range s.requests {
		s.index[r.ID] = i
	}
}

func (s *Store) broadcast(event string, payload any) {
	if s.notify != nil {
		s.notify.Broadcast(event, payload)
	}
}
