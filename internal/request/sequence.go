package request

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

var requestIDPattern = regexp.MustCompile(`^REQ-(\d+)$`)

// Sequence issues the REQ-NNN request identifiers. It starts at 1 and is
// re-seeded from persisted data at store load so restarts never collide
// with stored IDs. Tests create their own instances.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next identifier, zero-padded to three digits.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("REQ-%03d", s.next)
	s.next++
	return id
}

// InitializeFrom advances the counter to one past the highest numeric
// suffix found in requests. IDs that do not match the REQ-NNN pattern are
// ignored. The counter never moves backward.
func (s *Sequence) InitializeFrom(requests []Request) {
	max := 0
	for _, r := range requests {
		m := requestIDPattern.FindStringSubmatch(r.ID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if max+1 > s.next {
		s.next = max + 1
	}
}
