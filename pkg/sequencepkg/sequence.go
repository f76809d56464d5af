// Package sequencepkg issues unique, monotonically increasing numbers.
package sequencepkg

import "sync"

// Sequence hands out consecutive numbers starting at the configured first value.
// It is safe for concurrent use.
type Sequence struct {
	mu   sync.Mutex
	next int32
}

// New returns a sequence whose first number is first.
func New(first int32) *Sequence {
	return &Sequence{next: first}
}

// Next returns the next number of the sequence.
func (s *Sequence) Next() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	s.next++

	return n
}
