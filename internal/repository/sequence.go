package repository

// Sequence hands out account numbers. It replaces the original's
// process-global counter so numbering is explicit, deterministic, and owned
// by the loaded state: a fresh state starts at 1 and a loaded state resumes
// after the highest persisted number.
type Sequence struct {
	next int
}

// NewSequence creates a sequence whose first Next call returns start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next returns the next account number and advances the sequence.
func (s *Sequence) Next() int {
	n := s.next
	s.next++
	return n
}
