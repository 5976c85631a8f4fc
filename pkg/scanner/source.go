package scanner

import (
	"io"

	"github.com/edwingeng/deque"
)

// runeSource buffers runes pulled from a reader so the scanner can look up to
// two characters ahead without consuming them.
type runeSource struct {
	reader  io.RuneReader
	pending deque.Deque
	drained bool
	err     error
}

func newRuneSource(r io.RuneReader) *runeSource {
	return &runeSource{
		reader:  r,
		pending: deque.NewDeque(),
	}
}

func (s *runeSource) fill(n int) {
	for s.pending.Len() < n && !s.drained {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			s.drained = true
			if err != io.EOF {
				s.err = err
			}
			return
		}
		s.pending.PushBack(r)
	}
}

func (s *runeSource) next() (rune, bool) {
	s.fill(1)
	if s.pending.Empty() {
		return 0, false
	}
	return s.pending.PopFront().(rune), true
}

func (s *runeSource) peek() (rune, bool) {
	s.fill(1)
	if s.pending.Empty() {
		return 0, false
	}
	return s.pending.Front().(rune), true
}

func (s *runeSource) peekNext() (rune, bool) {
	s.fill(2)
	if s.pending.Len() < 2 {
		return 0, false
	}
	first := s.pending.PopFront()
	second := s.pending.Front().(rune)
	s.pending.PushFront(first)
	return second, true
}

// takeErr returns a pending read failure once.
func (s *runeSource) takeErr() error {
	err := s.err
	s.err = nil
	return err
}
