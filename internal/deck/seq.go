package deck

import (
	"strconv"
	"strings"

	"cardloop/internal/cards"
)

// Seq is a singly linked chain of cards over an Arena: a hand, or the table.
// Push operations take detached cards, i.e. cards returned by PopFront.
type Seq struct {
	arena *Arena
	head  Card
	tail  Card
	n     int
}

// Len is the number of cards in the sequence.
func (s *Seq) Len() int {
	return s.n
}

// Empty reports whether the sequence holds no cards.
func (s *Seq) Empty() bool {
	return s.head == end
}

// PopFront detaches the front card and returns it.
func (s *Seq) PopFront() (Card, bool) {
	c := s.head
	if c == end {
		return end, false
	}
	nd := &s.arena.nodes[c]
	s.head = nd.next
	if s.head == end {
		s.tail = end
	}
	nd.next = end
	s.n--
	return c, true
}

// PushFront places c on top of the sequence, so a sequence fed only through
// PushFront behaves as a stack.
func (s *Seq) PushFront(c Card) {
	s.arena.nodes[c].next = s.head
	s.head = c
	if s.tail == end {
		s.tail = c
	}
	s.n++
}

// PushBack appends c to the bottom of the sequence.
func (s *Seq) PushBack(c Card) {
	s.arena.nodes[c].next = end
	if s.tail == end {
		s.head = c
	} else {
		s.arena.nodes[s.tail].next = c
	}
	s.tail = c
	s.n++
}

// Swap exchanges the contents of two sequences over the same arena.
func (s *Seq) Swap(o *Seq) {
	s.head, o.head = o.head, s.head
	s.tail, o.tail = o.tail, s.tail
	s.n, o.n = o.n, s.n
}

// InOrder reports whether the card at every position i holds value i. It follows
// the chain from the front and never indexes positions directly.
func (s *Seq) InOrder() bool {
	var want cards.Value
	for c := s.head; c != end; c = s.arena.nodes[c].next {
		if s.arena.nodes[c].value != want {
			return false
		}
		want++
	}
	return true
}

// Each calls fn with every value from front to back until fn returns false.
func (s *Seq) Each(fn func(v cards.Value) bool) {
	for c := s.head; c != end; c = s.arena.nodes[c].next {
		if !fn(s.arena.nodes[c].value) {
			return
		}
	}
}

// Values copies the sequence's values, front to back.
func (s *Seq) Values() []cards.Value {
	out := make([]cards.Value, 0, s.n)
	s.Each(func(v cards.Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (s *Seq) String() string {
	var b strings.Builder
	s.Each(func(v cards.Value) bool {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
		return true
	})
	return b.String()
}
