package deck

import (
	"math"
	"runtime"
	"unsafe"

	errorsmod "cosmossdk.io/errors"

	"cardloop/internal/cards"
	"cardloop/internal/types"
)

// Card addresses one node in an Arena. A handle stays valid for the lifetime of
// the arena that issued it.
type Card int

// end terminates a chain.
const end Card = -1

type node struct {
	value cards.Value
	next  Card
}

var nodeSize = uint64(unsafe.Sizeof(node{}))

// Budget caps the bytes an arena may claim for its cards. Zero means unlimited.
type Budget uint64

// Arena owns every card of one deck. Cards are allocated once, up front; sequences
// built on the arena only relink them.
type Arena struct {
	nodes []node
}

// New allocates n cards valued 0..n-1. None of them is linked yet.
func New(n uint64, budget Budget) (*Arena, error) {
	nodes, err := allocate(n, budget)
	if err != nil {
		return nil, err
	}
	for i := range nodes {
		nodes[i] = node{value: cards.Value(i), next: end}
	}
	return &Arena{nodes: nodes}, nil
}

// FromValues allocates one card per value and links them, in the given order, into
// a sequence.
func FromValues(values []cards.Value, budget Budget) (*Arena, *Seq, error) {
	nodes, err := allocate(uint64(len(values)), budget)
	if err != nil {
		return nil, nil, err
	}
	a := &Arena{nodes: nodes}
	s := a.NewSeq()
	for i, v := range values {
		a.nodes[i] = node{value: v, next: end}
		s.PushBack(Card(i))
	}
	return a, s, nil
}

func allocate(n uint64, budget Budget) (nodes []node, err error) {
	if n > math.MaxUint64/nodeSize {
		return nil, errorsmod.Wrapf(types.ErrAllocation, "%d cards overflow the address space", n)
	}
	need := n * nodeSize
	if budget > 0 && need > uint64(budget) {
		return nil, errorsmod.Wrapf(types.ErrAllocation, "%d cards need %d bytes, budget is %d", n, need, uint64(budget))
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		re, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		nodes = nil
		err = errorsmod.Wrapf(types.ErrAllocation, "%d cards: %v", n, re)
	}()
	return make([]node, n), nil
}

// Len is the number of cards the arena owns.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Value is the face value of card c.
func (a *Arena) Value(c Card) cards.Value {
	return a.nodes[c].value
}

// NewSeq returns an empty sequence over the arena.
func (a *Arena) NewSeq() *Seq {
	return &Seq{arena: a, head: end, tail: end}
}

// Deal links every card of the arena, in allocation order, into a new sequence.
// Dealing a fresh arena from New yields the deck in its original order.
func (a *Arena) Deal() *Seq {
	s := a.NewSeq()
	for i := range a.nodes {
		a.nodes[i].next = end
		s.PushBack(Card(i))
	}
	return s
}
