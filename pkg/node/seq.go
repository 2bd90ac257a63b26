package node

import (
	"iter"
	"sync/atomic"

	crelerrors "github.com/crel-dev/crel/internal/errors"
)

// Seq is a single-pass sequence of nodes. The first render that reaches it
// drains it; any later traversal fails with ErrSeqConsumed rather than
// silently rendering nothing.
type Seq struct {
	seq  iter.Seq[Node]
	used atomic.Bool
}

// Once wraps seq as a single-pass child.
func Once(seq iter.Seq[Node]) *Seq {
	return &Seq{seq: seq}
}

// FromChan returns a sequence yielding values received from ch until it is
// closed.
func FromChan(ch <-chan Node) *Seq {
	return Once(func(yield func(Node) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	})
}

// Consumed reports whether the sequence has been claimed by a traversal.
func (s *Seq) Consumed() bool {
	return s.used.Load()
}

// Take claims the sequence for a traversal. It fails with ErrSeqConsumed if
// the sequence was claimed before.
func (s *Seq) Take() (iter.Seq[Node], error) {
	if !s.used.CompareAndSwap(false, true) {
		return nil, crelerrors.New(ErrSeqConsumed.Code)
	}
	if s.seq == nil {
		return func(func(Node) bool) {}, nil
	}
	return s.seq, nil
}
