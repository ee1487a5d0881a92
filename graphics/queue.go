// This file is part of Hesper.
//
// Hesper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hesper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hesper.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"sort"
	"sync"
)

// Token identifies an entry in a Queue. The token stays valid until the
// entry is removed, allowing a queued object to remove itself in O(1) from
// its own teardown path.
type Token int

// NoToken is the zero value for removed or not-yet-queued entries.
const NoToken Token = -1

type slot[T any] struct {
	item T

	// insertion sequence. iteration is in ascending seq order
	seq uint64

	live bool
}

// Queue is a mutex-guarded collection of live references to objects of
// capability T. It is not a FIFO work queue: insertion order only breaks
// ties during the distance sort immediately before drawing.
//
// Entries are stored in an arena of slots. Removal marks a slot free for
// reuse rather than shifting entries, so a Token taken at Add() time stays
// cheap and stable.
//
// The queue's critical section is a leaf lock: no code holding it ever
// waits on the frame lock. The reverse order (frame lock, then queue lock)
// is the only permitted nesting.
type Queue[T any] struct {
	crit sync.Mutex

	slots []slot[T]
	free  []Token
	seq   uint64
	count int
}

// Add appends an object to the queue and returns its position token. O(1).
func (q *Queue[T]) Add(item T) Token {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.addLocked(item)
}

func (q *Queue[T]) addLocked(item T) Token {
	q.seq++

	if n := len(q.free); n > 0 {
		tok := q.free[n-1]
		q.free = q.free[:n-1]
		q.slots[tok] = slot[T]{item: item, seq: q.seq, live: true}
		q.count++
		return tok
	}

	q.slots = append(q.slots, slot[T]{item: item, seq: q.seq, live: true})
	q.count++
	return Token(len(q.slots) - 1)
}

// Remove takes an object out of the queue. O(1). Removing an already
// removed token is a no-op. The object itself is not destroyed and is not
// notified; notification is the caller's business.
func (q *Queue[T]) Remove(tok Token) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.removeLocked(tok)
}

func (q *Queue[T]) removeLocked(tok Token) {
	if tok < 0 || int(tok) >= len(q.slots) || !q.slots[tok].live {
		return
	}

	var zero T
	q.slots[tok] = slot[T]{item: zero}
	q.free = append(q.free, tok)
	q.count--
}

// Len returns the number of live entries in the queue.
func (q *Queue[T]) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.count
}

// each calls f for every live entry in insertion order. critical section
// must be held by the caller. f must not mutate the queue; use the token
// list from snapshotTokensLocked() for mutation during iteration.
func (q *Queue[T]) eachLocked(f func(T)) {
	for _, s := range q.orderedLocked() {
		f(q.slots[s].item)
	}
}

// snapshotLocked returns the live entries in insertion order. critical
// section must be held by the caller.
func (q *Queue[T]) snapshotLocked() []T {
	ordered := q.orderedLocked()
	items := make([]T, len(ordered))
	for i, tok := range ordered {
		items[i] = q.slots[tok].item
	}
	return items
}

// snapshotTokensLocked returns the tokens of the live entries in insertion
// order. critical section must be held by the caller.
func (q *Queue[T]) snapshotTokensLocked() []Token {
	return q.orderedLocked()
}

// clearLocked empties the queue, invalidating all tokens. critical section
// must be held by the caller.
func (q *Queue[T]) clearLocked() {
	q.slots = q.slots[:0]
	q.free = q.free[:0]
	q.count = 0
}

// orderedLocked returns the live slot indices sorted by insertion
// sequence. slot order in the arena is not insertion order once freed
// slots have been reused.
func (q *Queue[T]) orderedLocked() []Token {
	ordered := make([]Token, 0, q.count)
	for i := range q.slots {
		if q.slots[i].live {
			ordered = append(ordered, Token(i))
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return q.slots[ordered[i]].seq < q.slots[ordered[j]].seq
	})
	return ordered
}

// sortRenderables orders a snapshot by descending distance from the
// viewer. The sort is stable over an insertion-ordered snapshot so entries
// at equal distance keep their relative insertion order, which keeps GUI
// layering deterministic.
func sortRenderables(r []Renderable) {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Distance() > r[j].Distance()
	})
}
