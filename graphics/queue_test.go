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
	"sync"
	"testing"

	"github.com/hesper-engine/hesper/test"
)

func TestQueueAddRemove(t *testing.T) {
	var q Queue[*mockRenderable]

	a := &mockRenderable{tag: "a"}
	b := &mockRenderable{tag: "b"}

	tokA := q.Add(a)
	tokB := q.Add(b)
	test.ExpectInequality(t, tokA, tokB)
	test.ExpectEquality(t, q.Len(), 2)

	q.Remove(tokA)
	test.ExpectEquality(t, q.Len(), 1)

	// removing an already removed token is a no-op
	q.Remove(tokA)
	test.ExpectEquality(t, q.Len(), 1)

	q.Remove(NoToken)
	test.ExpectEquality(t, q.Len(), 1)

	// freed slot is reused
	c := &mockRenderable{tag: "c"}
	tokC := q.Add(c)
	test.ExpectEquality(t, tokC, tokA)
	test.ExpectEquality(t, q.Len(), 2)
}

func TestQueueInsertionOrder(t *testing.T) {
	var q Queue[*mockRenderable]

	a := &mockRenderable{tag: "a"}
	b := &mockRenderable{tag: "b"}
	c := &mockRenderable{tag: "c"}

	tokA := q.Add(a)
	_ = q.Add(b)

	// c reuses a's slot but must still iterate after b
	q.Remove(tokA)
	_ = q.Add(c)

	q.crit.Lock()
	snapshot := q.snapshotLocked()
	q.crit.Unlock()

	test.DemandEquality(t, len(snapshot), 2)
	test.ExpectEquality(t, snapshot[0].tag, "b")
	test.ExpectEquality(t, snapshot[1].tag, "c")
}

func TestQueueConcurrentConservation(t *testing.T) {
	const (
		goroutines = 8
		perRoutine = 200
	)

	var q Queue[*mockRenderable]
	var wg sync.WaitGroup

	tokens := make([][]Token, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = make([]Token, perRoutine)
			for j := 0; j < perRoutine; j++ {
				tokens[i][j] = q.Add(&mockRenderable{})
			}
		}(i)
	}
	wg.Wait()

	test.DemandEquality(t, q.Len(), goroutines*perRoutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, tok := range tokens[i] {
				q.Remove(tok)
			}
		}(i)
	}
	wg.Wait()

	test.ExpectEquality(t, q.Len(), 0)
}

func TestSortRenderables(t *testing.T) {
	near := &mockRenderable{tag: "near", distance: 2}
	alsoNear := &mockRenderable{tag: "alsoNear", distance: 2}
	mid := &mockRenderable{tag: "mid", distance: 5}
	far := &mockRenderable{tag: "far", distance: 8}

	r := []Renderable{mid, near, alsoNear, far}
	sortRenderables(r)

	test.ExpectEquality(t, r[0].Tag(), "far")
	test.ExpectEquality(t, r[1].Tag(), "mid")

	// equal distances keep their insertion order
	test.ExpectEquality(t, r[2].Tag(), "near")
	test.ExpectEquality(t, r[3].Tag(), "alsoNear")
}
