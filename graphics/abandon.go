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
	"sync/atomic"
)

// abandonList is the deferred-deletion queue for raw GPU handles. GPU
// deletion calls are only legal on the thread owning the context, but a
// resource may be logically freed by any goroutine (asset streaming, for
// example) without blocking on the rendering thread. Abandoned handles are
// held here until the rendering thread drains the list at the top of the
// next frame attempt.
type abandonList struct {
	crit sync.Mutex

	textures []uint32
	lists    []uint32

	// checked without the critical section at the top of every frame
	pending atomic.Bool

	// the actual GPU delete calls. assigned by the Manager; replaced in
	// tests
	deleteTextures func([]uint32)
	deleteLists    func([]uint32)
}

func (a *abandonList) abandonTextures(ids []uint32) {
	if len(ids) == 0 {
		return
	}

	a.crit.Lock()
	defer a.crit.Unlock()

	a.textures = append(a.textures, ids...)
	a.pending.Store(true)
}

func (a *abandonList) abandonLists(id uint32, count uint32) {
	if count == 0 {
		return
	}

	a.crit.Lock()
	defer a.crit.Unlock()

	for i := uint32(0); i < count; i++ {
		a.lists = append(a.lists, id+i)
	}
	a.pending.Store(true)
}

// drain performs the batched GPU delete calls. called only from the
// rendering thread, at the top of every frame attempt, whether or not the
// frame lock turns out to be available.
func (a *abandonList) drain() {
	if !a.pending.Load() {
		return
	}

	a.crit.Lock()
	defer a.crit.Unlock()

	if len(a.textures) > 0 && a.deleteTextures != nil {
		a.deleteTextures(a.textures)
	}
	if len(a.lists) > 0 && a.deleteLists != nil {
		a.deleteLists(a.lists)
	}

	a.textures = a.textures[:0]
	a.lists = a.lists[:0]
	a.pending.Store(false)
}

// AbandonTextures queues raw texture handles for deletion at the start of
// the next frame. Any goroutine may call this.
func (mgr *Manager) AbandonTextures(ids []uint32) {
	mgr.abandoned.abandonTextures(ids)
}

// AbandonDisplayLists queues a consecutive range of display-list handles
// for deletion at the start of the next frame. Any goroutine may call
// this.
func (mgr *Manager) AbandonDisplayLists(id uint32, count uint32) {
	mgr.abandoned.abandonLists(id, count)
}
