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

// polling is the bridge between outside goroutines and the rendering
// thread. Requests that must run with a current GL context are posted as
// closures; the rendering thread executes them between frames, at the top
// of Service().
//
// The Go runtime gives us no way to ask "am I the rendering thread?", so
// the discipline is structural: the exported mode-change functions always
// post, and code already on the rendering thread always calls the
// unexported direct implementations.
type polling struct {
	mgr *Manager

	service chan func()
}

func newPolling(mgr *Manager) *polling {
	return &polling{
		mgr:     mgr,
		service: make(chan func(), 1),
	}
}

// post hands a closure to the rendering thread and blocks until it has
// been executed. Each request carries its own acknowledgement so
// concurrent posters cannot return on the completion of somebody else's
// request.
//
// MUST NOT be called from the rendering thread. The rendering thread is
// the one draining the service channel: posting from it deadlocks.
func (pol *polling) post(f func()) {
	ack := make(chan struct{})
	pol.service <- func() {
		f()
		close(ack)
	}
	<-ack
}

// serviceRequests runs any pending posted closure. called by the
// rendering thread once per Service() pass.
func (pol *polling) serviceRequests() {
	select {
	case f := <-pol.service:
		f()
	default:
	}
}
