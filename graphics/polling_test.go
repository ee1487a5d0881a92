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
	"runtime"
	"sync"
	"testing"

	"github.com/hesper-engine/hesper/test"
)

func TestPollingBridge(t *testing.T) {
	mgr := &Manager{}
	mgr.polling = newPolling(mgr)

	// the posting goroutine stands in for an outside thread. the closure
	// must have run, on this side, before post() returns
	ran := false
	done := make(chan struct{})
	go func() {
		mgr.polling.post(func() {
			ran = true
		})
		close(done)
	}()

	for {
		mgr.polling.serviceRequests()
		select {
		case <-done:
			test.ExpectEquality(t, ran, true)
			return
		default:
			runtime.Gosched()
		}
	}
}

func TestPollingConcurrentPosters(t *testing.T) {
	mgr := &Manager{}
	mgr.polling = newPolling(mgr)

	// several goroutines post at once. each post() must block until its
	// own closure has run: a completion meant for one poster must never
	// release a different poster, which would leave that poster reading
	// its result variable before the closure assigns it
	const posters = 8

	var wg sync.WaitGroup
	results := make([]bool, posters)

	for i := 0; i < posters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ran := false
			mgr.polling.post(func() {
				ran = true
			})
			results[i] = ran
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		mgr.polling.serviceRequests()
		select {
		case <-done:
			for i := 0; i < posters; i++ {
				test.ExpectEquality(t, results[i], true, i)
			}
			return
		default:
			runtime.Gosched()
		}
	}
}

func TestPollingNoPendingRequest(t *testing.T) {
	mgr := &Manager{}
	mgr.polling = newPolling(mgr)

	// nothing posted. servicing must not block
	mgr.polling.serviceRequests()
}
