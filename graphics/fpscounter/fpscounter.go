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

// Package fpscounter measures the achieved frame rate of the render loop.
// The rendering thread calls FinishedFrame() once per completed frame and
// any thread may read the measured rate with FPS().
package fpscounter

import (
	"sync"
	"time"
)

// FPSCounter measures frames per second over a sliding window.
type FPSCounter struct {
	crit sync.Mutex

	window time.Duration
	frames []time.Time

	// replaced in tests
	now func() time.Time
}

// NewFPSCounter is the preferred method of initialisation for the
// FPSCounter type. The window argument is the number of seconds over which
// the rate is averaged.
func NewFPSCounter(window int) *FPSCounter {
	if window < 1 {
		window = 1
	}
	return &FPSCounter{
		window: time.Duration(window) * time.Second,
		now:    time.Now,
	}
}

// FinishedFrame registers the completion of a frame. Called once per frame
// by the rendering thread.
func (f *FPSCounter) FinishedFrame() {
	f.crit.Lock()
	defer f.crit.Unlock()

	n := f.now()
	f.frames = append(f.frames, n)
	f.prune(n)
}

// FPS returns the number of frames per second averaged over the counter's
// window.
func (f *FPSCounter) FPS() uint32 {
	f.crit.Lock()
	defer f.crit.Unlock()

	f.prune(f.now())
	return uint32(float64(len(f.frames)) / f.window.Seconds())
}

// drop frames that have fallen out of the window. critical section must be
// held by the caller.
func (f *FPSCounter) prune(n time.Time) {
	cutoff := n.Add(-f.window)
	i := 0
	for i < len(f.frames) && f.frames[i].Before(cutoff) {
		i++
	}
	f.frames = f.frames[i:]
}
