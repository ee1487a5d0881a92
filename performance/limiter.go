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

// Package performance provides a rough and ready way of limiting the
// render loop to a fixed rate. Used when buffer swaps are not already
// synchronised with the monitor's vertical refresh.
//
// A new FPSLimiter can be created with (error handling removed for
// clarity):
//
//	lmtr, _ := performance.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function:
//
//	for {
//		lmtr.Wait()
//		renderFrame()
//	}
package performance

import (
	"time"

	"github.com/hesper-engine/hesper/curated"
)

// InvalidFrameRate is returned when an FPSLimiter is asked for an
// impossible rate.
const InvalidFrameRate = "performance: invalid frame rate (%d)"

// FPSLimiter stalls the caller such that the Wait() function returns no
// more often than the requested number of times per second.
type FPSLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// Active turns limiting on and off. when false, Wait() returns
	// immediately
	Active bool

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the
// FPSLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FPSLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidFrameRate, framesPerSecond)
	}

	lim := &FPSLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		Active:          true,
		tick:            make(chan bool),
	}

	// run ticker concurrently. the sleep period self-adjusts to absorb the
	// overhead of the loop itself
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim, nil
}

// Wait blocks until the next frame is due. Returns immediately if the
// limiter is not active.
func (lim *FPSLimiter) Wait() {
	if !lim.Active {
		return
	}
	<-lim.tick
}

// HasWaited returns true if the frame period has already elapsed and false
// if it is still to happen.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
