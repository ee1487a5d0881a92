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

package performance_test

import (
	"testing"

	"github.com/hesper-engine/hesper/curated"
	"github.com/hesper-engine/hesper/performance"
	"github.com/hesper-engine/hesper/test"
)

func TestInvalidFrameRate(t *testing.T) {
	_, err := performance.NewFPSLimiter(0)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.InvalidFrameRate))

	_, err = performance.NewFPSLimiter(-50)
	test.ExpectFailure(t, err)
}

func TestInactiveLimiter(t *testing.T) {
	lim, err := performance.NewFPSLimiter(1)
	test.DemandSuccess(t, err)

	// with the limiter off, Wait must not block even at one frame per
	// second
	lim.Active = false
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
}
