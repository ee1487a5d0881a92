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

// Package curated provides the error type used throughout Hesper. A curated
// error is created with the Errorf() function and is identified by the
// pattern string used at creation. The pattern can later be tested for with
// the Is() and Has() functions, allowing a chain of wrapped errors to be
// searched for a specific failure without string comparison of the final
// message.
//
// Subsystems declare their significant failure conditions as exported
// pattern strings. For example:
//
//	const FailedModeRevert = "graphics: failed reverting to previous mode"
//
//	...
//
//	return curated.Errorf(FailedModeRevert)
//
// and at the call site:
//
//	if curated.Is(err, graphics.FailedModeRevert) {
//		...
//	}
//
// Error messages are normalised on output, removing repeated adjacent parts
// caused by mechanical wrapping of one curated error in another.
package curated
