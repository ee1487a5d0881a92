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
	"testing"

	"github.com/hesper-engine/hesper/test"
)

func TestAbandonDrain(t *testing.T) {
	var deletedTextures [][]uint32
	var deletedLists [][]uint32

	a := abandonList{
		deleteTextures: func(ids []uint32) {
			deletedTextures = append(deletedTextures, append([]uint32{}, ids...))
		},
		deleteLists: func(ids []uint32) {
			deletedLists = append(deletedLists, append([]uint32{}, ids...))
		},
	}

	// nothing pending, nothing deleted
	a.drain()
	test.ExpectEquality(t, len(deletedTextures), 0)

	a.abandonTextures([]uint32{1, 2})
	a.abandonTextures([]uint32{7})
	a.abandonLists(5, 3)
	test.ExpectEquality(t, a.pending.Load(), true)

	a.drain()

	// abandoned handles accumulate and are deleted in one batch per kind
	test.DemandEquality(t, len(deletedTextures), 1)
	test.ExpectEquality(t, len(deletedTextures[0]), 3)
	test.ExpectEquality(t, deletedTextures[0][0], 1)
	test.ExpectEquality(t, deletedTextures[0][2], 7)

	// a list range expands to consecutive handles
	test.DemandEquality(t, len(deletedLists), 1)
	test.DemandEquality(t, len(deletedLists[0]), 3)
	test.ExpectEquality(t, deletedLists[0][0], 5)
	test.ExpectEquality(t, deletedLists[0][1], 6)
	test.ExpectEquality(t, deletedLists[0][2], 7)

	test.ExpectEquality(t, a.pending.Load(), false)

	// a second drain has nothing left to do
	a.drain()
	test.ExpectEquality(t, len(deletedTextures), 1)
	test.ExpectEquality(t, len(deletedLists), 1)
}

func TestAbandonEmpty(t *testing.T) {
	var a abandonList

	a.abandonTextures(nil)
	a.abandonLists(10, 0)
	test.ExpectEquality(t, a.pending.Load(), false)
}
