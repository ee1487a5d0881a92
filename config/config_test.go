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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hesper-engine/hesper/config"
	"github.com/hesper-engine/hesper/test"
)

func TestDefaults(t *testing.T) {
	cfg := config.DefaultDisplay()
	test.ExpectEquality(t, cfg.Width, 800)
	test.ExpectEquality(t, cfg.Height, 600)
	test.ExpectEquality(t, cfg.Fullscreen, false)
	test.ExpectEquality(t, cfg.FSAA, 0)
	test.ExpectEquality(t, cfg.Gamma, float32(1.0))
}

func TestMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg, config.DefaultDisplay())
}

func TestPartialFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(p, []byte("width: 1280\nheight: 720\nfsaa: 4\n"), 0600)
	test.DemandSuccess(t, err)

	cfg, err := config.Load(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 1280)
	test.ExpectEquality(t, cfg.Height, 720)
	test.ExpectEquality(t, cfg.FSAA, 4)

	// values absent from the file keep their defaults
	test.ExpectEquality(t, cfg.Gamma, float32(1.0))
	test.ExpectEquality(t, cfg.Fullscreen, false)
}

func TestRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.DefaultDisplay()
	cfg.Fullscreen = true
	cfg.FSAA = 8

	test.DemandSuccess(t, config.Save(p, cfg))

	loaded, err := config.Load(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loaded, cfg)
}
