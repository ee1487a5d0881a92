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

/*
Package config implements loading and saving of the config.yaml file.

Values absent from the file keep their documented defaults. A missing file
is not an error; the defaults apply in full.
*/
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Display holds the display settings read at startup.
type Display struct {
	// window dimensions. ignored when fullscreen
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Fullscreen bool `yaml:"fullscreen"`

	// requested full-scene antialiasing sample count. clamped at runtime to
	// what the hardware supports
	FSAA int `yaml:"fsaa"`

	Gamma float32 `yaml:"gamma"`

	// synchronise buffer swaps with the monitor refresh rate
	VSync bool `yaml:"vsync"`
}

// DefaultDisplay returns a Display with every value set to its documented
// default.
func DefaultDisplay() Display {
	return Display{
		Width:      800,
		Height:     600,
		Fullscreen: false,
		FSAA:       0,
		Gamma:      1.0,
		VSync:      true,
	}
}

// Load reads the configuration file at the supplied path. A missing file
// returns the defaults and no error.
func Load(path string) (Display, error) {
	cfg := DefaultDisplay()

	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return DefaultDisplay(), err
	}

	return cfg, nil
}

// Save writes the configuration to the supplied path.
func Save(path string, cfg Display) error {
	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0600)
}
