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

// Package resources contains functions to prepare paths for Hesper
// resources, such as the configuration file and saved screenshots.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the directory name for all Hesper resources, relative to the user's
// config directory.
const resourceDir = "hesper"

// the portable directory. if this directory exists alongside the binary
// then it is used in preference to the user's config directory.
const portableDir = ".hesper"

// JoinPath prepends the resource base path to the supplied path elements,
// creating any intermediate directories as required.
func JoinPath(path ...string) (string, error) {
	var b string

	// resources are either in the portable path or under the user's config
	// directory. the portable path takes precedence
	if _, err := os.Stat(portableDir); err == nil {
		b = portableDir
	} else {
		d, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		b = filepath.Join(d, resourceDir)
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
