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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/pborman/getopt"

	"github.com/hesper-engine/hesper/config"
	"github.com/hesper-engine/hesper/graphics"
	"github.com/hesper-engine/hesper/logger"
	"github.com/hesper-engine/hesper/performance"
	"github.com/hesper-engine/hesper/resources"
	"github.com/hesper-engine/hesper/statsview"
)

const displayConfigFile = "display.yaml"

func main() {
	// the graphics manager must live on the main thread for the lifetime
	// of the program. every GL call happens here
	runtime.LockOSThread()

	fullscreen := getopt.BoolLong("fullscreen", 'f', "start in fullscreen")
	width := getopt.IntLong("width", 'w', 0, "width of the window")
	height := getopt.IntLong("height", 'h', 0, "height of the window")
	fsaa := getopt.IntLong("fsaa", 'a', -1, "antialiasing level (0, 2, 4, 8, ...)")
	verbose := getopt.BoolLong("verbose", 'v', "echo log entries to stderr")
	stats := getopt.BoolLong("stats", 0, "run stats server (if available in the build)")
	getopt.Parse()

	if *verbose {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, "statsview not in this build")
		}
	}

	os.Exit(run(*fullscreen, *width, *height, *fsaa))
}

func run(fullscreen bool, width, height, fsaa int) int {
	cfgPath, err := resources.JoinPath(displayConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 1
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Logf(logger.Allow, "config", "%v", err)
		cfg = config.DefaultDisplay()
	}

	// command line beats the config file
	if fullscreen {
		cfg.Fullscreen = true
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if fsaa >= 0 {
		cfg.FSAA = fsaa
	}

	mgr, err := graphics.NewManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 1
	}
	defer mgr.Deinit()

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		mgr.Quit()
	}()

	// without vsync pinning us to the display, pace frames to the refresh
	// rate by hand
	var lim *performance.FPSLimiter
	if !cfg.VSync {
		rate := mgr.RefreshRate()
		if rate <= 0 {
			rate = 60
		}

		lim, err = performance.NewFPSLimiter(rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
			return 1
		}
	}

	for mgr.Service() {
		if lim != nil {
			lim.Wait()
		}
	}

	if err := mgr.FatalError(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 1
	}

	// remember the mode the user ended up with
	cfg.Width = mgr.WindowWidth()
	cfg.Height = mgr.WindowHeight()
	cfg.Fullscreen = mgr.IsFullScreen()
	cfg.FSAA = mgr.CurrentFSAA()

	if err := config.Save(cfgPath, cfg); err != nil {
		logger.Logf(logger.Allow, "config", "%v", err)
	}

	return 0
}
