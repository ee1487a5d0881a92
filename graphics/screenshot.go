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
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hesper-engine/hesper/logger"
	"github.com/hesper-engine/hesper/resources"
)

// Saver receives the finished frames captured by TakeScreenshot.
type Saver interface {
	Save(img *image.RGBA) error
}

// TakeScreenshot asks for the next completed frame to be captured and
// handed to the screenshot saver. Blocks until the frame in flight, if
// any, has completed.
//
// MUST NOT be called from the rendering thread.
func (mgr *Manager) TakeScreenshot() {
	mgr.frame.Lock()
	defer mgr.frame.Unlock()
	mgr.takeScreenshot = true
}

// SetScreenshotSaver replaces the default JPEG-file saver.
//
// MUST NOT be called from the rendering thread.
func (mgr *Manager) SetScreenshotSaver(s Saver) {
	mgr.frame.Lock()
	defer mgr.frame.Unlock()
	mgr.screenshots = s
}

// captureScreenshot reads back the frame that has just been swapped to
// the front buffer. called by the frame renderer with the frame lock
// held.
func (mgr *Manager) captureScreenshot() {
	img := image.NewRGBA(image.Rect(0, 0, mgr.width, mgr.height))

	gl.ReadBuffer(gl.FRONT)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(mgr.width), int32(mgr.height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// GL rows run bottom to top
	flipRows(img)

	err := mgr.screenshots.Save(img)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "%v", err)
	}
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// jpegSaver is the default screenshot saver. One JPEG file per capture,
// named for the time of the capture, in the working directory.
type jpegSaver struct{}

func (jpegSaver) Save(img *image.RGBA) error {
	fn := fmt.Sprintf("%s.jpg", resources.UniqueFilename("screenshot"))

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "screenshot", "saved %s", fn)
	return nil
}
