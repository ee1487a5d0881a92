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
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hesper-engine/hesper/config"
	"github.com/hesper-engine/hesper/curated"
	"github.com/hesper-engine/hesper/graphics/fpscounter"
	"github.com/hesper-engine/hesper/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Hesper"

// error patterns for the fatal failure conditions of the graphics manager.
const (
	// no usable pixel depth at initialisation
	UnsupportedBitDepth = "graphics: unsupported bit depth (%d): need 24 or 32 bits per pixel"

	// a mode change failed and so did the attempt to revert to the
	// previous mode. there is no further fallback
	FailedModeRevert = "graphics: failed reverting to previous mode: %v"

	// an operation that requires a surface was attempted without one
	NoSurface = "graphics: no surface initialised"

	// invalid RenderQueue selector. used as a panic message because a bad
	// selector is a programming error, not a runtime condition
	UnknownQueue = "graphics: unknown render queue (%d)"
)

// number of seconds the FPS measurement is averaged over.
const fpsWindow = 3

// Manager owns the rendering surface and its GL context, the lifecycle of
// all GPU-resident resources, and the per-frame draw pipeline.
//
// All GPU calls happen on the single rendering thread: the OS-locked
// goroutine that calls NewManager() and then loops over Service(). Other
// goroutines interact with the Manager only through the queue functions,
// the Abandon functions, and the exported mode-change functions, which
// marshal onto the rendering thread and block until serviced.
type Manager struct {
	ready bool

	// the surface. window, GL context and the properties they were created
	// with. owned exclusively by the rendering thread
	window    *sdl.Window
	glContext sdl.GLContext

	width      int
	height     int
	bpp        int
	fullScreen bool
	vsync      bool

	// the surface dimensions again, packed and republished for readers
	// outside the rendering thread. width and height above are for the
	// rendering thread only
	dimensions atomic.Uint64

	// dimensions of the desktop at startup
	systemWidth  int
	systemHeight int

	refreshRate int

	fsaa    int
	fsaaMax int

	gamma float32

	// optional capabilities, degraded at startup if the hardware lacks
	// them
	needManualDXT           bool
	supportMultipleTextures bool

	// the frame lock gates all GPU-resource mutation and the render pass.
	// the renderer acquires it non-blockingly and skips the frame if it is
	// held. see LockFrame()/UnlockFrame()
	frame sync.Mutex

	abandoned abandonList

	textures       Queue[Resource]
	listContainers Queue[Resource]
	videos         Queue[Video]
	objects        Queue[Renderable]
	guiFront       Queue[Renderable]

	// cursor fields. cursor is guarded by the frame lock, cursorState by
	// its own mutex
	cursor      Cursor
	cursorCrit  sync.Mutex
	cursorState CursorState

	// replaced in tests
	showCursor      func(bool)
	videoProjection func(width, height int)

	// guarded by the frame lock
	takeScreenshot bool
	screenshots    Saver

	fps *fpscounter.FPSCounter

	polling *polling

	quit atomic.Bool

	// set by fatal(). once set the manager is no longer usable and
	// Service() returns false
	fatalErr error
}

// NewManager initialises the graphics system and creates the rendering
// surface.
//
// MUST ONLY be called from the rendering thread (the OS-locked main
// goroutine).
func NewManager(cfg config.Display) (*Manager, error) {
	mgr := &Manager{
		gamma:           1.0,
		vsync:           cfg.VSync,
		fps:             fpscounter.NewFPSCounter(fpsWindow),
		showCursor:      sdlShowCursor,
		videoProjection: glVideoProjection,
		screenshots:     jpegSaver{},
	}

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("graphics: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("graphics: %v", err)
	}
	mgr.systemWidth = int(mode.W)
	mgr.systemHeight = int(mode.H)
	mgr.refreshRate = int(mode.RefreshRate)
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", mgr.refreshRate)

	bpp, _, _, _, _, err := sdl.PixelFormatEnumToMasks(uint(mode.Format))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("graphics: %v", err)
	}
	if bpp != 24 && bpp != 32 {
		sdl.Quit()
		return nil, curated.Errorf(UnsupportedBitDepth, bpp)
	}
	mgr.bpp = bpp

	err = mgr.initSurface(cfg.Width, cfg.Height, cfg.Fullscreen)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	err = mgr.setupScene()
	if err != nil {
		mgr.destroySurface()
		sdl.Quit()
		return nil, err
	}

	mgr.abandoned.deleteTextures = glDeleteTextures
	mgr.abandoned.deleteLists = glDeleteLists

	mgr.polling = newPolling(mgr)

	mgr.ready = true

	// try to change the FSAA settings to the config value. if that fails
	// the probed maximum wins
	if mgr.fsaa != cfg.FSAA {
		if !mgr.setFSAA(cfg.FSAA) {
			logger.Logf(logger.Allow, "graphics", "FSAA x%d not available (max x%d)", cfg.FSAA, mgr.fsaaMax)
		}
	}

	mgr.setGamma(cfg.Gamma)
	mgr.window.SetTitle(windowTitle)

	return mgr, nil
}

// Deinit flushes and clears every resource queue and releases the surface.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) Deinit() {
	if !mgr.ready {
		return
	}

	mgr.ClearVideoQueue()
	mgr.ClearListContainerQueue()
	mgr.ClearTextureQueue()
	mgr.ClearRenderQueue()

	mgr.destroySurface()
	sdl.Quit()

	mgr.ready = false
	mgr.needManualDXT = false
	mgr.supportMultipleTextures = false
}

// Ready returns true once the manager has been successfully initialised
// and no fatal error has occurred.
func (mgr *Manager) Ready() bool {
	return mgr.ready
}

// NeedManualDXT returns true if compressed textures must be decompressed
// in software before upload.
func (mgr *Manager) NeedManualDXT() bool {
	return mgr.needManualDXT
}

// SupportMultipleTextures returns true if more than one texture can be
// applied to a surface.
func (mgr *Manager) SupportMultipleTextures() bool {
	return mgr.supportMultipleTextures
}

// MaxFSAA returns the maximum antialiasing level probed at startup.
func (mgr *Manager) MaxFSAA() int {
	return mgr.fsaaMax
}

// CurrentFSAA returns the antialiasing level of the current surface.
func (mgr *Manager) CurrentFSAA() int {
	return mgr.fsaa
}

// FPS returns the measured frame rate, averaged over the last few seconds.
func (mgr *Manager) FPS() uint32 {
	return mgr.fps.FPS()
}

// setSurfaceSize records the dimensions of the surface. the packed copy
// is what goroutines outside the rendering thread read.
func (mgr *Manager) setSurfaceSize(width, height int) {
	mgr.width = width
	mgr.height = height
	mgr.dimensions.Store(uint64(uint32(width))<<32 | uint64(uint32(height)))
}

// surfaceSize returns the dimensions of the surface. safe to call from
// any goroutine.
func (mgr *Manager) surfaceSize() (int, int) {
	d := mgr.dimensions.Load()
	return int(uint32(d >> 32)), int(uint32(d))
}

// WindowWidth returns the width of the surface. Zero if no surface exists.
func (mgr *Manager) WindowWidth() int {
	w, _ := mgr.surfaceSize()
	return w
}

// WindowHeight returns the height of the surface. Zero if no surface
// exists.
func (mgr *Manager) WindowHeight() int {
	_, h := mgr.surfaceSize()
	return h
}

// SystemWidth returns the width of the desktop at startup.
func (mgr *Manager) SystemWidth() int {
	return mgr.systemWidth
}

// SystemHeight returns the height of the desktop at startup.
func (mgr *Manager) SystemHeight() int {
	return mgr.systemHeight
}

// RefreshRate returns the monitor refresh rate reported at startup.
func (mgr *Manager) RefreshRate() int {
	return mgr.refreshRate
}

// IsFullScreen returns the fullscreen state of the surface.
func (mgr *Manager) IsFullScreen() bool {
	return mgr.fullScreen
}

// Gamma returns the current gamma correction value.
func (mgr *Manager) Gamma() float32 {
	return mgr.gamma
}

// SetGamma changes the gamma correction for the surface.
func (mgr *Manager) SetGamma(gamma float32) {
	mgr.setGamma(gamma)
}

func (mgr *Manager) setGamma(gamma float32) {
	mgr.gamma = gamma
	err := mgr.window.SetBrightness(gamma)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "gamma: %v", err)
	}
}

// SetWindowTitle changes the title of the window.
func (mgr *Manager) SetWindowTitle(title string) {
	mgr.window.SetTitle(fmt.Sprintf("%s (%s)", windowTitle, title))
}

// ToggleMouseGrab confines the mouse pointer to the window, or releases
// it.
func (mgr *Manager) ToggleMouseGrab() {
	mgr.window.SetGrab(!mgr.window.GetGrab())
}

// LockFrame blocks the rendering thread from starting a new frame. Used by
// outside goroutines that need a just-completed frame's state to stay
// stable across several calls.
//
// MUST NOT be called from the rendering thread.
func (mgr *Manager) LockFrame() {
	mgr.frame.Lock()
}

// UnlockFrame releases the frame lock acquired with LockFrame().
func (mgr *Manager) UnlockFrame() {
	mgr.frame.Unlock()
}

// initSurface probes the antialiasing ceiling and creates the surface the
// manager starts with.
func (mgr *Manager) initSurface(width, height int, fullscreen bool) error {
	mgr.fullScreen = fullscreen
	mgr.fsaaMax = mgr.probeFSAA(width, height)

	err := mgr.createSurface(width, height, fullscreen, 0)
	if err != nil {
		// could not create the surface. trying the other depth size
		mgr.bpp = map[int]int{24: 32, 32: 24}[mgr.bpp]

		err = mgr.createSurface(width, height, fullscreen, 0)
		if err != nil {
			return curated.Errorf("graphics: failed setting the video mode: %v", err)
		}
	}

	mgr.checkCapabilities()

	return nil
}

// probeFSAA finds the maximum supported FSAA level by attempting surface
// creation at decreasing power-of-two sample counts. Returns zero if
// multisampled surfaces cannot be created at all.
func (mgr *Manager) probeFSAA(width, height int) int {
	for i := 32; i >= 2; i >>= 1 {
		if err := mgr.createSurface(width, height, mgr.fullScreen, i); err == nil {
			mgr.destroySurface()
			return i
		}
	}
	return 0
}

// createSurface creates the window and its GL context with the supplied
// properties and loads the GL function pointers. On success the manager's
// surface fields reflect the new surface.
func (mgr *Manager) createSurface(width, height int, fullscreen bool, fsaa int) error {
	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_RED_SIZE, 8},
		{sdl.GL_GREEN_SIZE, 8},
		{sdl.GL_BLUE_SIZE, 8},
		{sdl.GL_ALPHA_SIZE, map[int]int{24: 0, 32: 8}[mgr.bpp]},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_MULTISAMPLEBUFFERS, map[bool]int{false: 0, true: 1}[fsaa > 0]},
		{sdl.GL_MULTISAMPLESAMPLES, fsaa},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return curated.Errorf("graphics: %v", err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags)
	if err != nil {
		return curated.Errorf("graphics: %v", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		_ = window.Destroy()
		return curated.Errorf("graphics: %v", err)
	}

	err = window.GLMakeCurrent(glContext)
	if err != nil {
		sdl.GLDeleteContext(glContext)
		_ = window.Destroy()
		return curated.Errorf("graphics: %v", err)
	}

	err = gl.Init()
	if err != nil {
		sdl.GLDeleteContext(glContext)
		_ = window.Destroy()
		return curated.Errorf("graphics: %v", err)
	}

	if mgr.vsync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Logf(logger.Allow, "sdl", "vsync: %v", err)
		}
	}

	mgr.window = window
	mgr.glContext = glContext
	mgr.fullScreen = fullscreen
	mgr.fsaa = fsaa

	w, h := window.GLGetDrawableSize()
	mgr.setSurfaceSize(int(w), int(h))

	return nil
}

// destroySurface releases the GL context and the window. GPU-resident
// queue contents must have been destroyed beforehand.
func (mgr *Manager) destroySurface() {
	if mgr.glContext != nil {
		sdl.GLDeleteContext(mgr.glContext)
		mgr.glContext = nil
	}
	if mgr.window != nil {
		_ = mgr.window.Destroy()
		mgr.window = nil
	}
}

// checkCapabilities degrades gracefully on hardware that lacks optional
// GL capabilities.
func (mgr *Manager) checkCapabilities() {
	extensions := gl.GoStr(gl.GetString(gl.EXTENSIONS))

	logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if !hasExtension(extensions, "GL_EXT_texture_compression_s3tc") ||
		!hasExtension(extensions, "GL_ARB_texture_compression") {
		logger.Log(logger.Allow, "gl", "no S3TC DXTn texture decompression support")
		logger.Log(logger.Allow, "gl", "switching to manual DXTn decompression. slower and uses more video memory")
		mgr.needManualDXT = true
	}

	if !hasExtension(extensions, "GL_ARB_multitexture") {
		logger.Log(logger.Allow, "gl", "no support for applying multiple textures onto one surface")
		logger.Log(logger.Allow, "gl", "only one texture will be used. certain surfaces may look weird")
		mgr.supportMultipleTextures = false
	} else {
		mgr.supportMultipleTextures = true
	}
}

func hasExtension(extensions string, name string) bool {
	for _, e := range strings.Fields(extensions) {
		if e == name {
			return true
		}
	}
	return false
}

// setupScene performs the one-time GL state setup for a new surface:
// projection, depth test and blending.
func (mgr *Manager) setupScene() error {
	if mgr.window == nil {
		return curated.Errorf(NoSurface)
	}

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Viewport(0, 0, int32(mgr.width), int32(mgr.height))

	perspective(60.0, float32(mgr.width)/float32(mgr.height), 1.0, 1000.0)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.ShadeModel(gl.SMOOTH)
	gl.ClearColor(0.0, 0.0, 0.0, 0.5)
	gl.ClearDepth(1.0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Hint(gl.PERSPECTIVE_CORRECTION_HINT, gl.NICEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return nil
}

// perspective multiplies a perspective projection onto the current matrix.
// fovY is in degrees.
func perspective(fovY, aspect, near, far float32) {
	top := near * math32.Tan(fovY*math32.Pi/360.0)
	right := top * aspect
	gl.Frustum(float64(-right), float64(right), float64(-top), float64(top), float64(near), float64(far))
}

// the GPU delete calls assigned to the abandon list.
func glDeleteTextures(ids []uint32) {
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}

func glDeleteLists(ids []uint32) {
	for _, id := range ids {
		gl.DeleteLists(id, 1)
	}
}

// fatal records an irrecoverable failure. the manager stops servicing and
// Service() returns false.
func (mgr *Manager) fatal(err error) {
	logger.Logf(logger.Allow, "graphics", "fatal: %v", err)
	mgr.fatalErr = err
	mgr.ready = false
}

// FatalError returns the error that stopped the manager, or nil.
func (mgr *Manager) FatalError() error {
	return mgr.fatalErr
}
