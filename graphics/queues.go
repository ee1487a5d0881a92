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

import "fmt"

// RenderQueue selects one of the two renderable queues.
type RenderQueue int

// List of valid RenderQueue values.
const (
	// objects in the world, rendered with the scene projection
	ObjectQueue RenderQueue = iota

	// GUI elements drawn in screen space in front of everything else
	GUIFrontQueue
)

// renderQueue resolves a RenderQueue selector. An unknown selector is a
// programming error and panics.
func (mgr *Manager) renderQueue(queue RenderQueue) *Queue[Renderable] {
	switch queue {
	case ObjectQueue:
		return &mgr.objects
	case GUIFrontQueue:
		return &mgr.guiFront
	}
	panic(fmt.Sprintf(UnknownQueue, queue))
}

// AddTexture puts a texture into the texture queue. The returned token
// identifies the entry for later removal.
//
// Callable from any goroutine.
func (mgr *Manager) AddTexture(t Resource) Token {
	return mgr.textures.Add(t)
}

// RemoveTexture takes a texture out of the texture queue. Safe to call
// from the texture's own teardown path.
func (mgr *Manager) RemoveTexture(tok Token) {
	mgr.textures.Remove(tok)
}

// AddListContainer puts a display list container into the list container
// queue.
//
// Callable from any goroutine.
func (mgr *Manager) AddListContainer(l Resource) Token {
	return mgr.listContainers.Add(l)
}

// RemoveListContainer takes a list container out of the list container
// queue. Safe to call from the container's own teardown path.
func (mgr *Manager) RemoveListContainer(tok Token) {
	mgr.listContainers.Remove(tok)
}

// AddVideo puts a video into the video queue. While any videos are
// queued, frames render the videos and nothing else.
//
// Callable from any goroutine.
func (mgr *Manager) AddVideo(v Video) Token {
	return mgr.videos.Add(v)
}

// RemoveVideo takes a video out of the video queue. Safe to call from the
// video's own teardown path.
func (mgr *Manager) RemoveVideo(tok Token) {
	mgr.videos.Remove(tok)
}

// AddRenderable puts an object into the selected renderable queue.
//
// Callable from any goroutine.
func (mgr *Manager) AddRenderable(queue RenderQueue, r Renderable) Token {
	return mgr.renderQueue(queue).Add(r)
}

// RemoveRenderable takes an object out of the selected renderable queue.
// Safe to call from the object's own teardown path.
func (mgr *Manager) RemoveRenderable(queue RenderQueue, tok Token) {
	mgr.renderQueue(queue).Remove(tok)
}

// ClearTextureQueue destroys every queued texture, notifies it that it
// has been kicked out and empties the queue.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) ClearTextureQueue() {
	mgr.textures.crit.Lock()
	defer mgr.textures.crit.Unlock()

	mgr.textures.eachLocked(func(t Resource) {
		t.Destroy()
		t.KickedOut()
	})
	mgr.textures.clearLocked()
}

// ClearListContainerQueue destroys every queued list container, notifies
// it that it has been kicked out and empties the queue.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) ClearListContainerQueue() {
	mgr.listContainers.crit.Lock()
	defer mgr.listContainers.crit.Unlock()

	mgr.listContainers.eachLocked(func(l Resource) {
		l.Destroy()
		l.KickedOut()
	})
	mgr.listContainers.clearLocked()
}

// ClearVideoQueue destroys every queued video, notifies it that it has
// been kicked out and empties the queue.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) ClearVideoQueue() {
	mgr.videos.crit.Lock()
	defer mgr.videos.crit.Unlock()

	mgr.videos.eachLocked(func(v Video) {
		v.Destroy()
		v.KickedOut()
	})
	mgr.videos.clearLocked()
}

// ClearRenderQueue notifies every queued object, in both renderable
// queues, that it has been kicked out and empties the queues. Renderables
// own no GPU state of their own so there is nothing to destroy.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) ClearRenderQueue() {
	for _, q := range []*Queue[Renderable]{&mgr.objects, &mgr.guiFront} {
		q.crit.Lock()
		q.eachLocked(func(r Renderable) {
			r.KickedOut()
		})
		q.clearLocked()
		q.crit.Unlock()
	}
}
