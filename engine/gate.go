package engine

import (
	"sync"

	"github.com/lixenwraith/globe/geo"
)

// UploadGate is the rendezvous between "the screen finished initializing"
// and "the worker delivered the bundle". Whichever happens last triggers
// the upload, exactly once; both flags are one-shot and duplicate
// triggers are ignored. The upload itself is posted onto the render
// goroutine's task queue since buffer conversion belongs to the thread
// that owns the screen.
type UploadGate struct {
	mu           sync.Mutex
	contextReady bool
	bundle       *geo.GeometryBundle
	fired        bool

	post    func(task func())
	upload  func(*geo.GeometryBundle)
	onReady func()
}

// NewUploadGate wires the gate. post must schedule the task onto the
// render goroutine; upload and onReady run there.
func NewUploadGate(post func(func()), upload func(*geo.GeometryBundle), onReady func()) *UploadGate {
	return &UploadGate{post: post, upload: upload, onReady: onReady}
}

// ContextReady records that the render context finished initialization
func (g *UploadGate) ContextReady() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.contextReady {
		return
	}
	g.contextReady = true
	g.tryFire()
}

// BundleReady records the worker's geometry delivery. Ownership of the
// bundle transfers here; the caller must not touch it afterward.
func (g *UploadGate) BundleReady(b *geo.GeometryBundle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.bundle != nil {
		return
	}
	g.bundle = b
	g.tryFire()
}

// tryFire runs under g.mu
func (g *UploadGate) tryFire() {
	if g.fired || !g.contextReady || g.bundle == nil {
		return
	}
	g.fired = true
	bundle := g.bundle
	g.post(func() {
		g.upload(bundle)
		if g.onReady != nil {
			g.onReady()
		}
	})
}
