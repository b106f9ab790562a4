package ldtk

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ProjectID identifies one loaded snapshot of a project: the same file with
// different contents gets a different ID.
type ProjectID uint64

func NewProjectID(path string, src []byte) ProjectID {
	d := xxhash.New()
	_, _ = d.WriteString(path)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(src)
	return ProjectID(d.Sum64())
}

// RedrawState tracks which projects a host still has to draw. Projects are
// trees the loader never mutates, so the flag lives here instead, owned by
// the caller. A project that was never drawn needs a redraw.
type RedrawState struct {
	mu    sync.Mutex
	drawn map[ProjectID]struct{}
}

func (r *RedrawState) NeedsRedraw(id ProjectID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.drawn[id]
	return !ok
}

func (r *RedrawState) MarkDrawn(id ProjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drawn == nil {
		r.drawn = make(map[ProjectID]struct{})
	}
	r.drawn[id] = struct{}{}
}

func (r *RedrawState) MarkDirty(id ProjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drawn, id)
}

// Take reports whether id needs a redraw and marks it drawn.
func (r *RedrawState) Take(id ProjectID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drawn[id]; ok {
		return false
	}
	if r.drawn == nil {
		r.drawn = make(map[ProjectID]struct{})
	}
	r.drawn[id] = struct{}{}
	return true
}
