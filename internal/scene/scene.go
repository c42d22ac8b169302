// Package scene holds the renderable world the gameplay loop writes into.
// Objects are addressed by opaque handles so the loop never depends on any
// rendering-library types; a renderer interprets kinds and transforms
// however it likes.
package scene

import (
	"sort"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Handle is an opaque identifier for a renderable scene object.
// The zero value is never a valid handle.
type Handle uint64

// Kind classifies a scene object for the renderer.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindGround
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	case KindGround:
		return "Ground"
	default:
		return "Unknown"
	}
}

// Transform is the renderable state of one object.
type Transform struct {
	Position core.Vec3
	Scale    core.Vec3
}

// Object is a snapshot of one scene entry.
type Object struct {
	Handle    Handle
	Kind      Kind
	Transform Transform
}

// Scene owns all renderable objects. The gameplay loop is the only writer;
// the renderer reads between ticks, so no locking is needed.
type Scene struct {
	next    Handle
	objects map[Handle]*entry
}

type entry struct {
	kind      Kind
	transform Transform
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		objects: make(map[Handle]*entry),
	}
}

// Spawn creates a new object of the given kind at the origin with unit
// scale and returns its handle.
func (s *Scene) Spawn(kind Kind) Handle {
	s.next++
	s.objects[s.next] = &entry{
		kind: kind,
		transform: Transform{
			Scale: core.Uniform(1),
		},
	}
	return s.next
}

// Remove deletes the object. Removing an unknown handle is a no-op.
func (s *Scene) Remove(h Handle) {
	delete(s.objects, h)
}

// SetPosition updates an object's position. Unknown handles are ignored;
// the loop fires and forgets transform writes.
func (s *Scene) SetPosition(h Handle, p core.Vec3) {
	if e, ok := s.objects[h]; ok {
		e.transform.Position = p
	}
}

// SetScale updates an object's scale. Unknown handles are ignored.
func (s *Scene) SetScale(h Handle, sc core.Vec3) {
	if e, ok := s.objects[h]; ok {
		e.transform.Scale = sc
	}
}

// Get returns the object's transform and whether the handle is live.
func (s *Scene) Get(h Handle) (Transform, bool) {
	if e, ok := s.objects[h]; ok {
		return e.transform, true
	}
	return Transform{}, false
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns a snapshot of all objects sorted by handle, so render
// order is stable across frames.
func (s *Scene) Objects() []Object {
	out := make([]Object, 0, len(s.objects))
	for h, e := range s.objects {
		out = append(out, Object{Handle: h, Kind: e.kind, Transform: e.transform})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Handle < out[j].Handle
	})
	return out
}
