package worldui

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceRef is everything the translator needs to know about one target:
// its descriptor, world transform, texture handle and input queue.
type SurfaceRef struct {
	Surface   Surface
	Transform Transform
	Texture   TextureHandle
	Input     *InputQueue
}

// SurfaceResolver looks up a target's surface. It returns false when the
// target no longer exists or is not a UI surface.
type SurfaceResolver[K comparable] interface {
	ResolveSurface(target K) (SurfaceRef, bool)
}

// SurfaceResolverFunc adapts a function to SurfaceResolver.
type SurfaceResolverFunc[K comparable] func(target K) (SurfaceRef, bool)

// ResolveSurface implements SurfaceResolver.
func (f SurfaceResolverFunc[K]) ResolveSurface(target K) (SurfaceRef, bool) {
	return f(target)
}

// TranslatorConfig holds optional translator settings.
type TranslatorConfig[K comparable] struct {
	// Logger receives per-event debug traces. Nil uses the package logger.
	Logger *slog.Logger
	// OnEmit, if set, is called for every synthetic event after it has been
	// pushed to the target's queue.
	OnEmit func(target K, ev UIEvent)
}

// Translator converts raw pointer interactions on world-space surfaces into
// synthetic UI events on each surface's input queue.
//
// Events are queued with PushMove and PushClick and processed by Update:
// all moves first, then all clicks, each in arrival order. A translator is
// not safe for concurrent use; it is meant to run in one update slot per
// frame.
type Translator[K comparable] struct {
	surfaces SurfaceResolver[K]
	textures TextureResolver
	logger   *slog.Logger
	onEmit   func(K, UIEvent)

	moves  []PointerMove[K]
	clicks []PointerClick[K]
}

// NewTranslator creates a translator reading surfaces and textures from the
// given resolvers. It panics if either resolver is nil.
func NewTranslator[K comparable](surfaces SurfaceResolver[K], textures TextureResolver, cfg TranslatorConfig[K]) *Translator[K] {
	if surfaces == nil {
		panic("worldui: translator needs a surface resolver")
	}
	if textures == nil {
		panic("worldui: translator needs a texture resolver")
	}
	return &Translator[K]{
		surfaces: surfaces,
		textures: textures,
		logger:   cfg.Logger,
		onEmit:   cfg.OnEmit,
	}
}

// SetLogger replaces the translator's logger. Nil falls back to the package
// logger.
func (t *Translator[K]) SetLogger(l *slog.Logger) {
	t.logger = l
}

// PushMove queues a move for the next Update.
func (t *Translator[K]) PushMove(ev PointerMove[K]) {
	t.moves = append(t.moves, ev)
}

// PushClick queues a click for the next Update.
func (t *Translator[K]) PushClick(ev PointerClick[K]) {
	t.clicks = append(t.clicks, ev)
}

// PushPick converts a generic pick payload and queues it.
func (t *Translator[K]) PushPick(p PickEvent[K]) {
	Route(p, t.PushMove, t.PushClick)
}

// Pending returns the number of queued raw events.
func (t *Translator[K]) Pending() int {
	return len(t.moves) + len(t.clicks)
}

// Update drains both event streams, moves before clicks. It does nothing
// when no events are pending. The streams are emptied even when a missing
// pixel buffer aborts the run; skipped or aborted events are never replayed.
func (t *Translator[K]) Update() {
	if len(t.moves) == 0 && len(t.clicks) == 0 {
		return
	}
	// Detach both streams first so a panic below still leaves them empty,
	// and events pushed from OnEmit land in the next run.
	moves, clicks := t.moves, t.clicks
	t.moves, t.clicks = nil, nil

	for _, ev := range moves {
		t.Translate(PickMove, ev.Target, ev.Position, ev.Normal)
	}
	for _, ev := range clicks {
		t.Translate(PickClick, ev.Target, ev.Position, ev.Normal)
	}
}

// Translate processes one interaction immediately and returns the number of
// synthetic events pushed. Stale targets and events without a hit are
// skipped and yield zero. It panics with an error wrapping
// ErrMissingPixelBuffer if the surface's texture cannot be resolved.
func (t *Translator[K]) Translate(kind PickKind, target K, position, normal *mgl32.Vec3) int {
	ref, ok := t.surfaces.ResolveSurface(target)
	if !ok || ref.Input == nil || !ref.Surface.Valid() {
		return 0
	}
	if position == nil || normal == nil {
		return 0
	}
	uv, ok := SurfaceUV(ref.Surface, ref.Transform, *position)
	if !ok {
		return 0
	}

	buf, ok := t.textures.PixelBuffer(ref.Texture)
	if !ok || buf == nil {
		panic(fmt.Errorf("%w (texture %d)", ErrMissingPixelBuffer, ref.Texture))
	}
	pw, ph := bufferSize(buf)
	if pw <= 0 || ph <= 0 {
		panic(fmt.Errorf("%w (texture %d is %dx%d)", ErrMissingPixelBuffer, ref.Texture, pw, ph))
	}
	pos := UVToPixel(uv, pw, ph)

	t.log().Debug("worldui: surface hit",
		"target", target, "kind", kind, "u", uv.X(), "v", uv.Y(), "x", pos.X, "y", pos.Y)

	switch kind {
	case PickMove:
		t.emit(target, ref.Input, PointerMovedEvent(pos))
		return 1
	case PickClick:
		press := PointerButtonEvent(pos, true)
		release := PointerButtonEvent(pos, false)
		ref.Input.Push(press, release)
		if t.onEmit != nil {
			t.onEmit(target, press)
			t.onEmit(target, release)
		}
		return 2
	}
	return 0
}

func (t *Translator[K]) emit(target K, q *InputQueue, ev UIEvent) {
	q.Push(ev)
	if t.onEmit != nil {
		t.onEmit(target, ev)
	}
}

func (t *Translator[K]) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}
