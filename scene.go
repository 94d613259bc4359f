package worldui

import (
	"log/slog"
	"os"
)

// EntityStore is the interface for optional ECS integration. When set on a
// Scene, every synthetic UI event is forwarded to it.
type EntityStore interface {
	EmitEvent(event SyntheticEvent)
}

// SyntheticEvent pairs a synthetic UI event with the surface it was queued on.
type SyntheticEvent struct {
	Target EntityID
	Event  UIEvent
}

// SurfaceEntity is one world-space UI panel registered in a Scene.
// Transform may be changed freely between updates.
type SurfaceEntity struct {
	ID        EntityID
	Name      string
	Surface   Surface
	Transform Transform
	Texture   TextureHandle
	// Input holds synthetic events for the UI that renders into Texture.
	// The UI drains it once per frame.
	Input InputQueue

	ownsTexture bool
	despawned   bool
}

// IsDespawned reports whether the entity has been removed from its scene.
func (e *SurfaceEntity) IsDespawned() bool {
	return e.despawned
}

// SurfaceConfig describes a surface to spawn.
type SurfaceConfig struct {
	Name string
	// Width and Height are the panel size in world units. Both must be positive.
	Width, Height float32
	// Transform places the panel. The zero value is the identity transform.
	Transform Transform
	// Texture is an already registered handle. If zero, Buffer is
	// registered in the scene's TextureStore and released on Despawn.
	// Setting both is an error.
	Texture TextureHandle
	Buffer  PixelBuffer
}

type synthHandler struct {
	id uint32
	fn func(SyntheticEvent)
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	s := h.scene.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = synthHandler{}
			h.scene.handlers = s[:len(s)-1]
			return
		}
	}
}

// Scene owns a set of world-space surfaces, their textures and the
// translator that feeds their input queues. Call Update once per frame.
type Scene struct {
	// ScreenshotDir is the directory Screenshot writes to.
	ScreenshotDir string

	surfaces map[EntityID]*SurfaceEntity
	order    []*SurfaceEntity
	nextID   EntityID

	textures   *TextureStore
	translator *Translator[EntityID]

	store     EntityStore
	handlers  []synthHandler
	nextHndID uint32
	debug     bool

	// Pointer input
	camera      *Camera
	viewW       int
	viewH       int
	picker      Picker[EntityID]
	pickBuf     []Pickable[EntityID]
	pointer     pointerState
	injectQueue []syntheticPointerSample
	liveInput   bool
	replay      *Replay

	drawBuf  []drawItem
	captures []capture
}

// NewScene creates an empty scene with its own TextureStore.
func NewScene() *Scene {
	s := &Scene{
		ScreenshotDir: DefaultScreenshotDir,
		surfaces:      make(map[EntityID]*SurfaceEntity),
		textures:      NewTextureStore(),
		picker:        Picker[EntityID]{Tolerance: DefaultPickTolerance},
	}
	s.translator = NewTranslator[EntityID](s, s.textures, TranslatorConfig[EntityID]{
		OnEmit: s.dispatch,
	})
	return s
}

// Textures returns the scene's texture store.
func (s *Scene) Textures() *TextureStore {
	return s.textures
}

// Translator returns the scene's translator.
func (s *Scene) Translator() *Translator[EntityID] {
	return s.translator
}

// SpawnSurface registers a new surface and returns it. It panics if the
// size is not positive, or unless exactly one of Texture and Buffer is set.
func (s *Scene) SpawnSurface(cfg SurfaceConfig) *SurfaceEntity {
	surf := NewSurface(cfg.Width, cfg.Height)
	tf := cfg.Transform
	if tf == (Transform{}) {
		tf = IdentityTransform()
	}
	e := &SurfaceEntity{
		Name:      cfg.Name,
		Surface:   surf,
		Transform: tf,
		Texture:   cfg.Texture,
	}
	if e.Texture != 0 && cfg.Buffer != nil {
		panic("worldui: surface config sets both a texture handle and a pixel buffer")
	}
	if e.Texture == 0 {
		if cfg.Buffer == nil {
			panic("worldui: surface needs a texture handle or a pixel buffer")
		}
		e.Texture = s.textures.Add(cfg.Buffer)
		e.ownsTexture = true
	}
	s.nextID++
	e.ID = s.nextID
	s.surfaces[e.ID] = e
	s.order = append(s.order, e)
	return e
}

// Despawn removes a surface. Events still in flight for it are dropped
// silently. A texture registered by SpawnSurface is released as well. If
// the pointer was hovering the surface, the hover is cleared without a
// leave.
func (s *Scene) Despawn(id EntityID) {
	e, ok := s.surfaces[id]
	if !ok {
		return
	}
	delete(s.surfaces, id)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if e.ownsTexture {
		s.textures.Remove(e.Texture)
	}
	if hovered, ok := s.picker.Hovered(); ok && hovered == id {
		s.picker.Reset()
	}
	e.despawned = true
}

// Surface returns the surface with the given ID, or nil.
func (s *Scene) Surface(id EntityID) *SurfaceEntity {
	return s.surfaces[id]
}

// Surfaces returns live surfaces in spawn order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Surfaces() []*SurfaceEntity {
	return s.order
}

// ResolveSurface implements SurfaceResolver.
func (s *Scene) ResolveSurface(id EntityID) (SurfaceRef, bool) {
	e, ok := s.surfaces[id]
	if !ok {
		return SurfaceRef{}, false
	}
	return SurfaceRef{
		Surface:   e.Surface,
		Transform: e.Transform,
		Texture:   e.Texture,
		Input:     &e.Input,
	}, true
}

// SendMove queues a raw move for the next Update.
func (s *Scene) SendMove(ev PointerMove[EntityID]) {
	s.translator.PushMove(ev)
}

// SendClick queues a raw click for the next Update.
func (s *Scene) SendClick(ev PointerClick[EntityID]) {
	s.translator.PushClick(ev)
}

// SendPick queues a generic pick payload for the next Update.
func (s *Scene) SendPick(p PickEvent[EntityID]) {
	s.translator.PushPick(p)
}

// Update runs one frame: replay script, pointer input, then translation of
// every pending raw event. It is always safe to call; with nothing pending
// the translator does no work.
func (s *Scene) Update() {
	if s.replay != nil {
		s.replay.step(s)
	}
	s.processInput()
	s.translator.Update()
}

// OnSynthesized registers a scene-level callback fired for every synthetic
// event after it has been pushed to its surface's queue.
func (s *Scene) OnSynthesized(fn func(SyntheticEvent)) CallbackHandle {
	s.nextHndID++
	id := s.nextHndID
	s.handlers = append(s.handlers, synthHandler{id: id, fn: fn})
	return CallbackHandle{id: id, scene: s}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, the
// translator's per-event UV traces are written to stderr regardless of the
// package logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled {
		s.translator.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})).With("scene", "worldui"))
	} else {
		s.translator.SetLogger(nil)
	}
}

func (s *Scene) dispatch(id EntityID, ev UIEvent) {
	se := SyntheticEvent{Target: id, Event: ev}
	for _, h := range s.handlers {
		h.fn(se)
	}
	if s.store != nil {
		s.store.EmitEvent(se)
	}
}

// pickables returns the live surfaces as picking candidates, reusing an
// internal buffer.
func (s *Scene) pickables() []Pickable[EntityID] {
	buf := s.pickBuf[:0]
	for _, e := range s.order {
		buf = append(buf, Pickable[EntityID]{Target: e.ID, Surface: e.Surface, Transform: e.Transform})
	}
	s.pickBuf = buf
	return buf
}
