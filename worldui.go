package worldui

import "errors"

// EntityID identifies a surface entity in a Scene. Zero means "no entity".
type EntityID uint32

// Pos2 is a 2D position in texture pixels. The origin is the top-left
// corner of the surface's backing buffer, with Y increasing downward.
type Pos2 struct {
	X, Y float32
}

// PointerButton identifies a pointer button on a synthetic UI event.
type PointerButton uint8

const (
	PointerPrimary   PointerButton = iota // primary (left) button
	PointerSecondary                      // secondary (right) button
	PointerMiddle                         // middle button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// ModNone is the empty modifier set. Synthetic clicks always carry it.
const ModNone KeyModifiers = 0

// ErrMissingPixelBuffer is wrapped by the value the translator panics with
// when a resolved surface's texture handle has no live pixel buffer.
var ErrMissingPixelBuffer = errors.New("worldui: surface texture has no pixel buffer")
