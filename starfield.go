package starfield

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default star tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default clear color of the ebiten host.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts to a premultiplied 8-bit color for ebiten.Image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendScreen                  // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// EventType identifies a kind of starfield event.
type EventType uint8

const (
	EventStarRecycled  EventType = iota // a star crossed the viewer and was respawned
	EventFrameRendered                  // a frame finished culling and emitting draw calls
)

// StarEvent carries event data for an EventStore.
type StarEvent struct {
	Type EventType
	// Frame is the simulator's advance counter when the event fired.
	Frame uint64
	// Star fields (valid for EventStarRecycled): pool index and the
	// respawned position.
	Index int
	X, Y  int
	Z     float64
	// Frame fields (valid for EventFrameRendered).
	Stats FrameStats
}

// EventStore is the interface for optional event forwarding, e.g. into an ECS.
type EventStore interface {
	EmitEvent(event StarEvent)
}
