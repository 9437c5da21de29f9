// Package material describes how surfaces and lines are shaded.
package material

import (
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/pkg/math"
)

// Side selects which triangle faces are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Channel is a texture slot on a Material.
type Channel int

const (
	Map Channel = iota
	BumpMap
	SpecularMap
	NormalMap
	EmissiveMap
	AlphaMap
	channelCount
)

var channelNames = [channelCount]string{"map", "bump_map", "specular_map", "normal_map", "emissive_map", "alpha_map"}

func (c Channel) String() string {
	if c < 0 || c >= channelCount {
		return "unknown"
	}
	return channelNames[c]
}

// Channels lists every texture slot in declaration order.
func Channels() []Channel {
	out := make([]Channel, channelCount)
	for i := range out {
		out[i] = Channel(i)
	}
	return out
}

// Material is a Phong surface. The zero value is not useful; use New.
type Material struct {
	Color             math.Color
	Emissive          math.Color
	EmissiveIntensity float32
	Specular          math.Color
	Shininess         float32
	BumpScale         float32
	Opacity           float32
	Transparent       bool
	DepthWrite        bool
	Side              Side
	// Unlit skips lighting and outputs Color (times Map) directly.
	Unlit bool

	textures [channelCount]*texture.Image
}

// New returns an untextured material of the given colour with the default
// Phong parameters.
func New(color math.Color) *Material {
	return &Material{
		Color:             color,
		EmissiveIntensity: 1,
		Specular:          math.Hex(0x111111),
		Shininess:         30,
		BumpScale:         1,
		Opacity:           1,
		DepthWrite:        true,
	}
}

// SetTexture patches an image into a channel. A nil image clears it.
func (m *Material) SetTexture(ch Channel, img *texture.Image) {
	m.textures[ch] = img
}

// Texture returns the image bound to a channel, or nil.
func (m *Material) Texture(ch Channel) *texture.Image {
	return m.textures[ch]
}

// Textured reports whether any channel has an image.
func (m *Material) Textured() bool {
	for _, t := range m.textures {
		if t != nil {
			return true
		}
	}
	return false
}

// Line is a flat-coloured material for line primitives.
type Line struct {
	Color math.Color
}
