package orrery

import (
	"fmt"
	"slices"

	"github.com/Faultbox/orrery/pkg/math"
)

// Variant selects which features a scene build enables.
type Variant struct {
	Name       string
	Background math.Color

	// Shapes builds the boxes-and-label demo instead of a solar system.
	Shapes bool

	Textures      bool
	Atmosphere    bool
	OrbitPaths    bool
	OrbitControls bool
	ChaseCameras  bool
	Panel         bool
	Music         bool
	Info          bool
	StarField     bool

	// Spin lists the node names the animation driver rotates.
	Spin      AllowList
	SpinDelta math.Vec3
}

var variants = []Variant{
	{
		Name:       "shapes",
		Background: math.Hex(0xaaaaaa),
		Shapes:     true,
		Spin:       AllowAll,
	},
	{
		Name:       "solar-basic",
		Background: math.Hex(0xaaaaaa),
		Spin:       AllowAll,
		SpinDelta:  math.V3(0, 0.003, 0),
	},
	{
		Name:          "solar-textured",
		Background:    math.Hex(0x000000),
		Textures:      true,
		OrbitPaths:    true,
		OrbitControls: true,
		Spin:          AllowList{"earth"},
		SpinDelta:     math.V3(0, 0.003, 0),
	},
	{
		Name:          "solar-atmosphere",
		Background:    math.Hex(0x000000),
		Textures:      true,
		Atmosphere:    true,
		OrbitPaths:    true,
		OrbitControls: true,
		ChaseCameras:  true,
		Panel:         true,
		Spin:          AllowList{"earth"},
		SpinDelta:     math.V3(0, 0.003, 0),
	},
	{
		Name:          "solar-full",
		Background:    math.Hex(0x000000),
		Textures:      true,
		Atmosphere:    true,
		OrbitPaths:    true,
		OrbitControls: true,
		ChaseCameras:  true,
		Panel:         true,
		Music:         true,
		Info:          true,
		StarField:     true,
		Spin:          AllowList{"earth", StarFieldName},
		SpinDelta:     math.V3(0, 0.003, 0),
	},
}

// DefaultVariant is built when nothing else is configured.
const DefaultVariant = "solar-full"

// VariantByName returns a preset.
func VariantByName(name string) (Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			v.Spin = slices.Clone(v.Spin)
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q (have %v)", name, VariantNames())
}

// VariantNames lists the presets in order of increasing features.
func VariantNames() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return names
}

// AllowList names the nodes a driver may rotate. A list containing "*"
// allows every tracked node.
type AllowList []string

// AllowAll matches every name.
var AllowAll = AllowList{"*"}

// Contains reports whether name is allowed.
func (a AllowList) Contains(name string) bool {
	for _, n := range a {
		if n == "*" || n == name {
			return true
		}
	}
	return false
}

// SpinAll reports whether every tracked node rotates.
func (v Variant) SpinAll() bool {
	return len(v.Spin) == 1 && v.Spin[0] == "*"
}
