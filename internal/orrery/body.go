package orrery

import (
	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/pkg/math"
)

// TextureLoader starts an asynchronous texture load.
type TextureLoader interface {
	LoadTexture(name string) *assets.Future[*texture.Image]
}

// unitSphere is shared by every body; bodies are sized by node scale.
var unitSphere = geometry.Sphere(1, 48, 32)

// BodyOptions declares a body.
type BodyOptions struct {
	Name   string
	Radius float32
	// Offset is the body's (x, y) position inside Parent.
	Offset math.Vec2
	Parent *scenegraph.Node

	Color      math.Color
	Textures   material.TextureSet
	Material   material.Overrides
	Atmosphere *AtmosphereOptions
}

// AtmosphereOptions declares a translucent shell around a body.
type AtmosphereOptions struct {
	RadiusDelta float32
	Textures    material.TextureSet
	Material    material.Overrides
}

// Body is a named sphere in the scene.
type Body struct {
	Name     string
	Radius   float32
	Offset   math.Vec2
	Node     *scenegraph.Node
	Material *material.Material

	// Atmosphere is nil unless requested.
	Atmosphere         *scenegraph.Node
	AtmosphereMaterial *material.Material
}

// NewBody creates a body and attaches it to opts.Parent right away with an
// untextured material. Each texture is patched into its channel when the
// load resolves; failed loads leave the channel empty. loader may be nil
// when no textures are requested.
func NewBody(loader TextureLoader, opts BodyOptions) *Body {
	mat := material.New(opts.Color)
	mat.Side = material.DoubleSide
	opts.Material.Apply(mat)

	n := scenegraph.NewMesh(opts.Name, unitSphere, mat)
	n.Position = math.V3(opts.Offset.X, opts.Offset.Y, 0)
	n.Scale = math.Splat(opts.Radius)
	if opts.Parent != nil {
		opts.Parent.Add(n)
	}
	requestTextures(loader, mat, opts.Textures)

	b := &Body{
		Name:     opts.Name,
		Radius:   opts.Radius,
		Offset:   opts.Offset,
		Node:     n,
		Material: mat,
	}
	if opts.Atmosphere != nil {
		b.addAtmosphere(loader, *opts.Atmosphere)
	}
	return b
}

func (b *Body) addAtmosphere(loader TextureLoader, opts AtmosphereOptions) {
	mat := material.New(math.Hex(0xffffff))
	mat.Transparent = true
	mat.Opacity = 0.8
	mat.DepthWrite = false
	mat.Side = material.DoubleSide
	opts.Material.Apply(mat)

	shell := scenegraph.NewMesh(b.Name+"-atmosphere", unitSphere, mat)
	// The shell inherits the body's scale, so size it relative to the radius.
	shell.Scale = math.Splat((b.Radius + opts.RadiusDelta) / b.Radius)
	b.Node.Add(shell)
	requestTextures(loader, mat, opts.Textures)

	b.Atmosphere = shell
	b.AtmosphereMaterial = mat
}

func requestTextures(loader TextureLoader, mat *material.Material, set material.TextureSet) {
	if loader == nil {
		return
	}
	for _, cp := range set.Paths() {
		ch := cp.Channel
		loader.LoadTexture(cp.Path).Then(func(img *texture.Image) {
			mat.SetTexture(ch, img)
		})
	}
}

// WorldPosition returns the body's centre in world space.
func (b *Body) WorldPosition() math.Vec3 {
	return b.Node.WorldPosition()
}
