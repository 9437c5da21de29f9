// Package renderer draws a scene graph with OpenGL.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/framebuffer"
	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/renderer/shaders"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Stats counts the work done by the last Render.
type Stats struct {
	DrawCalls int
	Meshes    int
	Textures  int
	Lights    int
}

// Renderer draws scenes. GPU buffers and textures are uploaded the first
// time a geometry, image or line is drawn and kept until Close.
type Renderer struct {
	config Config
	log    *zap.Logger

	phong *shader.Program
	line  *shader.Program

	meshes   map[*geometry.Geometry]*gpuMesh
	textures map[*texture.Image]uint32
	lines    map[*scenegraph.Line]*gpuLine

	// target is nil when drawing to the default framebuffer.
	target *framebuffer.Framebuffer
	stats  Stats
}

// New creates a renderer. It must be called after the OpenGL context is
// current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		meshes:   make(map[*geometry.Geometry]*gpuMesh),
		textures: make(map[*texture.Image]uint32),
		lines:    make(map[*scenegraph.Line]*gpuLine),
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	if r.phong, err = shader.New("phong", shaders.PhongVertexShader, shaders.PhongFragmentShader); err != nil {
		return nil, err
	}
	if r.line, err = shader.New("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		r.phong.Delete()
		return nil, err
	}

	r.phong.Use()
	for i, ch := range material.Channels() {
		r.phong.SetInt(samplerUniform[ch], int32(i))
	}
	gl.UseProgram(0)

	return r, nil
}

// SetTarget draws into fb instead of the default framebuffer. nil restores
// the default.
func (r *Renderer) SetTarget(fb *framebuffer.Framebuffer) {
	r.target = fb
}

// Resize sets the default framebuffer's viewport size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Stats returns counters from the last frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Render draws s from cam: opaque meshes, then transparent meshes back to
// front, then lines.
func (r *Renderer) Render(s *scenegraph.Scene, cam *camera.Perspective) {
	if r.target != nil {
		defer r.target.BindWithViewport()()
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	}

	bg := s.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.View()
	proj := cam.Projection()
	q := scenegraph.BuildQueue(s, view)
	r.stats = Stats{Lights: len(q.Lights)}

	r.phong.Use()
	r.phong.SetMat4("uView", view)
	r.phong.SetMat4("uProjection", proj)
	r.phong.SetVec3("uCameraPos", cam.Position())
	r.phong.SetColor("uAmbient", s.Ambient)
	r.setLights(q.Lights)

	gl.Disable(gl.BLEND)
	for _, it := range q.Opaque {
		r.drawMesh(it)
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	for _, it := range q.Transparent {
		r.drawMesh(it)
	}
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	gl.Disable(gl.CULL_FACE)

	if len(q.Lines) > 0 {
		viewProj := proj.Mul(view)
		r.line.Use()
		for _, it := range q.Lines {
			r.drawLine(it, viewProj)
		}
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	r.stats.Meshes = len(r.meshes)
	r.stats.Textures = len(r.textures)
}

func (r *Renderer) setLights(lights []scenegraph.LightItem) {
	r.phong.SetInt("uLightCount", int32(len(lights)))
	for i, l := range lights {
		var w float32
		if l.Kind == scenegraph.PointLight {
			w = 1
		}
		gl.Uniform4f(r.phong.Uniform(fmt.Sprintf("uLightPosition[%d]", i)), l.Position.X, l.Position.Y, l.Position.Z, w)
		r.phong.SetColor(fmt.Sprintf("uLightColor[%d]", i), l.Color)
	}
}

var samplerUniform = map[material.Channel]string{
	material.Map:         "uMap",
	material.BumpMap:     "uBumpMap",
	material.SpecularMap: "uSpecularMap",
	material.NormalMap:   "uNormalMap",
	material.EmissiveMap: "uEmissiveMap",
	material.AlphaMap:    "uAlphaMap",
}

var hasUniform = map[material.Channel]string{
	material.Map:         "uHasMap",
	material.BumpMap:     "uHasBumpMap",
	material.SpecularMap: "uHasSpecularMap",
	material.NormalMap:   "uHasNormalMap",
	material.EmissiveMap: "uHasEmissiveMap",
	material.AlphaMap:    "uHasAlphaMap",
}

func (r *Renderer) drawMesh(it scenegraph.DrawItem) {
	mesh := it.Node.Mesh
	m := mesh.Material
	g := r.mesh(mesh.Geometry)

	switch m.Side {
	case material.FrontSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case material.BackSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	gl.DepthMask(m.DepthWrite)

	p := r.phong
	p.SetMat4("uModel", it.World)
	p.SetMat4("uNormalMatrix", it.World.NormalMatrix())
	p.SetColor("uColor", m.Color)
	p.SetColor("uEmissive", m.Emissive)
	p.SetFloat("uEmissiveIntensity", m.EmissiveIntensity)
	p.SetColor("uSpecular", m.Specular)
	p.SetFloat("uShininess", m.Shininess)
	p.SetFloat("uBumpScale", m.BumpScale)
	p.SetFloat("uOpacity", m.Opacity)
	p.SetBool("uUnlit", m.Unlit)

	for i, ch := range material.Channels() {
		img := m.Texture(ch)
		p.SetBool(hasUniform[ch], img != nil)
		if img != nil {
			gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
			gl.BindTexture(gl.TEXTURE_2D, r.texture(img))
		}
	}
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	r.stats.DrawCalls++
}

func (r *Renderer) drawLine(it scenegraph.DrawItem, viewProj math.Mat4) {
	line := it.Node.Line
	g := r.lineBuffer(line)

	r.line.SetMat4("uMVP", viewProj.Mul(it.World))
	r.line.SetColor("uColor", line.Material.Color)

	mode := uint32(gl.LINE_STRIP)
	switch {
	case line.Segments:
		mode = gl.LINES
	case line.Loop:
		mode = gl.LINE_LOOP
	}
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(mode, 0, g.count)
	r.stats.DrawCalls++
}

// Close releases every GPU resource the renderer created. The render
// target belongs to the caller.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, g := range r.meshes {
		g.delete()
	}
	for _, g := range r.lines {
		g.delete()
	}
	for _, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.meshes)
	clear(r.lines)
	clear(r.textures)
	r.phong.Delete()
	r.line.Delete()
}
